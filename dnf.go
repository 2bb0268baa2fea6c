package spdx

// DNF rewrites expr into disjunctive normal form: a tree structured as an
// OR of clauses, each clause an AND of literals (spec §4.7). It recurses
// through OR nodes unchanged and, at each AND node, distributes over any
// OR already present in either already-DNF child — recursing on the tree
// shape rather than flattening to a list first, which keeps each
// distributed OR as its own subtree, with the left operand's branches
// before the right's, the way spec §4.7's worked examples require.
//
// No simplification is performed beyond distribution: already-DNF trees
// are returned structurally equal, and "A AND A" remains "A AND A".
func DNF(expr Expr) Expr {
	c, ok := expr.(*Compound)
	if !ok {
		return expr
	}
	if c.Op == OpOr {
		return &Compound{Left: DNF(c.Left), Op: OpOr, Right: DNF(c.Right)}
	}
	return distributeAnd(DNF(c.Left), DNF(c.Right))
}

// distributeAnd combines two already-DNF trees under AND, distributing
// over whichever side (left first) carries a top-level OR.
func distributeAnd(left, right Expr) Expr {
	if lc, ok := left.(*Compound); ok && lc.Op == OpOr {
		return &Compound{
			Left:  distributeAnd(lc.Left, right),
			Op:    OpOr,
			Right: distributeAnd(lc.Right, right),
		}
	}
	if rc, ok := right.(*Compound); ok && rc.Op == OpOr {
		return &Compound{
			Left:  distributeAnd(left, rc.Left),
			Op:    OpOr,
			Right: distributeAnd(left, rc.Right),
		}
	}
	return &Compound{Left: left, Op: OpAnd, Right: right}
}
