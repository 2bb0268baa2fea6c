package spdx

import "github.com/samber/lo"

// Decompose returns the set of atomic license expressions reachable by
// splitting expr on AND and OR — never on WITH, so a WithException is
// never merged with a bare occurrence of the same base license (spec
// §4.6). Each element is a *LicenseId, *LicenseRef, or *WithException.
// The result is deduplicated by canonical render text and returned in
// first-seen order, so it is deterministic even though it represents a
// mathematical set.
func Decompose(expr Expr) []Expr {
	var leaves []Expr
	collectLeaves(expr, &leaves)
	return lo.UniqBy(leaves, Render)
}

func collectLeaves(expr Expr, out *[]Expr) {
	if c, ok := expr.(*Compound); ok {
		collectLeaves(c.Left, out)
		collectLeaves(c.Right, out)
		return
	}
	*out = append(*out, expr)
}
