package spdx

import "strings"

// Render produces the canonical textual form of expr: operator words in
// uppercase, single-space-separated tokens, and parentheses emitted only
// where precedence or associativity requires them. Render is idempotent
// under re-parsing: Render(parse(Render(parse(s)))) == Render(parse(s)).
func Render(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr) {
	switch t := e.(type) {
	case *LicenseId:
		b.WriteString(t.ID)
		if t.OrLater {
			b.WriteByte('+')
		}
	case *LicenseRef:
		b.WriteString(t.ID)
	case *WithException:
		writeExpr(b, t.License)
		b.WriteString(" WITH ")
		b.WriteString(t.ExceptionID)
	case *Compound:
		parentPrec := precedence(t)
		writeChild(b, t.Left, parentPrec)
		b.WriteByte(' ')
		b.WriteString(t.Op.String())
		b.WriteByte(' ')
		writeChild(b, t.Right, parentPrec)
	}
}

// writeChild renders a child node, parenthesizing it iff its top-level
// operator binds more loosely than the parent's. Equal-precedence
// children never get parentheses, on either side: AND and OR are both
// associative, so a same-operator chain always prints flat regardless of
// how it was originally grouped.
func writeChild(b *strings.Builder, child Expr, parentPrec int) {
	if precedence(child) < parentPrec {
		b.WriteByte('(')
		writeExpr(b, child)
		b.WriteByte(')')
		return
	}
	writeExpr(b, child)
}
