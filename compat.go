package spdx

import "github.com/github/go-spdx/v2/spdxexp"

// Satisfies reports whether the allowed license list satisfies the given
// SPDX expression text, delegating to github.com/github/go-spdx/v2's own
// boolean-satisfaction logic. It operates purely at the text level for
// callers that haven't parsed expression into an Expr via this package
// and don't need the AST — e.g. a dependency scanner checking an
// allow-list against a package's declared license, mirroring the
// teacher's own spdx.go wrapper.
func Satisfies(expression string, allowed []string) (bool, error) {
	return spdxexp.Satisfies(expression, allowed)
}

// ExtractLicensesText extracts the unique license identifiers referenced
// by an SPDX expression string without constructing an Expr, via
// spdxexp.ExtractLicenses.
func ExtractLicensesText(expression string) ([]string, error) {
	return spdxexp.ExtractLicenses(expression)
}

// ValidateLicenseIDs checks a list of bare license identifiers against
// spdxexp's own validity rules, independent of this package's Catalog and
// Strictness policy — useful when a caller has a flat license list (e.g.
// from a package manifest) rather than a parsed expression.
func ValidateLicenseIDs(licenses []string) (valid bool, invalid []string) {
	return spdxexp.ValidateLicenses(licenses)
}
