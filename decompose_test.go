package spdx

import "testing"

// TestDecomposeWithExceptionIsNotMergedWithBareLicense reproduces spec.md
// §8 scenario 5: GPL-2.0-or-later WITH Classpath-exception-2.0 AND MIT AND
// MIT decomposes to exactly two elements, with MIT deduplicated but the
// WITH-qualified GPL kept distinct from a bare GPL occurrence would be.
func TestDecomposeWithExceptionIsNotMergedWithBareLicense(t *testing.T) {
	expr, err := Parse("GPL-2.0-or-later WITH Classpath-exception-2.0 AND MIT AND MIT", AllowAny)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := renderSet(Decompose(expr))
	want := []string{"GPL-2.0-or-later WITH Classpath-exception-2.0", "MIT"}
	if !equalStringSlices(got, want) {
		t.Errorf("Decompose = %v, want %v", got, want)
	}
}

// TestDecomposeKeepsBareAndWithExceptionDistinct reproduces the spec's
// second scenario-5 example: "A WITH e AND A" decomposes to two elements,
// not one, because WITH is never a merge boundary.
func TestDecomposeKeepsBareAndWithExceptionDistinct(t *testing.T) {
	expr, err := Parse("MIT WITH Classpath-exception-2.0 AND MIT", AllowAny)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	leaves := Decompose(expr)
	if len(leaves) != 2 {
		t.Fatalf("Decompose returned %d elements, want 2: %v", len(leaves), renderSet(leaves))
	}
}

func TestDecomposeDedupesRepeatedOrBranches(t *testing.T) {
	expr, err := Parse("MIT OR MIT OR Apache-2.0", AllowAny)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := renderSet(Decompose(expr))
	want := []string{"MIT", "Apache-2.0"}
	if !equalStringSlices(got, want) {
		t.Errorf("Decompose = %v, want %v", got, want)
	}
}

func TestDecomposeSingleLeaf(t *testing.T) {
	expr, err := Parse("LicenseRef-custom", AllowAny)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	leaves := Decompose(expr)
	if len(leaves) != 1 || Render(leaves[0]) != "LicenseRef-custom" {
		t.Errorf("Decompose = %v, want a single LicenseRef-custom element", renderSet(leaves))
	}
}

func TestDecomposePreservesFirstSeenOrder(t *testing.T) {
	expr, err := Parse("Apache-2.0 AND MIT AND GPL-2.0-only AND MIT", AllowAny)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := renderSet(Decompose(expr))
	want := []string{"Apache-2.0", "MIT", "GPL-2.0-only"}
	if !equalStringSlices(got, want) {
		t.Errorf("Decompose = %v, want %v in first-seen order", got, want)
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
