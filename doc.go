// Package spdx implements the SPDX license-expression grammar: a lexer,
// recursive-descent parser, canonical printer, catalog-backed validator,
// deprecation normalizer, atomic decomposer, and a disjunctive-normal-form
// rewriter.
//
// The engine is pure and single-threaded by contract: every exported
// operation is a total function from value inputs to value outputs (or
// errors). There are no suspension points and no shared mutable state,
// so every operation is safe to call concurrently from any number of
// goroutines without synchronization.
//
// The package does not fetch or interpret license texts, does not
// compute semantic license compatibility, and never logs or prints —
// callers that need those things build them on top using the string
// parse/render pair and the AST this package exposes.
package spdx
