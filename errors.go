package spdx

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel matched by every *SyntaxError via errors.Is.
var ErrSyntax = fmt.Errorf("spdx: syntax error")

// ErrValidation is the sentinel matched by every *ValidationError via errors.Is.
var ErrValidation = fmt.Errorf("spdx: validation error")

// SyntaxError reports a malformed expression: a bad character, unbalanced
// parentheses, a misplaced operator, an empty expression, or a WITH whose
// left operand isn't a bare license identifier. Position is a byte offset
// into the original input; Lexeme is the offending text when known.
type SyntaxError struct {
	Position int
	Lexeme   string
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Lexeme != "" {
		return fmt.Sprintf("spdx: syntax error at position %d: %s: %q", e.Position, e.Message, e.Lexeme)
	}
	return fmt.Sprintf("spdx: syntax error at position %d: %s", e.Position, e.Message)
}

// Is reports whether target is ErrSyntax, so callers can test the error
// kind with errors.Is without type-asserting *SyntaxError.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ValidationError reports a well-formed identifier rejected by the active
// Strictness policy.
type ValidationError struct {
	ID     string
	Reason string
	Policy Strictness
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spdx: validation error: %q rejected under %s: %s", e.ID, e.Policy, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsSyntaxError reports whether err is (or wraps) a *SyntaxError.
func IsSyntaxError(err error) bool {
	var synErr *SyntaxError
	return errors.As(err, &synErr)
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
