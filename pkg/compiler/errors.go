package compiler

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrUnableToTokenize is returned when no lexical pattern matches at the
	// current scan position.
	ErrUnableToTokenize = errors.NewKind("unable to tokenize %q on line %d")

	// ErrTrailingInput is returned when tokens remain after a complete program.
	ErrTrailingInput = errors.NewKind("unexpected trailing input %q on line %d")

	// ErrInvalidConstant is returned when a constant lexeme does not fit a
	// signed 32-bit integer.
	ErrInvalidConstant = errors.NewKind("invalid integer constant %q on line %d")
)

// ParseError reports a token whose type does not match what the grammar
// requires. Got is EMPTY when the token stream ran out first.
type ParseError struct {
	Expected TokenType
	Got      TokenType
	Value    string
	Line     int
}

func (e *ParseError) Error() string {
	if e.Got == EMPTY {
		return fmt.Sprintf("expected %s, got %s (end of input)", e.Expected, e.Got)
	}
	return fmt.Sprintf("line %d: expected %s, got %s (%q)", e.Line, e.Expected, e.Got, e.Value)
}
