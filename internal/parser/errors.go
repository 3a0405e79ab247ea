package parser

import (
	"fmt"

	"github.com/morel-lang/morel/internal/token"
)

// ParseError is returned by every public entry point on failure. It always
// carries the position at which the parser gave up and a human-readable
// message (spec.md §4.1).
type ParseError struct {
	Pos token.Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

func errorf(pos token.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
