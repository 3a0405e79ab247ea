package eval

import (
	"fmt"

	"github.com/morel-lang/morel/internal/token"
)

// Kind enumerates the runtime failures spec.md §4.4/§6.3 names — the ones
// type inference cannot rule out ahead of time.
type Kind int

const (
	NonexhaustiveMatch Kind = iota
	DivisionByZero
	DomainError
	Subscript
	Empty
	Overflow
	ChrOutOfRange
)

func (k Kind) String() string {
	switch k {
	case NonexhaustiveMatch:
		return "NonexhaustiveMatch"
	case DivisionByZero:
		return "DivisionByZero"
	case DomainError:
		return "DomainError"
	case Subscript:
		return "Subscript"
	case Empty:
		return "Empty"
	case Overflow:
		return "Overflow"
	case ChrOutOfRange:
		return "ChrOutOfRange"
	}
	return "Unknown"
}

// Error is the EvalError family of spec.md §7: a typed runtime failure that
// terminates the current top-level statement without disturbing the
// persistent environment accumulated so far. Code units signal it the same
// way internal/parser and internal/infer signal their own failures —
// by panicking with *Error — and Run recovers it into a returned error.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

func fail(kind Kind, pos token.Position, format string, args ...interface{}) {
	panic(&Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)})
}
