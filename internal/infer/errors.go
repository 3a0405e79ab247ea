package infer

import (
	"fmt"

	"github.com/morel-lang/morel/internal/token"
	"github.com/morel-lang/morel/internal/types"
)

// Kind distinguishes the TypeError variants of spec.md §7.
type Kind int

const (
	Unbound Kind = iota
	Mismatch
	FlexRecord
	NotFunction
	NotExhaustive
	Redundant
	RecursiveNonFunction
)

func (k Kind) String() string {
	switch k {
	case Unbound:
		return "Unbound"
	case Mismatch:
		return "Mismatch"
	case FlexRecord:
		return "FlexRecord"
	case NotFunction:
		return "NotFunction"
	case NotExhaustive:
		return "NotExhaustive"
	case Redundant:
		return "Redundant"
	case RecursiveNonFunction:
		return "RecursiveNonFunction"
	}
	return "Unknown"
}

// Error is the TypeError family of spec.md §7: every failure the
// inferencer can surface carries a Kind, a position, and a message; a
// Mismatch additionally carries both terms that could not be reconciled.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Left    types.Type // set only for Mismatch
	Right    types.Type // set only for Mismatch
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}

func unboundErr(pos token.Position, name string) *Error {
	return &Error{Kind: Unbound, Pos: pos, Message: fmt.Sprintf("unbound identifier %q", name)}
}

func unboundConErr(pos token.Position, name string) *Error {
	return &Error{Kind: Unbound, Pos: pos, Message: fmt.Sprintf("unbound constructor %q", name)}
}

func flexRecordErr(pos token.Position, msg string) *Error {
	return &Error{Kind: FlexRecord, Pos: pos, Message: msg}
}

func recursiveNonFunctionErr(pos token.Position) *Error {
	return &Error{Kind: RecursiveNonFunction, Pos: pos, Message: "val rec requires a fn expression"}
}
