// Package merr wraps the stage-specific error families (internal/parser's
// ParseError, internal/infer's Error, internal/eval's Error) into one
// structured shape for internal/session, grounded on the `samber/oops`
// idiom the pack's holomush-holomush repo uses for tagged, structured
// errors (spec.md §7).
package merr

import (
	"github.com/samber/oops"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/token"
)

// Stage identifies which pipeline stage detected a failure (spec.md §7).
type Stage string

const (
	StageParse Stage = "parse"
	StageType  Stage = "type"
	StageEval  Stage = "eval"
)

// Error is the uniform shape every stage's failure is translated into
// before it reaches internal/session's caller: a stage, a stable sub-kind
// code, the source position, a message, and (only for a type Mismatch) the
// two offending terms rendered as strings.
type Error struct {
	Stage   Stage
	Kind    string
	Pos     token.Position
	Message string
	Left    string
	Right   string

	cause error
}

func (e *Error) Error() string {
	return oops.Code(string(e.Stage) + ":" + e.Kind).
		With("pos", e.Pos.String()).
		Wrap(e.cause).
		Error()
}

func (e *Error) Unwrap() error { return e.cause }

// FromParseError translates internal/parser's failure shape.
func FromParseError(err *parser.ParseError) *Error {
	return &Error{Stage: StageParse, Kind: "Syntax", Pos: err.Pos, Message: err.Msg, cause: err}
}

// FromTypeError translates internal/infer's failure shape, keeping its Kind
// enum as the sub-kind string and, for a Mismatch, both offending types.
func FromTypeError(err *infer.Error) *Error {
	e := &Error{Stage: StageType, Kind: err.Kind.String(), Pos: err.Pos, Message: err.Message, cause: err}
	if err.Left != nil {
		e.Left = err.Left.String()
	}
	if err.Right != nil {
		e.Right = err.Right.String()
	}
	return e
}

// FromEvalError translates internal/eval's failure shape.
func FromEvalError(err *eval.Error) *Error {
	return &Error{Stage: StageEval, Kind: err.Kind.String(), Pos: err.Pos, Message: err.Message, cause: err}
}

// Translate dispatches err to the matching From* constructor by its
// dynamic type, or wraps it unchanged (as an internal error) if it matches
// none of the three known stage families — a defensive fallback, not a
// case this pipeline should ever actually hit.
func Translate(err error) *Error {
	switch e := err.(type) {
	case *parser.ParseError:
		return FromParseError(e)
	case *infer.Error:
		return FromTypeError(e)
	case *eval.Error:
		return FromEvalError(e)
	case *Error:
		return e
	}
	return &Error{Stage: StageEval, Kind: "Internal", Message: err.Error(), cause: err}
}
