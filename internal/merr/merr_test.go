package merr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/token"
	"github.com/morel-lang/morel/internal/types"
)

// Translate dispatches a *parser.ParseError to the parse stage.
func TestTranslateParseError(t *testing.T) {
	src := &parser.ParseError{Pos: token.Position{StartLine: 1}, Msg: "unexpected token"}

	got := Translate(src)

	assert.Equal(t, StageParse, got.Stage)
	assert.Equal(t, "Syntax", got.Kind)
	assert.Equal(t, "unexpected token", got.Message)
	assert.Same(t, src, got.cause)
}

// Translate dispatches a *infer.Error to the type stage, keeping its Kind's
// String() as the sub-kind and carrying both sides of a Mismatch.
func TestTranslateTypeErrorMismatch(t *testing.T) {
	src := &infer.Error{
		Kind:    infer.Mismatch,
		Pos:     token.Position{StartLine: 2},
		Message: "cannot unify",
		Left:    types.Int,
		Right:   types.String,
	}

	got := Translate(src)

	assert.Equal(t, StageType, got.Stage)
	assert.Equal(t, "Mismatch", got.Kind)
	assert.Equal(t, "int", got.Left)
	assert.Equal(t, "string", got.Right)
}

// A non-Mismatch type error carries no Left/Right rendering.
func TestTranslateTypeErrorUnbound(t *testing.T) {
	src := &infer.Error{Kind: infer.Unbound, Message: `unbound identifier "x"`}

	got := Translate(src)

	assert.Equal(t, "Unbound", got.Kind)
	assert.Empty(t, got.Left)
	assert.Empty(t, got.Right)
}

// Translate dispatches a *eval.Error to the eval stage.
func TestTranslateEvalError(t *testing.T) {
	src := &eval.Error{Kind: eval.DivisionByZero, Message: "div by zero"}

	got := Translate(src)

	assert.Equal(t, StageEval, got.Stage)
	assert.Equal(t, "DivisionByZero", got.Kind)
}

// Translate is idempotent on an already-translated *Error.
func TestTranslateAlreadyTranslated(t *testing.T) {
	original := &Error{Stage: StageEval, Kind: "Overflow"}

	got := Translate(original)

	assert.Same(t, original, got)
}

// Translate falls back to an Internal eval-stage error for anything outside
// the three known stage families — a defensive path, not one the real
// pipeline should hit.
func TestTranslateUnknownFallsBackToInternal(t *testing.T) {
	got := Translate(assertErr("boom"))

	assert.Equal(t, StageEval, got.Stage)
	assert.Equal(t, "Internal", got.Kind)
	assert.Equal(t, "boom", got.Message)
}

// Error() renders through oops without panicking, and Unwrap() exposes the
// original cause for errors.Is/As.
func TestErrorAndUnwrap(t *testing.T) {
	cause := &eval.Error{Kind: eval.Subscript, Message: "index out of range"}
	e := FromEvalError(cause)

	require.NotPanics(t, func() { _ = e.Error() })
	assert.Same(t, cause, e.Unwrap())
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
