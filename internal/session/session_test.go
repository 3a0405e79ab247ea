package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morel-lang/morel/internal/builtins"
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/props"
	"github.com/morel-lang/morel/internal/types"
)

// A successful expression statement binds "it" to its value and type.
func TestSubmitExpressionBindsIt(t *testing.T) {
	s := New()

	res, err := s.Submit("1 + 2;")
	require.NoError(t, err)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "it", res.Bindings[0].Name)
	assert.Equal(t, "int", res.Bindings[0].Type)
	assert.Equal(t, "3", res.Bindings[0].Value.Inspect())
}

// A val declaration's bound name is visible to a later statement in the
// same session.
func TestSubmitValBindingPersists(t *testing.T) {
	s := New()

	_, err := s.Submit("val x = 10;")
	require.NoError(t, err)

	res, err := s.Submit("x + 1;")
	require.NoError(t, err)
	assert.Equal(t, "11", res.Bindings[0].Value.Inspect())
}

// A statement that fails to type-check leaves the session's environment
// exactly as it was — the unbound name from the failed attempt never
// becomes visible to a later statement.
func TestSubmitFailureLeavesCleanSlate(t *testing.T) {
	s := New()

	_, err := s.Submit("val x = 1;")
	require.NoError(t, err)

	_, err = s.Submit("val y = x + true;")
	require.Error(t, err)

	res, err := s.Submit("x;")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Bindings[0].Value.Inspect())

	_, err = s.Submit("y;")
	assert.Error(t, err, "y must not have been bound by the failed statement")
}

// Every session gets its own uuid, and Submit's Result carries it.
func TestSubmitResultCarriesSessionID(t *testing.T) {
	s := New()

	res, err := s.Submit("1;")
	require.NoError(t, err)
	assert.Equal(t, s.ID(), res.ID)
}

// SubmitDecl runs the same pipeline as Submit, given an already-parsed
// declaration rather than source text.
func TestSubmitDeclMatchesSubmit(t *testing.T) {
	s := New()
	decl, err := parser.ParseStatement("val y = 5;")
	require.NoError(t, err)

	res, err := s.SubmitDecl(decl)
	require.NoError(t, err)
	assert.Equal(t, "5", res.Bindings[0].Value.Inspect())
}

// Extend folds a new binding into both environments so a later statement
// can reference it, matching how internal/foreign's table values enter a
// session.
func TestExtendMakesBindingVisible(t *testing.T) {
	s := New()
	s.Extend([]builtins.Entry{{
		Name:   "answer",
		Scheme: types.Monomorphic(types.Int),
		Value:  eval.NewInt(42),
	}})

	res, err := s.Submit("answer;")
	require.NoError(t, err)
	assert.Equal(t, "42", res.Bindings[0].Value.Inspect())
}

// Two independently-constructed sessions never see each other's bindings or
// property changes.
func TestSessionsAreIsolated(t *testing.T) {
	a := New()
	b := New()

	_, err := a.Submit("val onlyInA = 1;")
	require.NoError(t, err)

	_, err = b.Submit("onlyInA;")
	assert.Error(t, err)

	a.Props().Set("lineWidth", props.IntValue(120))
	v, _ := b.Props().Get("lineWidth")
	assert.NotEqual(t, 120, *v.Int)
}
