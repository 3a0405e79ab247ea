package infer

import (
	"testing"

	"github.com/morel-lang/morel/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inferExprType parses src as a bare expression (lifted to `val it = ...`)
// and returns the inferred scheme's string form.
func inferExprType(t *testing.T, src string) string {
	t.Helper()
	decl, perr := parser.ParseStatement(src)
	require.NoError(t, perr)
	res, ierr := Infer(decl, nil)
	require.NoError(t, ierr)
	require.Len(t, res.Bindings, 1)
	return res.Bindings[0].Scheme.String()
}

func TestInferSimpleArithmeticFunction(t *testing.T) {
	assert.Equal(t, "int -> int", inferExprType(t, "fn x => x + 1;"))
}

func TestInferCurriedArithmeticFunction(t *testing.T) {
	assert.Equal(t, "int -> int -> int", inferExprType(t, "fn x => fn y => x + y;"))
}

func TestInferIntAddition(t *testing.T) {
	assert.Equal(t, "int", inferExprType(t, "1 + 2;"))
}

func TestInferRealAddition(t *testing.T) {
	assert.Equal(t, "real", inferExprType(t, "1.0 + ~2.0;"))
}

func TestInferStringConcat(t *testing.T) {
	assert.Equal(t, "string", inferExprType(t, `"a" ^ "b";`))
}

func TestInferBoolAndAlso(t *testing.T) {
	assert.Equal(t, "bool", inferExprType(t, "true andalso false;"))
}

func TestInferLetRecFactorial(t *testing.T) {
	src := `let val rec fact = fn n => if n = 0 then 1 else n * fact (n - 1) in fact end;`
	assert.Equal(t, "int -> int", inferExprType(t, src))
}

func TestInferRecordSelector(t *testing.T) {
	assert.Equal(t, "bool", inferExprType(t, "#b {a=1, b=true};"))
}

// A fun-bound use of an overloaded arithmetic primitive must close to a
// concrete numeric type rather than generalize to 'a -> 'a -> 'a: otherwise
// a later call with non-numeric arguments would wrongly type-check.
func TestInferArithmeticFunctionDoesNotGeneralize(t *testing.T) {
	decl, perr := parser.ParseDecl("fun add x y = x + y;")
	require.NoError(t, perr)
	res, ierr := Infer(decl, nil)
	require.NoError(t, ierr)
	require.Len(t, res.Bindings, 1)
	assert.Equal(t, "int -> int -> int", res.Bindings[0].Scheme.String())
	assert.Empty(t, res.Bindings[0].Scheme.Vars, "add must not generalize over the arithmetic operand type")
}

// Calling that same function with boolean arguments must now fail to type
// check, rather than silently succeeding under an over-generalized scheme.
func TestInferArithmeticFunctionRejectsNonNumericCall(t *testing.T) {
	decl, perr := parser.ParseDecl("fun add x y = x + y;")
	require.NoError(t, perr)
	res, ierr := Infer(decl, nil)
	require.NoError(t, ierr)

	callDecl, perr := parser.ParseStatement("add true false;")
	require.NoError(t, perr)
	_, ierr = Infer(callDecl, res.Env)
	assert.Error(t, ierr)
}

// An arithmetic expression with no other constraint pinning the operand type
// down to real defaults to int.
func TestInferUnconstrainedArithmeticDefaultsToInt(t *testing.T) {
	assert.Equal(t, "int -> int", inferExprType(t, "fn x => x + x;"))
}

// Unary ~ participates in the same numeric-closing rule as the binary
// arithmetic operators.
func TestInferUnaryNegate(t *testing.T) {
	assert.Equal(t, "int -> int", inferExprType(t, "fn x => ~x + 1;"))
}
