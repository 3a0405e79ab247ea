package printer_test

import (
	"testing"

	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/compiler"
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalAST lifts e into `val it = e` (matching parser.parseStatement's own
// treatment of a bare expression) and runs it through the full
// type/compile/eval pipeline, returning the value bound to "it".
func evalAST(t *testing.T, e ast.Expr) eval.Value {
	t.Helper()
	decl := &ast.ValDecl{
		P:        e.Pos(),
		Bindings: []ast.ValBind{{Pattern: &ast.PatIdent{P: e.Pos(), Name: "it"}, Expr: e}},
	}
	res, ierr := infer.Infer(decl, nil)
	require.NoError(t, ierr)
	step := compiler.New(res.TypeMap).CompileStatement(res.Decl)
	env, eerr := eval.RunDecl(step, nil)
	require.NoError(t, eerr)
	v, ok := env.Lookup("it")
	require.True(t, ok)
	return v
}

// roundTrip prints e, reparses the printed text, and asserts the reparsed
// expression evaluates to the same value as the original — the semantic
// form of parse(print(e)) = e, sidestepping the need for a position-blind
// AST-equality helper.
func roundTrip(t *testing.T, src string) {
	t.Helper()
	e, perr := parser.ParseExpression(src)
	require.NoError(t, perr)

	printed := printer.Expr(e)
	reparsed, perr := parser.ParseExpression(printed)
	require.NoError(t, perr, "printed form %q failed to reparse", printed)

	original := evalAST(t, e)
	roundTripped := evalAST(t, reparsed)
	assert.Equal(t, original.Inspect(), roundTripped.Inspect(),
		"printed form %q did not round-trip to an equal value", printed)

	// Printing should also be a fixpoint: printing the reparsed expression
	// yields the same text again.
	assert.Equal(t, printed, printer.Expr(reparsed))
}

func TestRoundTripArithmeticPrecedence(t *testing.T) {
	roundTrip(t, "1 + 2 * 3 - 4")
}

func TestRoundTripLeftAssociativeSubtraction(t *testing.T) {
	roundTrip(t, "10 - 3 - 2")
}

func TestRoundTripRightAssociativeCons(t *testing.T) {
	roundTrip(t, "1 :: 2 :: [3]")
}

func TestRoundTripParenthesizedApplication(t *testing.T) {
	roundTrip(t, "(fn x => x + 1) (2 * 3)")
}

func TestRoundTripRecordSelectorAndArithmetic(t *testing.T) {
	roundTrip(t, "#b {a=1, b=2, c=3} + 1")
}

func TestRoundTripIfAsApplicationArgument(t *testing.T) {
	roundTrip(t, "(fn x => x) (if true then 1 else 2)")
}

func TestRoundTripNegationInsideArithmetic(t *testing.T) {
	roundTrip(t, "3 + ~2")
}

// Records with permuted labels print in sorted order.
func TestPrintRecordSortsLabels(t *testing.T) {
	e, perr := parser.ParseExpression("{b=1, a=2}")
	require.NoError(t, perr)
	assert.Equal(t, "{a=2, b=1}", printer.Expr(e))
}
