package eval_test

import (
	"testing"

	"github.com/morel-lang/morel/internal/compiler"
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalSrc types, compiles, and evaluates one bare-expression statement,
// returning the value bound to "it".
func evalSrc(t *testing.T, src string) eval.Value {
	t.Helper()
	decl, perr := parser.ParseStatement(src)
	require.NoError(t, perr)
	res, ierr := infer.Infer(decl, nil)
	require.NoError(t, ierr)
	step := compiler.New(res.TypeMap).CompileStatement(res.Decl)
	env, eerr := eval.RunDecl(step, nil)
	require.NoError(t, eerr)
	v, ok := env.Lookup("it")
	require.True(t, ok)
	return v
}

func TestEvalOperatorPrecedence(t *testing.T) {
	assert.Equal(t, "7", evalSrc(t, "1 + 2 * 3;").Inspect())
}

func TestEvalIntegerDivMod(t *testing.T) {
	assert.Equal(t, "6", evalSrc(t, "20 div 3;").Inspect())
	assert.Equal(t, "2", evalSrc(t, "~10 mod 3;").Inspect())
	assert.Equal(t, "~7", evalSrc(t, "20 div ~3;").Inspect())
}

func TestEvalLetValAnd(t *testing.T) {
	assert.Equal(t, "3", evalSrc(t, "let val x = 1 and y = 2 in x + y end;").Inspect())
}

func TestEvalLetValRecFactorial(t *testing.T) {
	src := "let val rec fact = fn n => if n = 0 then 1 else n * fact (n - 1) in fact 5 end;"
	assert.Equal(t, "120", evalSrc(t, src).Inspect())
}

func TestEvalLetFunListLength(t *testing.T) {
	src := "let fun len [] = 0 | len (h::t) = 1 + len t in len [1,2,3] end;"
	assert.Equal(t, "3", evalSrc(t, src).Inspect())
}

func TestEvalRecordSelector(t *testing.T) {
	assert.Equal(t, "2", evalSrc(t, "#b {a=1, b=2, c=3};").Inspect())
}

func TestEvalFromWhereYield(t *testing.T) {
	src := `let val emps = [{id=102, name="Shaggy", deptno=30},
	                     {id=103, name="Scooby", deptno=30},
	                     {id=104, name="Velma", deptno=20}]
	        in from e in emps where #deptno e = 30 yield #id e end;`
	assert.Equal(t, "[102, 103]", evalSrc(t, src).Inspect())
}

func TestEvalDiscardedArgument(t *testing.T) {
	assert.Equal(t, "42", evalSrc(t, "(fn _ => 42) 2;").Inspect())
}

// A binding that panics with an ordinary *eval.Error inside a `val ... and
// ...` group must be caught by RunDecl's recover like any other failure —
// not crash the process — and must leave its sibling's side effects
// unobserved, since the whole statement fails as one unit.
func TestEvalValAndGroupPanicIsRecovered(t *testing.T) {
	decl, perr := parser.ParseStatement("val x = 1 div 0 and y = 2;")
	require.NoError(t, perr)
	res, ierr := infer.Infer(decl, nil)
	require.NoError(t, ierr)
	step := compiler.New(res.TypeMap).CompileStatement(res.Decl)

	before := (*eval.Environment)(nil).Extend("z", eval.True)
	after, err := eval.RunDecl(step, before)
	require.Error(t, err)
	assert.Same(t, before, after, "a failed statement must leave the prior environment untouched")
}
