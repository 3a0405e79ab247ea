package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// An Int renders its arbitrary-precision digits verbatim, spelling a
// negative value with the grammar's own "~" rather than "-" so it re-lexes.
func TestIntInspect(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).Inspect())
	assert.Equal(t, "~7", NewInt(-7).Inspect())
}

// A Real renders without a forced exponent or trailing zeros, but always
// keeps a decimal point — "0" would re-lex as an int, not a real.
func TestRealInspect(t *testing.T) {
	assert.Equal(t, "3.5", NewReal(3.5).Inspect())
	assert.Equal(t, "0.0", NewReal(0).Inspect())
	assert.Equal(t, "~2.5", NewReal(-2.5).Inspect())
}

// A Str inspects as a quoted, escaped Morel string literal.
func TestStrInspect(t *testing.T) {
	assert.Equal(t, `"hello"`, Str{V: "hello"}.Inspect())
	assert.Equal(t, `"a\"b"`, Str{V: `a"b`}.Inspect())
}

// A Char inspects with the leading # the grammar uses for char literals.
func TestCharInspect(t *testing.T) {
	assert.Equal(t, "#'a'", Char{V: 'a'}.Inspect())
}

// Bool inspects as the bare keywords, not Go's %v formatting.
func TestBoolInspect(t *testing.T) {
	assert.Equal(t, "true", True.Inspect())
	assert.Equal(t, "false", False.Inspect())
	assert.Equal(t, "true", BoolOf(true).Inspect())
}

// Unit inspects as the empty-tuple token.
func TestUnitInspect(t *testing.T) {
	assert.Equal(t, "()", Unit{}.Inspect())
}

// A Record with "1","2",... labels is a compiled tuple and inspects with
// parens and no field names.
func TestRecordInspectTuple(t *testing.T) {
	r := Record{Fields: []RecordField{
		{Label: "1", Value: NewInt(1)},
		{Label: "2", Value: Str{V: "x"}},
	}}
	assert.Equal(t, `(1, "x")`, r.Inspect())
}

// A Record with genuine field labels inspects with braces and `label = `.
func TestRecordInspectNamed(t *testing.T) {
	r := NewRecordSorted([]RecordField{
		{Label: "b", Value: NewInt(2)},
		{Label: "a", Value: NewInt(1)},
	})
	assert.Equal(t, "{a = 1, b = 2}", r.Inspect())
}

// An empty Record (the unit-as-zero-field-tuple encoding) still inspects as "()".
func TestRecordInspectEmpty(t *testing.T) {
	assert.Equal(t, "()", Record{}.Inspect())
}

// A List inspects each element recursively, comma-separated, in brackets.
func TestListInspect(t *testing.T) {
	l := List{Elts: []Value{NewInt(1), NewInt(2), NewInt(3)}}
	assert.Equal(t, "[1, 2, 3]", l.Inspect())
}

func TestListInspectEmpty(t *testing.T) {
	assert.Equal(t, "[]", List{}.Inspect())
}

// A nullary Con inspects as just its name; one with an argument appends it.
func TestConInspect(t *testing.T) {
	assert.Equal(t, "NONE", Con{Name: "NONE"}.Inspect())
	assert.Equal(t, "SOME 1", Con{Name: "SOME", Arg: NewInt(1)}.Inspect())
}

// A Closure never exposes its captured environment or body.
func TestClosureInspect(t *testing.T) {
	c := &Closure{}
	assert.Equal(t, "fn", c.Inspect())
}

// A Builtin inspects with its registered name, so a REPL echoing `List.map`
// back to the user can tell built-ins apart from each other.
func TestBuiltinInspect(t *testing.T) {
	b := Builtin{Name: "List.map"}
	assert.Equal(t, "fn <List.map>", b.Inspect())
}
