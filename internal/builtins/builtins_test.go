package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/props"
)

func entry(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	require.Fail(t, "no such entry", name)
	return Entry{}
}

func call(v eval.Value, arg eval.Value) eval.Value {
	return v.(eval.Builtin).Fn(arg)
}

// List.length and List.rev operate on the plain-slice list representation.
func TestListLengthAndRev(t *testing.T) {
	entries := listEntries()
	l := eval.List{Elts: []eval.Value{eval.NewInt(1), eval.NewInt(2), eval.NewInt(3)}}

	length := call(entry(t, entries, "List.length").Value, l)
	assert.Equal(t, "3", length.Inspect())

	rev := call(entry(t, entries, "List.rev").Value, l)
	assert.Equal(t, "[3, 2, 1]", rev.Inspect())
}

// List.hd/List.tl on an empty list fail with the Empty kind, not a panic
// that escapes as a plain Go runtime error.
func TestListHdEmptyFails(t *testing.T) {
	entries := listEntries()
	hd := entry(t, entries, "List.hd").Value

	defer func() {
		r := recover()
		require.NotNil(t, r)
		evalErr, ok := r.(*eval.Error)
		require.True(t, ok)
		assert.Equal(t, eval.Empty, evalErr.Kind)
	}()
	call(hd, eval.List{})
}

// List.map applies its function argument to every element in order.
func TestListMap(t *testing.T) {
	entries := listEntries()
	double := eval.Builtin{Name: "double", Fn: func(x eval.Value) eval.Value {
		return eval.NewInt(x.(eval.Int).V.Int64() * 2)
	}}
	l := eval.List{Elts: []eval.Value{eval.NewInt(1), eval.NewInt(2), eval.NewInt(3)}}

	got := curried2Call(entry(t, entries, "List.map").Value, double, l)
	assert.Equal(t, "[2, 4, 6]", got.Inspect())
}

// List.foldl accumulates left-to-right.
func TestListFoldl(t *testing.T) {
	entries := listEntries()
	add := eval.Builtin{Name: "add", Fn: func(arg eval.Value) eval.Value {
		r := arg.(eval.Record)
		return eval.NewInt(r.Field(0).(eval.Int).V.Int64() + r.Field(1).(eval.Int).V.Int64())
	}}
	l := eval.List{Elts: []eval.Value{eval.NewInt(1), eval.NewInt(2), eval.NewInt(3)}}

	fn := entry(t, entries, "List.foldl").Value
	got := fn.(eval.Builtin).Fn(tupleOf(add, eval.NewInt(0), l))
	assert.Equal(t, "6", got.Inspect())
}

// curried2Call applies a two-argument builtin built via curried2.
func curried2Call(v eval.Value, a, b eval.Value) eval.Value {
	return v.(eval.Builtin).Fn(tupleOf(a, b))
}

// curried3Call applies a three-argument builtin built via curried3.
func curried3Call(v eval.Value, a, b, c eval.Value) eval.Value {
	return v.(eval.Builtin).Fn(tupleOf(a, b, c))
}

// NONE/SOME round-trip through Option.isSome/isNone/valOf/getOpt.
func TestOptionPredicatesAndProjections(t *testing.T) {
	entries := optionEntries()
	none := entry(t, entries, "NONE").Value
	some := call(entry(t, entries, "SOME").Value, eval.NewInt(7))

	assert.Equal(t, "true", call(entry(t, entries, "Option.isNone").Value, none).Inspect())
	assert.Equal(t, "false", call(entry(t, entries, "Option.isSome").Value, none).Inspect())
	assert.Equal(t, "true", call(entry(t, entries, "Option.isSome").Value, some).Inspect())
	assert.Equal(t, "7", call(entry(t, entries, "Option.valOf").Value, some).Inspect())

	getOpt := entry(t, entries, "Option.getOpt").Value
	assert.Equal(t, "7", curried2Call(getOpt, some, eval.NewInt(0)).Inspect())
	assert.Equal(t, "0", curried2Call(getOpt, none, eval.NewInt(0)).Inspect())
}

// Option.valOf on NONE fails with DomainError.
func TestOptionValOfNonePanics(t *testing.T) {
	entries := optionEntries()
	valOf := entry(t, entries, "Option.valOf").Value

	defer func() {
		r := recover()
		require.NotNil(t, r)
		evalErr, ok := r.(*eval.Error)
		require.True(t, ok)
		assert.Equal(t, eval.DomainError, evalErr.Kind)
	}()
	call(valOf, entry(t, entries, "NONE").Value)
}

// String.size counts runes, not bytes, so it agrees with String.sub's
// indexing for multi-byte characters.
func TestStringSizeAndSub(t *testing.T) {
	entries := stringEntries()
	s := eval.Str{V: "héllo"}

	size := call(entry(t, entries, "String.size").Value, s)
	assert.Equal(t, "5", size.Inspect())

	sub := curried2Call(entry(t, entries, "String.sub").Value, s, eval.NewInt(1))
	assert.Equal(t, eval.Char{V: 'é'}, sub)
}

// String.sub out of range fails with Subscript.
func TestStringSubOutOfRange(t *testing.T) {
	entries := stringEntries()
	sub := entry(t, entries, "String.sub").Value

	defer func() {
		r := recover()
		require.NotNil(t, r)
		evalErr, ok := r.(*eval.Error)
		require.True(t, ok)
		assert.Equal(t, eval.Subscript, evalErr.Kind)
	}()
	curried2Call(sub, eval.Str{V: "ab"}, eval.NewInt(5))
}

// String.collateLocale orders strings per the named locale's collation
// rules, falling back to English for an unparseable locale tag.
func TestStringCollateLocale(t *testing.T) {
	entries := stringEntries()
	collate := entry(t, entries, "String.collateLocale").Value

	assert.Equal(t, "0", curried3Call(collate, eval.Str{V: "abc"}, eval.Str{V: "abc"}, eval.Str{V: "en"}).Inspect())
	assert.Equal(t, "~1", curried3Call(collate, eval.Str{V: "a"}, eval.Str{V: "b"}, eval.Str{V: "not-a-locale"}).Inspect())
}

// Char.toUpper/isDigit follow unicode semantics.
func TestCharPredicatesAndCase(t *testing.T) {
	entries := charEntries()

	assert.Equal(t, "true", call(entry(t, entries, "Char.isDigit").Value, eval.Char{V: '5'}).Inspect())
	assert.Equal(t, "false", call(entry(t, entries, "Char.isDigit").Value, eval.Char{V: 'x'}).Inspect())
	assert.Equal(t, eval.Char{V: 'A'}, call(entry(t, entries, "Char.toUpper").Value, eval.Char{V: 'a'}))
}

// Math.sqrt converts through float64 and back to an arbitrary-precision Real.
func TestMathSqrt(t *testing.T) {
	entries := mathEntries()
	got := call(entry(t, entries, "Math.sqrt").Value, eval.NewReal(9))
	assert.Equal(t, "3.0", got.Inspect())
}

// Int.max/Int.min pick the larger/smaller of two arbitrary-precision ints.
func TestIntMaxMin(t *testing.T) {
	entries := intEntries()
	a, b := eval.NewInt(3), eval.NewInt(9)

	assert.Equal(t, "9", curried2Call(entry(t, entries, "Int.max").Value, a, b).Inspect())
	assert.Equal(t, "3", curried2Call(entry(t, entries, "Int.min").Value, a, b).Inspect())
}

// Int.fromString returns NONE for unparsable input, SOME for valid input.
func TestIntFromString(t *testing.T) {
	entries := intEntries()
	fromString := entry(t, entries, "Int.fromString").Value

	assert.Equal(t, "NONE", call(fromString, eval.Str{V: "not a number"}).Inspect())
	assert.Equal(t, "SOME 42", call(fromString, eval.Str{V: "42"}).Inspect())
}

// Vector.fromList/Bag.fromList are the identity at runtime — only their
// static type differs from List's.
func TestVectorAndBagAreListAtRuntime(t *testing.T) {
	l := eval.List{Elts: []eval.Value{eval.NewInt(1), eval.NewInt(2)}}

	vEntries := vectorEntries()
	assert.Equal(t, l, call(entry(t, vEntries, "Vector.fromList").Value, l))

	bEntries := bagEntries()
	assert.Equal(t, l, call(entry(t, bEntries, "Bag.fromList").Value, l))
}

// Relational.sum/max/min aggregate over a list of ints.
func TestRelationalAggregates(t *testing.T) {
	entries := relationalEntries()
	l := eval.List{Elts: []eval.Value{eval.NewInt(3), eval.NewInt(1), eval.NewInt(2)}}

	assert.Equal(t, "6", call(entry(t, entries, "Relational.sum").Value, l).Inspect())
	assert.Equal(t, "3", call(entry(t, entries, "Relational.max").Value, l).Inspect())
	assert.Equal(t, "1", call(entry(t, entries, "Relational.min").Value, l).Inspect())
}

// Relational.max on an empty collection fails with Empty.
func TestRelationalMaxEmptyFails(t *testing.T) {
	entries := relationalEntries()
	max := entry(t, entries, "Relational.max").Value

	defer func() {
		r := recover()
		require.NotNil(t, r)
		evalErr, ok := r.(*eval.Error)
		require.True(t, ok)
		assert.Equal(t, eval.Empty, evalErr.Kind)
	}()
	call(max, eval.List{})
}

// General.not/General.abs, and their unqualified aliases, behave
// identically to the namespaced entries they re-expose.
func TestGeneralAndAliases(t *testing.T) {
	gen := generalEntries()
	assert.Equal(t, "false", call(entry(t, gen, "General.not").Value, eval.True).Inspect())
	assert.Equal(t, "5", call(entry(t, gen, "General.abs").Value, eval.NewInt(-5)).Inspect())

	all := All(props.New())
	assert.Equal(t, "false", call(entry(t, all, "not").Value, eval.True).Inspect())
	assert.Equal(t, "5", call(entry(t, all, "abs").Value, eval.NewInt(-5)).Inspect())
	assert.Equal(t, "6", call(entry(t, all, "sum").Value, eval.List{Elts: []eval.Value{eval.NewInt(1), eval.NewInt(2), eval.NewInt(3)}}).Inspect())
}

// Sys.set/Sys.show/Sys.unset/Sys.showAll operate on the shared *props.Table
// closed over at construction time.
func TestSysSetShowUnset(t *testing.T) {
	pt := props.New()
	entries := sysEntries(pt)

	set := entry(t, entries, "Sys.set").Value
	curried2Call(set, eval.Str{V: "lineWidth"}, eval.Str{V: "120"})
	v, ok := pt.Get("lineWidth")
	require.True(t, ok)
	assert.Equal(t, "120", *v.String)

	show := entry(t, entries, "Sys.show").Value
	assert.Equal(t, `"120"`, call(show, eval.Str{V: "lineWidth"}).Inspect())
	assert.Equal(t, `"<unset>"`, call(show, eval.Str{V: "noSuchProp"}).Inspect())

	unset := entry(t, entries, "Sys.unset").Value
	call(unset, eval.Str{V: "lineWidth"})
	_, ok = pt.Get("lineWidth")
	assert.False(t, ok)
}

// Sys.showAll returns one rendered line per property, and two sessions'
// property tables (and therefore their Sys.set closures) are independent.
func TestSysEntriesAreIndependentPerTable(t *testing.T) {
	ptA, ptB := props.New(), props.New()
	entriesA := sysEntries(ptA)

	curried2Call(entry(t, entriesA, "Sys.set").Value, eval.Str{V: "label"}, eval.Str{V: "A"})
	_, ok := ptB.Get("label")
	assert.False(t, ok)

	showAll := call(entry(t, entriesA, "Sys.showAll").Value, eval.Unit{})
	assert.IsType(t, eval.List{}, showAll)
	assert.NotEmpty(t, showAll.(eval.List).Elts)
}
