// Package eval defines the runtime value representation, the immutable
// evaluation environment, and the pattern-matching dispatcher shared by
// every compiled Code unit (internal/compiler produces the Code; this
// package defines what a Code closure runs against and returns). There is
// no AST-walking here — by the time a Value exists, the AST is gone.
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"math/big"

	"github.com/morel-lang/morel/internal/ast"
)

// Value is implemented by every runtime value variant (spec.md §3.4):
// integer, real, string, char, boolean, unit, tuple/record, list, data
// constructor application, closure, or a host-provided built-in function.
// Inspect renders the value the way a REPL echoes it back, recursively for
// the structured variants.
type Value interface {
	morelValue()
	Inspect() string
}

// Int is an arbitrary-precision integer, matching the literal payload the
// parser already produces.
type Int struct{ V *big.Int }

func (Int) morelValue() {}

// Inspect renders a negative Int with the grammar's own negation spelling
// ("~", not "-"), since "-" is not a valid literal prefix in this grammar —
// anything else would make a printed negative value unparseable.
func (v Int) Inspect() string {
	if v.V.Sign() < 0 {
		return "~" + new(big.Int).Neg(v.V).String()
	}
	return v.V.String()
}

// NewInt is a convenience constructor for small integer results produced by
// built-ins and arithmetic (List.length, String.size, and so on).
func NewInt(i int64) Int { return Int{V: big.NewInt(i)} }

type Real struct{ V *big.Float }

func (Real) morelValue() {}

// Inspect renders a Real so it always re-lexes as a REAL token, never an
// INT: the grammar requires a '.' or exponent marker to tell them apart, and
// spells negation and a positive exponent differently from Go's own
// formatting ("~" instead of "-"; no sign at all before a positive
// exponent's digits).
func (v Real) Inspect() string {
	s := v.V.Text('g', -1)
	s = strings.ReplaceAll(s, "e+", "e")
	s = strings.ReplaceAll(s, "-", "~")
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func NewReal(f float64) Real { return Real{V: big.NewFloat(f)} }

type Str struct{ V string }

func (Str) morelValue() {}

func (v Str) Inspect() string { return strconv.Quote(v.V) }

type Char struct{ V rune }

func (Char) morelValue() {}

func (v Char) Inspect() string { return "#" + strconv.QuoteRune(v.V) }

type Bool struct{ V bool }

func (v Bool) morelValue() {}

func (v Bool) Inspect() string {
	if v.V {
		return "true"
	}
	return "false"
}

var (
	True  = Bool{V: true}
	False = Bool{V: false}
)

// BoolOf converts a Go bool to a Value, for built-ins and comparison ops.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Unit is the empty sequence — both the unit value and the value of `()`.
type Unit struct{}

func (Unit) morelValue() {}

func (Unit) Inspect() string { return "()" }

// RecordField is one label/value pair; a Record's Fields are always sorted
// by Label (the AST already hands the compiler sorted labels, so the
// compiler never needs to re-sort at this layer).
type RecordField struct {
	Label string
	Value Value
}

// Record is the runtime encoding of both `{l=v,...}` and, under the
// tuple-as-record convention (spec.md §3.2), of a tuple: a tuple literal
// compiles to a Record whose Fields carry labels "1","2",...
type Record struct {
	Fields []RecordField
}

func (Record) morelValue() {}

// isTupleLabels reports whether fields are the "1","2",...,"n" sequence a
// tuple literal compiles to, as opposed to a genuine record's field names.
func isTupleLabels(fields []RecordField) bool {
	for i, f := range fields {
		if f.Label != strconv.Itoa(i+1) {
			return false
		}
	}
	return true
}

func (r Record) Inspect() string {
	if len(r.Fields) == 0 {
		return "()"
	}
	parts := make([]string, len(r.Fields))
	if isTupleLabels(r.Fields) {
		for i, f := range r.Fields {
			parts[i] = f.Value.Inspect()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
	for i, f := range r.Fields {
		parts[i] = f.Label + " = " + f.Value.Inspect()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Field returns the value at 0-based position i — the representation
// recordSelector(slot) indexes into (spec.md §4.4).
func (r Record) Field(i int) Value { return r.Fields[i].Value }

// NewRecordSorted sorts fields by label before building a Record, for
// callers (the `from` comprehension's default row projection) that build
// field lists from environment lookups in an otherwise arbitrary order.
func NewRecordSorted(fields []RecordField) Record {
	sorted := make([]RecordField, len(fields))
	copy(sorted, fields)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Label > sorted[j].Label; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return Record{Fields: sorted}
}

// List is a runtime Morel list, represented as a Go slice for simplicity;
// cons/append/pattern-matching all operate on it structurally rather than
// via a linked-cell representation, since nothing in this engine needs
// sub-list sharing across mutation (everything here is immutable anyway).
type List struct {
	Elts []Value
}

func (List) morelValue() {}

func (l List) Inspect() string {
	parts := make([]string, len(l.Elts))
	for i, e := range l.Elts {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Con is a data constructor application: Arg is nil for a nullary
// constructor (spec.md §3.4's `(ctorName, value?)`).
type Con struct {
	Name string
	Arg  Value
}

func (Con) morelValue() {}

func (c Con) Inspect() string {
	if c.Arg == nil {
		return c.Name
	}
	return c.Name + " " + c.Arg.Inspect()
}

// Closure pairs a parameter pattern and a compiled body with the
// environment captured at the `fn` expression's evaluation (spec.md §3.4,
// §4.4). Param/Body/Env are exported so the `val rec` back-patch (the one
// documented mutation exception, spec.md §5) can fill them in after the
// placeholder has already been captured by the body's own environment.
type Closure struct {
	Param ast.Pattern
	Body  Code
	Env   *Environment
}

func (*Closure) morelValue() {}

func (*Closure) Inspect() string { return "fn" }

// Builtin wraps a host-implemented function. A builtin signals a domain
// failure by panicking with an *Error, which RunDecl recovers like any other
// runtime exception.
type Builtin struct {
	Name string
	Fn   func(Value) Value
}

func (b Builtin) morelValue() {}

func (b Builtin) Inspect() string { return fmt.Sprintf("fn <%s>", b.Name) }
