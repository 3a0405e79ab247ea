// Package types is Morel's ML type representation: primitive types,
// functions, tuples/records, named (possibly applied) datatypes, and type
// variables, together with the polymorphic Scheme wrapper produced by
// let-generalization (spec.md §4.1, §4.3). It sits between internal/ast
// (which only has syntax) and internal/unify (which only has untyped
// Terms): ToTerm/FromTerm at the bottom of this file are the conversion at
// that boundary, so the unifier itself never needs to know what a record or
// a function type is.
package types

import (
	"sort"
	"strconv"
	"strings"

	"github.com/morel-lang/morel/internal/unify"
)

// Type is any Morel type. Implementations are value types.
type Type interface {
	isType()
	String() string
}

// Var is an unbound type variable, e.g. 'a, 'b.
type Var struct {
	ID unify.VarID
}

func (Var) isType() {}
func (v Var) String() string { return tyVarName(v.ID) }

func tyVarName(id unify.VarID) string {
	// 'a, 'b, ..., 'z, 'a1, 'b1, ... — matches the conventional ML rendering.
	letter := rune('a' + int(id-1)%26)
	suffix := int(id-1) / 26
	if suffix == 0 {
		return "'" + string(letter)
	}
	return "'" + string(letter) + itoa(suffix)
}

// tupleLabel returns the synthesized field label for the i'th (1-based)
// tuple component, matching internal/ast.TupleLabel.
func tupleLabel(i int) string { return itoa(i) }

// isCanonicalTupleLabeling reports whether labels is exactly {"1",...,"N"}
// for some N >= 2, irrespective of order — the tuple encoding's signature,
// distinguishing it from a record that merely happens to use numeric
// labels (e.g. `{1=x, 3=y}`, which is not a valid tuple encoding).
func isCanonicalTupleLabeling(labels []string) bool {
	if len(labels) < 2 {
		return false
	}
	seen := make([]bool, len(labels))
	for _, l := range labels {
		n, err := strconv.Atoi(l)
		if err != nil || n < 1 || n > len(labels) {
			return false
		}
		if seen[n-1] {
			return false
		}
		seen[n-1] = true
	}
	return true
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// Prim is a primitive, non-parametric named type: int, real, string, char,
// bool, unit.
type Prim struct {
	Name string
}

func (Prim) isType()        {}
func (p Prim) String() string { return p.Name }

var (
	Int    = Prim{"int"}
	Real   = Prim{"real"}
	String = Prim{"string"}
	Char   = Prim{"char"}
	Bool   = Prim{"bool"}
	Unit   = Prim{"unit"}
)

// Func is `dom -> cod`.
type Func struct {
	Dom, Cod Type
}

func (Func) isType() {}
func (f Func) String() string {
	return wrapArrow(f.Dom) + " -> " + f.Cod.String()
}

func wrapArrow(t Type) string {
	if _, ok := t.(Func); ok {
		return "(" + t.String() + ")"
	}
	return t.String()
}

// Tuple is `t1 * t2 * ...`, n >= 2.
type Tuple struct {
	Elts []Type
}

func (Tuple) isType() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elts))
	for i, e := range t.Elts {
		parts[i] = wrapStar(e)
	}
	return strings.Join(parts, " * ")
}

func wrapStar(t Type) string {
	switch t.(type) {
	case Func, Tuple:
		return "(" + t.String() + ")"
	}
	return t.String()
}

// RecordField is one label/type pair of a Record, stored sorted by Label.
type RecordField struct {
	Label string
	Type  Type
}

// Record is `{l1: t1, l2: t2, ...}`, fields sorted by Label. Tuples are
// represented separately (Tuple) for display purposes, but share the
// labels "1","2",... under the hood via unify.RecordOp — see ToTerm.
type Record struct {
	Fields []RecordField
}

func (Record) isType() {}
func (r Record) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Label + ": " + f.Type.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// NewRecord sorts fields by label, matching the ast.NewRecord invariant.
func NewRecord(fields []RecordField) Record {
	sorted := make([]RecordField, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Label < sorted[j].Label })
	return Record{Fields: sorted}
}

// Named is a (possibly parametric, possibly applied) datatype reference,
// e.g. `int list`, `'a option`, `('a, 'b) tree`. Args is empty for a
// non-parametric datatype.
type Named struct {
	Name string
	Args []Type
}

func (Named) isType() {}
func (n Named) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	if len(n.Args) == 1 {
		return wrapStar(n.Args[0]) + " " + n.Name
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, ", ") + ") " + n.Name
}

// List is shorthand for Named{Name: "list", Args: []Type{Elem}}.
func List(elem Type) Named { return Named{Name: "list", Args: []Type{elem}} }

// Scheme is a let-generalized, universally quantified type: ∀ Vars. Body.
// An un-generalized (monomorphic) type is a Scheme with no Vars.
type Scheme struct {
	Vars []unify.VarID
	Body Type
}

// Monomorphic wraps t with no quantified variables.
func Monomorphic(t Type) Scheme { return Scheme{Body: t} }

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Body.String()
	}
	parts := make([]string, len(s.Vars))
	for i, v := range s.Vars {
		parts[i] = tyVarName(v)
	}
	return strings.Join(parts, " ") + ". " + s.Body.String()
}

// ---------------------------------------------------------------------
// Boundary with internal/unify: a Type carries no unification variables of
// its own beyond Var, so converting is a straightforward structural map.
// ---------------------------------------------------------------------

// ToTerm lowers t into the term the unifier solves over.
func ToTerm(t Type) unify.Term {
	switch x := t.(type) {
	case Var:
		return unify.Var{ID: x.ID}
	case Prim:
		return unify.Seq{Op: "prim:" + x.Name}
	case Func:
		return unify.Seq{Op: "->", Args: []unify.Term{ToTerm(x.Dom), ToTerm(x.Cod)}}
	case Tuple:
		// A tuple is encoded as a record with labels "1","2",... (spec.md
		// §3.2: "#1 (true, 0) and #1 {1=true, 2=0} denote the same
		// selector"), so the two share one term shape and a record
		// selector can resolve against either. unify.RecordOp sorts labels
		// lexicographically (so "10" precedes "2"), so the args must be
		// reordered to match before building the Seq.
		type labeled struct {
			label string
			term  unify.Term
		}
		pairs := make([]labeled, len(x.Elts))
		for i, e := range x.Elts {
			pairs[i] = labeled{label: tupleLabel(i + 1), term: ToTerm(e)}
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].label < pairs[j].label })
		labels := make([]string, len(pairs))
		args := make([]unify.Term, len(pairs))
		for i, pr := range pairs {
			labels[i] = pr.label
			args[i] = pr.term
		}
		return unify.Seq{Op: unify.RecordOp(labels), Args: args}
	case Record:
		labels := make([]string, len(x.Fields))
		args := make([]unify.Term, len(x.Fields))
		for i, f := range x.Fields {
			labels[i] = f.Label
			args[i] = ToTerm(f.Type)
		}
		return unify.Seq{Op: unify.RecordOp(labels), Args: args}
	case Named:
		args := make([]unify.Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = ToTerm(a)
		}
		return unify.Seq{Op: "named:" + x.Name, Args: args}
	}
	panic("types.ToTerm: unknown Type implementation")
}

// FromTerm raises a solved term back into a Type. labelsOf resolves a
// record Seq's Op string back to its sorted label list (the inferencer
// keeps this mapping since unify.RecordOp is one-directional); it is
// unused for any other Seq shape.
func FromTerm(t unify.Term, labelsOf func(op string) []string) Type {
	switch x := t.(type) {
	case unify.Var:
		return Var{ID: x.ID}
	case unify.Seq:
		switch {
		case x.Op == "->":
			return Func{Dom: FromTerm(x.Args[0], labelsOf), Cod: FromTerm(x.Args[1], labelsOf)}
		case strings.HasPrefix(x.Op, "prim:"):
			return Prim{Name: strings.TrimPrefix(x.Op, "prim:")}
		case strings.HasPrefix(x.Op, "record:"):
			labels := labelsOf(x.Op)
			if isCanonicalTupleLabeling(labels) {
				elts := make([]Type, len(x.Args))
				for i, a := range x.Args {
					pos, _ := strconv.Atoi(labels[i])
					elts[pos-1] = FromTerm(a, labelsOf)
				}
				return Tuple{Elts: elts}
			}
			fields := make([]RecordField, len(x.Args))
			for i, a := range x.Args {
				fields[i] = RecordField{Label: labels[i], Type: FromTerm(a, labelsOf)}
			}
			return NewRecord(fields)
		case strings.HasPrefix(x.Op, "named:"):
			args := make([]Type, len(x.Args))
			for i, a := range x.Args {
				args[i] = FromTerm(a, labelsOf)
			}
			return Named{Name: strings.TrimPrefix(x.Op, "named:"), Args: args}
		}
	}
	panic("types.FromTerm: unrecognized term shape")
}

// FreeVars collects the unbound type variables occurring in t, in
// first-occurrence order, skipping any in bound (used during
// generalization to exclude variables still free in the environment).
func FreeVars(t Type, bound map[unify.VarID]bool) []unify.VarID {
	var out []unify.VarID
	seen := map[unify.VarID]bool{}
	var walk func(Type)
	walk = func(t Type) {
		switch x := t.(type) {
		case Var:
			if bound[x.ID] || seen[x.ID] {
				return
			}
			seen[x.ID] = true
			out = append(out, x.ID)
		case Func:
			walk(x.Dom)
			walk(x.Cod)
		case Tuple:
			for _, e := range x.Elts {
				walk(e)
			}
		case Record:
			for _, f := range x.Fields {
				walk(f.Type)
			}
		case Named:
			for _, a := range x.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return out
}
