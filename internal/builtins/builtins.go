// Package builtins seeds the fresh top-level environment (spec.md §6.3):
// one file per namespace, following the teacher's
// internal/evaluator/builtins_*.go split by concern. Each Entry carries
// both halves a binding needs — the type scheme internal/infer consults
// and the runtime Value internal/eval looks up — so a session builds its
// initial type and evaluation environments from the exact same list.
package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/props"
	"github.com/morel-lang/morel/internal/token"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// zeroPos is used when a built-in's own internal Apply calls have no source
// position to report — a failure raised inside a built-in carries the
// built-in's own Message, not a caller location.
var zeroPos = token.Position{}

// Entry is one built-in binding: a name, its (possibly polymorphic) type
// scheme, and the value it evaluates to. IsCon marks a built-in data
// constructor (e.g. Option's NONE/SOME) so TypeEnv registers it via
// infer.Env.ExtendCon instead of plain Extend — pattern matching on a
// constructor name requires the inferencer to know it as one.
type Entry struct {
	Name     string
	Scheme   types.Scheme
	Value    eval.Value
	IsCon    bool
	Datatype string
	HasArg   bool
}

// All returns every built-in binding across every namespace of spec.md
// §6.3: List, Option, String, Char, Math, Real, Int, Vector, Bag,
// Relational, Sys, General, plus the top-level aliases. pt is the session's
// property table — Sys.set/Sys.show/Sys.showAll close over it directly, so
// every session must build its own All() from its own *props.Table rather
// than sharing one across sessions.
func All(pt *props.Table) []Entry {
	var out []Entry
	out = append(out, listEntries()...)
	out = append(out, optionEntries()...)
	out = append(out, stringEntries()...)
	out = append(out, charEntries()...)
	out = append(out, mathEntries()...)
	out = append(out, realEntries()...)
	out = append(out, intEntries()...)
	out = append(out, vectorEntries()...)
	out = append(out, bagEntries()...)
	out = append(out, relationalEntries()...)
	out = append(out, sysEntries(pt)...)
	out = append(out, generalEntries()...)
	out = append(out, aliasEntries(out)...)
	return out
}

// TypeEnv extends base with every built-in's scheme — the initial type
// environment internal/infer.Infer's first statement is checked against.
func TypeEnv(base *infer.Env, entries []Entry) *infer.Env {
	cur := base
	for _, e := range entries {
		if e.IsCon {
			argType := types.Type(types.Unit)
			if f, ok := e.Scheme.Body.(types.Func); ok {
				argType = f.Dom
			}
			cur = cur.ExtendCon(e.Name, e.Scheme, e.Datatype, e.HasArg, argType)
			continue
		}
		cur = cur.Extend(e.Name, e.Scheme)
	}
	return cur
}

// ValueEnv extends base with every built-in's value — the initial
// evaluation environment a fresh session starts from.
func ValueEnv(base *eval.Environment, entries []Entry) *eval.Environment {
	cur := base
	for _, e := range entries {
		cur = cur.Extend(e.Name, e.Value)
	}
	return cur
}

// mono builds a Scheme with no quantified variables.
func mono(t types.Type) types.Scheme { return types.Monomorphic(t) }

// poly allocates n fresh type variables, builds a type from them via build,
// and wraps it in a Scheme universally quantifying exactly those n
// variables — the shape every built-in with a type parameter needs (e.g.
// `List.map : ∀αβ. (α→β) → α list → β list` is `poly(2, ...)`).
func poly(n int, build func(vars []types.Type) types.Type) types.Scheme {
	vars := make([]types.Type, n)
	ids := make([]unify.VarID, n)
	for i := range vars {
		v := unify.NewVar()
		vars[i] = types.Var{ID: v.ID}
		ids[i] = v.ID
	}
	return types.Scheme{Vars: ids, Body: build(vars)}
}

func fn(dom, cod types.Type) types.Func { return types.Func{Dom: dom, Cod: cod} }

func fn2(a, b, cod types.Type) types.Func {
	return types.Func{Dom: types.Tuple{Elts: []types.Type{a, b}}, Cod: cod}
}

func fn3(a, b, c, cod types.Type) types.Func {
	return types.Func{Dom: types.Tuple{Elts: []types.Type{a, b, c}}, Cod: cod}
}

// builtin wraps a unary Go function as a runtime Value.
func builtin(name string, f func(eval.Value) eval.Value) eval.Value {
	return eval.Builtin{Name: name, Fn: f}
}

// curried2 turns a two-argument Go function into a Value expecting a
// 2-tuple argument (the representation every `fn2`-typed built-in uses).
func curried2(name string, f func(a, b eval.Value) eval.Value) eval.Value {
	return builtin(name, func(arg eval.Value) eval.Value {
		r := arg.(eval.Record)
		return f(r.Field(0), r.Field(1))
	})
}

func curried3(name string, f func(a, b, c eval.Value) eval.Value) eval.Value {
	return builtin(name, func(arg eval.Value) eval.Value {
		r := arg.(eval.Record)
		return f(r.Field(0), r.Field(1), r.Field(2))
	})
}

func tupleOf(vs ...eval.Value) eval.Value {
	fields := make([]eval.RecordField, len(vs))
	for i, v := range vs {
		fields[i] = eval.RecordField{Label: itoa(i + 1), Value: v}
	}
	return eval.Record{Fields: fields}
}

// findEntry locates a previously-built entry by name, for aliasEntries to
// re-expose under an unqualified name (e.g. `map` as an alias of
// `List.map`).
func findEntry(entries []Entry, name string) Entry {
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	panic("builtins: no such entry " + name)
}

func alias(entries []Entry, newName, oldName string) Entry {
	e := findEntry(entries, oldName)
	e.Name = newName
	return e
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
