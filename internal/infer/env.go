// Package infer is the type inferencer (C4): it walks an internal/ast tree,
// emits internal/unify constraints over internal/types terms, solves them,
// and returns a TypeMap plus a desugared AST in which every `fun` has
// become `val rec ... fn`/`case` (spec.md §4.3).
package infer

import (
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// conEntry records what the environment knows about a constructor name: its
// owning datatype and, for a unary constructor, the type of its argument.
type conEntry struct {
	datatype string
	hasArg   bool
	argType  types.Type // meaningless unless hasArg
	scheme   types.Scheme
}

// Env is the immutable, singly-linked type environment of spec.md §3.5: a
// chain of frames, newest first, each binding one name to either an
// ordinary value scheme or a constructor entry.
type Env struct {
	parent *Env
	name   string
	scheme types.Scheme
	con    *conEntry // non-nil iff this frame binds a constructor
}

// Extend returns a new frame binding name to sch, shadowing any outer
// binding of the same name.
func (e *Env) Extend(name string, sch types.Scheme) *Env {
	return &Env{parent: e, name: name, scheme: sch}
}

// ExtendCon binds name as a data constructor.
func (e *Env) ExtendCon(name string, sch types.Scheme, datatype string, hasArg bool, argType types.Type) *Env {
	return &Env{parent: e, name: name, scheme: sch, con: &conEntry{datatype: datatype, hasArg: hasArg, argType: argType, scheme: sch}}
}

// Lookup finds name's scheme, searching newest frame first.
func (e *Env) Lookup(name string) (types.Scheme, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.scheme, true
		}
	}
	return types.Scheme{}, false
}

// LookupCon reports whether name is bound as a constructor, and if so its
// conEntry.
func (e *Env) LookupCon(name string) (conEntry, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			if f.con == nil {
				return conEntry{}, false
			}
			return *f.con, true
		}
	}
	return conEntry{}, false
}

// FreeVars collects every type variable free in any scheme reachable in e,
// used by Generalize to avoid quantifying over a variable still
// constrained by an enclosing binding.
func (e *Env) FreeVars() map[unify.VarID]bool {
	out := map[unify.VarID]bool{}
	for f := e; f != nil; f = f.parent {
		bound := map[unify.VarID]bool{}
		for _, v := range f.scheme.Vars {
			bound[v] = true
		}
		for _, v := range types.FreeVars(f.scheme.Body, bound) {
			out[v] = true
		}
	}
	return out
}
