package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// TypeMap exposes the principal type the inferencer assigned to every AST
// node it visited (spec.md §4.3's "TypeMap assigning every AST node a
// principal type").
type TypeMap struct {
	byNode map[ast.Node]types.Type
}

// TypeOf returns n's inferred type, fully resolved.
func (tm *TypeMap) TypeOf(n ast.Node) (types.Type, bool) {
	t, ok := tm.byNode[n]
	return t, ok
}

// Binding is one name a statement exposes to the persistent environment,
// together with the (possibly polymorphic) scheme it was generalized to.
type Binding struct {
	Name   string
	Scheme types.Scheme
}

// Result is what Infer produces for one top-level statement.
type Result struct {
	Decl     ast.Decl // fun-desugared; what internal/compiler compiles
	TypeMap  *TypeMap
	Bindings []Binding
	Env      *Env // env extended with Bindings — the next statement's environment
}

// Infer types one top-level statement (spec.md §4.3): it desugars any
// `fun` to `val rec ... fn`/`case`, walks the result emitting constraints,
// solves them, and generalizes every name the statement binds against env
// (the environment as it stood before the statement) before handing back
// the new persistent environment. Generalization happens only here, at
// the outermost call — bindings inside a nested `let` stay monomorphic
// for the duration of that one statement (see inferDecl's doc comment).
func Infer(stmt ast.Decl, env *Env) (res *Result, err error) {
	desugared := stmt
	if fd, ok := stmt.(*ast.FunDecl); ok {
		desugared = desugarFun(fd)
	}

	inf := newInferencer(env)
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				res = nil
				return
			}
			panic(r)
		}
	}()

	finalEnv := inf.inferDecl(desugared, env)

	labelsOf := func(op string) []string { return inf.recordLabels[op] }

	subst, uerr := unify.Unify(inf.constraints, inf.actions)
	if uerr != nil {
		return nil, translateUnifyError(uerr, labelsOf)
	}
	if rerr := resolveNumericVars(inf.numericVars, subst); rerr != nil {
		return nil, rerr
	}
	byNode := make(map[ast.Node]types.Type, len(inf.nodeType))
	for node, t := range inf.nodeType {
		byNode[node] = types.ApplySubst(t, subst, labelsOf)
	}

	resultEnv := env
	var bindings []Binding
	freeInEnv := env.FreeVars()
	for _, f := range collectFrames(env, finalEnv) {
		if f.con != nil {
			resultEnv = resultEnv.ExtendCon(f.name, f.scheme, f.con.datatype, f.con.hasArg, f.con.argType)
			bindings = append(bindings, Binding{Name: f.name, Scheme: f.scheme})
			continue
		}
		solvedTy := types.ApplySubst(f.scheme.Body, subst, labelsOf)
		sch := types.Generalize(solvedTy, freeInEnv)
		resultEnv = resultEnv.Extend(f.name, sch)
		bindings = append(bindings, Binding{Name: f.name, Scheme: sch})
	}

	return &Result{
		Decl:     desugared,
		TypeMap:  &TypeMap{byNode: byNode},
		Bindings: bindings,
		Env:      resultEnv,
	}, nil
}

// collectFrames returns, in declaration order, every Env frame added
// between `from` and `to` (to must be reachable from from by zero or more
// Extend/ExtendCon calls).
func collectFrames(from, to *Env) []*Env {
	var frames []*Env
	for f := to; f != from && f != nil; f = f.parent {
		frames = append(frames, f)
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return frames
}

// resolveNumericVars closes every shared result variable of an overloaded
// arithmetic primitive (see Inferencer.markNumeric) to int or real: one left
// unconstrained by anything else defaults to int, matching reference Morel's
// default-to-int rule for otherwise-ambiguous arithmetic; one constrained to
// any concrete type other than int/real is a type error, since "Overloaded
// primitives" resolve to int/real only, not to full parametric polymorphism.
func resolveNumericVars(vars []unify.VarID, subst unify.Subst) error {
	intTerm := unify.Seq{Op: "prim:int"}
	for _, vid := range vars {
		resolved := subst.Apply(unify.Var{ID: vid})
		if v, ok := resolved.(unify.Var); ok {
			subst[v.ID] = intTerm
			continue
		}
		seq, ok := resolved.(unify.Seq)
		if !ok || (seq.Op != "prim:int" && seq.Op != "prim:real") {
			noLabels := func(string) []string { return nil }
			return &Error{
				Kind:    Mismatch,
				Message: "arithmetic operator requires int or real operands, found " + types.FromTerm(resolved, noLabels).String(),
				Left:    types.FromTerm(resolved, noLabels),
			}
		}
	}
	return nil
}

func translateUnifyError(err error, labelsOf func(op string) []string) error {
	switch e := err.(type) {
	case *Error:
		return e
	case *unify.Failure:
		return &Error{Kind: Mismatch, Message: e.Error(), Left: types.FromTerm(e.A, labelsOf), Right: types.FromTerm(e.B, labelsOf)}
	case *unify.OccursError:
		return &Error{Kind: Mismatch, Message: e.Error()}
	}
	return &Error{Kind: Mismatch, Message: err.Error()}
}
