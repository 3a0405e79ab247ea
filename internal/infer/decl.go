package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// inferDecl types one declaration against env, returning the environment
// extended with whatever it binds. Bindings are added monomorphically
// here — sharing the live unification variable, not a generalized scheme —
// since generalization needs the solved type; it happens once, at the
// outermost Infer call, for the names a top-level statement exposes to the
// persistent session environment (spec.md §5: "the persistent environment
// ... is extended only between statements").
func (inf *Inferencer) inferDecl(d ast.Decl, env *Env) *Env {
	switch x := d.(type) {
	case *ast.ValDecl:
		return inf.inferValDecl(x, env)
	case *ast.FunDecl:
		return inf.inferValDecl(desugarFun(x), env)
	case *ast.DatatypeDecl:
		return inf.inferDatatypeDecl(x, env)
	}
	panic("infer: unknown Decl implementation")
}

func (inf *Inferencer) inferValDecl(d *ast.ValDecl, env *Env) *Env {
	cur := env
	for _, b := range d.Bindings {
		if b.Rec {
			cur = inf.inferValRecBind(b, env, cur)
			continue
		}
		// spec.md §5: every right-hand side in a `val ... and ...` group sees
		// env as it was *before* the group, never a sibling binding.
		exprTy := inf.inferExpr(b.Expr, env)
		patTy, next := inf.inferPattern(b.Pattern, cur)
		inf.equate(patTy, exprTy, "val-binding")
		cur = next
	}
	return cur
}

func (inf *Inferencer) inferValRecBind(b ast.ValBind, groupBase, cur *Env) *Env {
	ident, ok := b.Pattern.(*ast.PatIdent)
	if !ok {
		panic(recursiveNonFunctionErr(b.Expr.Pos()))
	}
	if _, ok := b.Expr.(*ast.Fn); !ok {
		panic(recursiveNonFunctionErr(b.Expr.Pos()))
	}
	v := inf.fresh()
	selfEnv := groupBase.Extend(ident.Name, types.Monomorphic(v))
	exprTy := inf.inferExpr(b.Expr, selfEnv)
	inf.equate(v, exprTy, "val-rec")
	inf.setType(ident, v)
	return cur.Extend(ident.Name, types.Monomorphic(v))
}

// desugarFun turns `fun f p1 = e1 | p2 = e2 and g ... ` into the equivalent
// `val rec f = fn a1 => ... => fn an => case (a1,...,an) of ... and g = ...`
// (spec.md §4.3 step 3). Every FunDecl is rewritten this way before
// inference proper ever sees it; the desugared ValDecl is what the
// compiler (internal/compiler) receives.
func desugarFun(d *ast.FunDecl) *ast.ValDecl {
	bindings := make([]ast.ValBind, len(d.Binds))
	for i, fb := range d.Binds {
		bindings[i] = ast.ValBind{Rec: true, Pattern: &ast.PatIdent{P: d.P, Name: fb.Name}, Expr: desugarFunBind(fb)}
	}
	return &ast.ValDecl{P: d.P, Bindings: bindings}
}

func desugarFunBind(fb ast.FunBind) ast.Expr {
	arity := len(fb.Clauses[0].Patterns)
	for _, c := range fb.Clauses {
		if len(c.Patterns) != arity {
			panic(&Error{Kind: Mismatch, Pos: c.Body.Pos(), Message: "all clauses of " + fb.Name + " must take the same number of arguments"})
		}
	}

	if arity == 1 {
		matches := make([]ast.Match, len(fb.Clauses))
		for i, c := range fb.Clauses {
			matches[i] = ast.Match{Pattern: c.Patterns[0], Body: c.Body}
		}
		return caseAsFn(matches)
	}

	argNames := make([]string, arity)
	for i := range argNames {
		argNames[i] = "%" + fb.Name + "_arg" + itoa(i+1)
	}
	matches := make([]ast.Match, len(fb.Clauses))
	for i, c := range fb.Clauses {
		matches[i] = ast.Match{Pattern: &ast.PatTuple{Elts: c.Patterns}, Body: c.Body}
	}
	scrutinee := &ast.Tuple{}
	for _, n := range argNames {
		scrutinee.Elts = append(scrutinee.Elts, &ast.Ident{Name: n})
	}
	body := ast.Expr(&ast.Case{Scrutinee: scrutinee, Matches: matches})
	for i := arity - 1; i >= 0; i-- {
		body = &ast.Fn{Match: ast.Match{Pattern: &ast.PatIdent{Name: argNames[i]}, Body: body}}
	}
	return body
}

// caseAsFn builds `fn %a => case %a of m1 | m2 | ...` for a single-argument
// multi-clause function, sharing the same desugaring the parser already
// uses for a bare multi-match `fn` (internal/parser's parseFnExpr).
func caseAsFn(matches []ast.Match) ast.Expr {
	if len(matches) == 1 {
		return &ast.Fn{Match: matches[0]}
	}
	const argName = "%fnarg"
	return &ast.Fn{
		Match: ast.Match{
			Pattern: &ast.PatIdent{Name: argName},
			Body:    &ast.Case{Scrutinee: &ast.Ident{Name: argName}, Matches: matches},
		},
	}
}

func (inf *Inferencer) inferDatatypeDecl(d *ast.DatatypeDecl, env *Env) *Env {
	type groupEntry struct {
		bind   ast.DatBind
		tyvars map[string]types.Type
		args   []types.Type
	}
	group := make([]groupEntry, len(d.Binds))
	for i, b := range d.Binds {
		tyvars := map[string]types.Type{}
		args := make([]types.Type, len(b.TypeVars))
		for j, v := range b.TypeVars {
			t := inf.fresh()
			tyvars[v] = t
			args[j] = t
		}
		group[i] = groupEntry{bind: b, tyvars: tyvars, args: args}
		ctorNames := make([]string, len(b.Ctors))
		for j, c := range b.Ctors {
			ctorNames[j] = c.Name
		}
		inf.datatypes[b.Name] = &datatypeInfo{name: b.Name, typeVars: b.TypeVars, ctors: ctorNames}
	}

	cur := env
	for _, g := range group {
		selfType := types.Named{Name: g.bind.Name, Args: g.args}
		quantified := varIDs(g.args)
		for _, c := range g.bind.Ctors {
			if c.Arg == nil {
				sch := types.Scheme{Vars: quantified, Body: selfType}
				cur = cur.ExtendCon(c.Name, sch, g.bind.Name, false, nil)
				continue
			}
			argTy := inf.elabType(c.Arg, g.tyvars)
			sch := types.Scheme{Vars: quantified, Body: types.Func{Dom: argTy, Cod: selfType}}
			cur = cur.ExtendCon(c.Name, sch, g.bind.Name, true, argTy)
		}
	}
	return cur
}

func varIDs(ts []types.Type) []unify.VarID {
	out := make([]unify.VarID, len(ts))
	for i, t := range ts {
		out[i] = t.(types.Var).ID
	}
	return out
}

// newBindings walks from `to` up its parent chain to `from` (exclusive),
// collecting the names of every frame added in between — i.e. every name a
// pattern actually bound, skipping constructor references (those never
// allocate a new frame; see inferPattern's PatIdent case).
func newBindings(from, to *Env) []string {
	var out []string
	for f := to; f != from && f != nil; f = f.parent {
		out = append(out, f.name)
	}
	return out
}
