package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
)

// inferInfix types one `a op b` expression. The arithmetic operators unify
// both operands to a shared fresh type and then mark that variable numeric
// (see markNumeric/resolveNumericVars): once solving finishes, Infer closes
// it to int or real, defaulting to int if nothing else pinned it down, and
// rejects it outright if it resolved to anything else. That closing step is
// what keeps `fun add x y = x + y` monomorphic in int/real rather than
// generalizing to `'a -> 'a -> 'a`.
func (inf *Inferencer) inferInfix(x *ast.Infix, env *Env) types.Type {
	aTy := inf.inferExpr(x.A, env)
	bTy := inf.inferExpr(x.B, env)

	switch x.Op {
	case "+", "-", "*", "/", "div", "mod":
		t := inf.fresh()
		inf.equate(aTy, t, x.Op)
		inf.equate(bTy, t, x.Op)
		inf.markNumeric(t)
		return t

	case "^":
		inf.equate(aTy, types.String, "^-lhs")
		inf.equate(bTy, types.String, "^-rhs")
		return types.String

	case "::":
		elem := inf.fresh()
		inf.equate(aTy, elem, "cons-head")
		inf.equate(bTy, types.List(elem), "cons-tail")
		return types.List(elem)

	case "@":
		elem := inf.fresh()
		inf.equate(aTy, types.List(elem), "append-lhs")
		inf.equate(bTy, types.List(elem), "append-rhs")
		return types.List(elem)

	case "union", "except", "intersect":
		elem := inf.fresh()
		inf.equate(aTy, types.List(elem), x.Op+"-lhs")
		inf.equate(bTy, types.List(elem), x.Op+"-rhs")
		return types.List(elem)

	case "<", "<=", ">", ">=", "=", "<>":
		t := inf.fresh()
		inf.equate(aTy, t, x.Op)
		inf.equate(bTy, t, x.Op)
		return types.Bool

	case "andalso", "orelse":
		inf.equate(aTy, types.Bool, x.Op+"-lhs")
		inf.equate(bTy, types.Bool, x.Op+"-rhs")
		return types.Bool

	case "o":
		a, b, c := inf.fresh(), inf.fresh(), inf.fresh()
		inf.equate(aTy, types.Func{Dom: b, Cod: c}, "compose-lhs")
		inf.equate(bTy, types.Func{Dom: a, Cod: b}, "compose-rhs")
		return types.Func{Dom: a, Cod: c}

	default:
		sch, ok := env.Lookup(x.Op)
		if !ok {
			panic(unboundErr(x.P, x.Op))
		}
		fnTy := types.Instantiate(sch)
		result := inf.fresh()
		inf.equate(fnTy, types.Func{Dom: types.Tuple{Elts: []types.Type{aTy, bTy}}, Cod: result}, "user-infix")
		return result
	}
}
