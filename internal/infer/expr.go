package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// inferExpr types e against env and returns e's (pre-solve) type.
func (inf *Inferencer) inferExpr(e ast.Expr, env *Env) types.Type {
	switch x := e.(type) {
	case *ast.Literal:
		t := litType(x.Kind)
		inf.setType(x, t)
		return t

	case *ast.Ident:
		sch, ok := env.Lookup(x.Name)
		if !ok {
			panic(unboundErr(x.P, x.Name))
		}
		t := types.Instantiate(sch)
		inf.setType(x, t)
		return t

	case *ast.RecordSelector:
		return inf.inferRecordSelector(x)

	case *ast.Application:
		fnTy := inf.inferExpr(x.Fn, env)
		argTy := inf.inferExpr(x.Arg, env)
		result := inf.fresh()
		inf.equate(fnTy, types.Func{Dom: argTy, Cod: result}, "application")
		inf.setType(x, result)
		return result

	case *ast.Infix:
		t := inf.inferInfix(x, env)
		inf.setType(x, t)
		return t

	case *ast.Prefix:
		aTy := inf.inferExpr(x.A, env)
		t := inf.fresh()
		inf.equate(aTy, t, "unary-"+x.Op)
		inf.markNumeric(t)
		inf.setType(x, t)
		return t

	case *ast.Tuple:
		elts := make([]types.Type, len(x.Elts))
		for i, sub := range x.Elts {
			elts[i] = inf.inferExpr(sub, env)
		}
		t := types.Tuple{Elts: elts}
		inf.setType(x, t)
		return t

	case *ast.List:
		elem := inf.fresh()
		for _, sub := range x.Elts {
			t := inf.inferExpr(sub, env)
			inf.equate(t, elem, "list-element")
		}
		t := types.List(elem)
		inf.setType(x, t)
		return t

	case *ast.Record:
		fields := make([]types.RecordField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = types.RecordField{Label: f.Label, Type: inf.inferExpr(f.Value, env)}
		}
		t := types.NewRecord(fields)
		inf.setType(x, t)
		return t

	case *ast.Let:
		cur := env
		for _, d := range x.Decls {
			cur = inf.inferDecl(d, cur)
		}
		t := inf.inferExpr(x.Body, cur)
		inf.setType(x, t)
		return t

	case *ast.Fn:
		patTy, env1 := inf.inferPattern(x.Match.Pattern, env)
		bodyTy := inf.inferExpr(x.Match.Body, env1)
		t := types.Func{Dom: patTy, Cod: bodyTy}
		inf.setType(x, t)
		return t

	case *ast.Case:
		scrutTy := inf.inferExpr(x.Scrutinee, env)
		result := inf.fresh()
		for _, m := range x.Matches {
			patTy, env1 := inf.inferPattern(m.Pattern, env)
			inf.equate(patTy, scrutTy, "case-pattern")
			bodyTy := inf.inferExpr(m.Body, env1)
			inf.equate(bodyTy, result, "case-branch")
		}
		inf.setType(x, result)
		return result

	case *ast.If:
		condTy := inf.inferExpr(x.Cond, env)
		inf.equate(condTy, types.Bool, "if-condition")
		thenTy := inf.inferExpr(x.Then, env)
		elseTy := inf.inferExpr(x.Else, env)
		result := inf.fresh()
		inf.equate(thenTy, result, "if-then")
		inf.equate(elseTy, result, "if-else")
		inf.setType(x, result)
		return result

	case *ast.From:
		t := inf.inferFrom(x, env)
		inf.setType(x, t)
		return t

	case *ast.Annotated:
		innerTy := inf.inferExpr(x.Expr, env)
		declared := inf.elabType(x.Type, map[string]types.Type{})
		inf.equate(innerTy, declared, "type-annotation")
		inf.setType(x, declared)
		return declared
	}
	panic("infer: unknown Expr implementation")
}

// inferRecordSelector types `#label` as `'r -> 'a` and defers resolving
// which slot of the eventual record 'r binds to until unification settles
// 'r to a concrete record shape (spec.md §4.3: "Record selectors...
// initially introduce a free variable; when applied to an argument whose
// type is unified with a concrete record, a deferred action... resolves
// the selector's slot index").
func (inf *Inferencer) inferRecordSelector(x *ast.RecordSelector) types.Type {
	argVar := unify.NewVar()
	result := inf.fresh()
	pos := x.P
	label := x.Label
	node := x
	inf.actions[argVar.ID] = func(_ unify.Var, bound unify.Term, eq func(a, b unify.Term)) error {
		seq, ok := bound.(unify.Seq)
		if !ok {
			return flexRecordErr(pos, "cannot resolve #"+label+": argument is not a record")
		}
		labels := inf.recordLabels[seq.Op]
		if labels == nil {
			return flexRecordErr(pos, "cannot resolve #"+label+": argument is not a record")
		}
		for i, l := range labels {
			if l == label {
				node.Slot = i
				eq(inf.toTerm(result), seq.Args[i])
				return nil
			}
		}
		return flexRecordErr(pos, "record has no field "+label)
	}
	t := types.Func{Dom: types.Var{ID: argVar.ID}, Cod: result}
	inf.setType(x, t)
	return t
}
