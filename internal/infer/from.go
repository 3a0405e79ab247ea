package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
)

// inferFrom types a relational comprehension (spec.md §4.4, §6.3): each
// source contributes a row variable bound to its list's element type,
// `where` must be bool, and the default projection (no `yield`, no
// `group`) is the record of all source row variables, sorted by name —
// i.e. exactly the row the evaluator builds for the Cartesian product.
func (inf *Inferencer) inferFrom(x *ast.From, env *Env) types.Type {
	cur := env
	rowFields := make([]types.RecordField, 0, len(x.Sources))
	for _, src := range x.Sources {
		sTy := inf.inferExpr(src.Expr, cur)
		elem := inf.fresh()
		inf.equate(sTy, types.List(elem), "from-source")
		cur = cur.Extend(src.Var, types.Monomorphic(elem))
		rowFields = append(rowFields, types.RecordField{Label: src.Var, Type: elem})
	}

	if x.Where != nil {
		wTy := inf.inferExpr(x.Where, cur)
		inf.equate(wTy, types.Bool, "from-where")
	}

	postGroupEnv := cur
	var groupFields []types.RecordField
	if len(x.Group) > 0 {
		groupFields = make([]types.RecordField, 0, len(x.Group)+len(x.Aggregates))
		groupEnv := env
		for _, g := range x.Group {
			kTy := inf.inferExpr(g.Expr, cur)
			groupEnv = groupEnv.Extend(g.Key, types.Monomorphic(kTy))
			groupFields = append(groupFields, types.RecordField{Label: g.Key, Type: kTy})
		}
		for _, a := range x.Aggregates {
			ofTy := inf.inferExpr(a.Of, cur)
			resultTy := inf.aggregateResultType(a.Func, ofTy)
			groupEnv = groupEnv.Extend(a.Name, types.Monomorphic(resultTy))
			groupFields = append(groupFields, types.RecordField{Label: a.Name, Type: resultTy})
		}
		postGroupEnv = groupEnv
		rowFields = groupFields
	}

	var rowTy types.Type
	if x.Yield != nil {
		rowTy = inf.inferExpr(x.Yield, postGroupEnv)
	} else {
		rowTy = types.NewRecord(rowFields)
	}
	return types.List(rowTy)
}

// aggregateResultType mirrors the built-in aggregate functions named in
// spec.md §6.3: count/exists/notExists always answer with a fixed type,
// the others answer with the aggregated expression's own element type.
func (inf *Inferencer) aggregateResultType(fn string, ofTy types.Type) types.Type {
	switch fn {
	case "count":
		return types.Int
	case "exists", "notExists":
		return types.Bool
	default: // sum, min, max, only
		return ofTy
	}
}
