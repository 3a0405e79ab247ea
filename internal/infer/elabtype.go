package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
)

// elabType turns a surface TypeExpr into a types.Type. tyvars maps a
// source-level type variable name ('a) to the types.Type standing for it
// in this elaboration (shared across a whole datatype/annotation so that
// repeated uses of 'a denote the same variable).
func (inf *Inferencer) elabType(te ast.TypeExpr, tyvars map[string]types.Type) types.Type {
	switch x := te.(type) {
	case *ast.TyVar:
		if t, ok := tyvars[x.Name]; ok {
			return t
		}
		t := inf.fresh()
		tyvars[x.Name] = t
		return t
	case *ast.TyTuple:
		elts := make([]types.Type, len(x.Elts))
		for i, e := range x.Elts {
			elts[i] = inf.elabType(e, tyvars)
		}
		return types.Tuple{Elts: elts}
	case *ast.TyFunc:
		return types.Func{Dom: inf.elabType(x.Domain, tyvars), Cod: inf.elabType(x.Codomain, tyvars)}
	case *ast.TyRecord:
		fields := make([]types.RecordField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = types.RecordField{Label: f.Label, Type: inf.elabType(f.Type, tyvars)}
		}
		return types.NewRecord(fields)
	case *ast.TyNamed:
		switch x.Name {
		case "int":
			return types.Int
		case "real":
			return types.Real
		case "string":
			return types.String
		case "char":
			return types.Char
		case "bool":
			return types.Bool
		case "unit":
			return types.Unit
		case "list":
			return types.List(inf.elabType(x.Args[0], tyvars))
		}
		args := make([]types.Type, len(x.Args))
		for i, a := range x.Args {
			args[i] = inf.elabType(a, tyvars)
		}
		return types.Named{Name: x.Name, Args: args}
	}
	panic("infer: unknown TypeExpr implementation")
}
