package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// inferPattern types pat against env, returning its type and the (possibly
// extended) environment new bindings should be visible in. A bare
// identifier that env already knows as a nullary constructor is treated as
// a constructor reference rather than a fresh binding (spec.md §4.3 step
// 3: "an identifier that refers to a known constructor becomes a con
// pattern... otherwise it is treated as a variable" — applied here to
// every pattern position, not only fun clauses, since the ambiguity is the
// same one everywhere a bare name appears in a pattern).
func (inf *Inferencer) inferPattern(pat ast.Pattern, env *Env) (types.Type, *Env) {
	switch p := pat.(type) {
	case *ast.PatWildcard:
		t := inf.fresh()
		inf.setType(p, t)
		return t, env

	case *ast.PatIdent:
		if con, ok := env.LookupCon(p.Name); ok && !con.hasArg {
			t := types.Instantiate(con.scheme)
			inf.setType(p, t)
			return t, env
		}
		t := inf.fresh()
		inf.setType(p, t)
		return t, env.Extend(p.Name, types.Monomorphic(t))

	case *ast.PatLiteral:
		t := litType(p.Kind)
		inf.setType(p, t)
		return t, env

	case *ast.PatTuple:
		elts := make([]types.Type, len(p.Elts))
		cur := env
		for i, sub := range p.Elts {
			var t types.Type
			t, cur = inf.inferPattern(sub, cur)
			elts[i] = t
		}
		t := types.Tuple{Elts: elts}
		inf.setType(p, t)
		return t, cur

	case *ast.PatList:
		elem := inf.fresh()
		cur := env
		for _, sub := range p.Elts {
			var t types.Type
			t, cur = inf.inferPattern(sub, cur)
			inf.equate(t, elem, "list-pattern-element")
		}
		t := types.List(elem)
		inf.setType(p, t)
		return t, cur

	case *ast.PatRecord:
		return inf.inferRecordPattern(p, env)

	case *ast.PatCon:
		return inf.inferConPattern(p, env)

	case *ast.PatCons:
		elem := inf.fresh()
		headTy, env1 := inf.inferPattern(p.Head, env)
		inf.equate(headTy, elem, "cons-head")
		tailTy, env2 := inf.inferPattern(p.Tail, env1)
		inf.equate(tailTy, types.List(elem), "cons-tail")
		t := types.List(elem)
		inf.setType(p, t)
		return t, env2

	case *ast.PatInfix:
		con, ok := env.LookupCon(p.Op)
		if !ok {
			inf.setType(p, inf.fresh())
			return inf.fresh(), env
		}
		sch := types.Instantiate(con.scheme)
		fn, ok := sch.(types.Func)
		if !ok {
			inf.setType(p, inf.fresh())
			return inf.fresh(), env
		}
		aTy, env1 := inf.inferPattern(p.A, env)
		bTy, env2 := inf.inferPattern(p.B, env1)
		inf.equate(fn.Dom, types.Tuple{Elts: []types.Type{aTy, bTy}}, "infix-constructor-arg")
		inf.setType(p, fn.Cod)
		return fn.Cod, env2

	case *ast.PatLayered:
		t, env1 := inf.inferPattern(p.Pattern, env)
		inf.setType(p, t)
		return t, env1.Extend(p.Name, types.Monomorphic(t))

	case *ast.PatAnnotated:
		t, env1 := inf.inferPattern(p.Pattern, env)
		declared := inf.elabType(p.Type, map[string]types.Type{})
		inf.equate(t, declared, "pattern-annotation")
		inf.setType(p, declared)
		return declared, env1
	}
	panic("infer: unknown Pattern implementation")
}

func litType(k ast.LitKind) types.Type {
	switch k {
	case ast.LitInt:
		return types.Int
	case ast.LitReal:
		return types.Real
	case ast.LitString:
		return types.String
	case ast.LitChar:
		return types.Char
	case ast.LitBool:
		return types.Bool
	case ast.LitUnit:
		return types.Unit
	}
	panic("infer: unknown LitKind")
}

func (inf *Inferencer) inferConPattern(p *ast.PatCon, env *Env) (types.Type, *Env) {
	con, ok := env.LookupCon(p.Name)
	if !ok {
		panic(unboundConErr(p.P, p.Name))
	}
	sch := types.Instantiate(con.scheme)
	if p.Arg == nil {
		if con.hasArg {
			panic(flexRecordErr(p.P, "constructor "+p.Name+" requires an argument"))
		}
		inf.setType(p, sch)
		return sch, env
	}
	fn, ok := sch.(types.Func)
	if !ok {
		panic(flexRecordErr(p.P, "constructor "+p.Name+" takes no argument"))
	}
	argTy, env1 := inf.inferPattern(p.Arg, env)
	inf.equate(argTy, fn.Dom, "constructor-arg")
	inf.setType(p, fn.Cod)
	return fn.Cod, env1
}

// inferRecordPattern handles the flex-record case (Ellipsis) by deferring
// shape resolution: the pattern's type is a fresh variable, and an action
// registered against it checks, once the variable is bound to a concrete
// record term (by unification against whatever this pattern is matched
// against), that every label the pattern names is present, then equates
// each named field's pattern type with the corresponding slot (spec.md
// §4.3's record-selector action mechanism, generalized to patterns — see
// DESIGN.md's resolution of the "ellipsis inside fun" open question).
func (inf *Inferencer) inferRecordPattern(p *ast.PatRecord, env *Env) (types.Type, *Env) {
	if !p.Ellipsis {
		fields := make([]types.RecordField, len(p.Fields))
		cur := env
		for i, f := range p.Fields {
			var t types.Type
			t, cur = inf.inferPattern(f.Pattern, cur)
			fields[i] = types.RecordField{Label: f.Label, Type: t}
		}
		t := types.NewRecord(fields)
		inf.setType(p, t)
		return t, cur
	}

	cur := env
	fieldTypes := make(map[string]types.Type, len(p.Fields))
	order := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		var t types.Type
		t, cur = inf.inferPattern(f.Pattern, cur)
		fieldTypes[f.Label] = t
		order[i] = f.Label
	}

	v := unify.NewVar()
	pos := p.P
	inf.actions[v.ID] = func(_ unify.Var, bound unify.Term, eq func(a, b unify.Term)) error {
		seq, ok := bound.(unify.Seq)
		if !ok {
			return flexRecordErr(pos, "unresolved flex record")
		}
		labels := inf.recordLabels[seq.Op]
		if labels == nil {
			return flexRecordErr(pos, "unresolved flex record")
		}
		index := map[string]int{}
		for i, l := range labels {
			index[l] = i
		}
		for _, label := range order {
			idx, ok := index[label]
			if !ok {
				return flexRecordErr(pos, "record does not contain field "+label)
			}
			eq(inf.toTerm(fieldTypes[label]), seq.Args[idx])
		}
		return nil
	}
	t := types.Var{ID: v.ID}
	inf.setType(p, t)
	return t, cur
}
