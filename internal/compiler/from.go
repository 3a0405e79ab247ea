package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/eval"
)

type fromSource struct {
	varName string
	code    eval.Code
}

type groupKey struct {
	name string
	code eval.Code
}

type aggregate struct {
	name string
	fn   string
	of   eval.Code
}

// compileFrom lowers a relational comprehension (spec.md §4.4): each
// source is evaluated to a list, the Cartesian product is taken in source
// order, filtered by `where`, and projected by `yield` (or the default row
// record, or the group/aggregate record if `group` is present). Iteration
// is strict and finite, built bottom-up by nested slice walks rather than
// lazy iterators — matching spec.md's "ordering: lexicographic product in
// source order; iteration is strict and finite" literally.
func (c *Compiler) compileFrom(x *ast.From) eval.Code {
	sources := make([]fromSource, len(x.Sources))
	for i, s := range x.Sources {
		sources[i] = fromSource{varName: s.Var, code: c.CompileExpr(s.Expr)}
	}

	var where eval.Code
	if x.Where != nil {
		where = c.CompileExpr(x.Where)
	}

	var groups []groupKey
	var aggs []aggregate
	for _, g := range x.Group {
		groups = append(groups, groupKey{name: g.Key, code: c.CompileExpr(g.Expr)})
	}
	for _, a := range x.Aggregates {
		aggs = append(aggs, aggregate{name: a.Name, fn: a.Func, of: c.CompileExpr(a.Of)})
	}

	var yield eval.Code
	if x.Yield != nil {
		yield = c.CompileExpr(x.Yield)
	}

	sourceNames := make([]string, len(sources))
	for i, s := range sources {
		sourceNames[i] = s.varName
	}

	return func(env *eval.Environment) eval.Value {
		rows := cartesian(sources, env)
		if where != nil {
			rows = filterRows(rows, where)
		}
		if len(groups) > 0 {
			return groupRows(rows, groups, aggs, yield)
		}
		out := make([]eval.Value, len(rows))
		for i, row := range rows {
			if yield != nil {
				out[i] = yield(row)
			} else {
				out[i] = defaultRowRecord(row, sourceNames)
			}
		}
		return eval.List{Elts: out}
	}
}

func cartesian(sources []fromSource, base *eval.Environment) []*eval.Environment {
	rows := []*eval.Environment{base}
	for _, src := range sources {
		var next []*eval.Environment
		for _, row := range rows {
			list := src.code(row).(eval.List)
			for _, v := range list.Elts {
				next = append(next, row.Extend(src.varName, v))
			}
		}
		rows = next
	}
	return rows
}

func filterRows(rows []*eval.Environment, where eval.Code) []*eval.Environment {
	var out []*eval.Environment
	for _, row := range rows {
		if where(row).(eval.Bool).V {
			out = append(out, row)
		}
	}
	return out
}

// defaultRowRecord builds the record of every source variable this row
// bound, sorted by name — the default projection when `yield` is absent.
func defaultRowRecord(row *eval.Environment, sourceNames []string) eval.Value {
	fields := make([]eval.RecordField, len(sourceNames))
	for i, n := range sourceNames {
		v, _ := row.Lookup(n)
		fields[i] = eval.RecordField{Label: n, Value: v}
	}
	return eval.NewRecordSorted(fields)
}

func groupRows(rows []*eval.Environment, groups []groupKey, aggs []aggregate, yield eval.Code) eval.Value {
	type bucket struct {
		key []eval.Value
		of  [][]eval.Value // per-aggregate slice of `of` values for this bucket
	}
	var buckets []*bucket
	for _, row := range rows {
		key := make([]eval.Value, len(groups))
		for i, g := range groups {
			key[i] = g.code(row)
		}
		var found *bucket
		for _, bk := range buckets {
			if sameKey(bk.key, key) {
				found = bk
				break
			}
		}
		if found == nil {
			found = &bucket{key: key, of: make([][]eval.Value, len(aggs))}
			buckets = append(buckets, found)
		}
		for i, a := range aggs {
			found.of[i] = append(found.of[i], a.of(row))
		}
	}

	out := make([]eval.Value, len(buckets))
	for bi, bk := range buckets {
		var env *eval.Environment
		fields := make([]eval.RecordField, 0, len(groups)+len(aggs))
		for i, g := range groups {
			env = env.Extend(g.name, bk.key[i])
			fields = append(fields, eval.RecordField{Label: g.name, Value: bk.key[i]})
		}
		for i, a := range aggs {
			v := applyAggregate(a.fn, bk.of[i])
			env = env.Extend(a.name, v)
			fields = append(fields, eval.RecordField{Label: a.name, Value: v})
		}
		if yield != nil {
			out[bi] = yield(env)
		} else {
			out[bi] = eval.NewRecordSorted(fields)
		}
	}
	return eval.List{Elts: out}
}

func sameKey(a, b []eval.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eval.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func applyAggregate(fn string, of []eval.Value) eval.Value {
	switch fn {
	case "count":
		return eval.NewInt(int64(len(of)))
	case "exists":
		return eval.BoolOf(len(of) > 0)
	case "notExists":
		return eval.BoolOf(len(of) == 0)
	case "sum":
		return sumValues(of)
	case "min":
		return extremum(of, true)
	case "max":
		return extremum(of, false)
	case "only":
		if len(of) != 1 {
			panic(&eval.Error{Kind: eval.DomainError, Message: "Relational.only: not exactly one row"})
		}
		return of[0]
	}
	panic("compiler: unknown aggregate function " + fn)
}

func sumValues(of []eval.Value) eval.Value {
	if len(of) == 0 {
		return eval.NewInt(0)
	}
	if _, ok := of[0].(eval.Real); ok {
		acc := of[0].(eval.Real)
		for _, v := range of[1:] {
			acc = eval.AddReal(acc, v.(eval.Real))
		}
		return acc
	}
	acc := of[0].(eval.Int)
	for _, v := range of[1:] {
		acc = eval.AddInt(acc, v.(eval.Int))
	}
	return acc
}

func extremum(of []eval.Value, wantMin bool) eval.Value {
	best := of[0]
	for _, v := range of[1:] {
		if (wantMin && eval.Less(v, best)) || (!wantMin && eval.Less(best, v)) {
			best = v
		}
	}
	return best
}
