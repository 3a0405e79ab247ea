package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// relationalEntries is the `Relational` namespace (spec.md §6.3): the
// aggregate functions a `from ... compute` clause's compiled code
// (internal/compiler/from.go's applyAggregate) implements inline for
// performance, also exposed here as ordinary values so they can be called
// directly outside a comprehension and so `aliasEntries` can expose them
// unqualified (`count`, `sum`, `min`, `max`, `exists`, `notExists`, `only`).
func relationalEntries() []Entry {
	return []Entry{
		{Name: "Relational.count", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.Int)
		}), Value: builtin("Relational.count", func(x eval.Value) eval.Value {
			return eval.NewInt(int64(len(x.(eval.List).Elts)))
		})},

		{Name: "Relational.sum", Scheme: mono(fn(types.List(types.Int), types.Int)),
			Value: builtin("Relational.sum", func(x eval.Value) eval.Value {
				acc := eval.NewInt(0)
				for _, e := range x.(eval.List).Elts {
					acc = eval.AddInt(acc, e.(eval.Int))
				}
				return acc
			})},

		{Name: "Relational.max", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), v[0])
		}), Value: builtin("Relational.max", func(x eval.Value) eval.Value {
			l := x.(eval.List).Elts
			if len(l) == 0 {
				panic(&eval.Error{Kind: eval.Empty, Message: "Relational.max: empty collection"})
			}
			best := l[0]
			for _, e := range l[1:] {
				if eval.Less(best, e) {
					best = e
				}
			}
			return best
		})},

		{Name: "Relational.min", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), v[0])
		}), Value: builtin("Relational.min", func(x eval.Value) eval.Value {
			l := x.(eval.List).Elts
			if len(l) == 0 {
				panic(&eval.Error{Kind: eval.Empty, Message: "Relational.min: empty collection"})
			}
			best := l[0]
			for _, e := range l[1:] {
				if eval.Less(e, best) {
					best = e
				}
			}
			return best
		})},

		{Name: "Relational.exists", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.Bool)
		}), Value: builtin("Relational.exists", func(x eval.Value) eval.Value {
			return eval.BoolOf(len(x.(eval.List).Elts) > 0)
		})},

		{Name: "Relational.notExists", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.Bool)
		}), Value: builtin("Relational.notExists", func(x eval.Value) eval.Value {
			return eval.BoolOf(len(x.(eval.List).Elts) == 0)
		})},

		{Name: "Relational.only", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), v[0])
		}), Value: builtin("Relational.only", func(x eval.Value) eval.Value {
			l := x.(eval.List).Elts
			if len(l) != 1 {
				panic(&eval.Error{Kind: eval.DomainError, Message: "Relational.only: expected exactly one element"})
			}
			return l[0]
		})},
	}
}
