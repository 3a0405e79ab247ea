package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

func vectorType(t types.Type) types.Type { return types.Named{Name: "vector", Args: []types.Type{t}} }

// vectorEntries is the `Vector` namespace (spec.md §6.3). A vector is
// represented identically to a list at runtime (eval.List): this engine has
// no in-place array update to distinguish it from a list, so Vector's
// contribution over List is purely the distinct static type and the
// construction/indexing operations the basis library names.
func vectorEntries() []Entry {
	return []Entry{
		{Name: "Vector.fromList", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), vectorType(v[0]))
		}), Value: builtin("Vector.fromList", func(x eval.Value) eval.Value { return x })},

		{Name: "Vector.length", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(vectorType(v[0]), types.Int)
		}), Value: builtin("Vector.length", func(x eval.Value) eval.Value {
			return eval.NewInt(int64(len(x.(eval.List).Elts)))
		})},

		{Name: "Vector.sub", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(vectorType(v[0]), types.Int, v[0])
		}), Value: curried2("Vector.sub", func(vv, iv eval.Value) eval.Value {
			l := vv.(eval.List).Elts
			n := int(iv.(eval.Int).V.Int64())
			if n < 0 || n >= len(l) {
				panic(&eval.Error{Kind: eval.Subscript, Message: "Vector.sub: index out of range"})
			}
			return l[n]
		})},

		{Name: "Vector.tabulate", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(types.Int, fn(types.Int, v[0]), vectorType(v[0]))
		}), Value: curried2("Vector.tabulate", func(nv, fv eval.Value) eval.Value {
			n := int(nv.(eval.Int).V.Int64())
			if n < 0 {
				panic(&eval.Error{Kind: eval.DomainError, Message: "Vector.tabulate: negative size"})
			}
			out := make([]eval.Value, n)
			for i := range out {
				out[i] = eval.Apply(fv, eval.NewInt(int64(i)), zeroPos)
			}
			return eval.List{Elts: out}
		})},

		{Name: "Vector.map", Scheme: poly(2, func(v []types.Type) types.Type {
			return fn2(fn(v[0], v[1]), vectorType(v[0]), vectorType(v[1]))
		}), Value: curried2("Vector.map", func(fv, vv eval.Value) eval.Value {
			l := vv.(eval.List).Elts
			out := make([]eval.Value, len(l))
			for i, e := range l {
				out[i] = eval.Apply(fv, e, zeroPos)
			}
			return eval.List{Elts: out}
		})},

		{Name: "Vector.toList", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(vectorType(v[0]), types.List(v[0]))
		}), Value: builtin("Vector.toList", func(x eval.Value) eval.Value { return x })},
	}
}
