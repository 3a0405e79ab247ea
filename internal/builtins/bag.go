package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

func bagType(t types.Type) types.Type { return types.Named{Name: "bag", Args: []types.Type{t}} }

// bagEntries is the `Bag` namespace (spec.md §6.3): a bag is a list that
// permits duplicates and is unordered by convention — represented
// identically to List at runtime, exactly as Vector is, since `from`'s
// comprehension (internal/compiler/from.go) already produces eval.List
// values regardless of whether the source expression's static type is
// `list` or `bag`.
func bagEntries() []Entry {
	return []Entry{
		{Name: "Bag.fromList", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), bagType(v[0]))
		}), Value: builtin("Bag.fromList", func(x eval.Value) eval.Value { return x })},

		{Name: "Bag.toList", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(bagType(v[0]), types.List(v[0]))
		}), Value: builtin("Bag.toList", func(x eval.Value) eval.Value { return x })},

		{Name: "Bag.null", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(bagType(v[0]), types.Bool)
		}), Value: builtin("Bag.null", func(x eval.Value) eval.Value {
			return eval.BoolOf(len(x.(eval.List).Elts) == 0)
		})},

		{Name: "Bag.length", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(bagType(v[0]), types.Int)
		}), Value: builtin("Bag.length", func(x eval.Value) eval.Value {
			return eval.NewInt(int64(len(x.(eval.List).Elts)))
		})},

		{Name: "Bag.map", Scheme: poly(2, func(v []types.Type) types.Type {
			return fn2(fn(v[0], v[1]), bagType(v[0]), bagType(v[1]))
		}), Value: curried2("Bag.map", func(fv, bv eval.Value) eval.Value {
			l := bv.(eval.List).Elts
			out := make([]eval.Value, len(l))
			for i, e := range l {
				out[i] = eval.Apply(fv, e, zeroPos)
			}
			return eval.List{Elts: out}
		})},
	}
}
