package builtins

import (
	"math/big"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// intEntries is the `Int` namespace (spec.md §6.3).
func intEntries() []Entry {
	return []Entry{
		{Name: "Int.toString", Scheme: mono(fn(types.Int, types.String)),
			Value: builtin("Int.toString", func(x eval.Value) eval.Value {
				return eval.Str{V: x.(eval.Int).V.String()}
			})},

		{Name: "Int.fromString", Scheme: mono(fn(types.String, types.Named{Name: "option", Args: []types.Type{types.Int}})),
			Value: builtin("Int.fromString", func(x eval.Value) eval.Value {
				i, ok := new(big.Int).SetString(x.(eval.Str).V, 10)
				if !ok {
					return eval.Con{Name: "NONE"}
				}
				return eval.Con{Name: "SOME", Arg: eval.Int{V: i}}
			})},

		{Name: "Int.abs", Scheme: mono(fn(types.Int, types.Int)),
			Value: builtin("Int.abs", func(x eval.Value) eval.Value {
				return eval.Int{V: new(big.Int).Abs(x.(eval.Int).V)}
			})},

		{Name: "Int.max", Scheme: mono(fn2(types.Int, types.Int, types.Int)),
			Value: curried2("Int.max", func(a, b eval.Value) eval.Value {
				if a.(eval.Int).V.Cmp(b.(eval.Int).V) >= 0 {
					return a
				}
				return b
			})},

		{Name: "Int.min", Scheme: mono(fn2(types.Int, types.Int, types.Int)),
			Value: curried2("Int.min", func(a, b eval.Value) eval.Value {
				if a.(eval.Int).V.Cmp(b.(eval.Int).V) <= 0 {
					return a
				}
				return b
			})},

		{Name: "Int.compare", Scheme: mono(fn2(types.Int, types.Int, types.Int)),
			Value: curried2("Int.compare", func(a, b eval.Value) eval.Value {
				return eval.NewInt(int64(a.(eval.Int).V.Cmp(b.(eval.Int).V)))
			})},

		{Name: "Int.sign", Scheme: mono(fn(types.Int, types.Int)),
			Value: builtin("Int.sign", func(x eval.Value) eval.Value {
				return eval.NewInt(int64(x.(eval.Int).V.Sign()))
			})},
	}
}
