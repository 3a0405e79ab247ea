package builtins

import (
	"math"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// mathEntries is the `Math` namespace (spec.md §6.3): the transcendental
// functions, implemented via float64 (big.Float carries no trig/exp/log of
// its own) and converted back to arbitrary-precision Real on return.
func mathEntries() []Entry {
	unary := func(name string, f func(float64) float64) Entry {
		return Entry{Name: name, Scheme: mono(fn(types.Real, types.Real)),
			Value: builtin(name, func(x eval.Value) eval.Value {
				v, _ := x.(eval.Real).V.Float64()
				return eval.NewReal(f(v))
			})}
	}
	return []Entry{
		unary("Math.sqrt", math.Sqrt),
		unary("Math.sin", math.Sin),
		unary("Math.cos", math.Cos),
		unary("Math.tan", math.Tan),
		unary("Math.asin", math.Asin),
		unary("Math.acos", math.Acos),
		unary("Math.atan", math.Atan),
		unary("Math.exp", math.Exp),
		unary("Math.ln", math.Log),

		{Name: "Math.pow", Scheme: mono(fn2(types.Real, types.Real, types.Real)),
			Value: curried2("Math.pow", func(a, b eval.Value) eval.Value {
				x, _ := a.(eval.Real).V.Float64()
				y, _ := b.(eval.Real).V.Float64()
				return eval.NewReal(math.Pow(x, y))
			})},

		{Name: "Math.atan2", Scheme: mono(fn2(types.Real, types.Real, types.Real)),
			Value: curried2("Math.atan2", func(a, b eval.Value) eval.Value {
				x, _ := a.(eval.Real).V.Float64()
				y, _ := b.(eval.Real).V.Float64()
				return eval.NewReal(math.Atan2(x, y))
			})},

		{Name: "Math.pi", Scheme: mono(types.Real), Value: eval.NewReal(math.Pi)},
		{Name: "Math.e", Scheme: mono(types.Real), Value: eval.NewReal(math.E)},
	}
}
