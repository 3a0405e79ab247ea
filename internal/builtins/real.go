package builtins

import (
	"math/big"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// realEntries is the `Real` namespace (spec.md §6.3): conversions between
// real and int, rounding modes, and floor/ceiling/truncation.
func realEntries() []Entry {
	toInt := func(name string, round func(*big.Float) *big.Int) Entry {
		return Entry{Name: name, Scheme: mono(fn(types.Real, types.Int)),
			Value: builtin(name, func(x eval.Value) eval.Value {
				return eval.Int{V: round(x.(eval.Real).V)}
			})}
	}
	floor := func(f *big.Float) *big.Int {
		i, _ := f.Int(nil)
		if f.Sign() < 0 {
			frac := new(big.Float).Sub(f, new(big.Float).SetInt(i))
			if frac.Sign() != 0 {
				i.Sub(i, big.NewInt(1))
			}
		}
		return i
	}
	ceil := func(f *big.Float) *big.Int {
		i, _ := f.Int(nil)
		if f.Sign() > 0 {
			frac := new(big.Float).Sub(f, new(big.Float).SetInt(i))
			if frac.Sign() != 0 {
				i.Add(i, big.NewInt(1))
			}
		}
		return i
	}
	trunc := func(f *big.Float) *big.Int {
		i, _ := f.Int(nil)
		return i
	}
	round := func(f *big.Float) *big.Int {
		half := big.NewFloat(0.5)
		if f.Sign() < 0 {
			half = big.NewFloat(-0.5)
		}
		shifted := new(big.Float).Add(f, half)
		i, _ := shifted.Int(nil)
		return i
	}
	return []Entry{
		toInt("Real.floor", floor),
		toInt("Real.ceil", ceil),
		toInt("Real.trunc", trunc),
		toInt("Real.round", round),

		{Name: "Real.fromInt", Scheme: mono(fn(types.Int, types.Real)),
			Value: builtin("Real.fromInt", func(x eval.Value) eval.Value {
				f := new(big.Float).SetInt(x.(eval.Int).V)
				return eval.Real{V: f}
			})},

		{Name: "Real.abs", Scheme: mono(fn(types.Real, types.Real)),
			Value: builtin("Real.abs", func(x eval.Value) eval.Value {
				return eval.Real{V: new(big.Float).Abs(x.(eval.Real).V)}
			})},

		{Name: "Real.compare", Scheme: mono(fn2(types.Real, types.Real, types.Int)),
			Value: curried2("Real.compare", func(a, b eval.Value) eval.Value {
				return eval.NewInt(int64(a.(eval.Real).V.Cmp(b.(eval.Real).V)))
			})},

		{Name: "Real.toString", Scheme: mono(fn(types.Real, types.String)),
			Value: builtin("Real.toString", func(x eval.Value) eval.Value {
				return eval.Str{V: x.(eval.Real).V.Text('g', -1)}
			})},
	}
}
