package builtins

import (
	"unicode"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// charEntries is the `Char` namespace (spec.md §6.3).
func charEntries() []Entry {
	pred := func(name string, f func(rune) bool) Entry {
		return Entry{Name: name, Scheme: mono(fn(types.Char, types.Bool)),
			Value: builtin(name, func(x eval.Value) eval.Value { return eval.BoolOf(f(x.(eval.Char).V)) })}
	}
	return []Entry{
		pred("Char.isUpper", unicode.IsUpper),
		pred("Char.isLower", unicode.IsLower),
		pred("Char.isDigit", unicode.IsDigit),
		pred("Char.isAlpha", unicode.IsLetter),
		pred("Char.isAlphaNum", func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }),
		pred("Char.isSpace", unicode.IsSpace),
		pred("Char.isPunct", unicode.IsPunct),

		{Name: "Char.toUpper", Scheme: mono(fn(types.Char, types.Char)),
			Value: builtin("Char.toUpper", func(x eval.Value) eval.Value {
				return eval.Char{V: unicode.ToUpper(x.(eval.Char).V)}
			})},
		{Name: "Char.toLower", Scheme: mono(fn(types.Char, types.Char)),
			Value: builtin("Char.toLower", func(x eval.Value) eval.Value {
				return eval.Char{V: unicode.ToLower(x.(eval.Char).V)}
			})},
		{Name: "Char.ord", Scheme: mono(fn(types.Char, types.Int)),
			Value: builtin("Char.ord", func(x eval.Value) eval.Value {
				return eval.NewInt(int64(x.(eval.Char).V))
			})},
		{Name: "Char.chr", Scheme: mono(fn(types.Int, types.Char)),
			Value: builtin("Char.chr", func(x eval.Value) eval.Value {
				n := x.(eval.Int).V.Int64()
				if n < 0 || n > 0x10FFFF {
					panic(&eval.Error{Kind: eval.ChrOutOfRange, Message: "Char.chr: argument out of range"})
				}
				return eval.Char{V: rune(n)}
			})},
		{Name: "Char.compare", Scheme: mono(fn2(types.Char, types.Char, types.Int)),
			Value: curried2("Char.compare", func(a, b eval.Value) eval.Value {
				x, y := a.(eval.Char).V, b.(eval.Char).V
				switch {
				case x < y:
					return eval.NewInt(-1)
				case x > y:
					return eval.NewInt(1)
				default:
					return eval.NewInt(0)
				}
			})},
	}
}
