package builtins

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// stringEntries is the `String` namespace (spec.md §6.3).
func stringEntries() []Entry {
	return []Entry{
		{Name: "String.size", Scheme: mono(fn(types.String, types.Int)),
			Value: builtin("String.size", func(x eval.Value) eval.Value {
				return eval.NewInt(int64(len([]rune(x.(eval.Str).V))))
			})},

		{Name: "String.sub", Scheme: mono(fn2(types.String, types.Int, types.Char)),
			Value: curried2("String.sub", func(sv, iv eval.Value) eval.Value {
				rs := []rune(sv.(eval.Str).V)
				n := int(iv.(eval.Int).V.Int64())
				if n < 0 || n >= len(rs) {
					panic(&eval.Error{Kind: eval.Subscript, Message: "String.sub: index out of range"})
				}
				return eval.Char{V: rs[n]}
			})},

		{Name: "String.extract", Scheme: mono(fn2(types.String, types.Int, types.String)),
			Value: curried2("String.extract", func(sv, iv eval.Value) eval.Value {
				rs := []rune(sv.(eval.Str).V)
				n := int(iv.(eval.Int).V.Int64())
				if n < 0 || n > len(rs) {
					panic(&eval.Error{Kind: eval.Subscript, Message: "String.extract: index out of range"})
				}
				return eval.Str{V: string(rs[n:])}
			})},

		{Name: "String.substring", Scheme: mono(fn3(types.String, types.Int, types.Int, types.String)),
			Value: curried3("String.substring", func(sv, iv, jv eval.Value) eval.Value {
				rs := []rune(sv.(eval.Str).V)
				i := int(iv.(eval.Int).V.Int64())
				n := int(jv.(eval.Int).V.Int64())
				if i < 0 || n < 0 || i+n > len(rs) {
					panic(&eval.Error{Kind: eval.Subscript, Message: "String.substring: index out of range"})
				}
				return eval.Str{V: string(rs[i : i+n])}
			})},

		{Name: "String.concat", Scheme: mono(fn(types.List(types.String), types.String)),
			Value: builtin("String.concat", func(x eval.Value) eval.Value {
				var sb strings.Builder
				for _, e := range x.(eval.List).Elts {
					sb.WriteString(e.(eval.Str).V)
				}
				return eval.Str{V: sb.String()}
			})},

		{Name: "String.concatWith", Scheme: mono(fn2(types.String, types.List(types.String), types.String)),
			Value: curried2("String.concatWith", func(sepv, lv eval.Value) eval.Value {
				sep := sepv.(eval.Str).V
				l := lv.(eval.List).Elts
				parts := make([]string, len(l))
				for i, e := range l {
					parts[i] = e.(eval.Str).V
				}
				return eval.Str{V: strings.Join(parts, sep)}
			})},

		{Name: "String.str", Scheme: mono(fn(types.Char, types.String)),
			Value: builtin("String.str", func(x eval.Value) eval.Value {
				return eval.Str{V: string(x.(eval.Char).V)}
			})},

		{Name: "String.implode", Scheme: mono(fn(types.List(types.Char), types.String)),
			Value: builtin("String.implode", func(x eval.Value) eval.Value {
				rs := make([]rune, 0, len(x.(eval.List).Elts))
				for _, e := range x.(eval.List).Elts {
					rs = append(rs, e.(eval.Char).V)
				}
				return eval.Str{V: string(rs)}
			})},

		{Name: "String.explode", Scheme: mono(fn(types.String, types.List(types.Char))),
			Value: builtin("String.explode", func(x eval.Value) eval.Value {
				rs := []rune(x.(eval.Str).V)
				out := make([]eval.Value, len(rs))
				for i, r := range rs {
					out[i] = eval.Char{V: r}
				}
				return eval.List{Elts: out}
			})},

		{Name: "String.isPrefix", Scheme: mono(fn2(types.String, types.String, types.Bool)),
			Value: curried2("String.isPrefix", func(pv, sv eval.Value) eval.Value {
				return eval.BoolOf(strings.HasPrefix(sv.(eval.Str).V, pv.(eval.Str).V))
			})},

		{Name: "String.isSuffix", Scheme: mono(fn2(types.String, types.String, types.Bool)),
			Value: curried2("String.isSuffix", func(pv, sv eval.Value) eval.Value {
				return eval.BoolOf(strings.HasSuffix(sv.(eval.Str).V, pv.(eval.Str).V))
			})},

		{Name: "String.isSubstring", Scheme: mono(fn2(types.String, types.String, types.Bool)),
			Value: curried2("String.isSubstring", func(pv, sv eval.Value) eval.Value {
				return eval.BoolOf(strings.Contains(sv.(eval.Str).V, pv.(eval.Str).V))
			})},

		{Name: "String.translate", Scheme: mono(fn2(fn(types.Char, types.String), types.String, types.String)),
			Value: curried2("String.translate", func(fv, sv eval.Value) eval.Value {
				var sb strings.Builder
				for _, r := range sv.(eval.Str).V {
					sb.WriteString(eval.Apply(fv, eval.Char{V: r}, zeroPos).(eval.Str).V)
				}
				return eval.Str{V: sb.String()}
			})},

		{Name: "String.tokens", Scheme: mono(fn2(fn(types.Char, types.Bool), types.String, types.List(types.String))),
			Value: curried2("String.tokens", func(fv, sv eval.Value) eval.Value {
				isSep := func(r rune) bool { return eval.Apply(fv, eval.Char{V: r}, zeroPos).(eval.Bool).V }
				parts := strings.FieldsFunc(sv.(eval.Str).V, isSep)
				out := make([]eval.Value, len(parts))
				for i, p := range parts {
					out[i] = eval.Str{V: p}
				}
				return eval.List{Elts: out}
			})},

		{Name: "String.^", Scheme: mono(fn2(types.String, types.String, types.String)),
			Value: curried2("String.^", func(a, b eval.Value) eval.Value {
				return eval.Str{V: a.(eval.Str).V + b.(eval.Str).V}
			})},

		{Name: "String.compare", Scheme: mono(fn2(types.String, types.String, types.Int)),
			Value: curried2("String.compare", func(a, b eval.Value) eval.Value {
				return eval.NewInt(int64(strings.Compare(a.(eval.Str).V, b.(eval.Str).V)))
			})},

		{Name: "String.collateLocale", Scheme: mono(fn3(types.String, types.String, types.String, types.Int)),
			Value: curried3("String.collateLocale", func(av, bv, localev eval.Value) eval.Value {
				tag, err := language.Parse(localev.(eval.Str).V)
				if err != nil {
					tag = language.English
				}
				col := collate.New(tag)
				return eval.NewInt(int64(col.CompareString(av.(eval.Str).V, bv.(eval.Str).V)))
			})},
	}
}
