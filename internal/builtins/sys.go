package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/props"
	"github.com/morel-lang/morel/internal/types"
)

// sysEntries is the `Sys` namespace (spec.md §6.5): Sys.set/Sys.show/
// Sys.unset/Sys.showAll read and write pt directly. Property values are
// surfaced to Morel code as strings — the ML-level interface need not
// track each property's native bool/int/string type, only internal/props's
// own Table does.
func sysEntries(pt *props.Table) []Entry {
	return []Entry{
		{Name: "Sys.set", Scheme: mono(fn2(types.String, types.String, types.Unit)),
			Value: curried2("Sys.set", func(nv, vv eval.Value) eval.Value {
				pt.Set(nv.(eval.Str).V, props.StringValue(vv.(eval.Str).V))
				return eval.Unit{}
			})},

		{Name: "Sys.unset", Scheme: mono(fn(types.String, types.Unit)),
			Value: builtin("Sys.unset", func(x eval.Value) eval.Value {
				pt.Unset(x.(eval.Str).V)
				return eval.Unit{}
			})},

		{Name: "Sys.show", Scheme: mono(fn(types.String, types.String)),
			Value: builtin("Sys.show", func(x eval.Value) eval.Value {
				v, ok := pt.Get(x.(eval.Str).V)
				if !ok {
					return eval.Str{V: "<unset>"}
				}
				return eval.Str{V: v.String()}
			})},

		{Name: "Sys.showAll", Scheme: mono(fn(types.Unit, types.List(types.String))),
			Value: builtin("Sys.showAll", func(eval.Value) eval.Value {
				lines := pt.ShowAll()
				out := make([]eval.Value, len(lines))
				for i, l := range lines {
					out[i] = eval.Str{V: l}
				}
				return eval.List{Elts: out}
			})},
	}
}
