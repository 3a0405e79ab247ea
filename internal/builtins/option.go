package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// optionEntries is the `Option` namespace (spec.md §6.3): NONE/SOME are
// registered as built-in data constructors of the `option` datatype, and
// the namespace's operations (map/getOpt/isSome/valOf/...) follow the ML
// basis library.
func optionEntries() []Entry {
	opt := func(t types.Type) types.Type { return types.Named{Name: "option", Args: []types.Type{t}} }
	return []Entry{
		{Name: "NONE", Scheme: poly(1, func(v []types.Type) types.Type {
			return opt(v[0])
		}), Value: eval.Con{Name: "NONE"}, IsCon: true, Datatype: "option", HasArg: false},

		{Name: "SOME", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(v[0], opt(v[0]))
		}), Value: builtin("SOME", func(x eval.Value) eval.Value {
			return eval.Con{Name: "SOME", Arg: x}
		}), IsCon: true, Datatype: "option", HasArg: true},

		{Name: "Option.isSome", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(opt(v[0]), types.Bool)
		}), Value: builtin("Option.isSome", func(x eval.Value) eval.Value {
			return eval.BoolOf(x.(eval.Con).Name == "SOME")
		})},

		{Name: "Option.isNone", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(opt(v[0]), types.Bool)
		}), Value: builtin("Option.isNone", func(x eval.Value) eval.Value {
			return eval.BoolOf(x.(eval.Con).Name == "NONE")
		})},

		{Name: "Option.valOf", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(opt(v[0]), v[0])
		}), Value: builtin("Option.valOf", func(x eval.Value) eval.Value {
			c := x.(eval.Con)
			if c.Name != "SOME" {
				panic(&eval.Error{Kind: eval.DomainError, Message: "Option.valOf: NONE"})
			}
			return c.Arg
		})},

		{Name: "Option.getOpt", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(opt(v[0]), v[0], v[0])
		}), Value: curried2("Option.getOpt", func(ov, dv eval.Value) eval.Value {
			c := ov.(eval.Con)
			if c.Name == "SOME" {
				return c.Arg
			}
			return dv
		})},

		{Name: "Option.map", Scheme: poly(2, func(v []types.Type) types.Type {
			a, b := v[0], v[1]
			return fn2(fn(a, b), opt(a), opt(b))
		}), Value: curried2("Option.map", func(fv, ov eval.Value) eval.Value {
			c := ov.(eval.Con)
			if c.Name == "NONE" {
				return eval.Con{Name: "NONE"}
			}
			return eval.Con{Name: "SOME", Arg: eval.Apply(fv, c.Arg, zeroPos)}
		})},

		{Name: "Option.app", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(fn(v[0], types.Unit), opt(v[0]), types.Unit)
		}), Value: curried2("Option.app", func(fv, ov eval.Value) eval.Value {
			c := ov.(eval.Con)
			if c.Name == "SOME" {
				eval.Apply(fv, c.Arg, zeroPos)
			}
			return eval.Unit{}
		})},

		{Name: "Option.compose", Scheme: poly(3, func(v []types.Type) types.Type {
			a, b, cc := v[0], v[1], v[2]
			return fn2(fn(b, cc), fn(a, opt(b)), fn(a, opt(cc)))
		}), Value: curried2("Option.compose", func(fv, gv eval.Value) eval.Value {
			return builtin("Option.compose'", func(x eval.Value) eval.Value {
				c := eval.Apply(gv, x, zeroPos).(eval.Con)
				if c.Name == "NONE" {
					return eval.Con{Name: "NONE"}
				}
				return eval.Con{Name: "SOME", Arg: eval.Apply(fv, c.Arg, zeroPos)}
			})
		})},
	}
}
