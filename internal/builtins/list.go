package builtins

import (
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// listEntries is the `List` namespace (spec.md §6.3): the core list
// operations every ML basis library carries. `hd`/`tl` of an empty list
// and `nth` out of range fail with Empty/Subscript, per §6.3's exception
// list.
func listEntries() []Entry {
	return []Entry{
		{Name: "List.null", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.Bool)
		}), Value: builtin("List.null", func(x eval.Value) eval.Value {
			return eval.BoolOf(len(x.(eval.List).Elts) == 0)
		})},
		{Name: "List.length", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.Int)
		}), Value: builtin("List.length", func(x eval.Value) eval.Value {
			return eval.NewInt(int64(len(x.(eval.List).Elts)))
		})},
		{Name: "List.hd", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), v[0])
		}), Value: builtin("List.hd", func(x eval.Value) eval.Value {
			l := x.(eval.List)
			if len(l.Elts) == 0 {
				panic(&eval.Error{Kind: eval.Empty, Message: "List.hd: empty list"})
			}
			return l.Elts[0]
		})},
		{Name: "List.tl", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.List(v[0]))
		}), Value: builtin("List.tl", func(x eval.Value) eval.Value {
			l := x.(eval.List)
			if len(l.Elts) == 0 {
				panic(&eval.Error{Kind: eval.Empty, Message: "List.tl: empty list"})
			}
			return eval.List{Elts: l.Elts[1:]}
		})},
		{Name: "List.last", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), v[0])
		}), Value: builtin("List.last", func(x eval.Value) eval.Value {
			l := x.(eval.List)
			if len(l.Elts) == 0 {
				panic(&eval.Error{Kind: eval.Empty, Message: "List.last: empty list"})
			}
			return l.Elts[len(l.Elts)-1]
		})},
		{Name: "List.rev", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(v[0]), types.List(v[0]))
		}), Value: builtin("List.rev", func(x eval.Value) eval.Value {
			l := x.(eval.List).Elts
			out := make([]eval.Value, len(l))
			for i, v := range l {
				out[len(l)-1-i] = v
			}
			return eval.List{Elts: out}
		})},
		{Name: "List.nth", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(types.List(v[0]), types.Int, v[0])
		}), Value: curried2("List.nth", func(lv, iv eval.Value) eval.Value {
			l, i := lv.(eval.List), iv.(eval.Int)
			n := int(i.V.Int64())
			if n < 0 || n >= len(l.Elts) {
				panic(&eval.Error{Kind: eval.Subscript, Message: "List.nth: index out of range"})
			}
			return l.Elts[n]
		})},
		{Name: "List.take", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(types.List(v[0]), types.Int, types.List(v[0]))
		}), Value: curried2("List.take", func(lv, iv eval.Value) eval.Value {
			l, i := lv.(eval.List), iv.(eval.Int)
			n := int(i.V.Int64())
			if n < 0 || n > len(l.Elts) {
				panic(&eval.Error{Kind: eval.Subscript, Message: "List.take: index out of range"})
			}
			return eval.List{Elts: l.Elts[:n]}
		})},
		{Name: "List.drop", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(types.List(v[0]), types.Int, types.List(v[0]))
		}), Value: curried2("List.drop", func(lv, iv eval.Value) eval.Value {
			l, i := lv.(eval.List), iv.(eval.Int)
			n := int(i.V.Int64())
			if n < 0 || n > len(l.Elts) {
				panic(&eval.Error{Kind: eval.Subscript, Message: "List.drop: index out of range"})
			}
			return eval.List{Elts: l.Elts[n:]}
		})},
		{Name: "List.concat", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn(types.List(types.List(v[0])), types.List(v[0]))
		}), Value: builtin("List.concat", func(x eval.Value) eval.Value {
			var out []eval.Value
			for _, sub := range x.(eval.List).Elts {
				out = append(out, sub.(eval.List).Elts...)
			}
			return eval.List{Elts: out}
		})},
		{Name: "List.tabulate", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(types.Int, fn(types.Int, v[0]), types.List(v[0]))
		}), Value: curried2("List.tabulate", func(nv, fv eval.Value) eval.Value {
			n := int(nv.(eval.Int).V.Int64())
			if n < 0 {
				panic(&eval.Error{Kind: eval.DomainError, Message: "List.tabulate: negative size"})
			}
			out := make([]eval.Value, n)
			for i := range out {
				out[i] = eval.Apply(fv, eval.NewInt(int64(i)), zeroPos)
			}
			return eval.List{Elts: out}
		})},
		{Name: "List.map", Scheme: poly(2, func(v []types.Type) types.Type {
			return fn2(fn(v[0], v[1]), types.List(v[0]), types.List(v[1]))
		}), Value: curried2("List.map", func(fv, lv eval.Value) eval.Value {
			l := lv.(eval.List)
			out := make([]eval.Value, len(l.Elts))
			for i, e := range l.Elts {
				out[i] = eval.Apply(fv, e, zeroPos)
			}
			return eval.List{Elts: out}
		})},
		{Name: "List.app", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(fn(v[0], types.Unit), types.List(v[0]), types.Unit)
		}), Value: curried2("List.app", func(fv, lv eval.Value) eval.Value {
			for _, e := range lv.(eval.List).Elts {
				eval.Apply(fv, e, zeroPos)
			}
			return eval.Unit{}
		})},
		{Name: "List.filter", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(fn(v[0], types.Bool), types.List(v[0]), types.List(v[0]))
		}), Value: curried2("List.filter", func(fv, lv eval.Value) eval.Value {
			var out []eval.Value
			for _, e := range lv.(eval.List).Elts {
				if eval.Apply(fv, e, zeroPos).(eval.Bool).V {
					out = append(out, e)
				}
			}
			return eval.List{Elts: out}
		})},
		{Name: "List.foldl", Scheme: poly(2, func(v []types.Type) types.Type {
			step := fn2(v[0], v[1], v[1])
			return fn3(step, v[1], types.List(v[0]), v[1])
		}), Value: curried3("List.foldl", func(fv, zv, lv eval.Value) eval.Value {
			acc := zv
			for _, e := range lv.(eval.List).Elts {
				acc = eval.Apply(fv, tupleOf(e, acc), zeroPos)
			}
			return acc
		})},
		{Name: "List.foldr", Scheme: poly(2, func(v []types.Type) types.Type {
			step := fn2(v[0], v[1], v[1])
			return fn3(step, v[1], types.List(v[0]), v[1])
		}), Value: curried3("List.foldr", func(fv, zv, lv eval.Value) eval.Value {
			elts := lv.(eval.List).Elts
			acc := zv
			for i := len(elts) - 1; i >= 0; i-- {
				acc = eval.Apply(fv, tupleOf(elts[i], acc), zeroPos)
			}
			return acc
		})},
		{Name: "List.exists", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(fn(v[0], types.Bool), types.List(v[0]), types.Bool)
		}), Value: curried2("List.exists", func(fv, lv eval.Value) eval.Value {
			for _, e := range lv.(eval.List).Elts {
				if eval.Apply(fv, e, zeroPos).(eval.Bool).V {
					return eval.True
				}
			}
			return eval.False
		})},
		{Name: "List.all", Scheme: poly(1, func(v []types.Type) types.Type {
			return fn2(fn(v[0], types.Bool), types.List(v[0]), types.Bool)
		}), Value: curried2("List.all", func(fv, lv eval.Value) eval.Value {
			for _, e := range lv.(eval.List).Elts {
				if !eval.Apply(fv, e, zeroPos).(eval.Bool).V {
					return eval.False
				}
			}
			return eval.True
		})},
	}
}
