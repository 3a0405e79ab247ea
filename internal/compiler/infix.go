package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/eval"
)

// compileInfix lowers `a op b`. Arithmetic picks its int/real arm once, at
// compile time, from the Infix node's own resolved type (spec.md §4.4:
// "dispatch to integer or real operations per the inferred type") —
// cheaper than a runtime type switch and impossible to get wrong, since the
// inferencer already forced both operands to that same type.
func (c *Compiler) compileInfix(x *ast.Infix) eval.Code {
	a := c.CompileExpr(x.A)
	b := c.CompileExpr(x.B)
	pos := x.P

	switch x.Op {
	case "+":
		if c.isRealTyped(x) {
			return func(env *eval.Environment) eval.Value { return eval.AddReal(a(env).(eval.Real), b(env).(eval.Real)) }
		}
		return func(env *eval.Environment) eval.Value { return eval.AddInt(a(env).(eval.Int), b(env).(eval.Int)) }

	case "-":
		if c.isRealTyped(x) {
			return func(env *eval.Environment) eval.Value { return eval.SubReal(a(env).(eval.Real), b(env).(eval.Real)) }
		}
		return func(env *eval.Environment) eval.Value { return eval.SubInt(a(env).(eval.Int), b(env).(eval.Int)) }

	case "*":
		if c.isRealTyped(x) {
			return func(env *eval.Environment) eval.Value { return eval.MulReal(a(env).(eval.Real), b(env).(eval.Real)) }
		}
		return func(env *eval.Environment) eval.Value { return eval.MulInt(a(env).(eval.Int), b(env).(eval.Int)) }

	case "/":
		// Lumped with the other overloaded arithmetic primitives by
		// internal/infer's simplified unification-only rule (see
		// infer.inferInfix), so — unlike reference SML, which restricts
		// `/` to real — this arm also accepts int, matching whichever
		// type the operands were actually inferred to share.
		if c.isRealTyped(x) {
			return func(env *eval.Environment) eval.Value {
				bv := b(env).(eval.Real)
				if bv.V.Sign() == 0 {
					panic(&eval.Error{Kind: eval.DivisionByZero, Pos: pos, Message: "division by zero"})
				}
				return eval.DivReal(a(env).(eval.Real), bv)
			}
		}
		return func(env *eval.Environment) eval.Value {
			bv := b(env).(eval.Int)
			if bv.V.Sign() == 0 {
				panic(&eval.Error{Kind: eval.DivisionByZero, Pos: pos, Message: "division by zero"})
			}
			return eval.DivInt(a(env).(eval.Int), bv)
		}

	case "div":
		return func(env *eval.Environment) eval.Value {
			bv := b(env).(eval.Int)
			if bv.V.Sign() == 0 {
				panic(&eval.Error{Kind: eval.DivisionByZero, Pos: pos, Message: "div by zero"})
			}
			return eval.DivInt(a(env).(eval.Int), bv)
		}

	case "mod":
		return func(env *eval.Environment) eval.Value {
			bv := b(env).(eval.Int)
			if bv.V.Sign() == 0 {
				panic(&eval.Error{Kind: eval.DivisionByZero, Pos: pos, Message: "mod by zero"})
			}
			return eval.ModInt(a(env).(eval.Int), bv)
		}

	case "^":
		return func(env *eval.Environment) eval.Value {
			return eval.Str{V: a(env).(eval.Str).V + b(env).(eval.Str).V}
		}

	case "::":
		return func(env *eval.Environment) eval.Value {
			h, t := a(env), b(env).(eval.List)
			elts := make([]eval.Value, 0, len(t.Elts)+1)
			elts = append(elts, h)
			elts = append(elts, t.Elts...)
			return eval.List{Elts: elts}
		}

	case "@":
		return func(env *eval.Environment) eval.Value {
			av, bv := a(env).(eval.List), b(env).(eval.List)
			elts := make([]eval.Value, 0, len(av.Elts)+len(bv.Elts))
			elts = append(elts, av.Elts...)
			elts = append(elts, bv.Elts...)
			return eval.List{Elts: elts}
		}

	case "union":
		return func(env *eval.Environment) eval.Value { return setUnion(a(env).(eval.List), b(env).(eval.List)) }
	case "except":
		return func(env *eval.Environment) eval.Value { return setExcept(a(env).(eval.List), b(env).(eval.List)) }
	case "intersect":
		return func(env *eval.Environment) eval.Value { return setIntersect(a(env).(eval.List), b(env).(eval.List)) }

	case "<":
		return func(env *eval.Environment) eval.Value { return eval.BoolOf(eval.Less(a(env), b(env))) }
	case "<=":
		return func(env *eval.Environment) eval.Value {
			av, bv := a(env), b(env)
			return eval.BoolOf(eval.Less(av, bv) || eval.Equal(av, bv))
		}
	case ">":
		return func(env *eval.Environment) eval.Value { return eval.BoolOf(eval.Less(b(env), a(env))) }
	case ">=":
		return func(env *eval.Environment) eval.Value {
			av, bv := a(env), b(env)
			return eval.BoolOf(eval.Less(bv, av) || eval.Equal(av, bv))
		}
	case "=":
		return func(env *eval.Environment) eval.Value { return eval.BoolOf(eval.Equal(a(env), b(env))) }
	case "<>":
		return func(env *eval.Environment) eval.Value { return eval.BoolOf(!eval.Equal(a(env), b(env))) }

	case "andalso":
		return func(env *eval.Environment) eval.Value {
			if !a(env).(eval.Bool).V {
				return eval.False
			}
			return b(env)
		}
	case "orelse":
		return func(env *eval.Environment) eval.Value {
			if a(env).(eval.Bool).V {
				return eval.True
			}
			return b(env)
		}

	case "o":
		return func(env *eval.Environment) eval.Value {
			f, g := a(env), b(env)
			return eval.Builtin{Name: "o", Fn: func(arg eval.Value) eval.Value {
				return eval.Apply(f, eval.Apply(g, arg, pos), pos)
			}}
		}

	default:
		name := x.Op
		return func(env *eval.Environment) eval.Value {
			fn := env.MustLookup(name)
			pair := eval.Record{Fields: []eval.RecordField{
				{Label: "1", Value: a(env)},
				{Label: "2", Value: b(env)},
			}}
			return eval.Apply(fn, pair, pos)
		}
	}
}

func setUnion(a, b eval.List) eval.List {
	out := append([]eval.Value{}, a.Elts...)
	for _, v := range b.Elts {
		if !containsValue(out, v) {
			out = append(out, v)
		}
	}
	return eval.List{Elts: out}
}

func setExcept(a, b eval.List) eval.List {
	var out []eval.Value
	for _, v := range a.Elts {
		if !containsValue(b.Elts, v) {
			out = append(out, v)
		}
	}
	return eval.List{Elts: out}
}

func setIntersect(a, b eval.List) eval.List {
	var out []eval.Value
	for _, v := range a.Elts {
		if containsValue(b.Elts, v) {
			out = append(out, v)
		}
	}
	return eval.List{Elts: out}
}

func containsValue(elts []eval.Value, v eval.Value) bool {
	for _, e := range elts {
		if eval.Equal(e, v) {
			return true
		}
	}
	return false
}
