package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/eval"
)

// CompileExpr lowers e to a Code unit. This is the "AST → Code" half of
// spec.md §4.4; every case below corresponds to one of the Code primitives
// the section enumerates.
func (c *Compiler) CompileExpr(e ast.Expr) eval.Code {
	switch x := e.(type) {
	case *ast.Literal:
		v := eval.LiteralValue(x.Kind, x.Value)
		return func(*eval.Environment) eval.Value { return v } // constant(v)

	case *ast.Ident:
		name := x.Name
		return func(env *eval.Environment) eval.Value { return env.MustLookup(name) } // get(name)

	case *ast.RecordSelector:
		slot := x.Slot
		return func(*eval.Environment) eval.Value {
			return eval.Builtin{Name: "#" + x.Label, Fn: func(arg eval.Value) eval.Value {
				return arg.(eval.Record).Field(slot)
			}}
		}

	case *ast.Application:
		return c.compileApplication(x)

	case *ast.Infix:
		return c.compileInfix(x)

	case *ast.Prefix:
		return c.compilePrefix(x)

	case *ast.Tuple:
		return c.CompileExpr(ast.Expr(ast.RecordFromTuple(x)))

	case *ast.List:
		elts := make([]eval.Code, len(x.Elts))
		for i, e := range x.Elts {
			elts[i] = c.CompileExpr(e)
		}
		return func(env *eval.Environment) eval.Value {
			vs := make([]eval.Value, len(elts))
			for i, code := range elts {
				vs[i] = code(env)
			}
			return eval.List{Elts: vs}
		}

	case *ast.Record:
		fields := make([]struct {
			label string
			code  eval.Code
		}, len(x.Fields))
		for i, f := range x.Fields {
			fields[i].label = f.Label
			fields[i].code = c.CompileExpr(f.Value)
		}
		return func(env *eval.Environment) eval.Value {
			out := make([]eval.RecordField, len(fields))
			for i, f := range fields {
				out[i] = eval.RecordField{Label: f.label, Value: f.code(env)}
			}
			return eval.Record{Fields: out}
		}

	case *ast.Let:
		return c.compileLet(x)

	case *ast.Fn:
		pat := x.Match.Pattern
		body := c.CompileExpr(x.Match.Body)
		return func(env *eval.Environment) eval.Value {
			return &eval.Closure{Param: pat, Body: body, Env: env}
		}

	case *ast.If:
		cond := c.CompileExpr(x.Cond)
		then := c.CompileExpr(x.Then)
		els := c.CompileExpr(x.Else)
		return func(env *eval.Environment) eval.Value {
			if cond(env).(eval.Bool).V {
				return then(env)
			}
			return els(env)
		}

	case *ast.Case:
		return c.compileCase(x)

	case *ast.From:
		return c.compileFrom(x)

	case *ast.Annotated:
		return c.CompileExpr(x.Expr)
	}
	panic("compiler: unknown Expr implementation")
}

func (c *Compiler) compileApplication(x *ast.Application) eval.Code {
	fn := c.CompileExpr(x.Fn)
	arg := c.CompileExpr(x.Arg)
	pos := x.P
	return func(env *eval.Environment) eval.Value {
		return eval.Apply(fn(env), arg(env), pos)
	}
}

func (c *Compiler) compilePrefix(x *ast.Prefix) eval.Code {
	a := c.CompileExpr(x.A)
	real := c.isRealTyped(x)
	switch x.Op {
	case "~":
		if real {
			return func(env *eval.Environment) eval.Value { return eval.NegReal(a(env).(eval.Real)) }
		}
		return func(env *eval.Environment) eval.Value { return eval.NegInt(a(env).(eval.Int)) }
	}
	panic("compiler: unknown prefix operator " + x.Op)
}

func (c *Compiler) compileLet(x *ast.Let) eval.Code {
	declSteps := make([]func(*eval.Environment) *eval.Environment, len(x.Decls))
	for i, d := range x.Decls {
		declSteps[i] = c.compileLocalDecl(d)
	}
	body := c.CompileExpr(x.Body)
	return func(env *eval.Environment) eval.Value {
		cur := env
		for _, step := range declSteps {
			cur = step(cur)
		}
		return body(cur)
	}
}

func (c *Compiler) compileCase(x *ast.Case) eval.Code {
	scrutinee := c.CompileExpr(x.Scrutinee)
	type clause struct {
		pattern ast.Pattern
		body    eval.Code
	}
	clauses := make([]clause, len(x.Matches))
	for i, m := range x.Matches {
		clauses[i] = clause{pattern: m.Pattern, body: c.CompileExpr(m.Body)}
	}
	pos := x.P
	return func(env *eval.Environment) eval.Value {
		v := scrutinee(env)
		for _, cl := range clauses {
			if next, ok := eval.Match(cl.pattern, v, env); ok {
				return cl.body(next)
			}
		}
		panic(&eval.Error{Kind: eval.NonexhaustiveMatch, Pos: pos, Message: "no clause of case matched"})
	}
}
