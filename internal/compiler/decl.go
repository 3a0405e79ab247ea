package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/eval"
)

// compileLocalDecl lowers one declaration of a `let decls in body end` to
// an environment transform (spec.md §4.4's `let(bindings, body)`, and
// §5's "within a let ... with sequential declarations, declarations
// execute left-to-right"). Only ValDecl and DatatypeDecl ever reach the
// compiler — internal/infer always desugars FunDecl to a ValDecl first.
func (c *Compiler) compileLocalDecl(d ast.Decl) func(*eval.Environment) *eval.Environment {
	switch x := d.(type) {
	case *ast.ValDecl:
		return c.compileValDecl(x)
	case *ast.DatatypeDecl:
		return c.compileDatatypeDecl(x)
	}
	panic("compiler: unknown Decl implementation")
}

// compileValDecl lowers `val p1 = e1 and p2 = e2 and ...`. Per spec.md §5,
// every right-hand side sees the environment as it stood *before* the whole
// group; here that's realized literally — every binding's Code closes over
// the same `env` parameter, never over a sibling's result — and, per
// spec.md §5's "single-threaded and synchronous" core, the right-hand sides
// are evaluated one at a time, in declaration order: a panic out of one
// binding (an ordinary *eval.Error, e.g. `1 div 0`) must unwind through
// eval.RunDecl's own recover(), not surface on some other goroutine no
// recover() is watching.
func (c *Compiler) compileValDecl(d *ast.ValDecl) func(*eval.Environment) *eval.Environment {
	type compiledBind struct {
		rec     bool
		pattern ast.Pattern
		expr    eval.Code
	}
	binds := make([]compiledBind, len(d.Bindings))
	for i, b := range d.Bindings {
		binds[i] = compiledBind{rec: b.Rec, pattern: b.Pattern, expr: c.CompileExpr(b.Expr)}
	}

	return func(env *eval.Environment) *eval.Environment {
		values := make([]eval.Value, len(binds))
		for i, b := range binds {
			if b.rec {
				continue // val rec is handled inline below
			}
			values[i] = b.expr(env)
		}

		cur := env
		for i, b := range binds {
			if b.rec {
				cur = evalRecBind(b.pattern.(*ast.PatIdent).Name, b.expr, env)
				continue
			}
			next, ok := eval.Match(b.pattern, values[i], cur)
			if !ok {
				panic(&eval.Error{Kind: eval.NonexhaustiveMatch, Message: "val binding pattern did not match its value"})
			}
			cur = next
		}
		return cur
	}
}

// evalRecBind implements spec.md §4.4's back-patch: name is bound to a
// placeholder *eval.Closure before expr (always a compiled `fn`) runs, so
// the closure's own captured environment already contains name; once expr
// produces the real closure, the placeholder's fields are overwritten
// in place — the one documented mutation exception (spec.md §5) — so every
// environment frame that already captured the placeholder pointer now
// observes a complete, self-referential closure.
func evalRecBind(name string, expr eval.Code, env *eval.Environment) *eval.Environment {
	placeholder := &eval.Closure{}
	selfEnv := env.Extend(name, placeholder)
	v := expr(selfEnv).(*eval.Closure)
	placeholder.Param, placeholder.Body, placeholder.Env = v.Param, v.Body, v.Env
	return selfEnv
}

// compileDatatypeDecl binds each constructor named in d: a nullary
// constructor is a constant tagged value, a unary constructor a Builtin
// that tags its argument (spec.md §4.4: "a nullary constructor is a
// constant value tagged with its name; a unary constructor is a unary
// function producing the tagged value").
func (c *Compiler) compileDatatypeDecl(d *ast.DatatypeDecl) func(*eval.Environment) *eval.Environment {
	return func(env *eval.Environment) *eval.Environment {
		cur := env
		for _, b := range d.Binds {
			for _, ctor := range b.Ctors {
				name := ctor.Name
				if ctor.Arg == nil {
					cur = cur.Extend(name, eval.Con{Name: name})
					continue
				}
				cur = cur.Extend(name, eval.Builtin{Name: name, Fn: func(arg eval.Value) eval.Value {
					return eval.Con{Name: name, Arg: arg}
				}})
			}
		}
		return cur
	}
}
