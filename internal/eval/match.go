package eval

import (
	"math/big"

	"github.com/morel-lang/morel/internal/ast"
)

// Match attempts to match pat against v, returning an environment extended
// with every name pat binds and true on success, or (env, false) on
// failure — matching spec.md §4.4's pattern-matching discipline exactly:
// "a pattern either succeeds and produces a set of new bindings, or fails
// locally without effect". A failed match never partially extends env.
func Match(pat ast.Pattern, v Value, env *Environment) (*Environment, bool) {
	switch p := pat.(type) {
	case *ast.PatWildcard:
		return env, true

	case *ast.PatIdent:
		return env.Extend(p.Name, v), true

	case *ast.PatLiteral:
		return env, Equal(LiteralValue(p.Kind, p.Value), v)

	case *ast.PatTuple:
		rec, ok := v.(Record)
		if !ok || len(rec.Fields) != len(p.Elts) {
			return env, false
		}
		cur := env
		for i, sub := range p.Elts {
			next, ok := Match(sub, rec.Field(i), cur)
			if !ok {
				return env, false
			}
			cur = next
		}
		return cur, true

	case *ast.PatList:
		l, ok := v.(List)
		if !ok || len(l.Elts) != len(p.Elts) {
			return env, false
		}
		cur := env
		for i, sub := range p.Elts {
			next, ok := Match(sub, l.Elts[i], cur)
			if !ok {
				return env, false
			}
			cur = next
		}
		return cur, true

	case *ast.PatRecord:
		rec, ok := v.(Record)
		if !ok {
			return env, false
		}
		cur := env
		for _, pf := range p.Fields {
			fv, ok := lookupField(rec, pf.Label)
			if !ok {
				return env, false
			}
			next, ok := Match(pf.Pattern, fv, cur)
			if !ok {
				return env, false
			}
			cur = next
		}
		return cur, true

	case *ast.PatCon:
		c, ok := v.(Con)
		if !ok || c.Name != p.Name {
			return env, false
		}
		if p.Arg == nil {
			return env, c.Arg == nil
		}
		return Match(p.Arg, c.Arg, env)

	case *ast.PatCons:
		l, ok := v.(List)
		if !ok || len(l.Elts) == 0 {
			return env, false
		}
		next, ok := Match(p.Head, l.Elts[0], env)
		if !ok {
			return env, false
		}
		return Match(p.Tail, List{Elts: l.Elts[1:]}, next)

	case *ast.PatInfix:
		c, ok := v.(Con)
		if !ok || c.Name != p.Op {
			return env, false
		}
		pair, ok := c.Arg.(Record)
		if !ok || len(pair.Fields) != 2 {
			return env, false
		}
		next, ok := Match(p.A, pair.Field(0), env)
		if !ok {
			return env, false
		}
		return Match(p.B, pair.Field(1), next)

	case *ast.PatLayered:
		layered := env.Extend(p.Name, v)
		return Match(p.Pattern, v, layered)

	case *ast.PatAnnotated:
		return Match(p.Pattern, v, env)
	}
	panic("eval: unknown Pattern implementation")
}

func lookupField(rec Record, label string) (Value, bool) {
	for _, f := range rec.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return nil, false
}

// LiteralValue converts an ast.Literal/PatLiteral payload to a Value,
// shared by the compiler's literal Code and by literal-pattern matching.
func LiteralValue(kind ast.LitKind, payload interface{}) Value {
	switch kind {
	case ast.LitInt:
		return Int{V: payload.(*big.Int)}
	case ast.LitReal:
		return Real{V: payload.(*big.Float)}
	case ast.LitString:
		return Str{V: payload.(string)}
	case ast.LitChar:
		return Char{V: payload.(rune)}
	case ast.LitBool:
		return BoolOf(payload.(bool))
	case ast.LitUnit:
		return Unit{}
	}
	panic("eval: unknown literal kind")
}
