package eval

import (
	"math/big"
)

// Equal is structural value equality, used by literal patterns and by the
// `=`/`<>` operators. Closures and Builtins are never compared (the type
// system never equates a function type against itself via `=`).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x.V.Cmp(y.V) == 0
	case Real:
		y, ok := b.(Real)
		return ok && x.V.Cmp(y.V) == 0
	case Str:
		y, ok := b.(Str)
		return ok && x.V == y.V
	case Char:
		y, ok := b.(Char)
		return ok && x.V == y.V
	case Bool:
		y, ok := b.(Bool)
		return ok && x.V == y.V
	case Unit:
		_, ok := b.(Unit)
		return ok
	case Record:
		y, ok := b.(Record)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i, f := range x.Fields {
			if f.Label != y.Fields[i].Label || !Equal(f.Value, y.Fields[i].Value) {
				return false
			}
		}
		return true
	case List:
		y, ok := b.(List)
		if !ok || len(x.Elts) != len(y.Elts) {
			return false
		}
		for i, e := range x.Elts {
			if !Equal(e, y.Elts[i]) {
				return false
			}
		}
		return true
	case Con:
		y, ok := b.(Con)
		if !ok || x.Name != y.Name {
			return false
		}
		if x.Arg == nil || y.Arg == nil {
			return x.Arg == nil && y.Arg == nil
		}
		return Equal(x.Arg, y.Arg)
	}
	return false
}

// Less is the strict order used by `<`/`<=`/`>`/`>=`: defined over int,
// real, string, and char, the only types spec.md §6.1's comparison
// operators are ever applied to in a well-typed program.
func Less(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		return x.V.Cmp(b.(Int).V) < 0
	case Real:
		return x.V.Cmp(b.(Real).V) < 0
	case Str:
		return x.V < b.(Str).V
	case Char:
		return x.V < b.(Char).V
	}
	panic("eval: comparison applied to a non-orderable value (inference should have rejected this program)")
}

// AddInt/SubInt/... implement the integer arm of the overloaded arithmetic
// primitives (spec.md §4.4: "dispatch to integer or real operations per the
// inferred type" — internal/compiler picks which arm to compile into a
// given Infix node by consulting the TypeMap).
func AddInt(a, b Int) Int { return Int{V: new(big.Int).Add(a.V, b.V)} }
func SubInt(a, b Int) Int { return Int{V: new(big.Int).Sub(a.V, b.V)} }
func MulInt(a, b Int) Int { return Int{V: new(big.Int).Mul(a.V, b.V)} }
func NegInt(a Int) Int    { return Int{V: new(big.Int).Neg(a.V)} }

// DivInt/ModInt implement SML's `div`/`mod`, which floor toward negative
// infinity rather than truncating toward zero like Go's native `/`/`%`.
func DivInt(a, b Int) Int {
	q, m := new(big.Int), new(big.Int)
	q.QuoRem(a.V, b.V, m)
	if m.Sign() != 0 && (m.Sign() < 0) != (b.V.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return Int{V: q}
}

func ModInt(a, b Int) Int {
	m := new(big.Int).Mod(a.V, b.V)
	if m.Sign() != 0 && b.V.Sign() < 0 {
		m.Add(m, b.V)
	}
	return Int{V: m}
}

func AddReal(a, b Real) Real { return Real{V: new(big.Float).Add(a.V, b.V)} }
func SubReal(a, b Real) Real { return Real{V: new(big.Float).Sub(a.V, b.V)} }
func MulReal(a, b Real) Real { return Real{V: new(big.Float).Mul(a.V, b.V)} }
func DivReal(a, b Real) Real { return Real{V: new(big.Float).Quo(a.V, b.V)} }
func NegReal(a Real) Real    { return Real{V: new(big.Float).Neg(a.V)} }
