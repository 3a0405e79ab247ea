// Package compiler lowers a type-checked AST (as produced by
// internal/infer, fun already desugared to val rec) into the Code closures
// internal/eval executes (spec.md §4.4). Like internal/ast and
// internal/infer, it dispatches with one type switch per AST category —
// never a visitor — and the switch is walked exactly once, at compile
// time; nothing in internal/eval ever inspects an *ast.Node again.
package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/types"
)

// Compiler holds the TypeMap of the statement currently being compiled, so
// that overloaded arithmetic (spec.md §4.3: "if any argument is real, the
// result is real") can be resolved once, at compile time, into a
// monomorphic Code unit rather than re-dispatched on every call.
type Compiler struct {
	types *infer.TypeMap
}

// New builds a Compiler for one statement's TypeMap. A fresh Compiler is
// expected per statement — exactly the granularity internal/infer.Infer
// itself operates at.
func New(tm *infer.TypeMap) *Compiler {
	return &Compiler{types: tm}
}

// isRealTyped reports whether node's resolved type is `real`, the
// compile-time decision that picks the real arm of an overloaded
// arithmetic primitive (spec.md §4.3/§4.4).
func (c *Compiler) isRealTyped(n ast.Node) bool {
	t, ok := c.types.TypeOf(n)
	if !ok {
		return false
	}
	p, ok := t.(types.Prim)
	return ok && p == types.Real
}
