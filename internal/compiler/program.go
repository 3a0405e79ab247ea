package compiler

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/eval"
)

// CompileStatement lowers one type-checked top-level declaration (as
// produced by internal/infer.Infer, with any `fun` already desugared to
// `val rec`) into the environment transform internal/session runs against
// its persistent evaluation environment.
func (c *Compiler) CompileStatement(d ast.Decl) func(*eval.Environment) *eval.Environment {
	return c.compileLocalDecl(d)
}
