package ast

import "github.com/morel-lang/morel/internal/token"

// Decl is the marker interface for every declaration variant.
type Decl interface {
	Node
	declNode()
}

// ValBind is one `pat = exp` (or, when Rec is set, `rec pat = exp`) binding
// of a `val` declaration.
type ValBind struct {
	Rec     bool
	Pattern Pattern
	Expr    Expr
}

// ValDecl is `val b1 and b2 and ...`. Per spec.md §5, the right-hand sides
// of a single ValDecl are evaluated against the environment that existed
// *before* the whole group — none sees another binding in the same group.
type ValDecl struct {
	P        token.Position
	Bindings []ValBind
}

func (n *ValDecl) Pos() token.Position { return n.P }
func (n *ValDecl) declNode()           {}

// FunClause is one clause `name pat1 pat2 ... = body` of a funBind.
type FunClause struct {
	P        token.Position
	Patterns []Pattern
	Body     Expr
}

// FunBind is the set of clauses sharing one function name.
type FunBind struct {
	Name    string
	Clauses []FunClause
}

// FunDecl is `fun f1 ... | f1 ... and f2 ... | f2 ...`. It is desugared to
// a ValDecl of `val rec` bindings by internal/infer before type inference
// proper runs (spec.md §4.3 step 3); this node only ever appears in the
// AST the parser produces, never in the inferencer's output.
type FunDecl struct {
	P     token.Position
	Binds []FunBind
}

func (n *FunDecl) Pos() token.Position { return n.P }
func (n *FunDecl) declNode()           {}

// CtorDecl is one constructor alternative of a datBind; Arg is nil for a
// nullary constructor.
type CtorDecl struct {
	Name string
	Arg  TypeExpr
}

// DatBind is one `('a,'b) name = C1 of ty1 | C2 | ...` binding.
type DatBind struct {
	TypeVars []string
	Name     string
	Ctors    []CtorDecl
}

// DatatypeDecl is `datatype d1 and d2 and ...`.
type DatatypeDecl struct {
	P     token.Position
	Binds []DatBind
}

func (n *DatatypeDecl) Pos() token.Position { return n.P }
func (n *DatatypeDecl) declNode()           {}
