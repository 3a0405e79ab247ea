package ast

import "github.com/morel-lang/morel/internal/token"

// TypeExpr is the marker interface for every type-expression variant
// written in source (as opposed to internal/types.Type, the inferencer's
// internal representation).
type TypeExpr interface {
	Node
	typeExprNode()
}

// TyVar is `'a`.
type TyVar struct {
	P    token.Position
	Name string
}

func (n *TyVar) Pos() token.Position { return n.P }
func (n *TyVar) typeExprNode()       {}

// TyNamed is a named type constructor applied to zero or more arguments,
// e.g. `int`, `'a list`, `('a,'b) tree`.
type TyNamed struct {
	P     token.Position
	Name  string
	Args  []TypeExpr
}

func (n *TyNamed) Pos() token.Position { return n.P }
func (n *TyNamed) typeExprNode()       {}

// TyTuple is `ty1 * ty2 * ...`, n >= 2.
type TyTuple struct {
	P    token.Position
	Elts []TypeExpr
}

func (n *TyTuple) Pos() token.Position { return n.P }
func (n *TyTuple) typeExprNode()       {}

// TyFunc is `dom -> cod`.
type TyFunc struct {
	P             token.Position
	Domain, Codomain TypeExpr
}

func (n *TyFunc) Pos() token.Position { return n.P }
func (n *TyFunc) typeExprNode()       {}

// TyRecordField is one label/type pair of a TyRecord.
type TyRecordField struct {
	Label string
	Type  TypeExpr
}

// TyRecord is `{l1:ty1, l2:ty2, ...}`.
type TyRecord struct {
	P      token.Position
	Fields []TyRecordField
}

func (n *TyRecord) Pos() token.Position { return n.P }
func (n *TyRecord) typeExprNode()       {}
