package ast

import "github.com/morel-lang/morel/internal/token"

// Pattern is the marker interface for every pattern variant (spec.md §3.2).
type Pattern interface {
	Node
	patternNode()
}

// PatWildcard is `_`.
type PatWildcard struct{ P token.Position }

func (n *PatWildcard) Pos() token.Position { return n.P }
func (n *PatWildcard) patternNode()        {}

// PatIdent binds the whole matched value to Name.
type PatIdent struct {
	P    token.Position
	Name string
}

func (n *PatIdent) Pos() token.Position { return n.P }
func (n *PatIdent) patternNode()        {}

// PatLiteral requires value equality with Value (same encoding as Literal).
type PatLiteral struct {
	P     token.Position
	Kind  LitKind
	Value interface{}
}

func (n *PatLiteral) Pos() token.Position { return n.P }
func (n *PatLiteral) patternNode()        {}

// PatTuple matches a tuple component-wise.
type PatTuple struct {
	P    token.Position
	Elts []Pattern
}

func (n *PatTuple) Pos() token.Position { return n.P }
func (n *PatTuple) patternNode()        {}

// PatList matches a list of exactly len(Elts) elements.
type PatList struct {
	P    token.Position
	Elts []Pattern
}

func (n *PatList) Pos() token.Position { return n.P }
func (n *PatList) patternNode()        {}

// PatRecordField is one label/pattern pair of a PatRecord.
type PatRecordField struct {
	Label   string
	Pattern Pattern
}

// PatRecord matches a record; if Ellipsis is set, extra fields in the
// scrutinee are accepted (the "flex record" case, spec.md §4.3).
type PatRecord struct {
	P        token.Position
	Fields   []PatRecordField
	Ellipsis bool
}

func (n *PatRecord) Pos() token.Position { return n.P }
func (n *PatRecord) patternNode()        {}

// PatCon matches a tagged constructor application; Arg is nil for a
// constructor with no payload (spec.md's constructor0).
type PatCon struct {
	P    token.Position
	Name string
	Arg  Pattern // nil for nullary constructors
}

func (n *PatCon) Pos() token.Position { return n.P }
func (n *PatCon) patternNode()        {}

// PatCons is `h :: t`.
type PatCons struct {
	P    token.Position
	Head Pattern
	Tail Pattern
}

func (n *PatCons) Pos() token.Position { return n.P }
func (n *PatCons) patternNode()        {}

// PatInfix is a user-defined infix constructor pattern `p1 op p2`, distinct
// from PatCons only in that Op need not be "::".
type PatInfix struct {
	P      token.Position
	Op     string
	A, B   Pattern
}

func (n *PatInfix) Pos() token.Position { return n.P }
func (n *PatInfix) patternNode()        {}

// PatLayered is `x as p`.
type PatLayered struct {
	P       token.Position
	Name    string
	Pattern Pattern
}

func (n *PatLayered) Pos() token.Position { return n.P }
func (n *PatLayered) patternNode()        {}

// PatAnnotated is `(p : ty)`.
type PatAnnotated struct {
	P       token.Position
	Pattern Pattern
	Type    TypeExpr
}

func (n *PatAnnotated) Pos() token.Position { return n.P }
func (n *PatAnnotated) patternNode()        {}

// NewPatRecord sorts fields by label, mirroring NewRecord's invariant.
func NewPatRecord(p token.Position, fields []PatRecordField, ellipsis bool) *PatRecord {
	sorted := make([]PatRecordField, len(fields))
	copy(sorted, fields)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].Label > sorted[j].Label; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return &PatRecord{P: p, Fields: sorted, Ellipsis: ellipsis}
}
