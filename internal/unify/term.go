// Package unify implements the first-order unifier of spec.md §4.2: a
// small term language (variables and tagged n-ary sequences) and a
// Martelli–Montanari solver with occurs check. It has no knowledge of
// Morel's ML-specific type representation — internal/types converts
// between its Type and this package's Term at the boundary — which keeps
// the unification algorithm, a general-purpose piece of machinery, free of
// any language-specific concern (spec.md §2 describes C3 as a component
// internal/infer merely uses, not one that knows about ML typing rules).
package unify

import (
	"fmt"
	"sort"
	"strings"
)

// VarID identifies a unification variable. Identity only: two VarIDs are
// the same variable iff they compare equal.
type VarID uint64

// Term is either a Var or a Seq. Implementations are value types so a Term
// can be used as a map key and compared with ==.
type Term interface {
	isTerm()
	String() string
}

// Var is a unification variable.
type Var struct {
	ID VarID
}

func (Var) isTerm() {}
func (v Var) String() string { return fmt.Sprintf("$%d", v.ID) }

// Seq is a compound term `op(t1, ..., tn)`; a zero-arity Seq is an atom
// identified by Op alone (e.g. the primitive type "int").
type Seq struct {
	Op   string
	Args []Term
}

func (Seq) isTerm() {}

func (s Seq) String() string {
	if len(s.Args) == 0 {
		return s.Op
	}
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return s.Op + "(" + strings.Join(parts, ", ") + ")"
}

// RecordOp builds the operator string for a record term: labels are baked
// into the operator itself, sorted, so that two record Seqs denote the same
// shape iff their Op strings are equal (spec.md §4.2 invariant iii).
func RecordOp(labels []string) string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)
	return "record:" + strings.Join(sorted, ":")
}

var varCounter uint64

// NewVar allocates a fresh, globally unique Var. A package-level counter is
// adequate here: the unifier's scratch state (spec.md §5) is confined to a
// single top-level statement, and distinctness across statements is
// harmless since stale Vars are never compared to fresh ones.
func NewVar() Var {
	varCounter++
	return Var{ID: VarID(varCounter)}
}
