package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Solving {v = t} with v not occurring in t yields a substitution that maps
// v to t and nothing else.
func TestUnifySimpleBinding(t *testing.T) {
	v := NewVar()
	tm := Seq{Op: "prim:int"}

	s, err := Unify([]Constraint{{A: v, B: tm}}, nil)
	require.NoError(t, err)
	assert.Equal(t, tm, s.Apply(v))
	assert.Len(t, s, 1)
}

// Solving {f(x, int) = f(bool, y)} decomposes the outer Seq and yields
// x -> bool, y -> int.
func TestUnifyDecomposesSeq(t *testing.T) {
	x, y := NewVar(), NewVar()
	intT := Seq{Op: "prim:int"}
	boolT := Seq{Op: "prim:bool"}

	lhs := Seq{Op: "fn", Args: []Term{x, intT}}
	rhs := Seq{Op: "fn", Args: []Term{boolT, y}}

	s, err := Unify([]Constraint{{A: lhs, B: rhs}}, nil)
	require.NoError(t, err)
	assert.Equal(t, boolT, s.Apply(x))
	assert.Equal(t, intT, s.Apply(y))
}

// Solving {v = f(v)} fails the occurs check rather than looping or producing
// an infinite term.
func TestUnifyOccursCheckFails(t *testing.T) {
	v := NewVar()
	self := Seq{Op: "f", Args: []Term{v}}

	_, err := Unify([]Constraint{{A: v, B: self}}, nil)
	require.Error(t, err)
	var occ *OccursError
	assert.ErrorAs(t, err, &occ)
	assert.Equal(t, v, occ.V)
}

// A solved Subst is idempotent: applying it to an already-substituted term
// is a no-op.
func TestSubstApplyIsIdempotent(t *testing.T) {
	x, y := NewVar(), NewVar()
	intT := Seq{Op: "prim:int"}
	listOfX := Seq{Op: "list", Args: []Term{x}}

	s, err := Unify([]Constraint{{A: x, B: intT}, {A: y, B: listOfX}}, nil)
	require.NoError(t, err)

	once := s.Apply(y)
	twice := s.Apply(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, Seq{Op: "list", Args: []Term{intT}}, once)
}

// An Action registered for a variable fires exactly once, after that
// variable is bound, and can inject further equations the solver folds back
// into the fixpoint.
func TestActionFiresOnceAfterBinding(t *testing.T) {
	v := NewVar()
	result := NewVar()
	calls := 0

	actions := map[VarID]Action{
		v.ID: func(bound Var, term Term, eq func(a, b Term)) error {
			calls++
			eq(result, term)
			return nil
		},
	}

	s, err := Unify([]Constraint{{A: v, B: Seq{Op: "prim:int"}}}, actions)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, Seq{Op: "prim:int"}, s.Apply(result))
}

// A variable that never gets bound during solving never fires its action —
// the post-solve defaulting sweep in internal/infer exists precisely because
// this case is invisible to Action.
func TestActionNeverFiresForUnboundVar(t *testing.T) {
	v := NewVar()
	other := NewVar()
	calls := 0

	actions := map[VarID]Action{
		v.ID: func(bound Var, term Term, eq func(a, b Term)) error {
			calls++
			return nil
		},
	}

	_, err := Unify([]Constraint{{A: other, B: Seq{Op: "prim:int"}}}, actions)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
}
