package unify

import "fmt"

// Constraint is one equation `A = B` to be solved.
type Constraint struct {
	A, B Term
	// Why is an optional human-readable tag used only in Failure messages
	// (e.g. "if-branches", "application"); it carries no semantic weight.
	Why string
}

// Subst maps variables to fully-resolved terms. A solved Subst is
// idempotent: applying it twice to any term yields the same result as
// applying it once (spec.md §4.2 invariant i).
type Subst map[VarID]Term

// Apply resolves t through s to a fixpoint (s is already fully resolved by
// construction, so one pass suffices, but Apply tolerates a partially
// resolved Subst too — used while solving).
func (s Subst) Apply(t Term) Term {
	switch x := t.(type) {
	case Var:
		if bound, ok := s[x.ID]; ok {
			return s.Apply(bound)
		}
		return x
	case Seq:
		if len(x.Args) == 0 {
			return x
		}
		newArgs := make([]Term, len(x.Args))
		for i, a := range x.Args {
			newArgs[i] = s.Apply(a)
		}
		return Seq{Op: x.Op, Args: newArgs}
	default:
		return t
	}
}

// Failure reports the first irreconcilable pair of terms the solver found.
type Failure struct {
	A, B Term
	Why  string
}

func (f *Failure) Error() string {
	if f.Why != "" {
		return fmt.Sprintf("cannot unify %s and %s (%s)", f.A, f.B, f.Why)
	}
	return fmt.Sprintf("cannot unify %s and %s", f.A, f.B)
}

// OccursError is returned when a variable would have to unify with a term
// that mentions it.
type OccursError struct {
	V Var
	T Term
}

func (e *OccursError) Error() string {
	return fmt.Sprintf("occurs check failed: %s occurs in %s", e.V, e.T)
}

// Action is invoked once, after the variable it is registered against gets
// bound to a term. It may add further equations (via eq) that the solver
// will fold back into the fixpoint; this is the mechanism spec.md §4.3 uses
// to resolve a record-selector's slot once its argument's record shape is
// known.
type Action func(v Var, bound Term, eq func(a, b Term)) error

// Unify solves constraints to a Subst, running any actions registered for
// variables that get bound along the way, per spec.md §4.2.
func Unify(constraints []Constraint, actions map[VarID]Action) (Subst, error) {
	s := Subst{}
	queue := append([]Constraint(nil), constraints...)
	var boundOrder []VarID
	boundSeen := map[VarID]bool{}

	for {
		var err error
		queue, boundOrder, err = solveQueue(queue, s, boundOrder, boundSeen)
		if err != nil {
			return nil, err
		}
		if len(boundOrder) == 0 {
			return s, nil
		}
		pending := boundOrder
		boundOrder = nil
		var newEqs []Constraint
		for _, vid := range pending {
			act, ok := actions[vid]
			if !ok {
				continue
			}
			delete(actions, vid) // an action fires exactly once
			bound := s.Apply(Var{ID: vid})
			if err := act(Var{ID: vid}, bound, func(a, b Term) {
				newEqs = append(newEqs, Constraint{A: a, B: b})
			}); err != nil {
				return nil, err
			}
		}
		if len(newEqs) == 0 {
			return s, nil
		}
		queue = newEqs
	}
}

// solveQueue runs Martelli–Montanari decompose/swap/eliminate/delete to a
// fixpoint, recording into boundOrder (in binding order) every variable
// newly bound during this pass that has not been recorded before.
func solveQueue(queue []Constraint, s Subst, boundOrder []VarID, boundSeen map[VarID]bool) ([]Constraint, []VarID, error) {
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		a := s.Apply(c.A)
		b := s.Apply(c.B)

		switch {
		case equalTerms(a, b):
			// Delete: trivial equation.
			continue
		case isVar(a) && !isVar(b):
			v := a.(Var)
			t := b
			if occurs(v, t, s) {
				return nil, nil, &OccursError{V: v, T: t}
			}
			bindVar(s, v, t)
			if !boundSeen[v.ID] {
				boundSeen[v.ID] = true
				boundOrder = append(boundOrder, v.ID)
			}
		case !isVar(a) && isVar(b):
			v := b.(Var)
			t := a
			if occurs(v, t, s) {
				return nil, nil, &OccursError{V: v, T: t}
			}
			bindVar(s, v, t)
			if !boundSeen[v.ID] {
				boundSeen[v.ID] = true
				boundOrder = append(boundOrder, v.ID)
			}
		case isVar(a) && isVar(b):
			va, vb := a.(Var), b.(Var)
			bindVar(s, va, vb)
			if !boundSeen[va.ID] {
				boundSeen[va.ID] = true
				boundOrder = append(boundOrder, va.ID)
			}
		default:
			sa, sb := a.(Seq), b.(Seq)
			if sa.Op != sb.Op || len(sa.Args) != len(sb.Args) {
				return nil, nil, &Failure{A: a, B: b, Why: c.Why}
			}
			for i := range sa.Args {
				queue = append(queue, Constraint{A: sa.Args[i], B: sb.Args[i], Why: c.Why})
			}
		}
	}
	return queue, boundOrder, nil
}

func isVar(t Term) bool {
	_, ok := t.(Var)
	return ok
}

func equalTerms(a, b Term) bool {
	if va, ok := a.(Var); ok {
		if vb, ok := b.(Var); ok {
			return va.ID == vb.ID
		}
		return false
	}
	sa, ok := a.(Seq)
	if !ok {
		return false
	}
	sb, ok := b.(Seq)
	if !ok || sa.Op != sb.Op || len(sa.Args) != len(sb.Args) {
		return false
	}
	for i := range sa.Args {
		if !equalTerms(sa.Args[i], sb.Args[i]) {
			return false
		}
	}
	return true
}

func occurs(v Var, t Term, s Subst) bool {
	switch x := t.(type) {
	case Var:
		if x.ID == v.ID {
			return true
		}
		if bound, ok := s[x.ID]; ok {
			return occurs(v, bound, s)
		}
		return false
	case Seq:
		for _, a := range x.Args {
			if occurs(v, a, s) {
				return true
			}
		}
		return false
	}
	return false
}

// bindVar records v -> t and, to keep the accumulated substitution fully
// resolved (and therefore idempotent), rewrites any existing binding that
// mentions v.
func bindVar(s Subst, v Var, t Term) {
	s[v.ID] = t
	for id, bound := range s {
		if id == v.ID {
			continue
		}
		s[id] = substituteOne(bound, v, t)
	}
}

func substituteOne(t Term, v Var, repl Term) Term {
	switch x := t.(type) {
	case Var:
		if x.ID == v.ID {
			return repl
		}
		return x
	case Seq:
		if len(x.Args) == 0 {
			return x
		}
		newArgs := make([]Term, len(x.Args))
		changed := false
		for i, a := range x.Args {
			newArgs[i] = substituteOne(a, v, repl)
			if newArgs[i] != a {
				changed = true
			}
		}
		if !changed {
			return x
		}
		return Seq{Op: x.Op, Args: newArgs}
	}
	return t
}
