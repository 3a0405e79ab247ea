package types

import "github.com/morel-lang/morel/internal/unify"

// ApplySubst resolves every Var in t through s, producing the final,
// concrete (as concrete as unification got it) Type. labelsOf is threaded
// through to FromTerm for any record Seq encountered.
func ApplySubst(t Type, s unify.Subst, labelsOf func(op string) []string) Type {
	return FromTerm(s.Apply(ToTerm(t)), labelsOf)
}

// Instantiate replaces a Scheme's quantified variables with fresh ones,
// turning a polymorphic binding into a monomorphic Type usable at one call
// site (spec.md §4.1: "each use of a let-bound identifier gets its own
// fresh copy of its scheme's variables").
func Instantiate(sch Scheme) Type {
	if len(sch.Vars) == 0 {
		return sch.Body
	}
	fresh := map[unify.VarID]unify.VarID{}
	for _, v := range sch.Vars {
		fresh[v] = unify.NewVar().ID
	}
	var rename func(Type) Type
	rename = func(t Type) Type {
		switch x := t.(type) {
		case Var:
			if nv, ok := fresh[x.ID]; ok {
				return Var{ID: nv}
			}
			return x
		case Func:
			return Func{Dom: rename(x.Dom), Cod: rename(x.Cod)}
		case Tuple:
			elts := make([]Type, len(x.Elts))
			for i, e := range x.Elts {
				elts[i] = rename(e)
			}
			return Tuple{Elts: elts}
		case Record:
			fields := make([]RecordField, len(x.Fields))
			for i, f := range x.Fields {
				fields[i] = RecordField{Label: f.Label, Type: rename(f.Type)}
			}
			return Record{Fields: fields}
		case Named:
			args := make([]Type, len(x.Args))
			for i, a := range x.Args {
				args[i] = rename(a)
			}
			return Named{Name: x.Name, Args: args}
		}
		return t
	}
	return rename(sch.Body)
}

// Generalize closes over every free variable of t not also free in env,
// producing the Scheme stored for a `let`/`val` binding (spec.md §4.1).
func Generalize(t Type, envFree map[unify.VarID]bool) Scheme {
	vars := FreeVars(t, envFree)
	return Scheme{Vars: vars, Body: t}
}

// Temporary is a placeholder type standing for a datatype name. Only
// internal/infer's toTerm accepts one; inferDatatypeDecl does not create
// any, since a constructor argument type refers to its own or a sibling
// datatype through that datatype's Named type directly.
type Temporary struct {
	Name string
}

func (Temporary) isType()        {}
func (t Temporary) String() string { return t.Name }
