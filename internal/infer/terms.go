package infer

import (
	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/types"
	"github.com/morel-lang/morel/internal/unify"
)

// Inferencer accumulates the global constraint set of spec.md §4.3 step 1
// while walking a single top-level statement, then solves it once.
type Inferencer struct {
	env          *Env
	constraints  []unify.Constraint
	actions      map[unify.VarID]unify.Action
	nodeType     map[ast.Node]types.Type
	recordLabels map[string][]string
	datatypes    map[string]*datatypeInfo
	nextCtorTag  int
	numericVars  []unify.VarID
}

// datatypeInfo is per-datatype bookkeeping kept across inference of one
// statement (constructor tags, arities) so pattern/constructor resolution
// and the compiler can agree on representation.
type datatypeInfo struct {
	name     string
	typeVars []string
	ctors    []string // declaration order
}

func newInferencer(env *Env) *Inferencer {
	return &Inferencer{
		env:          env,
		actions:      map[unify.VarID]unify.Action{},
		nodeType:     map[ast.Node]types.Type{},
		recordLabels: map[string][]string{},
		datatypes:    map[string]*datatypeInfo{},
	}
}

func (inf *Inferencer) fresh() types.Type {
	return types.Var{ID: unify.NewVar().ID}
}

// markNumeric records t as one of the overloaded arithmetic primitives'
// shared result variables, so Infer can close it to int/real (defaulting to
// int if nothing else pins it down) once solving finishes — see
// resolveNumericVars.
func (inf *Inferencer) markNumeric(t types.Type) {
	if v, ok := t.(types.Var); ok {
		inf.numericVars = append(inf.numericVars, v.ID)
	}
}

// toTerm lowers t to a unify.Term, recording the label list of every record
// shape encountered so FromTerm can recover it after solving (unify.Seq
// only carries the sorted label string, not the list itself).
func (inf *Inferencer) toTerm(t types.Type) unify.Term {
	switch x := t.(type) {
	case types.Var:
		return unify.Var{ID: x.ID}
	case types.Prim:
		return unify.Seq{Op: "prim:" + x.Name}
	case types.Func:
		return unify.Seq{Op: "->", Args: []unify.Term{inf.toTerm(x.Dom), inf.toTerm(x.Cod)}}
	case types.Tuple:
		// Lowered through the record encoding (spec.md §3.2: a tuple and
		// the record {1=..., 2=..., ...} denote the same selector target),
		// so this reuses the types.Record branch below.
		fields := make([]types.RecordField, len(x.Elts))
		for i, e := range x.Elts {
			fields[i] = types.RecordField{Label: ast.TupleLabel(i + 1), Type: e}
		}
		return inf.toTerm(types.NewRecord(fields))
	case types.Record:
		labels := make([]string, len(x.Fields))
		args := make([]unify.Term, len(x.Fields))
		for i, f := range x.Fields {
			labels[i] = f.Label
			args[i] = inf.toTerm(f.Type)
		}
		op := unify.RecordOp(labels)
		inf.recordLabels[op] = labels
		return unify.Seq{Op: op, Args: args}
	case types.Named:
		args := make([]unify.Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = inf.toTerm(a)
		}
		return unify.Seq{Op: "named:" + x.Name, Args: args}
	case types.Temporary:
		return unify.Seq{Op: "named:" + x.Name}
	}
	panic("infer: unknown Type implementation")
}

func (inf *Inferencer) fromTerm(t unify.Term) types.Type {
	return types.FromTerm(t, func(op string) []string { return inf.recordLabels[op] })
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

// equate records `a = b`; why annotates a Mismatch error should this
// equation fail to solve.
func (inf *Inferencer) equate(a, b types.Type, why string) {
	inf.constraints = append(inf.constraints, unify.Constraint{A: inf.toTerm(a), B: inf.toTerm(b), Why: why})
}

// setType records node's pre-solve (variable-laden) type.
func (inf *Inferencer) setType(node ast.Node, t types.Type) {
	inf.nodeType[node] = t
}
