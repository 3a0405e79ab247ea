package eval

// Environment is the evaluation-side twin of internal/infer.Env (spec.md
// §3.5): an immutable singly-linked frame binding one name to one Value.
// A nil *Environment is the empty environment; Extend never mutates its
// receiver, so a Closure can safely capture a pointer to any frame and
// have later extensions of that frame (by a sibling declaration) remain
// invisible to it.
type Environment struct {
	parent *Environment
	name   string
	value  Value
}

// Extend returns a new environment with name bound to v, shadowing any
// outer binding of the same name.
func (e *Environment) Extend(name string, v Value) *Environment {
	return &Environment{parent: e, name: name, value: v}
}

// Lookup walks from the newest frame outward, per spec.md §3.5.
func (e *Environment) Lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// MustLookup is get(name) (spec.md §4.4): type inference guarantees the
// name is bound, so a miss here indicates a compiler/inferencer bug, not a
// user-facing failure — it panics rather than returning a Failure value.
func (e *Environment) MustLookup(name string) Value {
	v, ok := e.Lookup(name)
	if !ok {
		panic("eval: unbound name " + name + " reached the evaluator (inference should have rejected this program)")
	}
	return v
}
