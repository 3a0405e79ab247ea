package eval

import (
	"github.com/morel-lang/morel/internal/token"
)

// Code is the unit internal/compiler lowers every typed AST node to: a
// function from an evaluation environment to a value (spec.md §4.4).
// There is no intermediate instruction set — Code units close directly
// over whatever sub-Code and literal data they need at compile time, so
// "executing" a program is just calling the outermost Code.
type Code func(*Environment) Value

// Apply implements apply(fn, arg) (spec.md §4.4): on a Closure, it matches
// arg against the parameter pattern inside the captured environment and
// evaluates the body; on a Builtin, it invokes the host implementation
// directly. pos is the application site, used only to report a
// NonexhaustiveMatch if the (normally irrefutable) parameter pattern
// rejects arg.
func Apply(fn Value, arg Value, pos token.Position) Value {
	switch f := fn.(type) {
	case *Closure:
		env, ok := Match(f.Param, arg, f.Env)
		if !ok {
			fail(NonexhaustiveMatch, pos, "function argument did not match its parameter pattern")
		}
		return f.Body(env)
	case Builtin:
		return f.Fn(arg)
	}
	panic("eval: apply of a non-function value (inference should have rejected this program)")
}

// Run executes top, recovering a panicked *Error into a returned error —
// the evaluator's counterpart to internal/parser's and internal/infer's
// panic/recover idiom for reporting failures without local recovery
// (spec.md §7: "no local recovery").
func Run(top Code, env *Environment) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return top(env), nil
}

// RunDecl is Run's counterpart for a declaration step (internal/compiler's
// CompileStatement result): it recovers a panicked *Error the same way, and
// on failure returns the original env untouched, so a caller never needs to
// special-case "did the environment already change before this failed".
func RunDecl(step func(*Environment) *Environment, env *Environment) (result *Environment, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				result = env
				return
			}
			panic(r)
		}
	}()
	return step(env), nil
}
