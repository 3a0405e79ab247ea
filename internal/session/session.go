// Package session drives one REPL-style conversation with the engine: it
// owns the persistent type and evaluation environments, advances both only
// on a statement that succeeds end-to-end, and reports spec.md §6.2's
// narrow (name, type, value) | structured-error contract to its caller.
package session

import (
	"github.com/google/uuid"

	"github.com/morel-lang/morel/internal/ast"
	"github.com/morel-lang/morel/internal/builtins"
	"github.com/morel-lang/morel/internal/compiler"
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/infer"
	"github.com/morel-lang/morel/internal/merr"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/props"
)

// Binding is one name a successful statement exposed, with its generalized
// type (rendered) and runtime value.
type Binding struct {
	Name  string
	Type  string
	Value eval.Value
}

// Result is what Submit returns for one statement that made it all the way
// through parse/type/eval without failing.
type Result struct {
	ID       uuid.UUID
	Bindings []Binding
}

// Session is not safe for concurrent use — exactly one statement is ever in
// flight, matching the sequential "clean slate on failure" discipline
// spec.md §7 describes.
type Session struct {
	id       uuid.UUID
	typeEnv  *infer.Env
	valueEnv *eval.Environment
	props    *props.Table
}

// New returns a fresh Session seeded with every built-in binding of
// spec.md §6.3, built from its own property table so Sys.set in one
// session never leaks into another.
func New() *Session {
	pt := props.New()
	entries := builtins.All(pt)
	return &Session{
		id:       uuid.New(),
		typeEnv:  builtins.TypeEnv(nil, entries),
		valueEnv: builtins.ValueEnv(nil, entries),
		props:    pt,
	}
}

// ID is the uuid.UUID this session is correlated under. Every Result that
// Submit returns carries it; a *merr.Error does not.
func (s *Session) ID() uuid.UUID { return s.id }

// Props exposes the session's property table, e.g. for a CLI banner that
// wants to show the active lineWidth before the first prompt.
func (s *Session) Props() *props.Table { return s.props }

// Extend folds additional bindings (e.g. internal/foreign's table values,
// spec.md §6.4) into both environments. Like any other binding, an entry
// here is visible to every statement submitted afterward; it is never
// generalized beyond whatever Scheme it already carries.
func (s *Session) Extend(entries []builtins.Entry) {
	s.typeEnv = builtins.TypeEnv(s.typeEnv, entries)
	s.valueEnv = builtins.ValueEnv(s.valueEnv, entries)
}

// Submit parses, type-checks, compiles, and evaluates one statement
// (spec.md §6.2). On any failure it returns a *merr.Error and leaves the
// session's environments exactly as they were; on success it advances both
// environments and returns one Binding per name the statement exposed (a
// bare expression exposes a single binding named "it").
func (s *Session) Submit(src string) (*Result, error) {
	decl, err := parser.ParseStatement(src)
	if err != nil {
		return nil, merr.Translate(err)
	}
	return s.SubmitDecl(decl)
}

// SubmitDecl runs the same type/eval pipeline as Submit, starting from an
// already-parsed declaration — the entry point a driver that parsed a whole
// file up front (parser.ParseProgram) uses to submit its statements one at
// a time.
func (s *Session) SubmitDecl(decl ast.Decl) (*Result, error) {
	res, err := infer.Infer(decl, s.typeEnv)
	if err != nil {
		return nil, merr.Translate(err)
	}

	step := compiler.New(res.TypeMap).CompileStatement(res.Decl)

	newValueEnv, err := eval.RunDecl(step, s.valueEnv)
	if err != nil {
		return nil, merr.Translate(err)
	}

	bindings := make([]Binding, len(res.Bindings))
	for i, b := range res.Bindings {
		v, _ := newValueEnv.Lookup(b.Name)
		bindings[i] = Binding{Name: b.Name, Type: b.Scheme.String(), Value: v}
	}

	s.typeEnv = res.Env
	s.valueEnv = newValueEnv
	return &Result{ID: s.id, Bindings: bindings}, nil
}
