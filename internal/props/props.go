// Package props is the runtime-mutable settings table spec.md §6.5
// describes: `Sys.set`/`Sys.show`/`Sys.unset`/`Sys.showAll` read and write
// it. A Table is the session's one mutable piece of state outside the
// evaluation environment itself — properties affect how the REPL formats
// output, not what a program computes, so they live apart from
// internal/eval's otherwise-immutable Environment.
package props

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Value is the dynamic type a property holds: a bool, an int, or a string.
type Value struct {
	Bool   *bool
	Int    *int
	String *string
}

func BoolValue(b bool) Value     { return Value{Bool: &b} }
func IntValue(i int) Value       { return Value{Int: &i} }
func StringValue(s string) Value { return Value{String: &s} }

func (v Value) String() string {
	switch {
	case v.Bool != nil:
		return fmt.Sprintf("%v", *v.Bool)
	case v.Int != nil:
		return humanize.Comma(int64(*v.Int))
	case v.String != nil:
		return *v.String
	}
	return "<unset>"
}

// defaults mirrors the reference engine's property defaults (spec.md §6.5):
// hybrid mode on, a generous inline budget, an 80-column line width, match
// coverage checking on, the "classic" output style, and unbounded printing.
func defaults() map[string]Value {
	return map[string]Value{
		"hybrid":               BoolValue(true),
		"inlinePassCount":      IntValue(5),
		"lineWidth":            IntValue(80),
		"matchCoverageEnabled": BoolValue(true),
		"output":               StringValue("classic"),
		"printDepth":           IntValue(-1),
		"printLength":          IntValue(-1),
		"stringDepth":          IntValue(-1),
	}
}

// Table is the mutable property set of one session. Not safe for concurrent
// use without external synchronization — a session's properties are only
// ever touched from the single goroutine driving Submit.
type Table struct {
	values map[string]Value
}

// New returns a Table seeded with the reference defaults.
func New() *Table {
	return &Table{values: defaults()}
}

// LoadOverlay merges a YAML document of property overrides onto the
// defaults — e.g. a project-level .morelrc read once at session startup so
// every session doesn't need to reissue `Sys.set` for its preferred
// `lineWidth`/`printDepth`.
func (t *Table) LoadOverlay(doc []byte) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return fmt.Errorf("props: invalid overlay: %w", err)
	}
	for name, v := range raw {
		switch val := v.(type) {
		case bool:
			t.values[name] = BoolValue(val)
		case int:
			t.values[name] = IntValue(val)
		case string:
			t.values[name] = StringValue(val)
		default:
			return fmt.Errorf("props: property %q has unsupported overlay type %T", name, v)
		}
	}
	return nil
}

// Set assigns name to value, whether or not name was previously known —
// spec.md §6.5 does not restrict `Sys.set` to the predefined name list.
func (t *Table) Set(name string, value Value) { t.values[name] = value }

// Get returns name's current value, and whether it is set at all.
func (t *Table) Get(name string) (Value, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Unset removes name entirely, reverting any prior Sys.set.
func (t *Table) Unset(name string) { delete(t.values, name) }

// ShowAll renders every property as "name = value", sorted by name, the
// format `Sys.showAll ()` prints at the REPL.
func (t *Table) ShowAll() []string {
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s = %s", name, t.values[name].String())
	}
	return lines
}
