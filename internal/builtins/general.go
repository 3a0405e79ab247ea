package builtins

import (
	"math/big"

	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// generalEntries is the `General` namespace (spec.md §6.3): the handful of
// operations the ML basis leaves unqualified at top level rather than under
// a type-specific structure.
func generalEntries() []Entry {
	return []Entry{
		{Name: "General.not", Scheme: mono(fn(types.Bool, types.Bool)),
			Value: builtin("General.not", func(x eval.Value) eval.Value {
				return eval.BoolOf(!x.(eval.Bool).V)
			})},

		{Name: "General.abs", Scheme: mono(fn(types.Int, types.Int)),
			Value: builtin("General.abs", func(x eval.Value) eval.Value {
				return eval.Int{V: new(big.Int).Abs(x.(eval.Int).V)}
			})},
	}
}

// aliasEntries re-exposes a handful of namespaced built-ins under their
// unqualified name, matching the reference engine's top-level bindings
// (spec.md §6.3): `not`, `abs`, `map`, and the aggregate functions a `from
// ... compute` clause's identifiers resolve to outside of a comprehension.
func aliasEntries(built []Entry) []Entry {
	return []Entry{
		alias(built, "not", "General.not"),
		alias(built, "abs", "General.abs"),
		alias(built, "map", "List.map"),
		alias(built, "count", "Relational.count"),
		alias(built, "sum", "Relational.sum"),
		alias(built, "min", "Relational.min"),
		alias(built, "max", "Relational.max"),
		alias(built, "exists", "Relational.exists"),
		alias(built, "notExists", "Relational.notExists"),
		alias(built, "only", "Relational.only"),
	}
}
