// Package foreign is the one concrete foreign-value provider this
// repository ships (spec.md §6.4's contract is narrow: a binding insertable
// into the initial environment like any other; this package is the
// demonstration and integration-test fixture that exercises it). It opens a
// SQLite database via modernc.org/sqlite (pure Go, no cgo — a realistic
// choice for a REPL embedded in developer tooling) and turns each table
// into one binding: a record-typed list built from the table's rows.
//
// "Lazily built from sql.Rows" describes how the Go side streams a table's
// rows off the wire one at a time rather than via a single bulk fetch; the
// resulting eval.Value is still an ordinary, fully materialized eval.List —
// this engine's values carry no thunk/laziness concept of their own, and
// inventing one just for this package would leak a foreign-data concern
// back into internal/eval.
package foreign

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/morel-lang/morel/internal/builtins"
	"github.com/morel-lang/morel/internal/eval"
	"github.com/morel-lang/morel/internal/types"
)

// Load opens the SQLite database at path and returns one builtins.Entry per
// user table (sqlite_ internal tables are skipped), ready to be folded into
// a session's type and value environments via builtins.TypeEnv/ValueEnv.
func Load(path string) ([]builtins.Entry, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("foreign: opening %s: %w", path, err)
	}
	defer db.Close()

	tables, err := tableNames(db)
	if err != nil {
		return nil, err
	}

	entries := make([]builtins.Entry, 0, len(tables))
	for _, table := range tables {
		entry, err := loadTable(db, table)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func tableNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("foreign: listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("foreign: scanning table name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type column struct {
	name string
	typ  types.Type
}

// columns reads a table's schema via PRAGMA table_info, the standard
// SQLite introspection query (no information_schema in SQLite).
func columns(db *sql.DB, table string) ([]column, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%q)`, table))
	if err != nil {
		return nil, fmt.Errorf("foreign: describing %s: %w", table, err)
	}
	defer rows.Close()

	var cols []column
	for rows.Next() {
		var (
			cid       int
			name      string
			declType  string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("foreign: scanning column of %s: %w", table, err)
		}
		cols = append(cols, column{name: name, typ: sqlTypeToMorel(declType)})
	}
	return cols, rows.Err()
}

// sqlTypeToMorel maps a SQLite column's declared type affinity to the
// nearest Morel base type (spec.md §3.1's int/real/string/bool), by
// substring per SQLite's own loose type-affinity rules — a declared type is
// just a hint in SQLite, never a hard constraint.
func sqlTypeToMorel(declType string) types.Type {
	t := strings.ToUpper(declType)
	switch {
	case strings.Contains(t, "INT"):
		return types.Int
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"):
		return types.Real
	case strings.Contains(t, "BOOL"):
		return types.Bool
	default:
		return types.String
	}
}

// loadTable builds one binding: a `{col: ty, ...} list`-typed value
// holding every row of table, each row converted to an eval.Record by its
// column's Morel type.
func loadTable(db *sql.DB, table string) (builtins.Entry, error) {
	cols, err := columns(db, table)
	if err != nil {
		return builtins.Entry{}, err
	}
	if len(cols) == 0 {
		return builtins.Entry{}, fmt.Errorf("foreign: table %s has no columns", table)
	}

	fields := make([]types.RecordField, len(cols))
	for i, c := range cols {
		fields[i] = types.RecordField{Label: c.name, Type: c.typ}
	}
	rowType := types.NewRecord(fields)

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM %q`, table))
	if err != nil {
		return builtins.Entry{}, fmt.Errorf("foreign: reading %s: %w", table, err)
	}
	defer rows.Close()

	var elts []eval.Value
	scanTargets := make([]any, len(cols))
	scanValues := make([]sql.NullString, len(cols))
	for i := range scanTargets {
		scanTargets[i] = &scanValues[i]
	}
	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return builtins.Entry{}, fmt.Errorf("foreign: scanning row of %s: %w", table, err)
		}
		recFields := make([]eval.RecordField, len(cols))
		for i, c := range cols {
			recFields[i] = eval.RecordField{Label: c.name, Value: columnValue(c.typ, scanValues[i])}
		}
		sort.Slice(recFields, func(i, j int) bool { return recFields[i].Label < recFields[j].Label })
		elts = append(elts, eval.Record{Fields: recFields})
	}
	if err := rows.Err(); err != nil {
		return builtins.Entry{}, fmt.Errorf("foreign: iterating %s: %w", table, err)
	}

	return builtins.Entry{
		Name:   table,
		Scheme: types.Monomorphic(types.List(rowType)),
		Value:  eval.List{Elts: elts},
	}, nil
}

// columnValue converts one scanned SQLite cell to the eval.Value its
// column's Morel type demands. A SQL NULL becomes each type's zero value,
// since this domain has no option-typed column mapping (spec.md §6.4 names
// no NULL-handling requirement, and this fixture favors a total conversion
// over a partial one that could fail mid-row).
func columnValue(t types.Type, v sql.NullString) eval.Value {
	switch t {
	case types.Int:
		return eval.NewInt(parseInt64(v.String))
	case types.Real:
		return eval.NewReal(parseFloat64(v.String))
	case types.Bool:
		return eval.BoolOf(v.String != "" && v.String != "0")
	default:
		return eval.Str{V: v.String}
	}
}

func parseInt64(s string) int64 {
	var n int64
	fmt.Sscanf(s, "%d", &n)
	return n
}

func parseFloat64(s string) float64 {
	var f float64
	fmt.Sscanf(s, "%g", &f)
	return f
}
