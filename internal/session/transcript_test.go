package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// replay submits each ';'-terminated statement of a script in turn and
// renders the session's own (name, type, value) triples — or its error —
// into one transcript string, the format a REPL's scrollback would show.
func replay(t *testing.T, script []string) string {
	t.Helper()
	s := New()
	var sb strings.Builder
	for _, stmt := range script {
		res, err := s.Submit(stmt)
		if err != nil {
			fmt.Fprintf(&sb, "%s\n!! %s\n", stmt, err)
			continue
		}
		fmt.Fprintf(&sb, "%s\n", stmt)
		for _, b := range res.Bindings {
			fmt.Fprintf(&sb, "val %s = %s : %s\n", b.Name, b.Value.Inspect(), b.Type)
		}
	}
	return sb.String()
}

// A short, representative session transcript — bindings, a function, and a
// `from` comprehension — is pinned as a golden snapshot (spec.md §6.2's
// (name, type, value) contract), so a change to how any stage renders a
// value or a type is caught at the session boundary, not only in a
// component's own unit tests.
func TestTranscriptBasics(t *testing.T) {
	out := replay(t, []string{
		"val x = 1 + 2;",
		"val xs = [1, 2, 3];",
		"fun double n = n * 2;",
		"val ys = List.map double xs;",
		"from n in xs where n > 1 yield n * n;",
	})
	snaps.MatchSnapshot(t, out)
}

// A transcript that hits a type error partway through shows the error
// inline and then proves the session's environment was left untouched.
func TestTranscriptRecoversFromTypeError(t *testing.T) {
	out := replay(t, []string{
		"val x = 1;",
		"val y = x + true;",
		"x;",
	})
	snaps.MatchSnapshot(t, out)
}
