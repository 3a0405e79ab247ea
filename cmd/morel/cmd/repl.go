package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/morel-lang/morel/internal/config"
	"github.com/morel-lang/morel/internal/foreign"
	"github.com/morel-lang/morel/internal/merr"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/session"
)

// loadForeignDB folds --db's tables into sess, if the flag was given.
func loadForeignDB(sess *session.Session) error {
	if dbPath == "" {
		return nil
	}
	entries, err := foreign.Load(dbPath)
	if err != nil {
		return err
	}
	sess.Extend(entries)
	return nil
}

// loadRcOverlay applies ~/.morelrc.yaml onto sess's property table, if the
// file exists (spec.md §6.5's "default overlay" — a team-committed YAML of
// property overrides, not required to exist).
func loadRcOverlay(sess *session.Session) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".morelrc.yaml"))
	if err != nil {
		return
	}
	if err := sess.Props().LoadOverlay(data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ~/.morelrc.yaml: %s\n", err)
	}
}

// isInteractive reports whether stdout is a real terminal, so the REPL
// knows whether to print prompts and a banner — isatty.IsCygwinTerminal
// covers the mintty/Cygwin terminals IsTerminal alone misses on Windows.
func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runRepl drives an interactive (or piped) session: read statements from r
// (stdin if nil), submit each to sess as soon as it parses as a complete
// top-level program, and print its bindings or error.
func runRepl(r io.Reader) error {
	if r == nil {
		r = os.Stdin
	}
	interactive := isInteractive()
	sess := session.New()
	loadRcOverlay(sess)
	if err := loadForeignDB(sess); err != nil {
		return err
	}

	if interactive {
		fmt.Printf("morel %s (session %s)\n", config.Version, sess.ID())
		fmt.Println("Enter statements terminated by ';'. Ctrl-D to exit.")
	} else if verbose {
		fmt.Fprintf(os.Stderr, "session %s\n", sess.ID())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	prompt := func() {
		if !interactive {
			return
		}
		if buf.Len() == 0 {
			fmt.Print("- ")
		} else {
			fmt.Print("= ")
		}
	}

	prompt()
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteByte('\n')

		decls, perr := parser.ParseProgram(buf.String())
		if perr != nil {
			// Incomplete statement: keep accumulating lines. A syntax error
			// is reported only if input ends while the buffer still fails to parse.
			prompt()
			continue
		}
		buf.Reset()

		for _, decl := range decls {
			res, err := sess.SubmitDecl(decl)
			if err != nil {
				printSessionError(err)
				continue
			}
			printBindings(res.Bindings)
		}
		prompt()
	}
	if interactive {
		fmt.Println()
	}

	if buf.Len() > 0 {
		if _, err := parser.ParseProgram(buf.String()); err != nil {
			printSessionError(merr.Translate(err))
		}
	}
	return scanner.Err()
}

func printBindings(bindings []session.Binding) {
	for _, b := range bindings {
		fmt.Printf("val %s = %s : %s\n", b.Name, b.Value.Inspect(), b.Type)
	}
}

func printSessionError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
