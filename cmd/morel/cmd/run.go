package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morel-lang/morel/internal/merr"
	"github.com/morel-lang/morel/internal/parser"
	"github.com/morel-lang/morel/internal/session"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Morel source file or an inline expression",
	Long: `Execute a Morel program from a file or an inline expression.

Examples:
  morel run script.sml
  morel run -e "1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline statement instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var src string
	switch {
	case evalExpr != "":
		src = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		src = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for an inline statement")
	}

	decls, err := parser.ParseProgram(src)
	if err != nil {
		return merr.Translate(err)
	}

	sess := session.New()
	loadRcOverlay(sess)
	if err := loadForeignDB(sess); err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "session %s\n", sess.ID())
	}
	for _, decl := range decls {
		res, err := sess.SubmitDecl(decl)
		if err != nil {
			return err
		}
		printBindings(res.Bindings)
	}
	return nil
}
