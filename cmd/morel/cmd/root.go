package cmd

import (
	"github.com/spf13/cobra"

	"github.com/morel-lang/morel/internal/config"
)

var (
	verbose bool
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "morel",
	Short: "Morel: a Standard ML interpreter",
	Long: `morel is an implementation of a Standard ML-family language with
a Hindley-Milner type system, value-restricted let-polymorphism, and a
relational "from" comprehension over lists.

Run with no arguments to start an interactive session, or "morel run"
to execute a file or an inline expression.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRepl(nil)
	},
}

// Execute runs the root command. Errors are left for the caller (main.go)
// to report, so a failing "run" or a REPL read error is printed exactly
// once rather than once by cobra and once by main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the session id")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database whose tables are bound as foreign values (internal/foreign)")
}
