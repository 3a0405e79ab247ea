// Command morel is the Morel language CLI: a thin argument-parsing and
// terminal-detection shell over internal/session. CLI polish is out of
// scope as a feature, but an engine still needs a way to be invoked.
package main

import (
	"fmt"
	"os"

	"github.com/morel-lang/morel/cmd/morel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
