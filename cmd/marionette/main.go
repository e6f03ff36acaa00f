// Command marionette imports CSV joint-animation data onto a rig.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/marionette/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// The command tree silences cobra's own error printing, so
		// every failure is reported here, exactly once.
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
