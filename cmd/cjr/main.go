// Command cjr is the CJR Racing car configurator.
//
// Exit codes:
//   - 0: success
//   - 1: store failure, busy database, incomplete schema
//   - 2: bad arguments, unknown session, invalid setup file
package main

import (
	"fmt"
	"os"

	"github.com/roach88/cjr/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
