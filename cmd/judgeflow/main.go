// Command judgeflow solves max-flow judge problems from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/judgeflow/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "judgeflow:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
