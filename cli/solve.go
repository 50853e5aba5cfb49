package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Input  string
	Output string
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <problem>",
		Short: "Solve instances of a judge problem",
		Long: `Read instances of the named problem and print one answer per instance.

Example:
  judgeflow solve party < party.in
  judgeflow solve parking -i lots.txt -o answers.txt
  judgeflow solve maxflow --log-level debug`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "usage", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "instance file (- for stdin)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "answer file (- for stdout)")

	return cmd
}

func runSolve(opts *SolveOptions, name string, cmd *cobra.Command) error {
	problem, err := opts.Registry.Lookup(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "solve", err)
	}

	in, closeIn, err := openInput(opts.Config.Input, cmd.InOrStdin())
	if err != nil {
		return WrapExitError(ExitCommandError, "open input", err)
	}
	defer closeIn()

	out, closeOut, err := openOutput(opts.Config.Output, cmd.OutOrStdout())
	if err != nil {
		return WrapExitError(ExitCommandError, "open output", err)
	}

	log := opts.Logger.With(zap.String("problem", name))
	log.Debug("solving", zap.String("input", opts.Config.Input))
	if err := problem.Solve(in, out); err != nil {
		_ = closeOut()
		log.Error("solve failed", zap.Error(err))
		return WrapExitError(ExitFailure, fmt.Sprintf("solve %s", name), err)
	}
	if err := closeOut(); err != nil {
		return WrapExitError(ExitFailure, "write output", err)
	}

	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
