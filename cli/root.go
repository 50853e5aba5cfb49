// Package cli is the judgeflow command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/judgeflow/config"
	"github.com/katalvlaran/judgeflow/judge"
	"github.com/katalvlaran/judgeflow/parking"
	"github.com/katalvlaran/judgeflow/party"
)

// RootOptions holds global flags and the state resolved before a
// subcommand runs.
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string

	Config   *config.Config
	Logger   *zap.Logger
	Registry *judge.Registry

	// Problems builds the registry once the logger exists.
	Problems func(*zap.Logger) *judge.Registry
}

// Problems registers every judge problem shipped with judgeflow.
func Problems(log *zap.Logger) *judge.Registry {
	return judge.NewRegistry(
		party.NewProblem(log),
		parking.NewProblem(log),
		judge.NewMaxFlowProblem(log),
	)
}

// NewRootCommand creates the root command for the judgeflow CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Problems: Problems})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judgeflow",
		Short: "Max-flow judge solutions",
		Long: `judgeflow answers competitive-programming instances whose answer is the
largest or smallest parameter for which a flow network saturates.

Instances are read from --input (stdin by default) and answers written to
--output (stdout by default). Logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./judgeflow.yaml or $HOME/.judgeflow/judgeflow.yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log encoding (console|json)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "usage", err)
	})

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// resolve loads configuration, builds the logger and the registry.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigFile, cmd.Flags())
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}
	log, err := NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return WrapExitError(ExitCommandError, "logger", err)
	}

	o.Config, o.Logger = cfg, log
	o.Registry = o.Problems(log)
	log.Debug("configured",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.String("level", cfg.LogLevel),
	)

	return nil
}
