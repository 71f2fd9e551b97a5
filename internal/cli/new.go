package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/menu"
)

// NewNewCommand creates the new command.
func NewNewCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Configure a car once and save it",
		Long: `Run the six configurators, show the finished setup, ask for an
optional save name and store it as a new session.

Example:
  cjr new
  cjr new --db ./garage.db`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(rootOpts, cmd)
		},
	}

	return cmd
}

func runNew(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, slog.LevelWarn)
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()
	gameOpts := append(menu.TerminalOptions(out), menu.WithLogger(logger))
	game := menu.New(st, cmd.InOrStdin(), out, gameOpts...)

	if _, err := game.Build(ctx); err != nil {
		if errors.Is(err, menu.ErrInputClosed) {
			return formatter.Fail(ExitCommandError, ErrCodeInput,
				"input ended before the configuration was complete", nil)
		}
		return formatter.FailStore("save session", err)
	}
	return nil
}
