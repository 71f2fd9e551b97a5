package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/menu"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	TypeDelay time.Duration
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the interactive game (default)",
		Long: `Start the interactive main menu: New Game, Load Game, Campaign,
Credits and Exit.

Example:
  cjr play
  cjr play --db ./garage.db --type-delay 0`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.TypeDelay, "type-delay", menu.DefaultTypeDelay,
		"per-character delay of the campaign and credits text")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	// Warnings only: log lines would break up the menu screens
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, slog.LevelWarn)

	st, err := openStore(opts.RootOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx, stop := signalContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()
	gameOpts := append(menu.TerminalOptions(out),
		menu.WithLogger(logger),
		menu.WithTypeDelay(opts.TypeDelay),
	)
	game := menu.New(st, cmd.InOrStdin(), out, gameOpts...)

	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "game error", err)
	}
	return nil
}

// signalContext returns the command's context cancelled on SIGINT/SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	// Use command's context if available (for testing), otherwise create one
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
