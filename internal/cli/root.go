package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/menu"
	"github.com/roach88/cjr/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	ConfigFile  string
	Database    string
	Driver      string
	BusyTimeout time.Duration

	// Clock overrides the session timestamp source (for testing).
	// If nil, the wall clock is used.
	Clock store.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidDrivers defines the allowed SQLite drivers.
var ValidDrivers = []string{store.DriverCGO, store.DriverPureGo}

// DefaultDatabase is the store file used when no --db is given.
const DefaultDatabase = "cjr.db"

// NewRootCommand creates the root command for the cjr CLI. Without a
// subcommand it starts the interactive game.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "cjr",
		Short: "CJR Racing - build and garage F1 car setups",
		Long: `CJR Racing is a text-menu racing car configurator.

Answer the prompts of six categories (driver, aerodynamics, engine, wheels
and tires, suspension, brakes) and save the result as a session in a local
SQLite file. Saved sessions can be listed, shown and deleted from the game
or with the subcommands below.

Settings are read from flags, CJR_* environment variables and an optional
.cjr.yaml file, in that order of precedence.`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd, opts.ConfigFile); err != nil {
				return WrapExitError(ExitCommandError, "failed to load configuration", err)
			}
			return validateRootOptions(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(&PlayOptions{RootOptions: opts, TypeDelay: menu.DefaultTypeDelay}, cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is ./.cjr.yaml or $HOME/.cjr.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", DefaultDatabase, "path to SQLite database")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", store.DriverCGO, "SQLite driver (sqlite3|sqlite)")
	cmd.PersistentFlags().DurationVar(&opts.BusyTimeout, "busy-timeout", 10*time.Second, "how long a statement waits on a locked database")

	// Add subcommands
	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewNewCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewDriversCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewDoctorCommand(opts))

	return cmd
}

func validateRootOptions(opts *RootOptions) error {
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}
	if !slices.Contains(ValidDrivers, opts.Driver) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid driver %q: must be one of %v", opts.Driver, ValidDrivers))
	}
	return nil
}

// commandArgs makes positional argument errors command errors.
func commandArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// newLogger returns a text logger on w. Verbose always means Debug;
// otherwise level applies.
func newLogger(w io.Writer, verbose bool, level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newCommandLogger returns the stderr logger of a one-shot command: Info in
// text mode, Warn with JSON output so stderr carries no routine lines.
func newCommandLogger(cmd *cobra.Command, verbose, jsonOutput bool) *slog.Logger {
	level := slog.LevelInfo
	if jsonOutput {
		level = slog.LevelWarn
	}
	return newLogger(cmd.ErrOrStderr(), verbose, level)
}

// openStore opens the configured database. Failures are command errors.
func openStore(opts *RootOptions, logger *slog.Logger) (*store.Store, error) {
	cfg := store.DefaultConfig(opts.Database)
	if cfg.Path == "" {
		cfg.Path = DefaultDatabase
	}
	if opts.Driver != "" {
		cfg.Driver = opts.Driver
	}
	if opts.BusyTimeout > 0 {
		cfg.BusyTimeout = opts.BusyTimeout
	}
	cfg.Clock = opts.Clock
	cfg.Logger = logger

	logger.Debug("opening database", "path", cfg.Path, "driver", cfg.Driver)
	st, err := store.Open(cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return st, nil
}

// closeStore closes st and logs a failure.
func closeStore(st *store.Store, logger *slog.Logger) {
	if err := st.Close(); err != nil {
		logger.Error("error closing database", "error", err)
	}
}

// newFormatter builds the formatter for cmd.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}
