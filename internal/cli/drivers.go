package cli

import (

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/render"
)

// NewDriversCommand creates the drivers command.
func NewDriversCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "Show the driver of every session",
		Long: `Show the driver roster: session id, name, age and experience,
oldest session first. Long names are truncated with "...".

Example:
  cjr drivers
  cjr drivers --format json`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrivers(rootOpts, cmd)
		},
	}

	return cmd
}

func runDrivers(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	st, err := openStore(opts, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	drivers, err := st.ListDrivers(cmd.Context())
	if err != nil {
		return formatter.FailStore("list drivers", err)
	}

	if formatter.JSON() {
		return formatter.Success(drivers)
	}
	return render.DriverTable(cmd.OutOrStdout(), drivers)
}
