package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/render"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		Long: `List every saved session, newest first, as "[n] label (Id: id)".
The label is the save name, else the creation time, else "Session <id>".

Example:
  cjr list
  cjr list --format json`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	st, err := openStore(opts, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	sessions, err := st.ListSessions(cmd.Context())
	if err != nil {
		return formatter.FailStore("list sessions", err)
	}

	if formatter.JSON() {
		return formatter.Success(sessions)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved game found.")
		return nil
	}
	return render.SessionList(cmd.OutOrStdout(), sessions)
}
