package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/render"
	"github.com/roach88/cjr/internal/store"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full configuration of a session",
		Long: `Show every category of the session with the given id.
Exits with code 2 when there is no such session.

Example:
  cjr show 3
  cjr show 3 --format json`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// parseID parses a positive session id argument.
func parseID(formatter *OutputFormatter, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, formatter.Fail(ExitCommandError, ErrCodeInvalidID,
			fmt.Sprintf("invalid session id %q: must be a positive integer", arg), nil)
	}
	return id, nil
}

func runShow(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	id, err := parseID(formatter, arg)
	if err != nil {
		return err
	}

	st, err := openStore(opts, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	sess, err := st.LoadSession(cmd.Context(), id)
	if err != nil {
		return formatter.FailStore("load session", err)
	}

	if formatter.JSON() {
		return formatter.Success(sess)
	}

	out := cmd.OutOrStdout()
	sum := store.SessionSummary{ID: sess.ID, CreatedAt: sess.CreatedAt, Name: sess.Name}
	fmt.Fprintf(out, "Session: %s (Id: %d)\n", sum.Label(), sess.ID)
	if sess.CreatedAt != "" {
		fmt.Fprintf(out, "Created: %s\n", sess.CreatedAt)
	}
	fmt.Fprintln(out)
	return render.Sheet(out, sess.Record, render.Style{})
}
