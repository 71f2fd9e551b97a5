package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/menu"
	"github.com/roach88/cjr/internal/render"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Yes bool
}

// DeleteResult is the JSON payload of the delete command.
type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session by id",
		Long: `Delete the session with the given id after showing its driver and
asking for confirmation. Use --yes to skip the question.

Example:
  cjr delete 3
  cjr delete 3 --yes --format json`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "delete without asking for confirmation")

	return cmd
}

func runDelete(opts *DeleteOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	id, err := parseID(formatter, arg)
	if err != nil {
		return err
	}

	st, err := openStore(opts.RootOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx, stop := signalContext(cmd)
	defer stop()

	driver, err := st.LookupDriver(ctx, id)
	if err != nil {
		return formatter.FailStore("lookup session", err)
	}

	if !opts.Yes {
		// The question goes to stderr in JSON mode to keep stdout parseable
		w := cmd.OutOrStdout()
		if formatter.JSON() {
			w = cmd.ErrOrStderr()
		}
		fmt.Fprintln(w, render.DeleteTarget(driver))
		ok, err := menu.Confirm(cmd.InOrStdin(), w, "Confirm delete? (Y/N): ")
		if errors.Is(err, menu.ErrInputClosed) || (err == nil && !ok) {
			return formatter.Fail(ExitCommandError, ErrCodeInput, "delete cancelled", nil)
		}
		if err != nil {
			return WrapExitError(ExitFailure, "read confirmation", err)
		}
	}

	deleted, err := st.DeleteSession(ctx, id)
	if err != nil {
		return formatter.FailStore("delete session", err)
	}
	if !deleted {
		// Removed by someone else since the lookup
		return formatter.Fail(ExitCommandError, ErrCodeNotFound,
			fmt.Sprintf("No session found with Id %d.", id), nil)
	}

	if formatter.JSON() {
		return formatter.Success(DeleteResult{ID: id, Deleted: true})
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deletion successful!")
	return nil
}
