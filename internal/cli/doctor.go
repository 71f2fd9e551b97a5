package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DoctorResult is the JSON payload of the doctor command.
type DoctorResult struct {
	Path     string   `json:"path"`
	Driver   string   `json:"driver"`
	Sessions int      `json:"sessions"`
	Missing  []string `json:"missing_columns"`
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the database file and its schema",
		Long: `Open the database (creating it and adding any missing columns, as the
game does on start) and report the path, the number of sessions and any
column that is still missing. Exits with code 1 if the schema is incomplete.

Example:
  cjr doctor --db ./garage.db`,
		Args:          commandArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(rootOpts, cmd)
		},
	}

	return cmd
}

func runDoctor(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	st, err := openStore(opts, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx := cmd.Context()
	missing, err := st.MissingColumns(ctx)
	if err != nil {
		return formatter.FailStore("inspect schema", err)
	}
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return formatter.FailStore("list sessions", err)
	}

	result := DoctorResult{
		Path:     st.Path(),
		Driver:   opts.Driver,
		Sessions: len(sessions),
		Missing:  missing,
	}
	if len(missing) > 0 {
		return formatter.Fail(ExitFailure, ErrCodeSchema,
			fmt.Sprintf("schema incomplete: %d column(s) missing", len(missing)), result)
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Database: %s\n", result.Path)
	fmt.Fprintf(out, "Driver:   %s\n", result.Driver)
	fmt.Fprintf(out, "Sessions: %d\n", result.Sessions)
	fmt.Fprintln(out, "Schema:   ok")
	return nil
}
