package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/roach88/cjr/internal/setup"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Name string
}

// ImportResult is the JSON payload of a successful import.
type ImportResult struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <setup.yaml>",
		Short: "Save a setup described in a YAML file",
		Long: `Read a complete car setup from a YAML file, validate every field
against the catalog and save it as a new session.

The file uses the same field names as the JSON output of "cjr show":

  name: Monza quali
  driver: {name: Alice, age: 28, experience: Pro}
  aero: {front_wing: Balanced, rear_wing: DRS, ...}

Example:
  cjr import ./monza.yaml
  cjr import ./monza.yaml --name "Monza race" --format json`,
		Args:          commandArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "save name (overrides the name in the file)")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := newCommandLogger(cmd, opts.Verbose, formatter.JSON())

	file, err := setup.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("setup file not found: %s", path), nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidSetup, err.Error(), nil)
	}
	formatter.VerboseLog("Loaded setup for driver %q from %s", file.Record.Driver.Name, path)

	if err := file.Record.Validate(); err != nil {
		return formatter.FailStore("validate setup", err)
	}
	if err := setup.ValidateWithSchema(file.Record); err != nil {
		return formatter.FailStore("validate setup", err)
	}

	name := file.Name
	if opts.Name != "" {
		name = setup.NormalizeText(opts.Name)
	}

	st, err := openStore(opts.RootOptions, logger)
	if err != nil {
		return err
	}
	defer closeStore(st, logger)

	ctx, stop := signalContext(cmd)
	defer stop()

	id, err := st.CreateSession(ctx, file.Record, name)
	if err != nil {
		return formatter.FailStore("save session", err)
	}

	if formatter.JSON() {
		return formatter.Success(ImportResult{ID: id, Name: name})
	}
	if name == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported session %d\n", id)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Imported session %d (%s)\n", id, name)
	}
	return nil
}
