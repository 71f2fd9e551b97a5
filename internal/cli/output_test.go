package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cjr/internal/setup"
	"github.com/roach88/cjr/internal/store"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(ImportResult{ID: 4, Name: "Monza"})
	require.NoError(t, err)

	var got ImportResult
	resp := decodeResponse(t, buf.String(), &got)
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
	assert.Equal(t, ImportResult{ID: 4, Name: "Monza"}, got)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeNotFound, "No session found with Id 9.", nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E005", resp.Error.Code)
	assert.Equal(t, "No session found with Id 9.", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestOutputFormatter_TextErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	formatter := &OutputFormatter{
		Format:    "text",
		Writer:    &out,
		ErrWriter: &errOut,
	}

	require.NoError(t, formatter.Error(ErrCodeInvalidID, "invalid session id", map[string]string{"arg": "x"}))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error [E008]: invalid session id\n", errOut.String())
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	require.NoError(t, formatter.Error(ErrCodeInvalidSetup, "invalid setup", []string{"driver.age"}))
	assert.Contains(t, buf.String(), "Error [E009]")
	assert.Contains(t, buf.String(), "Details: [driver.age]")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			formatter := &OutputFormatter{
				Format:    "json",
				Writer:    &out,
				ErrWriter: &errOut,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Loaded %s", "monza.yaml")

			assert.Empty(t, out.String())
			if tt.wantLog {
				assert.Equal(t, "Loaded monza.yaml\n", errOut.String())
			} else {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestOutputFormatter_Fail(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Fail(ExitCommandError, ErrCodeInvalidID, "bad id", nil)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "E008: bad id", err.Error())
	assert.Contains(t, buf.String(), `"code":"E008"`)
}

func TestOutputFormatter_FailStore(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantExit int
		wantCode string
	}{
		{
			name:     "not_found",
			err:      fmt.Errorf("load session 9: %w", store.ErrNotFound),
			wantExit: ExitCommandError,
			wantCode: ErrCodeNotFound,
		},
		{
			name:     "invalid_setup",
			err:      &setup.ValidationError{Fields: []setup.FieldError{{Field: setup.FieldDriverAge, Message: "must be between 16 and 60"}}},
			wantExit: ExitCommandError,
			wantCode: ErrCodeInvalidSetup,
		},
		{
			name:     "contention",
			err:      &store.ContentionError{Op: "create session", Attempts: 8, Err: errors.New("database is locked")},
			wantExit: ExitFailure,
			wantCode: ErrCodeStoreBusy,
		},
		{
			name:     "other",
			err:      errors.New("disk I/O error"),
			wantExit: ExitFailure,
			wantCode: ErrCodeStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{Format: "json", Writer: buf}

			err := formatter.FailStore("save session", tt.err)
			assert.Equal(t, tt.wantExit, GetExitCode(err))

			resp := decodeResponse(t, buf.String(), nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "open", errors.New("inner")))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Equal(t, "outer: open: inner", wrapped.Error())
}

func TestIsReported(t *testing.T) {
	formatter := &OutputFormatter{Format: "text", Writer: &bytes.Buffer{}}

	assert.True(t, IsReported(formatter.Fail(ExitFailure, ErrCodeStore, "boom", nil)))
	assert.False(t, IsReported(WrapExitError(ExitCommandError, "failed to open database", errors.New("locked"))))
	assert.False(t, IsReported(errors.New("plain")))
	assert.False(t, IsReported(nil))
}
