package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a .cjr.yaml style file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cjr.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfig_FileSetsDatabaseAndFormat(t *testing.T) {
	db := filepath.Join(t.TempDir(), "garage.db")
	cfg := writeConfig(t, "db: "+db+"\nformat: json\n")

	out, _, err := execute(t, NewRootCommand(), "", "--config", cfg, "list")
	require.NoError(t, err)

	var sessions []map[string]any
	resp := decodeResponse(t, out, &sessions)
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, sessions)
	assert.FileExists(t, db)
}

func TestConfig_FlagBeatsFile(t *testing.T) {
	cfg := writeConfig(t, "format: json\ndb: "+filepath.Join(t.TempDir(), "a.db")+"\n")

	out, _, err := execute(t, NewRootCommand(), "", "--config", cfg, "--format", "text", "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved game found.\n", out)
}

func TestConfig_EnvironmentVariables(t *testing.T) {
	db := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("CJR_DB", db)
	t.Setenv("CJR_FORMAT", "json")
	t.Setenv("CJR_BUSY_TIMEOUT", "3s")

	cmd := NewRootCommand()
	out, _, err := execute(t, cmd, "", "doctor")
	require.NoError(t, err)

	var result DoctorResult
	decodeResponse(t, out, &result)
	assert.Equal(t, db, result.Path)
	assert.Equal(t, "3s", cmd.PersistentFlags().Lookup("busy-timeout").Value.String())
}

func TestConfig_ExplicitFileMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, _, err := execute(t, NewRootCommand(), "", "--config", missing, "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestConfig_InvalidValueInFile(t *testing.T) {
	cfg := writeConfig(t, "busy-timeout: soon\n")

	_, _, err := execute(t, NewRootCommand(), "", "--config", cfg, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "busy-timeout")
}
