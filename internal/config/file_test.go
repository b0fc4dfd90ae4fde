package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AllowedPaths)
	assert.False(t, cfg.DisableDefaultPaths)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileConfig().LogLevel, cfg.LogLevel)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := writeConfig(t, `
allowed_paths:
  - /srv/datasets
  - relative/shots
log_level: debug
language: pt
disable_default_paths: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pt", cfg.Language)
	assert.True(t, cfg.DisableDefaultPaths)
	require.Len(t, cfg.AllowedPaths, 2)
	assert.Equal(t, "/srv/datasets", cfg.AllowedPaths[0])
	assert.Equal(t, filepath.Join(filepath.Dir(path), "relative", "shots"), cfg.AllowedPaths[1])
}

func TestLoad_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, "allowed_paths: [\"~/Pictures\"]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, "Pictures")}, cfg.AllowedPaths)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "allowed_paths: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: loud\nlanguage: de\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "log_level", fieldErrs[0].Field)
	assert.Equal(t, "language", fieldErrs[1].Field)
}

func TestValidate_FieldErrors(t *testing.T) {
	cfg := DefaultFileConfig()
	cfg.AllowedPaths = []string{"/ok", "  "}
	cfg.LogFile = t.TempDir()

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "allowed_paths[1]", fieldErrs[0].Field)
	assert.Equal(t, "log_file", fieldErrs[1].Field)
	assert.Contains(t, fieldErrs[1].Err.Error(), "is a directory")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultFileConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	assert.Equal(t, filepath.Join("/xdg/config", "caption-editor", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, filepath.Join("/xdg/state", "caption-editor", "caption-editor.log"), DefaultLogFile())
}
