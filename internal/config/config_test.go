package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Test.Time)
	assert.Nil(t, cfg.Log.File)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, `
[test]
time = 30
seed = 99

[log]
file = "/tmp/typesprint.log"
level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Test.Time)
	assert.Equal(t, 30, *cfg.Test.Time)
	require.NotNil(t, cfg.Test.Seed)
	assert.Equal(t, int64(99), *cfg.Test.Seed)
	require.NotNil(t, cfg.Log.File)
	assert.Equal(t, "/tmp/typesprint.log", *cfg.Log.File)
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "[test]\ntime = 15\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Test.Time)
	assert.Nil(t, cfg.Test.Seed)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "[test]\nwords = 25\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.words")
}

func TestLoadConfigBadSyntax(t *testing.T) {
	path := writeConfig(t, "[test\ntime = ")
	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to decode config")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "typesprint", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "typesprint", "typesprint.log"), DefaultLogPath())
}
