package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://localhost:3000")

	_, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err, "refuses to overwrite")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	t.Setenv("ACTIVITYFINDER_TIMEOUT", "30s")

	out, err := execute(t, "--config", path, "--endpoint", "https://events.example.com", "config", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "# "+path)
	assert.Contains(t, out, "https://events.example.com")
	assert.Contains(t, out, "30s")
}

func TestConfigShowRejectsBadEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	_, err := execute(t, "--config", path, "--endpoint", "ftp://nope", "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	require.Error(t, err)
}
