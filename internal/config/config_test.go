package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_Defaults(t *testing.T) {
	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		OutputFormat: DEFAULT_OUTPUT_FORMAT,
		Selection:    DEFAULT_SELECTION,
		LogLevel:     DEFAULT_LOG_LEVEL,
	}, *cfg)
}

func TestGetConfig_Env(t *testing.T) {
	t.Setenv("LINKSTATE_TOPOLOGY_FILE", "/etc/topo.yaml")
	t.Setenv("LINKSTATE_SOURCE", "u")
	t.Setenv("LINKSTATE_WORKERS", "4")
	t.Setenv("LINKSTATE_INF_COST", "99999")
	t.Setenv("LINKSTATE_WITH_SELF", "true")

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "/etc/topo.yaml", cfg.TopologyFile)
	assert.Equal(t, "u", cfg.Source)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(99999), cfg.InfCost)
	assert.True(t, cfg.WithSelf)
}

func TestGetConfig_Invalid(t *testing.T) {
	t.Setenv("LINKSTATE_WORKERS", "-1")
	_, err := GetConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), WORKERS)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lsroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: x\nselection: linear\nmax_cost: 7\n"), 0o644))

	options := New()
	require.NoError(t, ReadFile(options, path))
	cfg, err := FromViper(options)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Source)
	assert.Equal(t, "linear", cfg.Selection)
	assert.Equal(t, int64(7), cfg.MaxCost)

	require.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestConfigString(t *testing.T) {
	s := Config{Source: "u", Workers: 2}.String()
	assert.Contains(t, s, "Source: u\n")
	assert.Contains(t, s, "Workers: 2\n")
}
