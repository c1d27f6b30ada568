package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "socialgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
dataset_path: data/users.csv
seed: 42
top_k: 10
log_level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "data/users.csv", cfg.DatasetPath)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.TopK)
	assert.Equal(t, 30, cfg.EdgeFactor, "unset fields keep their defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigStrict(t *testing.T) {
	path := writeConfig(t, "dataset_path: x.csv\nunknown_field: 1\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_field")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := writeConfig(t, "top_k: 0\npagerank_damping: 1.5\nlog_level: loud\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")
	assert.Contains(t, err.Error(), "pagerank_damping")
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadConfigBounds(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"EdgeFactorTooLarge", "edge_factor: 1099511627776\n", "edge_factor"},
		{"EdgeFactorNegative", "edge_factor: -1\n", "edge_factor"},
		{"TopKTooLarge", "top_k: 1099511627776\n", "top_k"},
		{"SamplesTooLarge", "separation_samples: 1000000\n", "separation_samples"},
		{"NegativeTolerance", "pagerank_tolerance: -0.5\n", "pagerank_tolerance"},
		{"ZeroTolerance", "pagerank_tolerance: 0\n", "pagerank_tolerance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	cfg := DefaultConfig()
	cfg.EdgeFactor = MaxEdgeFactor
	cfg.TopK = MaxTopK
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}
