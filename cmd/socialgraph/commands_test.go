package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir string, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "user%03d,First%d,Last%d\n", i, i, i)
	}
	path := filepath.Join(dir, "users.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	data := writeDataset(t, dir, 40)
	metricsFile := filepath.Join(dir, "metrics.prom")
	cfgPath := filepath.Join(dir, "socialgraph.yaml")
	cfg := fmt.Sprintf("dataset_path: %s\nsuggest_for: user001\nlog_level: error\nmetrics_file: %s\n", data, metricsFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "report", "--config", cfgPath, "--seed", "7", "-k", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Total number of users: 40")
	assert.Contains(t, out, "3 MOST CONNECTED USERS")
	assert.Contains(t, out, "FRIEND SUGGESTIONS (user001)")
	assert.Contains(t, out, "DEGREE OF SEPARATION (5 sets of users)")

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "socialgraph_users_total 40")
}

func TestReportIsDeterministicForSeed(t *testing.T) {
	dir := t.TempDir()
	data := writeDataset(t, dir, 30)

	first, err := run(t, "components", "--data", data, "--seed", "3")
	require.NoError(t, err)
	second, err := run(t, "components", "--data", data, "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestPathCommand(t *testing.T) {
	dir := t.TempDir()
	data := writeDataset(t, dir, 20)

	out, err := run(t, "path", "user000", "user000", "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "user000 -> user000: 0")

	out, err = run(t, "path", "user000", "ghost", "--data", data)
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable")

	_, err = run(t, "path", "only-one", "--data", data)
	assert.Error(t, err)
}

func TestSuggestCommandUnknownUser(t *testing.T) {
	dir := t.TempDir()
	data := writeDataset(t, dir, 10)

	_, err := run(t, "suggest", "ghost", "--data", data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown user")
}

func TestMissingDataset(t *testing.T) {
	_, err := run(t, "report", "--data", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestReportRejectsOversizedTop(t *testing.T) {
	dir := t.TempDir()
	data := writeDataset(t, dir, 10)

	_, err := run(t, "report", "--data", data, "-k", "1099511627776")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_k")
}
