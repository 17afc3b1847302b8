package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/config"
	"github.com/zishanyusuf/Inventory-Decision-Locally-Trained-AI-App/report"
)

var smallRun = []string{
	"--capacity=4",
	"--episodes=10",
	"--max-actions-per-episode=20",
	"--eval-steps=50",
	"--seed=3",
	"--log-level=error",
	"--no-color",
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTrainCmd(t *testing.T) {
	out, err := execute(t, append([]string{"train"}, smallRun...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Optimal order quantity")
	assert.Contains(t, out, "order-up-to-2")
	assert.Contains(t, out, "savings")
}

func TestTrainCmd_InvalidParams(t *testing.T) {
	_, err := execute(t, "train", "--alpha=2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha")
}

func TestReportCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	out, err := execute(t, append([]string{"report", "--out", dir}, smallRun...)...)
	require.NoError(t, err)

	for _, name := range []string{report.PageFile, report.CSVFile} {
		path := filepath.Join(dir, name)
		assert.FileExists(t, path)
		assert.Contains(t, out, "wrote "+path)
	}
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, append([]string{"compare", "--seeds=2"}, smallRun...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "over 2 seeds")
	assert.Contains(t, out, "order-up-to-4")
	assert.Contains(t, out, "max-order")
}

func TestCompareCmd_NoSeeds(t *testing.T) {
	_, err := execute(t, append([]string{"compare", "--seeds=0"}, smallRun...)...)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger := newLogger(cfg, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
