package clconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/clsched/clconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := clconfig.Default()
	assert.False(t, cfg.LineTrace)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 100, cfg.MaxIters)
	assert.Empty(t, cfg.DumpDAG)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := clconfig.Parse(strings.NewReader(
		"line_trace: true\nseed: 7\nmax_iters: 50\ndump_dag: out.dot\n"))
	require.NoError(t, err)
	assert.True(t, cfg.LineTrace)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.MaxIters)
	assert.Equal(t, "out.dot", cfg.DumpDAG)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := clconfig.Parse(strings.NewReader("seed: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 100, cfg.MaxIters)
	assert.False(t, cfg.LineTrace)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := clconfig.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, clconfig.Default(), cfg)
}

func TestParse_BadConfig(t *testing.T) {
	_, err := clconfig.Parse(strings.NewReader("max_iters: 0\n"))
	assert.ErrorIs(t, err, clconfig.ErrBadConfig)

	_, err = clconfig.Parse(strings.NewReader("max_iters: -3\n"))
	assert.ErrorIs(t, err, clconfig.ErrBadConfig)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := clconfig.Parse(strings.NewReader("line_trace: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("line_trace: true\nseed: 3\n"), 0o644))

	cfg, err := clconfig.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.LineTrace)
	assert.Equal(t, int64(3), cfg.Seed)

	_, err = clconfig.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
