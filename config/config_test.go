package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sproute/config"
	"github.com/katalvlaran/sproute/topology"
)

const sample = `
[logging]
level = "debug"
format = "json"
logfile = "sproute.log"
max_log_size = 10

[routing]
trace_relaxations = true

[topology]
source = 1
switches = [1, 2, 3]
links = [[1, 2], [2, 3]]
`

func TestDecode_Sample(t *testing.T) {
	cfg, err := config.Decode(sample)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 10, cfg.Logging.MaxSize)
	assert.Equal(t, 30, cfg.Logging.MaxAge, "default kept")
	assert.True(t, cfg.Routing.TraceRelaxations)
	assert.True(t, cfg.Routing.Metrics, "default kept")
	assert.Equal(t, uint64(1), cfg.Topology.Source)

	snap := cfg.Topology.Snapshot()
	assert.Equal(t, []topology.SwitchID{1, 2, 3}, snap.Switches)
	assert.Equal(t, []topology.Link{{Src: 1, Dst: 2}, {Src: 2, Dst: 3}}, snap.Links)
}

func TestDecode_EmptyUsesDefaults(t *testing.T) {
	cfg, err := config.Decode("")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":       "[logging]\nlevel = \"loud\"\n",
		"format":      "[logging]\nformat = \"xml\"\n",
		"rotation":    "[logging]\nmax_log_age = -1\n",
		"link shape":  "[topology]\nlinks = [[1, 2, 3]]\n",
		"unknown key": "[routing]\nturbo = true\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(text)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestDecode_Syntax(t *testing.T) {
	_, err := config.Decode("[logging\n")
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_ResolvesLogfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sproute.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sproute.log"), cfg.Logging.Logfile)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
