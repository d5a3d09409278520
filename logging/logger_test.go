package logging_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sproute/config"
	"github.com/katalvlaran/sproute/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":    slog.LevelDebug,
		" INFO ":   slog.LevelInfo,
		"warning":  slog.LevelWarn,
		"warn":     slog.LevelWarn,
		"error":    slog.LevelError,
		"whatever": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.ParseLevel(in), in)
	}
}

func TestNewWithWriter_Formats(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWithWriter(config.Logging{Level: "info", Format: "json"}, &buf)
	l.Debug("hidden")
	l.Info("shown", slog.Int("n", 1))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	l = logging.NewWithWriter(config.Logging{Level: "debug", Format: "text"}, &buf)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sproute.log")
	l, closer := logging.New(config.Logging{Level: "info", Format: "text", Logfile: path, MaxSize: 1, MaxAge: 1})
	l.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

func TestNew_Stderr(t *testing.T) {
	l, closer := logging.New(config.Logging{Level: "error"})
	require.NotNil(t, l)
	assert.NoError(t, closer.Close())
}
