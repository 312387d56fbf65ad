// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtour/config"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.Default().Validate())
}

func TestDecode_OverridesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode(strings.NewReader(`
log:
  level: debug
  format: json
server:
  addr: "127.0.0.1:9999"
  read_timeout: 2s
limits:
  max_points: 50
solver:
  origin: 2
  strict_route_count: true
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	require.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "untouched default")
	require.Equal(t, 50, cfg.Limits.MaxPoints)
	require.Equal(t, 100000, cfg.Limits.MaxLines, "untouched default")
	require.Equal(t, int64(32<<20), cfg.Limits.MaxBodyBytes, "untouched default")
	require.Equal(t, 2, cfg.Solver.Origin)
	require.True(t, cfg.Solver.StrictRouteCount)
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"unknown key":  "nope: 1\n",
		"bad level":    "log: {level: loud}\n",
		"bad format":   "log: {format: xml}\n",
		"zero points":  "limits: {max_points: 0}\n",
		"zero lines":   "limits: {max_lines: 0}\n",
		"zero body":    "limits: {max_body_bytes: 0}\n",
		"bad origin":   "solver: {origin: 0}\n",
		"empty addr":   "server: {addr: \"\"}\n",
		"neg timeout":  "server: {read_timeout: -1s}\n",
		"syntax error": "log: [\n",
	}
	for name, doc := range cases {
		name, doc := name, doc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Decode(strings.NewReader(doc))
			require.Error(t, err)
		})
	}

	_, err := config.Decode(strings.NewReader("solver: {origin: 0}\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	dir := t.TempDir()
	cfg, err = config.Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	path := filepath.Join(dir, "lvtour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits: {max_points: 7}\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Limits.MaxPoints)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.LogConfig{Level: "loud"}.NewLogger(&buf)
	require.Error(t, err)

	lvl, err := config.ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}
