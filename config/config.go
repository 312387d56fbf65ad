// SPDX-License-Identifier: MIT

// Package config loads the lvtour configuration file.
//
// A missing file is not an error: Default() applies. Command-line flags
// override file values in cmd/lvtour.
//
//	log:
//	  level: info          # debug|info|warn|error
//	  format: text         # text|json
//	server:
//	  addr: ":8080"
//	  read_timeout: 5s
//	  shutdown_timeout: 10s
//	limits:
//	  max_points: 2000
//	  max_lines: 100000
//	solver:
//	  origin: 1
//	  strict_route_count: false
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Limits LimitsConfig `yaml:"limits"`
	Solver SolverConfig `yaml:"solver"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LimitsConfig bounds every calculation, from the CLI and the server alike.
// Relaxation is O(P³) time and O(P²) memory, so MaxPoints is the knob that
// bounds CPU and memory per calculation. MaxBodyBytes caps HTTP request bodies.
type LimitsConfig struct {
	MaxPoints    int   `yaml:"max_points"`
	MaxLines     int   `yaml:"max_lines"`
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// SolverConfig maps onto roundtrip options.
type SolverConfig struct {
	Origin           int  `yaml:"origin"`
	StrictRouteCount bool `yaml:"strict_route_count"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Limits: LimitsConfig{MaxPoints: 2000, MaxLines: 100000, MaxBodyBytes: 32 << 20},
		Solver: SolverConfig{Origin: 1},
	}
}

// Load reads path over Default(). An empty path or a missing file yields
// Default(); any other read or parse error is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: want text or json", c.Log.Format))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must be >= 0"))
	}
	if c.Limits.MaxPoints < 1 {
		errs = append(errs, fmt.Errorf("limits.max_points %d: want >= 1", c.Limits.MaxPoints))
	}
	if c.Limits.MaxLines < 1 {
		errs = append(errs, fmt.Errorf("limits.max_lines %d: want >= 1", c.Limits.MaxLines))
	}
	if c.Limits.MaxBodyBytes < 1 {
		errs = append(errs, fmt.Errorf("limits.max_body_bytes %d: want >= 1", c.Limits.MaxBodyBytes))
	}
	if c.Solver.Origin < 1 {
		errs = append(errs, fmt.Errorf("solver.origin %d: want >= 1", c.Solver.Origin))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, err)
	}

	return lvl, nil
}

// NewLogger builds the slog logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
