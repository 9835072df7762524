// Package config loads the optional YAML file shared by the elevroute CLI
// and HTTP server. Flags given on the command line override its values.
//
//	graph: maps/boulder.yaml
//	listen: ":8080"
//	log_level: info
//	search_timeout: 2s
//	defaults:
//	  algorithm: astar
//	  objective: minimize
//	  tolerance: 25
//	  max_depth: 50
//	  baseline_guard: true
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/elevroute/route"
	"github.com/katalvlaran/elevroute/search"
)

// ErrInvalid is returned when a loaded file holds an unusable value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the root configuration state.
type Config struct {
	// Graph is the snapshot file routes are searched on.
	Graph string `yaml:"graph"`

	// Listen is the HTTP server address.
	Listen string `yaml:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// SearchTimeout bounds each HTTP route search; zero means no bound.
	SearchTimeout time.Duration `yaml:"search_timeout"`

	// Defaults apply to requests that leave a field unset.
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are per-request search settings.
type Defaults struct {
	Algorithm     string  `yaml:"algorithm"`
	Objective     string  `yaml:"objective"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxDepth      int     `yaml:"max_depth"`
	BaselineGuard bool    `yaml:"baseline_guard"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
		Defaults: Defaults{
			Algorithm: "dijkstra",
			Objective: "none",
			Tolerance: 0,
			MaxDepth:  search.DefaultMaxDepth,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field that a search or the logger would reject later.
func (c *Config) Validate() error {
	if _, err := route.Lookup(c.Defaults.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm %q", ErrInvalid, c.Defaults.Algorithm)
	}
	if _, err := search.ParseObjective(c.Defaults.Objective); err != nil {
		return fmt.Errorf("%w: objective %q", ErrInvalid, c.Defaults.Objective)
	}
	if math.IsNaN(c.Defaults.Tolerance) || c.Defaults.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance %v", ErrInvalid, c.Defaults.Tolerance)
	}
	if c.SearchTimeout < 0 {
		return fmt.Errorf("%w: search_timeout %s", ErrInvalid, c.SearchTimeout)
	}
	if c.Defaults.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d", ErrInvalid, c.Defaults.MaxDepth)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps a log level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level %q", ErrInvalid, s)
	}
}
