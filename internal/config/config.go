// Package config loads gridlab settings from an optional YAML file, an
// optional .env file and GRIDLAB_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "GRIDLAB_"

// Sentinel errors for configuration.
var (
	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
	// ErrEnv indicates an environment override that cannot be parsed.
	ErrEnv = errors.New("config: bad environment value")
)

// Config holds every tunable of the CLI and the benchmark runner.
type Config struct {
	Width     int    `yaml:"width"`     // board width in cells
	Height    int    `yaml:"height"`    // board height in cells
	Seed      int64  `yaml:"seed"`      // maze seed; 0 means the default seed
	Generator string `yaml:"generator"` // backtracker | prims
	Algorithm string `yaml:"algorithm"` // bfs | dfs | dijkstra | astar
	Runs      int    `yaml:"runs"`      // bench: mazes per algorithm
	CellPx    int    `yaml:"cell_px"`   // PNG: pixels per cell
	LogLevel  string `yaml:"log_level"` // debug | info | warn | error
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:     61,
		Height:    41,
		Seed:      1,
		Generator: maze.Backtracker.String(),
		Algorithm: search.AlgAStar.String(),
		Runs:      20,
		CellPx:    8,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the given .env files and finally the process
// environment. With no envFiles, ./.env is read if present.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := loadDotEnv(envFiles); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode overlays YAML from r onto cfg. Unknown keys are rejected.
func (cfg *Config) decode(r io.Reader) error {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// loadDotEnv loads files without overriding variables already set.
func loadDotEnv(files []string) error {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: env files: %w", err)
	}
	return nil
}

// applyEnv overrides fields from GRIDLAB_* variables found by lookup.
func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &cfg.Width},
		{"HEIGHT", &cfg.Height},
		{"RUNS", &cfg.Runs},
		{"CELL_PX", &cfg.CellPx},
	}
	for _, f := range ints {
		if v, ok := lookup(EnvPrefix + f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s%s=%q", ErrEnv, EnvPrefix, f.key, v)
			}
			*f.dst = n
		}
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q", ErrEnv, EnvPrefix, v)
		}
		cfg.Seed = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"GENERATOR", &cfg.Generator},
		{"ALGORITHM", &cfg.Algorithm},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"LOG_FORMAT", &cfg.LogFormat},
	}
	for _, f := range strs {
		if v, ok := lookup(EnvPrefix + f.key); ok {
			*f.dst = v
		}
	}
	return nil
}

// Validate checks ranges and names.
func (cfg Config) Validate() error {
	if cfg.Width < maze.MinSize || cfg.Height < maze.MinSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalid, cfg.Width, cfg.Height, maze.MinSize, maze.MinSize)
	}
	if cfg.Runs <= 0 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalid, cfg.Runs)
	}
	if cfg.CellPx <= 0 {
		return fmt.Errorf("%w: cell_px must be positive, got %d", ErrInvalid, cfg.CellPx)
	}
	if _, err := cfg.MazeGenerator(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := cfg.SearchAlgorithm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be console or json, got %q", ErrInvalid, cfg.LogFormat)
	}
	return nil
}

// MazeGenerator parses the Generator field.
func (cfg Config) MazeGenerator() (maze.Generator, error) {
	return maze.ParseGenerator(cfg.Generator)
}

// SearchAlgorithm parses the Algorithm field.
func (cfg Config) SearchAlgorithm() (search.Algorithm, error) {
	return search.ParseAlgorithm(cfg.Algorithm)
}

// NewLogger builds a zap logger at the configured level and format,
// writing to stderr.
func (cfg Config) NewLogger() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
