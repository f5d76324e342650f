package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// noEnv writes an empty env file so Load does not pick up ./.env.
func noEnv(t *testing.T) string {
	return writeFile(t, "empty.env", "")
}

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	gen, err := cfg.MazeGenerator()
	require.NoError(t, err)
	assert.Equal(t, maze.Backtracker, gen)
	algo, err := cfg.SearchAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, search.AlgAStar, algo)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("", noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "lab.yaml", `
width: 21
height: 15
generator: prims
algorithm: dijkstra
runs: 5
log_level: debug
`)
	cfg, err := Load(p, noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
	assert.Equal(t, "prims", cfg.Generator)
	assert.Equal(t, "dijkstra", cfg.Algorithm)
	assert.Equal(t, 5, cfg.Runs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(1), cfg.Seed, "unset keys keep defaults")
}

func TestLoad_YAMLErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), noEnv(t))
	assert.ErrorIs(t, err, os.ErrNotExist)

	p := writeFile(t, "bad.yaml", "colour: red\n")
	_, err = Load(p, noEnv(t))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "colour"), err.Error())

	p = writeFile(t, "small.yaml", "width: 2\n")
	_, err = Load(p, noEnv(t))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_EmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yaml", ""), noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	p := writeFile(t, "lab.yaml", "width: 21\nalgorithm: bfs\n")
	t.Setenv("GRIDLAB_WIDTH", "31")
	t.Setenv("GRIDLAB_SEED", "-9")
	t.Setenv("GRIDLAB_ALGORITHM", "a*")

	cfg, err := Load(p, noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.Width)
	assert.Equal(t, int64(-9), cfg.Seed)
	assert.Equal(t, "a*", cfg.Algorithm)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Cleanup(func() { _ = os.Unsetenv("GRIDLAB_RUNS") })
	t.Setenv("GRIDLAB_HEIGHT", "11") // process env wins over the file

	env := writeFile(t, "lab.env", "GRIDLAB_RUNS=7\nGRIDLAB_HEIGHT=99\n")
	cfg, err := Load("", env)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Runs)
	assert.Equal(t, 11, cfg.Height)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestApplyEnv_Errors(t *testing.T) {
	cases := map[string]string{
		"GRIDLAB_WIDTH":   "wide",
		"GRIDLAB_SEED":    "1.5",
		"GRIDLAB_CELL_PX": "",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			lookup := func(k string) (string, bool) {
				if k == key {
					return val, true
				}
				return "", false
			}
			assert.ErrorIs(t, cfg.applyEnv(lookup), ErrEnv)
		})
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"NarrowBoard", func(c *Config) { c.Width = 2 }},
		{"ZeroRuns", func(c *Config) { c.Runs = 0 }},
		{"ZeroCellPx", func(c *Config) { c.CellPx = 0 }},
		{"UnknownGenerator", func(c *Config) { c.Generator = "kruskal" }},
		{"UnknownAlgorithm", func(c *Config) { c.Algorithm = "greedy" }},
		{"BadLevel", func(c *Config) { c.LogLevel = "loud" }},
		{"BadFormat", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := Default()
		cfg.LogFormat = format
		cfg.LogLevel = "warn"
		l, err := cfg.NewLogger()
		require.NoError(t, err, format)
		assert.False(t, l.Core().Enabled(-1), "debug must be off at warn")
		assert.True(t, l.Core().Enabled(2), "error must be on at warn")
	}
}
