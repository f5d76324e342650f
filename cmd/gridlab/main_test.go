package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness runs the CLI with an isolated config and env file.
type harness struct {
	t   *testing.T
	dir string
}

func newHarness(t *testing.T) *harness {
	h := &harness{t: t, dir: t.TempDir()}
	h.write("lab.yaml", "width: 11\nheight: 9\nruns: 3\nlog_level: error\ncell_px: 2\n")
	h.write("lab.env", "")
	return h
}

func (h *harness) write(name, body string) string {
	p := filepath.Join(h.dir, name)
	require.NoError(h.t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func (h *harness) run(args ...string) (string, error) {
	base := []string{"-config", filepath.Join(h.dir, "lab.yaml"), "-env", filepath.Join(h.dir, "lab.env")}
	var out bytes.Buffer
	err := run(context.Background(), append(base, args...), &out)
	return out.String(), err
}

func TestSolve_MapFile(t *testing.T) {
	h := newHarness(t)
	m := h.write("board.txt", "S..\n.#.\n..E\n")
	pngPath := filepath.Join(h.dir, "out.png")

	out, err := h.run("solve", "-map", m, "-algo", "bfs", "-png", pngPath)
	require.NoError(t, err)
	assert.Contains(t, out, "BFS")
	assert.Contains(t, out, "length 4, cost 4")
	assert.True(t, strings.HasPrefix(out, "S"), out)

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx()) // 3 cells × cell_px 2
}

func TestMaze_Deterministic(t *testing.T) {
	h := newHarness(t)
	a, err := h.run("maze", "-gen", "prims", "-seed", "7")
	require.NoError(t, err)
	b, err := h.run("maze", "-gen", "prims", "-seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	lines := strings.Split(strings.TrimRight(a, "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Len(t, lines[0], 11)
	assert.Equal(t, byte('S'), lines[1][1])
	assert.Equal(t, byte('E'), lines[7][9])
}

func TestCompare(t *testing.T) {
	h := newHarness(t)
	m := h.write("board.txt", "S~~E\n....\n")
	pngPath := filepath.Join(h.dir, "cmp.png")
	out, err := h.run("compare", "-map", m, "-a", "bfs", "-b", "dijkstra", "-png", pngPath)
	require.NoError(t, err)
	assert.Contains(t, out, "length 3, cost 11")
	assert.Contains(t, out, "length 5, cost 5")

	_, err = os.Stat(pngPath)
	assert.NoError(t, err)
}

func TestBench(t *testing.T) {
	h := newHarness(t)
	out, err := h.run("bench", "-runs", "2", "-gen", "backtracker")
	require.NoError(t, err)
	assert.Contains(t, out, "2 runs on 11x9 backtracker mazes")
	for _, name := range []string{"bfs", "dfs", "dijkstra", "astar"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2/2")
}

func TestRun_Errors(t *testing.T) {
	h := newHarness(t)

	_, err := h.run()
	assert.ErrorIs(t, err, errUsage)

	_, err = h.run("fly")
	assert.ErrorIs(t, err, errUsage)

	_, err = h.run("solve", "-algo", "greedy")
	assert.Error(t, err)

	_, err = h.run("solve", "-map", filepath.Join(h.dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = h.run("bench", "-runs", "0")
	assert.Error(t, err)
}

func TestMaze_RejectsMapFlag(t *testing.T) {
	h := newHarness(t)
	m := h.write("board.txt", "S..\n..E\n")
	out, err := h.run("maze", "-map", m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map")
	assert.Empty(t, out)
}
