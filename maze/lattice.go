package maze

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// step is one maze move: the cell two steps away and the wall between.
type step struct {
	cell, wall int
}

// IsLatticeCell reports whether (row, col) sits on the carve lattice, i.e.
// both coordinates are odd. Every carved room lies on it; carved walls
// between rooms do not.
func IsLatticeCell(row, col int) bool {
	return row%2 == 1 && col%2 == 1
}

// prepare validates the inputs and walls in the whole grid.
func prepare(g *grid.Grid, src Source) error {
	if g == nil {
		return ErrNilGrid
	}
	if src == nil {
		return ErrNilSource
	}
	if g.Width() < MinSize || g.Height() < MinSize {
		return fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, g.Width(), g.Height())
	}
	g.ResetAll()
	for i := 0; i < g.Size(); i++ {
		_ = g.SetWall(i, true)
	}
	return nil
}

// carve opens idx as normal terrain.
func carve(g *grid.Grid, idx int) {
	_ = g.SetWall(idx, false)
}

// appendSteps appends the maze neighbours of idx in the order up, down,
// left, right. Bounds follow the lattice: a step must land strictly inside
// the grid on its own axis.
func appendSteps(dst []step, g *grid.Grid, idx int) []step {
	w, h := g.Width(), g.Height()
	row, col := g.Coord(idx)
	if row >= 2 {
		dst = append(dst, step{cell: idx - 2*w, wall: idx - w})
	}
	if row+2 < h {
		dst = append(dst, step{cell: idx + 2*w, wall: idx + w})
	}
	if col >= 2 {
		dst = append(dst, step{cell: idx - 2, wall: idx - 1})
	}
	if col+2 < w {
		dst = append(dst, step{cell: idx + 2, wall: idx + 1})
	}
	return dst
}
