package grid

import (
	"fmt"
	"strings"
)

// Map symbols used by Parse and String.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolMud     = ':'
	SymbolWater   = '~'
	SymbolPath    = '*'
	SymbolVisited = '+'
)

// Parse builds a grid from a text map, one line per row. Blank lines and
// trailing whitespace are ignored. Path and visited symbols read back as
// plain open cells so String output round-trips the board, not the run.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownSymbol or
// ErrDuplicateEndpoint (the last two wrapped with the row and column).
func Parse(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	for r, line := range rows {
		if n := len([]rune(line)); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, n, width)
		}
	}

	g, err := New(width, len(rows))
	if err != nil {
		return nil, err
	}
	var starts, ends int
	for r, line := range rows {
		for c, sym := range []rune(line) {
			switch sym {
			case SymbolStart:
				starts++
			case SymbolEnd:
				ends++
			}
			if starts > 1 || ends > 1 {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrDuplicateEndpoint, sym, r, c)
			}
			if err := g.apply(g.Index(r, c), sym); err != nil {
				return nil, fmt.Errorf("%w: %q at row %d col %d", err, sym, r, c)
			}
		}
	}

	return g, nil
}

// apply paints one parsed symbol onto a fresh cell.
func (g *Grid) apply(idx int, sym rune) error {
	switch sym {
	case SymbolOpen, SymbolPath, SymbolVisited:
		return nil
	case SymbolWall:
		return g.SetWall(idx, true)
	case SymbolStart:
		return g.SetStart(idx)
	case SymbolEnd:
		return g.SetEnd(idx)
	case SymbolMud:
		return g.SetTerrain(idx, CostMud)
	case SymbolWater:
		return g.SetTerrain(idx, CostWater)
	}
	return ErrUnknownSymbol
}

// Symbol returns the map rune for a cell, using the same precedence as the
// render encoding: wall, start, end, path, visited, mud, water, open.
func (c Cell) Symbol() rune {
	switch {
	case c.kind == Wall:
		return SymbolWall
	case c.IsStart():
		return SymbolStart
	case c.IsEnd():
		return SymbolEnd
	case c.mark == MarkPath:
		return SymbolPath
	case c.mark == MarkVisited:
		return SymbolVisited
	case c.cost == CostMud:
		return SymbolMud
	case c.cost == CostWater:
		return SymbolWater
	}
	return SymbolOpen
}

// String renders the grid as a text map, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			sb.WriteRune(g.cells[g.Index(r, c)].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
