package grid

import "fmt"

// Grid is a dense, row-major board of cells. It owns every Cell exclusively;
// callers read copies through Cell and Cells.
type Grid struct {
	width, height int
	cells         []Cell
}

// New allocates a width×height grid of open cells with normal terrain.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = defaultCell()
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width()*Height().
func (g *Grid) Size() int { return len(g.cells) }

// Index maps (row, col) to a flat index. It does not check bounds;
// pair it with InBounds.
func (g *Grid) Index(row, col int) int {
	return row*g.width + col
}

// Coord converts a flat index back to (row, col).
func (g *Grid) Coord(idx int) (row, col int) {
	return idx / g.width, idx % g.width
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Valid reports whether idx addresses a cell.
func (g *Grid) Valid(idx int) bool {
	return idx >= 0 && idx < len(g.cells)
}

// Cell returns a copy of the cell at idx and whether idx was valid.
func (g *Grid) Cell(idx int) (Cell, bool) {
	if !g.Valid(idx) {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{width: g.width, height: g.height, cells: g.Cells()}
}

func (g *Grid) checkIndex(idx int) error {
	if !g.Valid(idx) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, idx, len(g.cells))
	}
	return nil
}

// SetWall turns the cell at idx into a wall (cost 0, role and mark cleared)
// or back into an open cell with normal terrain.
func (g *Grid) SetWall(idx int, wall bool) error {
	if err := g.checkIndex(idx); err != nil {
		return err
	}
	c := &g.cells[idx]
	if wall {
		*c = Cell{kind: Wall, cost: CostWall}
		return nil
	}
	c.kind = Open
	c.cost = CostNormal

	return nil
}

// SetTerrain paints a terrain cost on an open cell. Walls are left alone
// (no error), so a brush dragged across walls does not punch through them.
func (g *Grid) SetTerrain(idx int, cost uint16) error {
	if err := g.checkIndex(idx); err != nil {
		return err
	}
	if !ValidCost(cost) {
		return fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	if g.cells[idx].kind == Wall {
		return nil
	}
	g.cells[idx].cost = cost

	return nil
}

// SetStart moves the start marker to idx, clearing it everywhere else.
// A wall at idx is opened first.
func (g *Grid) SetStart(idx int) error {
	return g.setRole(idx, RoleStart)
}

// SetEnd moves the end marker to idx, clearing it everywhere else.
// A wall at idx is opened first.
func (g *Grid) SetEnd(idx int) error {
	return g.setRole(idx, RoleEnd)
}

func (g *Grid) setRole(idx int, r Role) error {
	if err := g.checkIndex(idx); err != nil {
		return err
	}
	for i := range g.cells {
		g.cells[i].role &^= r
	}
	c := &g.cells[idx]
	if c.kind == Wall {
		c.kind = Open
		c.cost = CostNormal
	}
	c.role |= r

	return nil
}

// Start returns the index of the start cell, if any.
func (g *Grid) Start() (int, bool) {
	return g.find(RoleStart)
}

// End returns the index of the end cell, if any.
func (g *Grid) End() (int, bool) {
	return g.find(RoleEnd)
}

func (g *Grid) find(r Role) (int, bool) {
	for i := range g.cells {
		if g.cells[i].role&r != 0 {
			return i, true
		}
	}
	return -1, false
}

// ResetSearchState clears visited and path marks. Walls, terrain and
// endpoints are untouched. Idempotent.
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].mark = MarkNone
	}
}

// ResetAll restores every cell to an open, unmarked, normal-cost cell,
// dropping walls, terrain and endpoints.
func (g *Grid) ResetAll() {
	for i := range g.cells {
		g.cells[i] = defaultCell()
	}
}

// MarkVisited annotates idx as expanded. Start cells and out-of-range
// indices are ignored; it reports whether the mark was applied.
// An existing path mark is kept.
func (g *Grid) MarkVisited(idx int) bool {
	if !g.Valid(idx) {
		return false
	}
	c := &g.cells[idx]
	if c.role&RoleStart != 0 {
		return false
	}
	if c.mark < MarkVisited {
		c.mark = MarkVisited
	}
	return true
}

// MarkPath annotates idx as part of the route. Start and end cells keep
// their own appearance and are ignored, as are out-of-range indices.
func (g *Grid) MarkPath(idx int) bool {
	if !g.Valid(idx) {
		return false
	}
	c := &g.cells[idx]
	if c.role != RoleNone {
		return false
	}
	c.mark = MarkPath
	return true
}

// Neighbors returns the in-bounds, non-wall orthogonal neighbours of idx in
// the fixed order up, down, left, right. BFS and DFS tie-breaking depends
// on this order. An out-of-range idx yields nil.
func (g *Grid) Neighbors(idx int) []int {
	if !g.Valid(idx) {
		return nil
	}
	return g.AppendNeighbors(make([]int, 0, 4), idx)
}

// AppendNeighbors is Neighbors writing into dst, for allocation-free loops.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	if !g.Valid(idx) {
		return dst
	}
	row, col := g.Coord(idx)
	if row > 0 && g.cells[idx-g.width].kind != Wall {
		dst = append(dst, idx-g.width)
	}
	if row < g.height-1 && g.cells[idx+g.width].kind != Wall {
		dst = append(dst, idx+g.width)
	}
	if col > 0 && g.cells[idx-1].kind != Wall {
		dst = append(dst, idx-1)
	}
	if col < g.width-1 && g.cells[idx+1].kind != Wall {
		dst = append(dst, idx+1)
	}

	return dst
}
