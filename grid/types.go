package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("grid: index out of range")
	// ErrInvalidCost indicates a terrain cost that is not 1, 3 or 5.
	ErrInvalidCost = errors.New("grid: invalid terrain cost")
	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates an unrecognised rune in text input.
	ErrUnknownSymbol = errors.New("grid: unknown map symbol")
	// ErrDuplicateEndpoint indicates a text map with more than one start
	// or more than one end.
	ErrDuplicateEndpoint = errors.New("grid: duplicate endpoint in map")
)

// Terrain costs. A wall always carries CostWall.
const (
	CostWall   uint16 = 0
	CostNormal uint16 = 1
	CostMud    uint16 = 3
	CostWater  uint16 = 5
)

// Kind says whether a cell can be entered at all.
type Kind uint8

const (
	// Open cells are passable at their terrain cost.
	Open Kind = iota
	// Wall cells are impassable.
	Wall
)

// Role marks the search endpoints. It is a bitset so a single cell can be
// both start and end.
type Role uint8

const (
	// RoleNone is an ordinary cell.
	RoleNone Role = 0
	// RoleStart marks the search origin.
	RoleStart Role = 1 << 0
	// RoleEnd marks the search goal.
	RoleEnd Role = 1 << 1
)

// Mark is the annotation a search run leaves on a cell.
// Path supersedes Visited: every path cell was expanded first.
type Mark uint8

const (
	// MarkNone means the last run never expanded the cell.
	MarkNone Mark = iota
	// MarkVisited means the cell was expanded.
	MarkVisited
	// MarkPath means the cell lies on the reconstructed start→end route.
	MarkPath
)

// Cell is the state of one grid position. The zero value is not a valid
// open cell (its cost is 0); use the Grid mutators instead of building
// cells by hand.
type Cell struct {
	kind Kind
	role Role
	mark Mark
	cost uint16
}

// defaultCell is an open, unmarked cell with normal terrain.
func defaultCell() Cell {
	return Cell{kind: Open, cost: CostNormal}
}

// Kind returns whether the cell is open or a wall.
func (c Cell) Kind() Kind { return c.kind }

// Role returns the endpoint bitset of the cell.
func (c Cell) Role() Role { return c.role }

// Mark returns the search annotation of the cell.
func (c Cell) Mark() Mark { return c.mark }

// Cost returns the traversal weight; 0 for walls.
func (c Cell) Cost() uint16 { return c.cost }

// IsWall reports whether the cell is impassable.
func (c Cell) IsWall() bool { return c.kind == Wall }

// IsStart reports whether the cell is the search origin.
func (c Cell) IsStart() bool { return c.role&RoleStart != 0 }

// IsEnd reports whether the cell is the search goal.
func (c Cell) IsEnd() bool { return c.role&RoleEnd != 0 }

// IsVisited reports whether the last run expanded the cell.
// Path cells count as visited.
func (c Cell) IsVisited() bool { return c.mark >= MarkVisited }

// IsPath reports whether the cell lies on the reconstructed path.
func (c Cell) IsPath() bool { return c.mark == MarkPath }

// ValidCost reports whether cost is one of the paintable terrain costs.
func ValidCost(cost uint16) bool {
	switch cost {
	case CostNormal, CostMud, CostWater:
		return true
	}
	return false
}
