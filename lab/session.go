package lab

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

// Sentinel errors for session operations.
var (
	// ErrUnknownTool indicates a Tool value or name outside the known set.
	ErrUnknownTool = errors.New("lab: unknown tool")
	// ErrNilGrid indicates FromGrid was given no grid.
	ErrNilGrid = errors.New("lab: nil grid")
)

// Session owns a grid, the last Stats and the last algorithm run on it.
type Session struct {
	id    string
	grid  *grid.Grid
	stats search.Stats

	last    search.Algorithm
	hasLast bool

	log *zap.Logger
	now func() time.Time
	src maze.Source
}

// Comparison holds two runs over the same board. BufferA is the render
// buffer right after A finished; BufferB right after B.
type Comparison struct {
	A, B             search.Algorithm
	StatsA, StatsB   search.Stats
	BufferA, BufferB []byte
}

// New builds a width×height session with default endpoints.
// Errors from grid.New are returned unchanged.
func New(width, height int, opts ...Option) (*Session, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	s := newSession(g, opts)
	s.placeEndpoints()
	s.log.Debug("session created", zap.Int("width", width), zap.Int("height", height))
	return s, nil
}

// FromGrid wraps an existing board, for example one read with grid.Parse.
// Endpoints already on g are kept. A missing one goes to its default spot,
// or, when the other endpoint already sits there, to the opposite corner
// ((0,0) for start, (h-1,w-1) for end) and then to the first free cell.
// Placing a default endpoint on a wall opens that wall.
// Only a 1×1 board ends up with start == end.
func FromGrid(g *grid.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s := newSession(g, opts)
	start, end := DefaultEndpoints(g)
	if _, ok := g.Start(); !ok {
		_ = g.SetStart(freeCell(g, start, 0))
	}
	if _, ok := g.End(); !ok {
		_ = g.SetEnd(freeCell(g, end, g.Size()-1))
	}
	s.log.Debug("session adopted grid", zap.Int("width", g.Width()), zap.Int("height", g.Height()))
	return s, nil
}

// freeCell returns the first of preferred, corner and then any index
// holding no endpoint role. With none free it returns preferred.
func freeCell(g *grid.Grid, preferred, corner int) int {
	free := func(idx int) bool {
		c, ok := g.Cell(idx)
		return ok && c.Role() == grid.RoleNone
	}
	if free(preferred) {
		return preferred
	}
	if free(corner) {
		return corner
	}
	for i := 0; i < g.Size(); i++ {
		if free(i) {
			return i
		}
	}
	return preferred
}

func newSession(g *grid.Grid, opts []Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		grid: g,
		log:  zap.NewNop(),
		now:  time.Now,
		src:  maze.NewSource(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session", s.id))
	return s
}

// ID returns the session's random UUID.
func (s *Session) ID() string { return s.id }

// Grid exposes the board for rendering and direct edits.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Stats returns the result of the last Run, or zero Stats after a reset.
func (s *Session) Stats() search.Stats { return s.stats }

// LastAlgorithm reports the algorithm of the last Run, if any.
func (s *Session) LastAlgorithm() (search.Algorithm, bool) { return s.last, s.hasLast }

// RenderBuffer returns a fresh copy of the grid's render bytes.
func (s *Session) RenderBuffer() []byte { return s.grid.RenderBuffer(nil) }

// SetSource swaps the random source used by later GenerateMaze calls.
// Panics on nil, like WithSource.
func (s *Session) SetSource(src maze.Source) {
	if src == nil {
		panic("lab: SetSource(nil)")
	}
	s.src = src
}

// DefaultEndpoints returns the start and end indices New uses: (1,1) and
// the bottom-right lattice cell, clamped into the grid.
func DefaultEndpoints(g *grid.Grid) (start, end int) {
	lastOdd := func(n int) int {
		v := n - 2
		if v%2 == 0 {
			v--
		}
		if v < 0 {
			v = n - 1
		}
		return v
	}
	r0, c0 := min(1, g.Height()-1), min(1, g.Width()-1)
	return g.Index(r0, c0), g.Index(lastOdd(g.Height()), lastOdd(g.Width()))
}

func (s *Session) placeEndpoints() {
	start, end := DefaultEndpoints(s.grid)
	_ = s.grid.SetStart(start)
	_ = s.grid.SetEnd(end)
}

// Paint applies tool at idx. Out-of-range indices return
// grid.ErrIndexOutOfRange and leave the board alone.
func (s *Session) Paint(tool Tool, idx int) error {
	var err error
	switch tool {
	case ToolWall:
		err = s.grid.SetWall(idx, true)
	case ToolErase:
		err = s.grid.SetWall(idx, false)
	case ToolMud:
		err = s.grid.SetTerrain(idx, grid.CostMud)
	case ToolWater:
		err = s.grid.SetTerrain(idx, grid.CostWater)
	case ToolStart:
		err = s.grid.SetStart(idx)
	case ToolEnd:
		err = s.grid.SetEnd(idx)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownTool, tool)
	}
	if err != nil {
		return fmt.Errorf("lab: paint %v at %d: %w", tool, idx, err)
	}
	return nil
}

// Run clears earlier marks and executes algo. ExecutionMS is measured with
// the session clock around the search call only.
func (s *Session) Run(algo search.Algorithm) (search.Stats, error) {
	s.grid.ResetSearchState()
	t0 := s.now()
	st, err := search.Run(s.grid, algo)
	if err != nil {
		return search.Stats{}, err
	}
	st.ExecutionMS = float64(s.now().Sub(t0)) / float64(time.Millisecond)

	s.stats = st
	s.last, s.hasLast = algo, true
	s.log.Info("search finished",
		zap.Stringer("algorithm", algo),
		zap.Uint32("nodes", st.NodesExplored),
		zap.Uint32("length", st.PathLength),
		zap.Bool("found", st.PathFound),
		zap.Float64("elapsed_ms", st.ExecutionMS),
	)
	return st, nil
}

// ResetSearch drops marks and Stats; the board itself is kept.
func (s *Session) ResetSearch() {
	s.grid.ResetSearchState()
	s.stats = search.Stats{}
}

// ResetAll clears the board, re-places the default endpoints and forgets
// the last run.
func (s *Session) ResetAll() {
	s.grid.ResetAll()
	s.placeEndpoints()
	s.stats = search.Stats{}
	s.hasLast = false
	s.log.Debug("board reset")
}

// GenerateMaze replaces the board with a maze from gen and re-places the
// default endpoints, which always land on carved lattice cells.
func (s *Session) GenerateMaze(gen maze.Generator) error {
	if err := maze.Generate(s.grid, gen, s.src); err != nil {
		return fmt.Errorf("lab: generate %v: %w", gen, err)
	}
	s.placeEndpoints()
	s.stats = search.Stats{}
	s.hasLast = false
	s.log.Info("maze generated", zap.Stringer("generator", gen))
	return nil
}

// Compare runs a then b on the current board. Afterwards the grid shows
// b's marks and Stats holds b's result.
func (s *Session) Compare(a, b search.Algorithm) (Comparison, error) {
	c := Comparison{A: a, B: b}
	var err error
	if c.StatsA, err = s.Run(a); err != nil {
		return Comparison{}, err
	}
	c.BufferA = s.RenderBuffer()
	if c.StatsB, err = s.Run(b); err != nil {
		return Comparison{}, err
	}
	c.BufferB = s.RenderBuffer()
	return c, nil
}
