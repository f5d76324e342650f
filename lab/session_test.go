package lab_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/lab"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

// SessionSuite runs every test on a fresh 11×9 session with a fake clock
// and an observed logger.
type SessionSuite struct {
	suite.Suite
	s    *lab.Session
	logs *observer.ObservedLogs
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	clock := &stepClock{t: time.Unix(0, 0), step: 1500 * time.Microsecond}
	sess, err := lab.New(11, 9,
		lab.WithLogger(zap.New(core)),
		lab.WithClock(clock.Now),
		lab.WithSeed(3),
	)
	s.Require().NoError(err)
	s.s, s.logs = sess, logs
}

func (s *SessionSuite) endpoints() (int, int) {
	g := s.s.Grid()
	st, ok := g.Start()
	s.Require().True(ok)
	en, ok := g.End()
	s.Require().True(ok)
	return st, en
}

func (s *SessionSuite) TestDefaults() {
	g := s.s.Grid()
	st, en := s.endpoints()
	s.Equal(g.Index(1, 1), st)
	s.Equal(g.Index(7, 9), en)

	_, err := uuid.Parse(s.s.ID())
	s.NoError(err)
	_, ok := s.s.LastAlgorithm()
	s.False(ok)
	s.Equal(search.Stats{}, s.s.Stats())
}

func (s *SessionSuite) TestRunTimesAndLogs() {
	st, err := s.s.Run(search.AlgBFS)
	s.Require().NoError(err)
	s.True(st.PathFound)
	s.Equal(uint32(14), st.PathLength) // |7-1| + |9-1|
	s.InDelta(1.5, st.ExecutionMS, 1e-9)
	s.Equal(st, s.s.Stats())

	algo, ok := s.s.LastAlgorithm()
	s.True(ok)
	s.Equal(search.AlgBFS, algo)

	entries := s.logs.FilterMessage("search finished").All()
	s.Require().Len(entries, 1)
	fields := entries[0].ContextMap()
	s.Equal("bfs", fields["algorithm"])
	s.Equal(s.s.ID(), fields["session"])
	s.EqualValues(14, fields["length"])
}

func (s *SessionSuite) TestRunClearsPreviousMarks() {
	_, err := s.s.Run(search.AlgDFS)
	s.Require().NoError(err)
	first := s.s.RenderBuffer()

	_, err = s.s.Run(search.AlgDFS)
	s.Require().NoError(err)
	s.Equal(first, s.s.RenderBuffer(), "a re-run must start from a clean board")
}

func (s *SessionSuite) TestRunUnknownAlgorithm() {
	_, err := s.s.Run(search.Algorithm(42))
	s.ErrorIs(err, search.ErrUnknownAlgorithm)
	_, ok := s.s.LastAlgorithm()
	s.False(ok)
}

func (s *SessionSuite) TestPaint() {
	g := s.s.Grid()
	idx := g.Index(4, 4)

	s.Require().NoError(s.s.Paint(lab.ToolMud, idx))
	c, _ := g.Cell(idx)
	s.Equal(grid.CostMud, c.Cost())

	s.Require().NoError(s.s.Paint(lab.ToolWall, idx))
	c, _ = g.Cell(idx)
	s.True(c.IsWall())

	s.Require().NoError(s.s.Paint(lab.ToolWater, idx))
	c, _ = g.Cell(idx)
	s.True(c.IsWall(), "terrain on a wall is a no-op")

	s.Require().NoError(s.s.Paint(lab.ToolErase, idx))
	c, _ = g.Cell(idx)
	s.False(c.IsWall())
	s.Equal(grid.CostNormal, c.Cost())

	s.Require().NoError(s.s.Paint(lab.ToolStart, idx))
	st, _ := s.endpoints()
	s.Equal(idx, st)

	s.ErrorIs(s.s.Paint(lab.ToolWall, g.Size()), grid.ErrIndexOutOfRange)
	s.ErrorIs(s.s.Paint(lab.Tool(99), 0), lab.ErrUnknownTool)
}

func (s *SessionSuite) TestResetSearch() {
	_, err := s.s.Run(search.AlgDijkstra)
	s.Require().NoError(err)
	s.s.ResetSearch()
	s.Equal(search.Stats{}, s.s.Stats())
	for _, c := range s.s.Grid().Cells() {
		s.Equal(grid.MarkNone, c.Mark())
	}
	_, ok := s.s.LastAlgorithm()
	s.True(ok, "ResetSearch keeps the last algorithm")
}

func (s *SessionSuite) TestResetAll() {
	g := s.s.Grid()
	s.Require().NoError(s.s.Paint(lab.ToolWall, g.Index(4, 4)))
	s.Require().NoError(s.s.Paint(lab.ToolEnd, g.Index(0, 0)))
	_, err := s.s.Run(search.AlgAStar)
	s.Require().NoError(err)

	s.s.ResetAll()
	st, en := s.endpoints()
	s.Equal(g.Index(1, 1), st)
	s.Equal(g.Index(7, 9), en)
	c, _ := g.Cell(g.Index(4, 4))
	s.False(c.IsWall())
	_, ok := s.s.LastAlgorithm()
	s.False(ok)
}

func (s *SessionSuite) TestGenerateMazeSolvable() {
	for _, gen := range maze.Generators() {
		s.Require().NoError(s.s.GenerateMaze(gen))
		st, en := s.endpoints()
		s.Equal(s.s.Grid().Index(1, 1), st)
		s.Equal(s.s.Grid().Index(7, 9), en)

		res, err := s.s.Run(search.AlgBFS)
		s.Require().NoError(err)
		s.True(res.PathFound, "%v maze must connect the default endpoints", gen)
	}
	s.NotEmpty(s.logs.FilterMessage("maze generated").All())
}

func (s *SessionSuite) TestCompare() {
	g := s.s.Grid()
	// water across the direct route: BFS walks through it, Dijkstra around.
	for r := 0; r < g.Height()-1; r++ {
		s.Require().NoError(s.s.Paint(lab.ToolWater, g.Index(r, 5)))
	}

	cmp, err := s.s.Compare(search.AlgBFS, search.AlgDijkstra)
	s.Require().NoError(err)
	s.Equal(search.AlgBFS, cmp.A)
	s.Equal(search.AlgDijkstra, cmp.B)
	s.True(cmp.StatsA.PathFound)
	s.True(cmp.StatsB.PathFound)
	s.Len(cmp.BufferA, g.Size())
	s.NotEqual(cmp.BufferA, cmp.BufferB)
	s.Equal(cmp.BufferB, s.s.RenderBuffer(), "grid shows the second run")
	s.Equal(cmp.StatsB, s.s.Stats())
}

//----------------------------------------------------------------------------//
// Construction and options
//----------------------------------------------------------------------------//

func TestNew_Errors(t *testing.T) {
	_, err := lab.New(0, 5)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNew_EvenDimensions(t *testing.T) {
	s, err := lab.New(60, 40)
	require.NoError(t, err)
	g := s.Grid()
	en, ok := g.End()
	require.True(t, ok)
	r, c := g.Coord(en)
	assert.Equal(t, 37, r)
	assert.Equal(t, 57, c)
	assert.True(t, maze.IsLatticeCell(r, c))
}

func TestNew_Tiny(t *testing.T) {
	s, err := lab.New(1, 1)
	require.NoError(t, err)
	st, err := s.Run(search.AlgBFS)
	require.NoError(t, err)
	assert.False(t, st.PathFound)
	assert.GreaterOrEqual(t, st.NodesExplored, uint32(1))
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { lab.WithLogger(nil) })
	assert.Panics(t, func() { lab.WithClock(nil) })
	assert.Panics(t, func() { lab.WithSource(nil) })
}

func TestParseTool(t *testing.T) {
	for _, name := range []string{"wall", "erase", "mud", "water", "start", "end"} {
		tool, err := lab.ParseTool(name)
		require.NoError(t, err)
		assert.Equal(t, name, tool.String())
	}
	_, err := lab.ParseTool("lava")
	assert.ErrorIs(t, err, lab.ErrUnknownTool)
}

func TestFromGrid(t *testing.T) {
	g, err := grid.Parse("....\n.S..\n...E\n")
	require.NoError(t, err)
	s, err := lab.FromGrid(g)
	require.NoError(t, err)
	st, _ := g.Start()
	en, _ := g.End()
	assert.Equal(t, g.Index(1, 1), st)
	assert.Equal(t, g.Index(2, 3), en, "existing endpoints are kept")

	res, err := s.Run(search.AlgBFS)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), res.PathLength)

	bare, err := grid.Parse(".....\n.....\n.....\n")
	require.NoError(t, err)
	_, err = lab.FromGrid(bare)
	require.NoError(t, err)
	en, ok := bare.End()
	require.True(t, ok)
	assert.Equal(t, bare.Index(1, 3), en)

	_, err = lab.FromGrid(nil)
	assert.ErrorIs(t, err, lab.ErrNilGrid)
}

func TestFromGrid_DefaultAvoidsOtherEndpoint(t *testing.T) {
	// the default end of a 3×3 board is (1,1), already the start
	g, err := grid.Parse("...\n.S.\n...\n")
	require.NoError(t, err)
	s, err := lab.FromGrid(g)
	require.NoError(t, err)

	st, _ := g.Start()
	en, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, g.Index(1, 1), st)
	assert.Equal(t, g.Index(2, 2), en)

	res, err := s.Run(search.AlgBFS)
	require.NoError(t, err)
	assert.True(t, res.PathFound)
	assert.Equal(t, uint32(2), res.PathLength)

	// and the mirror case: only an end on the default start spot
	g2, err := grid.Parse("...\n.E.\n...\n")
	require.NoError(t, err)
	_, err = lab.FromGrid(g2)
	require.NoError(t, err)
	st2, ok := g2.Start()
	require.True(t, ok)
	assert.Equal(t, 0, st2)
}

func TestFromGrid_DefaultOpensWall(t *testing.T) {
	g, err := grid.Parse("S..\n.#.\n...\n")
	require.NoError(t, err)
	_, err = lab.FromGrid(g)
	require.NoError(t, err)

	en, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, g.Index(1, 1), en)
	c, _ := g.Cell(en)
	assert.False(t, c.IsWall())

	g2, err := grid.Parse("#..\n.E.\n...\n")
	require.NoError(t, err)
	_, err = lab.FromGrid(g2)
	require.NoError(t, err)
	st, ok := g2.Start()
	require.True(t, ok)
	assert.Equal(t, 0, st)
	c, _ = g2.Cell(0)
	assert.False(t, c.IsWall(), "a default endpoint opens the wall under it")
}
