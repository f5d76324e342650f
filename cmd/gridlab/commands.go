package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gridlab/bench"
	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/lab"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/render"
	"github.com/katalvlaran/gridlab/search"
)

// boardFlags are shared by every command that builds a board.
type boardFlags struct {
	width, height *int
	seed          *int64
	gen           *string
	mapPath       *string
	pngPath       *string
}

// boardFlags registers the board flags on fs. -map is only registered
// when withMap is set; otherwise the board is always a fresh maze.
func (e *env) boardFlags(fs *flag.FlagSet, withMap bool) *boardFlags {
	bf := &boardFlags{
		width:   fs.Int("width", e.cfg.Width, "board width"),
		height:  fs.Int("height", e.cfg.Height, "board height"),
		seed:    fs.Int64("seed", e.cfg.Seed, "maze seed"),
		gen:     fs.String("gen", e.cfg.Generator, "maze generator: backtracker|prims"),
		mapPath: new(string),
		pngPath: fs.String("png", "", "write the board as PNG to this file"),
	}
	if withMap {
		fs.StringVar(bf.mapPath, "map", "", "text map file; empty means a fresh maze")
	}
	return bf
}

// session builds a session from -map, or carves a maze when no map is given.
func (e *env) session(bf *boardFlags) (*lab.Session, error) {
	opts := []lab.Option{lab.WithLogger(e.log), lab.WithSeed(*bf.seed)}
	if *bf.mapPath != "" {
		text, err := os.ReadFile(*bf.mapPath)
		if err != nil {
			return nil, err
		}
		g, err := grid.Parse(string(text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *bf.mapPath, err)
		}
		return lab.FromGrid(g, opts...)
	}

	gen, err := maze.ParseGenerator(*bf.gen)
	if err != nil {
		return nil, err
	}
	s, err := lab.New(*bf.width, *bf.height, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.GenerateMaze(gen); err != nil {
		return nil, err
	}
	return s, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (e *env) solve(args []string) error {
	fs := newFlagSet("solve")
	bf := e.boardFlags(fs, true)
	algoName := fs.String("algo", e.cfg.Algorithm, "bfs|dfs|dijkstra|astar")
	if err := fs.Parse(args); err != nil {
		return err
	}
	algo, err := search.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	s, err := e.session(bf)
	if err != nil {
		return err
	}
	st, err := s.Run(algo)
	if err != nil {
		return err
	}
	fmt.Fprint(e.out, s.Grid())
	printStats(e.out, algo, s.Grid(), st)
	return e.savePNG(*bf.pngPath, func() (image.Image, error) {
		return render.Image(s.Grid(), e.cfg.CellPx)
	})
}

func (e *env) maze(args []string) error {
	fs := newFlagSet("maze")
	bf := e.boardFlags(fs, false)
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := e.session(bf)
	if err != nil {
		return err
	}
	fmt.Fprint(e.out, s.Grid())
	return e.savePNG(*bf.pngPath, func() (image.Image, error) {
		return render.Image(s.Grid(), e.cfg.CellPx)
	})
}

func (e *env) compare(args []string) error {
	fs := newFlagSet("compare")
	bf := e.boardFlags(fs, true)
	aName := fs.String("a", "bfs", "left algorithm")
	bName := fs.String("b", e.cfg.Algorithm, "right algorithm")
	if err := fs.Parse(args); err != nil {
		return err
	}
	a, err := search.ParseAlgorithm(*aName)
	if err != nil {
		return err
	}
	b, err := search.ParseAlgorithm(*bName)
	if err != nil {
		return err
	}
	s, err := e.session(bf)
	if err != nil {
		return err
	}
	cmp, err := s.Compare(a, b)
	if err != nil {
		return err
	}

	// PathCost reads path marks, so A's cost is computed on a board
	// rebuilt from A's buffer.
	costA := costFromBuffer(s.Grid(), cmp.BufferA, cmp.StatsA)
	printStatsCost(e.out, a, cmp.StatsA, costA)
	printStats(e.out, b, s.Grid(), cmp.StatsB)
	g := s.Grid()
	return e.savePNG(*bf.pngPath, func() (image.Image, error) {
		return render.Split(cmp.BufferA, cmp.BufferB, g.Width(), g.Height(), e.cfg.CellPx)
	})
}

// costFromBuffer sums terrain costs of the cells A marked as path, plus
// the end. Terrain is read from g, which still has the same board.
func costFromBuffer(g *grid.Grid, buf []byte, st search.Stats) uint32 {
	if !st.PathFound {
		return 0
	}
	var total uint32
	for i, b := range buf {
		if b == grid.RenderPath || b == grid.RenderEnd {
			c, _ := g.Cell(i)
			total += uint32(c.Cost())
		}
	}
	return total
}

func (e *env) bench(ctx context.Context, args []string) error {
	fs := newFlagSet("bench")
	width := fs.Int("width", e.cfg.Width, "board width")
	height := fs.Int("height", e.cfg.Height, "board height")
	runs := fs.Int("runs", e.cfg.Runs, "mazes per algorithm")
	seed := fs.Int64("seed", e.cfg.Seed, "first maze seed")
	genName := fs.String("gen", e.cfg.Generator, "backtracker|prims")
	if err := fs.Parse(args); err != nil {
		return err
	}
	gen, err := maze.ParseGenerator(*genName)
	if err != nil {
		return err
	}
	rep, err := bench.Run(ctx, bench.Config{
		Width: *width, Height: *height,
		Runs: *runs, Seed: *seed,
		Generator: gen,
		Logger:    e.log,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "%s runs on %dx%d %v mazes\n", humanize.Comma(int64(rep.Runs)), *width, *height, gen)
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tNODES(mean)\tNODES(p95)\tLENGTH(mean)\tMS(median)\tFOUND")
	for _, r := range rep.Results {
		fmt.Fprintf(tw, "%v\t%s\t%s\t%s\t%s\t%d/%d\n",
			r.Algorithm,
			humanize.CommafWithDigits(r.Nodes.Mean, 1),
			humanize.CommafWithDigits(r.Nodes.P95, 1),
			humanize.CommafWithDigits(r.Length.Mean, 1),
			humanize.CommafWithDigits(r.ElapsedMS.Median, 3),
			r.Found, rep.Runs,
		)
	}
	return tw.Flush()
}

func printStats(w io.Writer, algo search.Algorithm, g *grid.Grid, st search.Stats) {
	printStatsCost(w, algo, st, search.PathCost(g, st))
}

func printStatsCost(w io.Writer, algo search.Algorithm, st search.Stats, cost uint32) {
	path := "no path"
	if st.PathFound {
		path = fmt.Sprintf("length %s, cost %s",
			humanize.Comma(int64(st.PathLength)), humanize.Comma(int64(cost)))
	}
	fmt.Fprintf(w, "%-8s nodes %s, %s, %s ms\n",
		strings.ToUpper(algo.String()),
		humanize.Comma(int64(st.NodesExplored)),
		path,
		humanize.CommafWithDigits(st.ExecutionMS, 3),
	)
}

// savePNG writes the image from build to path; an empty path is a no-op.
func (e *env) savePNG(path string, build func() (image.Image, error)) error {
	if path == "" {
		return nil
	}
	img, err := build()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	e.log.Sugar().Infof("wrote %s", path)
	return nil
}
