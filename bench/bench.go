package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridlab/lab"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
)

// ErrNoRuns indicates a Config with Runs ≤ 0.
var ErrNoRuns = errors.New("bench: runs must be positive")

// Config selects the board, the mazes and the algorithms to measure.
type Config struct {
	Width, Height int
	Runs          int
	Seed          int64
	Generator     maze.Generator
	Algorithms    []search.Algorithm // nil means search.Algorithms()

	Logger *zap.Logger      // nil means zap.NewNop()
	Clock  func() time.Time // nil means time.Now
}

// Summary reduces one series of samples.
type Summary struct {
	Mean, Median, StdDev, P95, Min, Max float64
}

// Result holds the summaries for one algorithm.
type Result struct {
	Algorithm search.Algorithm
	Nodes     Summary
	Length    Summary
	ElapsedMS Summary
	Found     int // runs that reached the end
}

// Report is the outcome of Run, one Result per algorithm in request order.
type Report struct {
	Runs    int
	Results []Result
}

type samples struct {
	nodes, length, elapsed stats.Float64Data
	found                  int
}

// Run executes the benchmark described by cfg.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Runs <= 0 {
		return Report{}, fmt.Errorf("%w: got %d", ErrNoRuns, cfg.Runs)
	}
	algos := cfg.Algorithms
	if len(algos) == 0 {
		algos = search.Algorithms()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	opts := []lab.Option{lab.WithLogger(log)}
	if cfg.Clock != nil {
		opts = append(opts, lab.WithClock(cfg.Clock))
	}
	sess, err := lab.New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return Report{}, fmt.Errorf("bench: %w", err)
	}

	acc := make([]samples, len(algos))
	for i := 0; i < cfg.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		sess.SetSource(maze.NewSource(cfg.Seed + int64(i)))
		if err := sess.GenerateMaze(cfg.Generator); err != nil {
			return Report{}, fmt.Errorf("bench: run %d: %w", i, err)
		}
		for j, algo := range algos {
			st, err := sess.Run(algo)
			if err != nil {
				return Report{}, fmt.Errorf("bench: run %d: %w", i, err)
			}
			acc[j].nodes = append(acc[j].nodes, float64(st.NodesExplored))
			acc[j].length = append(acc[j].length, float64(st.PathLength))
			acc[j].elapsed = append(acc[j].elapsed, st.ExecutionMS)
			if st.PathFound {
				acc[j].found++
			}
		}
		log.Debug("bench round done", zap.Int("round", i))
	}

	rep := Report{Runs: cfg.Runs, Results: make([]Result, len(algos))}
	for j, algo := range algos {
		rep.Results[j] = Result{
			Algorithm: algo,
			Nodes:     summarize(acc[j].nodes),
			Length:    summarize(acc[j].length),
			ElapsedMS: summarize(acc[j].elapsed),
			Found:     acc[j].found,
		}
		log.Info("bench result",
			zap.Stringer("algorithm", algo),
			zap.Float64("nodes_mean", rep.Results[j].Nodes.Mean),
			zap.Float64("length_mean", rep.Results[j].Length.Mean),
			zap.Float64("elapsed_ms_p95", rep.Results[j].ElapsedMS.P95),
		)
	}
	return rep, nil
}

// summarize reduces data. Every input here is non-empty, so the stats
// errors (empty input) cannot fire and are dropped.
func summarize(data stats.Float64Data) Summary {
	var s Summary
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)
	s.StdDev, _ = stats.StandardDeviation(data)
	s.P95, _ = stats.Percentile(data, 95)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	return s
}
