package lab

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridlab/maze"
)

// Option customizes a Session before its grid is built.
type Option func(*Session)

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("lab: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}

// WithClock replaces time.Now for run timing. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("lab: WithClock(nil)")
	}
	return func(s *Session) {
		s.now = now
	}
}

// WithSource sets the random source used by GenerateMaze. Panics on nil.
func WithSource(src maze.Source) Option {
	if src == nil {
		panic("lab: WithSource(nil)")
	}
	return func(s *Session) {
		s.src = src
	}
}

// WithSeed is WithSource(maze.NewSource(seed)).
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.src = maze.NewSource(seed)
	}
}
