package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for maze generation.
var (
	// ErrGridTooSmall indicates a grid narrower or shorter than 3 cells.
	ErrGridTooSmall = errors.New("maze: grid must be at least 3x3")
	// ErrNilSource indicates a generator was called without a random source.
	ErrNilSource = errors.New("maze: nil random source")
	// ErrNilGrid indicates a generator was called without a grid.
	ErrNilGrid = errors.New("maze: nil grid")
	// ErrUnknownGenerator indicates an unrecognised generator name or value.
	ErrUnknownGenerator = errors.New("maze: unknown generator")
)

// MinSize is the smallest width and height a generator accepts.
const MinSize = 3

// Source picks a uniform index in [0, n). n is always positive.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Generator selects a carving strategy.
type Generator int

const (
	// Backtracker is the randomized depth-first generator.
	Backtracker Generator = iota
	// Prims is the randomized Prim's generator.
	Prims
)

// Generators lists every generator in declaration order.
func Generators() []Generator {
	return []Generator{Backtracker, Prims}
}

// String returns the lower-case name used by ParseGenerator.
func (gen Generator) String() string {
	switch gen {
	case Backtracker:
		return "backtracker"
	case Prims:
		return "prims"
	default:
		return fmt.Sprintf("Generator(%d)", int(gen))
	}
}

// ParseGenerator maps a name to a Generator. Matching ignores case and
// accepts "dfs" for Backtracker and "prim" for Prims.
func ParseGenerator(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "backtracker", "recursive-backtracker", "dfs":
		return Backtracker, nil
	case "prims", "prim":
		return Prims, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}
