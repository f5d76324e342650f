package maze

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Generate runs the generator selected by gen against g.
func Generate(g *grid.Grid, gen Generator, src Source) error {
	switch gen {
	case Backtracker:
		return GenerateBacktracker(g, src)
	case Prims:
		return GeneratePrims(g, src)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownGenerator, gen)
	}
}
