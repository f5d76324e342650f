package render

import (
	"image/color"

	"github.com/katalvlaran/gridlab/grid"
)

// Palette maps render bytes to colors. Index with a grid.Render* constant.
var Palette = [...]color.RGBA{
	grid.RenderEmpty:   {R: 30, G: 30, B: 46, A: 255},
	grid.RenderWall:    {R: 69, G: 71, B: 90, A: 255},
	grid.RenderStart:   {R: 166, G: 227, B: 161, A: 255},
	grid.RenderEnd:     {R: 243, G: 139, B: 168, A: 255},
	grid.RenderVisited: {R: 137, G: 180, B: 250, A: 255},
	grid.RenderPath:    {R: 249, G: 226, B: 175, A: 255},
	grid.RenderMud:     {R: 161, G: 138, B: 90, A: 255},
	grid.RenderWater:   {R: 90, G: 138, B: 161, A: 255},
}

// Divider colors the column between the halves of a Split image.
var Divider = color.RGBA{R: 205, G: 214, B: 244, A: 255}

// colorOf returns the palette entry for b, falling back to empty.
func colorOf(b byte) color.RGBA {
	if int(b) < len(Palette) {
		return Palette[b]
	}
	return Palette[grid.RenderEmpty]
}
