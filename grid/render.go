package grid

// RenderByte values, one per cell, as read by a front end every frame.
// A new visual cell state needs a value here and a colour in the renderer.
const (
	RenderEmpty   byte = 0
	RenderWall    byte = 1
	RenderStart   byte = 2
	RenderEnd     byte = 3
	RenderVisited byte = 4
	RenderPath    byte = 5
	RenderMud     byte = 6
	RenderWater   byte = 7
)

// RenderByte encodes the visible state of the cell.
// Precedence: wall > start > end > path > visited > mud > water > empty.
func (c Cell) RenderByte() byte {
	switch c.Symbol() {
	case SymbolWall:
		return RenderWall
	case SymbolStart:
		return RenderStart
	case SymbolEnd:
		return RenderEnd
	case SymbolPath:
		return RenderPath
	case SymbolVisited:
		return RenderVisited
	case SymbolMud:
		return RenderMud
	case SymbolWater:
		return RenderWater
	}
	return RenderEmpty
}

// RenderBuffer writes one RenderByte per cell into dst, growing it when
// needed, and returns the filled slice of length Size().
func (g *Grid) RenderBuffer(dst []byte) []byte {
	if cap(dst) < len(g.cells) {
		dst = make([]byte, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i := range g.cells {
		dst[i] = g.cells[i].RenderByte()
	}
	return dst
}
