package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for rendering.
var (
	// ErrCellSize indicates a non-positive cell size.
	ErrCellSize = errors.New("render: cell size must be positive")
	// ErrBufferShape indicates a buffer whose length is not width×height.
	ErrBufferShape = errors.New("render: buffer does not match dimensions")
)

// board is an image.Image over a render-byte snapshot.
type board struct {
	buf           []byte
	width, height int
	cellPx        int
}

func (b *board) ColorModel() color.Model { return color.RGBAModel }

func (b *board) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width*b.cellPx, b.height*b.cellPx)
}

func (b *board) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.width*b.cellPx || y >= b.height*b.cellPx {
		return color.Transparent
	}
	return colorOf(b.buf[(y/b.cellPx)*b.width+x/b.cellPx])
}

// Image snapshots g and returns it as an image with cellPx pixels per cell.
// Later changes to g do not show in the image.
func Image(g *grid.Grid, cellPx int) (image.Image, error) {
	return FromBuffer(g.RenderBuffer(nil), g.Width(), g.Height(), cellPx)
}

// FromBuffer wraps a render buffer of a width×height board. buf is used as
// is, not copied.
func FromBuffer(buf []byte, width, height, cellPx int) (image.Image, error) {
	if cellPx <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCellSize, cellPx)
	}
	if width <= 0 || height <= 0 || len(buf) != width*height {
		return nil, fmt.Errorf("%w: len %d for %dx%d", ErrBufferShape, len(buf), width, height)
	}
	return &board{buf: buf, width: width, height: height, cellPx: cellPx}, nil
}

// split places two boards left and right of a one-cell divider.
type split struct {
	left, right *board
}

func (s *split) ColorModel() color.Model { return color.RGBAModel }

func (s *split) Bounds() image.Rectangle {
	lb := s.left.Bounds()
	return image.Rect(0, 0, 2*lb.Dx()+s.left.cellPx, lb.Dy())
}

func (s *split) At(x, y int) color.Color {
	w := s.left.Bounds().Dx()
	switch {
	case x < w:
		return s.left.At(x, y)
	case x < w+s.left.cellPx:
		if y < 0 || y >= s.left.Bounds().Dy() {
			return color.Transparent
		}
		return Divider
	default:
		return s.right.At(x-w-s.left.cellPx, y)
	}
}

// Split renders two buffers of the same width×height board side by side.
func Split(a, b []byte, width, height, cellPx int) (image.Image, error) {
	left, err := FromBuffer(a, width, height, cellPx)
	if err != nil {
		return nil, err
	}
	right, err := FromBuffer(b, width, height, cellPx)
	if err != nil {
		return nil, err
	}
	return &split{left: left.(*board), right: right.(*board)}, nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
