// Package render turns grid render buffers into images.
//
// Images are lazy: each implements image.Image over a snapshot of render
// bytes (see grid.RenderBuffer) and computes pixels on demand, one solid
// cellPx×cellPx square per cell. WritePNG encodes them.
//
// Split lays two buffers of the same board next to each other with a
// divider column, for comparing two algorithms.
package render
