// Package gfx is the software rendering engine: a multi-buffered pixel
// Surface plus clipped drawing primitives (pixels, rectangles, sprites, text).
//
// Every drawing operation targets the back buffer and silently clips to
// [0, width) x [0, height). Nothing here returns an error; per-frame drawing
// code never needs to bounds-check.
package gfx

import (
	"image"

	"github.com/vovakirdan/rocketberry/internal/core"
)

// strideAlign is the pixel alignment of each buffer row.
const strideAlign = 8

// Surface owns equally sized pixel buffers. One is the back buffer (drawable),
// the most recently presented one is the front buffer (displayed).
type Surface struct {
	width   int
	height  int
	stride  int
	buffers [][]core.Color
	back    int
	front   int
}

// NewSurface creates a surface with the given dimensions.
// Fewer than two buffers is raised to two.
func NewSurface(width, height, buffers int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if buffers < 2 {
		buffers = 2
	}

	stride := (width + strideAlign - 1) / strideAlign * strideAlign
	s := &Surface{
		width:   width,
		height:  height,
		stride:  stride,
		buffers: make([][]core.Color, buffers),
		back:    0,
		front:   buffers - 1,
	}
	for i := range s.buffers {
		s.buffers[i] = make([]core.Color, stride*height)
	}
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the number of pixels between the starts of two rows.
// It is at least Width and may include padding.
func (s *Surface) Stride() int {
	return s.stride
}

// BufferCount returns how many buffers the surface rotates through.
func (s *Surface) BufferCount() int {
	return len(s.buffers)
}

// Bounds returns the drawable rectangle [0,width) x [0,height).
func (s *Surface) Bounds() core.Rect {
	return core.NewRect(0, 0, s.width, s.height)
}

// BackIndex returns the index of the buffer currently being drawn into.
func (s *Surface) BackIndex() int {
	return s.back
}

// FrontIndex returns the index of the buffer currently displayed.
func (s *Surface) FrontIndex() int {
	return s.front
}

// Back returns the writable back buffer, Stride()*Height() pixels, row-major.
func (s *Surface) Back() []core.Color {
	return s.buffers[s.back]
}

// Front returns the displayed buffer. Callers must treat it as read-only.
func (s *Surface) Front() []core.Color {
	return s.buffers[s.front]
}

// FrontPixel returns the displayed pixel at (x, y), or Transparent when out of bounds.
func (s *Surface) FrontPixel(x, y int) core.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.Transparent
	}
	return s.buffers[s.front][y*s.stride+x]
}

// Present makes the back buffer visible and moves drawing to the next buffer.
// The new back buffer starts as a copy of the frame just presented, so
// presenting again without drawing shows the same picture.
func (s *Surface) Present() {
	s.front = s.back
	s.back = (s.back + 1) % len(s.buffers)
	copy(s.buffers[s.back], s.buffers[s.front])
}

// Snapshot copies the front buffer into an NRGBA image.
func (s *Surface) Snapshot() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	front := s.buffers[s.front]
	for y := 0; y < s.height; y++ {
		row := front[y*s.stride : y*s.stride+s.width]
		for x, c := range row {
			img.SetNRGBA(x, y, c.NRGBA())
		}
	}
	return img
}
