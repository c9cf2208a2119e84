package gfx

import (
	"github.com/vovakirdan/rocketberry/internal/core"
)

// Clear fills every pixel of the back buffer, row padding included.
func (s *Surface) Clear(c core.Color) {
	buf := s.buffers[s.back]
	if len(buf) == 0 {
		return
	}
	// Seed the first pixel, then double the filled prefix with copy.
	buf[0] = c
	for filled := 1; filled < len(buf); filled *= 2 {
		copy(buf[filled:], buf[:filled])
	}
}

// DrawPixel overwrites one pixel. Out-of-bounds coordinates are ignored.
func (s *Surface) DrawPixel(x, y int, c core.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.buffers[s.back][y*s.stride+x] = c
}

// ReadPixel returns the back-buffer pixel at (x, y).
// Returns Transparent for out-of-bounds coordinates.
func (s *Surface) ReadPixel(x, y int) core.Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return core.Transparent
	}
	return s.buffers[s.back][y*s.stride+x]
}

// DrawRect fills the part of the rectangle that lies on the surface.
// Clipping on the negative side and on the far side compose.
func (s *Surface) DrawRect(x, y, w, h int, c core.Color) {
	r := core.NewRect(x, y, w, h).Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	buf := s.buffers[s.back]
	for py := r.Y; py < r.Bottom(); py++ {
		row := buf[py*s.stride+r.X : py*s.stride+r.Right()]
		for i := range row {
			row[i] = c
		}
	}
}

// DrawSprite blits a sprite magnified by scale. Each opaque source pixel
// becomes a scale x scale block; transparent pixels are skipped.
// A non-positive scale draws nothing.
func (s *Surface) DrawSprite(x, y int, sp *Sprite, scale int) {
	if sp == nil || scale <= 0 {
		return
	}
	dst := core.NewRect(x, y, sp.width*scale, sp.height*scale)
	if dst.Intersect(s.Bounds()).Empty() {
		return
	}

	for sy := 0; sy < sp.height; sy++ {
		py := y + sy*scale
		if py+scale <= 0 || py >= s.height {
			continue
		}
		for sx := 0; sx < sp.width; sx++ {
			c := sp.pix[sy*sp.width+sx]
			if !c.Opaque() {
				continue
			}
			s.DrawRect(x+sx*scale, py, scale, scale, c)
		}
	}
}

// DrawGlyph draws one character from the font where its mask is set.
// Unknown characters draw nothing.
func (s *Surface) DrawGlyph(f Font, x, y int, ch rune, c core.Color) {
	if f == nil {
		return
	}
	gw, gh := f.GlyphWidth(), f.GlyphHeight()
	mask, ok := f.Glyph(ch)
	if !ok || len(mask) < gw*gh {
		return
	}

	r := core.NewRect(x, y, gw, gh).Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	buf := s.buffers[s.back]
	for py := r.Y; py < r.Bottom(); py++ {
		for px := r.X; px < r.Right(); px++ {
			if mask[(py-y)*gw+(px-x)] != 0 {
				buf[py*s.stride+px] = c
			}
		}
	}
}

// DrawString draws text left to right with a fixed advance of one glyph width.
// It stops once the cursor moves past the right edge; there is no wrapping.
// Returns the cursor position after the last drawn glyph.
func (s *Surface) DrawString(f Font, x, y int, text string, c core.Color) int {
	if f == nil {
		return x
	}
	advance := f.GlyphWidth()
	for _, ch := range text {
		if x > s.width {
			break
		}
		s.DrawGlyph(f, x, y, ch, c)
		x += advance
	}
	return x
}
