package gfx

import (
	"testing"

	"github.com/vovakirdan/rocketberry/internal/core"
)

// testFont is a 3x2 font that only knows 'A' (top row set) and 'B' (solid).
type testFont struct{}

func (testFont) GlyphWidth() int  { return 3 }
func (testFont) GlyphHeight() int { return 2 }
func (testFont) Glyph(ch rune) ([]byte, bool) {
	switch ch {
	case 'A':
		return []byte{1, 1, 1, 0, 0, 0}, true
	case 'B':
		return []byte{1, 1, 1, 1, 1, 1}, true
	default:
		return nil, false
	}
}

// countColor counts visible pixels of the given color in the back buffer.
func countColor(s *Surface, c core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.ReadPixel(x, y) == c {
				n++
			}
		}
	}
	return n
}

// paddingTouched reports whether any row padding pixel differs from c.
func paddingTouched(s *Surface, c core.Color) bool {
	buf := s.Back()
	for y := 0; y < s.Height(); y++ {
		for x := s.Width(); x < s.Stride(); x++ {
			if buf[y*s.Stride()+x] != c {
				return true
			}
		}
	}
	return false
}

func TestClear(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {640, 480}, {9, 0}} {
		s := NewSurface(size[0], size[1], 2)
		s.Clear(core.ColorBanner)
		for i, c := range s.Back() {
			if c != core.ColorBanner {
				t.Fatalf("%dx%d: pixel %d = %#x after Clear", size[0], size[1], i, uint32(c))
			}
		}
	}
}

func TestDrawPixelAndReadPixel(t *testing.T) {
	s := NewSurface(10, 10, 2)
	s.DrawPixel(5, 5, core.ColorWhite)
	if s.ReadPixel(5, 5) != core.ColorWhite {
		t.Errorf("ReadPixel(5, 5) = %#x, expected white", uint32(s.ReadPixel(5, 5)))
	}

	// Out of bounds must be silent
	s.DrawPixel(-1, 0, core.ColorRed)
	s.DrawPixel(10, 0, core.ColorRed)
	s.DrawPixel(0, -1, core.ColorRed)
	s.DrawPixel(0, 10, core.ColorRed)
	if countColor(s, core.ColorRed) != 0 {
		t.Error("out-of-bounds DrawPixel wrote a pixel")
	}

	if s.ReadPixel(-1, 0) != core.Transparent || s.ReadPixel(0, 100) != core.Transparent {
		t.Error("out-of-bounds ReadPixel should return Transparent")
	}
}

func TestDrawRectClipping(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		expected   int
	}{
		{"inside", 2, 2, 3, 4, 12},
		{"negative origin", -2, -1, 4, 3, 4},
		{"past far edge", 8, 8, 5, 5, 4},
		{"off both sides both axes", -5, -5, 30, 30, 100},
		{"negative x, past bottom", -3, 7, 5, 10, 6},
		{"fully left", -10, 0, 5, 5, 0},
		{"fully right", 10, 0, 5, 5, 0},
		{"fully above", 0, -6, 5, 5, 0},
		{"fully below", 0, 12, 5, 5, 0},
		{"zero width", 3, 3, 0, 5, 0},
		{"negative height", 3, 3, 2, -4, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSurface(10, 10, 2)
			s.Clear(core.ColorBlack)
			s.DrawRect(tc.x, tc.y, tc.w, tc.h, core.ColorGreen)

			if got := countColor(s, core.ColorGreen); got != tc.expected {
				t.Errorf("DrawRect(%d, %d, %d, %d) painted %d pixels, expected %d",
					tc.x, tc.y, tc.w, tc.h, got, tc.expected)
			}
			if paddingTouched(s, core.ColorBlack) {
				t.Error("DrawRect wrote into row padding")
			}
		})
	}
}

func TestDrawRectNeverWritesOutside(t *testing.T) {
	// Sweep rectangles around a small surface and check nothing lands in
	// the padding or wraps onto another row.
	for x := -6; x <= 6; x += 3 {
		for y := -6; y <= 6; y += 3 {
			for _, wh := range []int{1, 4, 9} {
				s := NewSurface(5, 5, 2)
				s.Clear(core.ColorBlack)
				s.DrawRect(x, y, wh, wh, core.ColorWhite)

				want := core.NewRect(x, y, wh, wh).Intersect(s.Bounds())
				for py := 0; py < 5; py++ {
					for px := 0; px < 5; px++ {
						painted := s.ReadPixel(px, py) == core.ColorWhite
						inside := px >= want.X && px < want.Right() && py >= want.Y && py < want.Bottom()
						if painted != inside {
							t.Fatalf("rect (%d,%d,%d,%d): pixel (%d,%d) painted=%v",
								x, y, wh, wh, px, py, painted)
						}
					}
				}
				if paddingTouched(s, core.ColorBlack) {
					t.Fatalf("rect (%d,%d,%d,%d) touched padding", x, y, wh, wh)
				}
			}
		}
	}
}

func TestDrawSprite(t *testing.T) {
	red := core.RGB(255, 0, 0)
	// 2x2 sprite with a transparent bottom-right pixel
	sp := NewSprite(2, 2, []core.Color{red, red, red, core.Transparent})

	s := NewSurface(10, 10, 2)
	s.Clear(core.ColorBlack)
	s.DrawSprite(1, 1, sp, 3)

	if got := countColor(s, red); got != 27 {
		t.Errorf("scaled sprite painted %d pixels, expected 27", got)
	}
	// The transparent block keeps the background.
	if s.ReadPixel(5, 5) != core.ColorBlack {
		t.Errorf("transparent pixel was drawn: %#x", uint32(s.ReadPixel(5, 5)))
	}
	if s.ReadPixel(1, 1) != red || s.ReadPixel(6, 3) != red {
		t.Error("opaque blocks missing")
	}
}

func TestDrawSpriteClipped(t *testing.T) {
	white := core.ColorWhite
	sp := NewSprite(3, 1, []core.Color{white, white, white})

	s := NewSurface(6, 4, 2)
	s.Clear(core.ColorBlack)
	s.DrawSprite(-2, -1, sp, 2) // blocks at x=-2,0,2 ; rows -1..0

	if got := countColor(s, white); got != 4 {
		t.Errorf("clipped sprite painted %d pixels, expected 4", got)
	}
	if s.ReadPixel(0, 0) != white || s.ReadPixel(3, 0) != white {
		t.Error("visible remainder of sprite was not drawn")
	}

	s.Clear(core.ColorBlack)
	s.DrawSprite(0, 0, sp, 0)
	s.DrawSprite(0, 0, nil, 1)
	s.DrawSprite(100, 100, sp, 1)
	if countColor(s, white) != 0 {
		t.Error("zero scale, nil or off-surface sprite should draw nothing")
	}
}

func TestDrawGlyph(t *testing.T) {
	s := NewSurface(10, 10, 2)
	s.Clear(core.ColorBlack)

	s.DrawGlyph(testFont{}, 2, 2, 'A', core.ColorWhite)
	if got := countColor(s, core.ColorWhite); got != 3 {
		t.Errorf("glyph 'A' painted %d pixels, expected 3", got)
	}
	if s.ReadPixel(2, 3) != core.ColorBlack {
		t.Error("unset mask pixel was drawn")
	}

	// Unknown characters draw nothing and do not panic.
	s.DrawGlyph(testFont{}, 0, 0, '?', core.ColorRed)
	s.DrawGlyph(nil, 0, 0, 'A', core.ColorRed)
	if countColor(s, core.ColorRed) != 0 {
		t.Error("unknown glyph drew pixels")
	}

	// Clipped on both sides.
	s.DrawGlyph(testFont{}, -1, 9, 'B', core.ColorGreen)
	if got := countColor(s, core.ColorGreen); got != 2 {
		t.Errorf("clipped glyph painted %d pixels, expected 2", got)
	}
}

func TestDrawString(t *testing.T) {
	s := NewSurface(10, 4, 2)
	s.Clear(core.ColorBlack)

	end := s.DrawString(testFont{}, 0, 0, "BBBBB", core.ColorWhite)

	// Glyphs at x=0,3,6,9 draw (the last one clipped to a single column);
	// the cursor then sits past the edge and the fifth glyph is skipped.
	if got := countColor(s, core.ColorWhite); got != 20 {
		t.Errorf("DrawString painted %d pixels, expected 20", got)
	}
	if end != 12 {
		t.Errorf("DrawString returned cursor %d, expected 12", end)
	}

	s.Clear(core.ColorBlack)
	s.DrawString(testFont{}, 0, 0, "A?A", core.ColorWhite)
	if s.ReadPixel(3, 0) != core.ColorBlack || s.ReadPixel(6, 0) != core.ColorWhite {
		t.Error("unknown glyph should still advance the cursor")
	}
}
