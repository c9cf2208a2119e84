package gfx

import (
	"testing"

	"github.com/vovakirdan/rocketberry/internal/core"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(13, 5, 1)

	if s.Width() != 13 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 13x5", s.Width(), s.Height())
	}
	if s.BufferCount() != 2 {
		t.Errorf("BufferCount() = %d, expected 2 (minimum)", s.BufferCount())
	}
	if s.Stride() < s.Width() || s.Stride()%strideAlign != 0 {
		t.Errorf("Stride() = %d, expected aligned value >= width", s.Stride())
	}
	if len(s.Back()) != s.Stride()*s.Height() {
		t.Errorf("len(Back()) = %d, expected %d", len(s.Back()), s.Stride()*s.Height())
	}
	if s.BackIndex() == s.FrontIndex() {
		t.Error("back and front must be different buffers")
	}
}

func TestPresentSwapsRoles(t *testing.T) {
	s := NewSurface(4, 4, 2)
	oldBack := s.BackIndex()

	s.DrawPixel(1, 1, core.ColorRed)
	s.Present()

	if s.FrontIndex() != oldBack {
		t.Errorf("FrontIndex() = %d, expected previous back %d", s.FrontIndex(), oldBack)
	}
	if s.BackIndex() == oldBack {
		t.Error("drawing should move to another buffer after Present")
	}
	if got := s.FrontPixel(1, 1); got != core.ColorRed {
		t.Errorf("FrontPixel(1, 1) = %#x, expected red", uint32(got))
	}

	// Drawing now must not touch the displayed buffer.
	s.DrawPixel(1, 1, core.ColorBlue)
	if got := s.FrontPixel(1, 1); got != core.ColorRed {
		t.Errorf("front changed while drawing into back: %#x", uint32(got))
	}
}

func TestPresentTwiceKeepsPicture(t *testing.T) {
	s := NewSurface(8, 6, 2)
	s.Clear(core.ColorBackground)
	s.DrawRect(2, 2, 3, 3, core.ColorGreen)

	want := make([]core.Color, len(s.Back()))
	copy(want, s.Back())

	s.Present()
	s.Present()

	front := s.Front()
	for i := range want {
		if front[i] != want[i] {
			t.Fatalf("pixel %d = %#x after two presents, expected %#x", i, uint32(front[i]), uint32(want[i]))
		}
	}
}

func TestPresentRotatesThroughBuffers(t *testing.T) {
	s := NewSurface(2, 2, 3)
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		seen[s.BackIndex()] = true
		s.Present()
	}
	if len(seen) != 3 {
		t.Errorf("drew into %d distinct buffers, expected 3", len(seen))
	}
}

func TestSnapshot(t *testing.T) {
	s := NewSurface(3, 2, 2)
	s.Clear(core.ColorBlack)
	s.DrawPixel(2, 1, core.RGB(10, 20, 30))
	s.Present()

	img := s.Snapshot()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("snapshot bounds = %v", img.Bounds())
	}
	c := img.NRGBAAt(2, 1)
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("NRGBAAt(2, 1) = %v, expected {10 20 30 255}", c)
	}
}
