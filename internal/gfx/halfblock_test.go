package gfx

import (
	"testing"

	"github.com/vovakirdan/rocketberry/internal/core"
)

func TestHalfBlocksSampling(t *testing.T) {
	s := NewSurface(4, 4, 2)
	s.Clear(core.ColorBlack)
	s.DrawRect(0, 0, 2, 2, core.ColorRed)   // top-left quadrant
	s.DrawRect(2, 2, 2, 2, core.ColorGreen) // bottom-right quadrant
	s.Present()

	type cell struct{ top, bottom core.Color }
	got := map[[2]int]cell{}
	s.HalfBlocks(2, 1, func(col, row int, top, bottom core.Color) {
		got[[2]int{col, row}] = cell{top, bottom}
	})

	tests := []struct {
		col, row int
		expected cell
	}{
		{0, 0, cell{core.ColorRed, core.ColorBlack}},
		{1, 0, cell{core.ColorBlack, core.ColorGreen}},
	}
	if len(got) != len(tests) {
		t.Fatalf("visited %d cells, expected %d", len(got), len(tests))
	}
	for _, tc := range tests {
		if c := got[[2]int{tc.col, tc.row}]; c != tc.expected {
			t.Errorf("cell (%d,%d) = %+v, expected %+v", tc.col, tc.row, c, tc.expected)
		}
	}
}

func TestHalfBlocksEmptyGrid(t *testing.T) {
	s := NewSurface(4, 4, 2)
	s.HalfBlocks(0, 3, func(int, int, core.Color, core.Color) {
		t.Fatal("callback on an empty grid")
	})
}

func TestFitCells(t *testing.T) {
	s := NewSurface(640, 480, 2)
	tests := []struct {
		maxCols, maxRows int
		cols, rows       int
	}{
		{160, 100, 160, 60},
		{200, 40, 106, 40},
		{80, 24, 64, 24},
		{0, 10, 0, 0},
	}
	for _, tc := range tests {
		cols, rows := s.FitCells(tc.maxCols, tc.maxRows)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("FitCells(%d, %d) = %d x %d, expected %d x %d",
				tc.maxCols, tc.maxRows, cols, rows, tc.cols, tc.rows)
		}
	}
}
