package gfx

import "github.com/vovakirdan/rocketberry/internal/core"

// HalfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: the foreground paints the top half, the background the bottom.
const HalfBlock = '▀'

// CellFunc receives one terminal cell's top and bottom pixel colors.
type CellFunc func(col, row int, top, bottom core.Color)

// HalfBlocks samples the front buffer into a cols x rows grid of half-block
// cells, nearest-neighbor, so the whole surface fits the grid. Each cell
// covers two sample rows.
func (s *Surface) HalfBlocks(cols, rows int, fn CellFunc) {
	if cols <= 0 || rows <= 0 {
		return
	}
	sampleRows := rows * 2
	for row := 0; row < rows; row++ {
		ty := (row * 2) * s.height / sampleRows
		by := (row*2 + 1) * s.height / sampleRows
		for col := 0; col < cols; col++ {
			x := col * s.width / cols
			fn(col, row, s.FrontPixel(x, ty), s.FrontPixel(x, by))
		}
	}
}

// FitCells returns the largest grid no bigger than maxCols x maxRows that
// keeps the surface's aspect ratio with square pixels (two per cell vertically).
func (s *Surface) FitCells(maxCols, maxRows int) (cols, rows int) {
	if maxCols <= 0 || maxRows <= 0 || s.width == 0 || s.height == 0 {
		return 0, 0
	}
	cols = maxCols
	rows = cols * s.height / s.width / 2
	if rows > maxRows {
		rows = maxRows
		cols = rows * 2 * s.width / s.height
	}
	return core.Max(cols, 1), core.Max(rows, 1)
}
