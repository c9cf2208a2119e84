// Package font supplies the monochrome glyph table used for HUD text.
// Glyphs come from basicfont.Face7x13 and may be magnified by an integer
// factor so text stays legible on a 640x480 surface.
package font

import (
	"golang.org/x/image/font/basicfont"
)

// DefaultScale gives 14x26 cells.
const DefaultScale = 2

// Face is a fixed-size glyph table. It implements gfx.Font.
// All masks are built up front, so a Face is safe for concurrent reads.
type Face struct {
	width  int
	height int
	scale  int
	glyphs map[rune][]byte
}

// New builds a Face from basicfont.Face7x13 magnified by scale.
// Non-positive scale is treated as 1.
func New(scale int) *Face {
	if scale < 1 {
		scale = 1
	}
	src := basicfont.Face7x13
	f := &Face{
		width:  src.Advance * scale,
		height: src.Height * scale,
		scale:  scale,
		glyphs: make(map[rune][]byte),
	}
	for _, rr := range src.Ranges {
		for r := rr.Low; r < rr.High; r++ {
			f.glyphs[r] = f.rasterize(src, int(r-rr.Low)+rr.Offset)
		}
	}
	return f
}

// Default returns a Face at DefaultScale.
func Default() *Face {
	return New(DefaultScale)
}

// rasterize copies glyph number idx from the source mask, scaling each
// source pixel into a scale x scale block.
func (f *Face) rasterize(src *basicfont.Face, idx int) []byte {
	mask := make([]byte, f.width*f.height)
	top := src.Mask.Bounds().Min.Y + idx*src.Height
	left := src.Mask.Bounds().Min.X
	for sy := 0; sy < src.Height; sy++ {
		for sx := 0; sx < src.Width; sx++ {
			_, _, _, a := src.Mask.At(left+sx, top+sy).RGBA()
			if a == 0 {
				continue
			}
			for dy := 0; dy < f.scale; dy++ {
				row := (sy*f.scale + dy) * f.width
				for dx := 0; dx < f.scale; dx++ {
					mask[row+sx*f.scale+dx] = 1
				}
			}
		}
	}
	return mask
}

// GlyphWidth returns the cell width, which is also the advance.
func (f *Face) GlyphWidth() int { return f.width }

// GlyphHeight returns the cell height.
func (f *Face) GlyphHeight() int { return f.height }

// Glyph returns the mask for ch. ok is false when the face has no such glyph.
func (f *Face) Glyph(ch rune) ([]byte, bool) {
	m, ok := f.glyphs[ch]
	return m, ok
}
