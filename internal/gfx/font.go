package gfx

// Font is the glyph table used by DrawGlyph and DrawString.
// Glyph dimensions are fixed for the lifetime of the font.
type Font interface {
	// GlyphWidth is the glyph cell width and the text advance.
	GlyphWidth() int
	// GlyphHeight is the glyph cell height.
	GlyphHeight() int
	// Glyph returns a row-major mask of GlyphWidth*GlyphHeight bytes,
	// non-zero where the glyph is set. ok is false for unknown characters.
	// The mask is shared and must not be modified.
	Glyph(ch rune) (mask []byte, ok bool)
}
