package gfx

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vovakirdan/rocketberry/internal/core"
)

// BytesPerPixel is the only pixel depth sprites use.
const BytesPerPixel = 4

// headerSize is the raw asset header: width, height, bytes per pixel.
const headerSize = 12

// Errors returned by DecodeSprite.
var (
	ErrShortSprite = errors.New("gfx: sprite payload too short")
	ErrBadDepth    = errors.New("gfx: sprite bytes per pixel must be 4")
)

// Sprite is an immutable row-major RGBA image. Many entities share one
// Sprite by pointer; it is never modified after creation.
type Sprite struct {
	width  int
	height int
	pix    []core.Color
}

// NewSprite creates a sprite from row-major pixels. The slice is copied.
// Missing pixels are transparent and extra pixels are dropped.
func NewSprite(width, height int, pix []core.Color) *Sprite {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	sp := &Sprite{
		width:  width,
		height: height,
		pix:    make([]core.Color, width*height),
	}
	copy(sp.pix, pix)
	return sp
}

// Width returns the sprite width in source pixels.
func (sp *Sprite) Width() int {
	return sp.width
}

// Height returns the sprite height in source pixels.
func (sp *Sprite) Height() int {
	return sp.height
}

// BytesPerPixel always returns 4.
func (sp *Sprite) BytesPerPixel() int {
	return BytesPerPixel
}

// At returns the source pixel at (x, y), or Transparent when out of range.
func (sp *Sprite) At(x, y int) core.Color {
	if x < 0 || x >= sp.width || y < 0 || y >= sp.height {
		return core.Transparent
	}
	return sp.pix[y*sp.width+x]
}

// DecodeSprite parses the raw asset format: three little-endian uint32
// (width, height, bytes per pixel) followed by width*height pixels of
// R, G, B, A bytes. An all-zero pixel is transparent.
func DecodeSprite(raw []byte) (*Sprite, error) {
	if len(raw) < headerSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrShortSprite, len(raw))
	}
	width := binary.LittleEndian.Uint32(raw[0:4])
	height := binary.LittleEndian.Uint32(raw[4:8])
	depth := binary.LittleEndian.Uint32(raw[8:12])
	if depth != BytesPerPixel {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, depth)
	}

	// Compare by division so huge dimensions cannot overflow the product.
	payload := raw[headerSize:]
	pixels := uint64(len(payload)) / BytesPerPixel
	if width > 0 && uint64(height) > pixels/uint64(width) {
		return nil, fmt.Errorf("%w: %dx%d needs %d pixels, have %d",
			ErrShortSprite, width, height, uint64(width)*uint64(height), pixels)
	}

	pix := make([]core.Color, int(width)*int(height))
	for i := range pix {
		p := payload[i*4 : i*4+4]
		pix[i] = core.RGBA(p[0], p[1], p[2], p[3])
	}
	return &Sprite{width: int(width), height: int(height), pix: pix}, nil
}

// EncodeSprite writes a sprite in the raw asset format read by DecodeSprite.
func EncodeSprite(sp *Sprite) []byte {
	out := make([]byte, headerSize+len(sp.pix)*BytesPerPixel)
	binary.LittleEndian.PutUint32(out[0:4], uint32(sp.width))
	binary.LittleEndian.PutUint32(out[4:8], uint32(sp.height))
	binary.LittleEndian.PutUint32(out[8:12], BytesPerPixel)
	for i, c := range sp.pix {
		p := out[headerSize+i*4:]
		p[0], p[1], p[2], p[3] = c.R(), c.G(), c.B(), c.A()
	}
	return out
}
