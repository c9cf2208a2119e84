package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a 32-bit pixel value packed as 0xAARRGGBB.
// Every color produced by the game is fully opaque; the zero value is the
// transparent sentinel used by sprite payloads.
type Color uint32

// Transparent is the zero pixel. Sprites skip it when blitting.
const Transparent Color = 0

// Predefined colors used by the HUD and effects.
const (
	ColorBlack      Color = 0xff000000
	ColorWhite      Color = 0xffffffff
	ColorRed        Color = 0xffff0000
	ColorGreen      Color = 0xff00ff00
	ColorBlue       Color = 0xff0000ff
	ColorBackground Color = 0xff121015
	ColorBanner     Color = 0xffaa8eed
	ColorGlitch     Color = 0xff35f435
)

// RGB builds an opaque color from its channels.
func RGB(r, g, b uint8) Color {
	return 0xff000000 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGBA builds a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// Opaque reports whether the color has a non-zero alpha channel.
func (c Color) Opaque() bool {
	return c.A() != 0
}

// Hex returns the color as a "#rrggbb" string, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// NRGBA converts to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

var namedColors = map[string]Color{
	"black": ColorBlack,
	"white": ColorWhite,
	"red":   ColorRed,
	"green": ColorGreen,
	"blue":  ColorBlue,
}

// ParseColor accepts one of the predefined color names (case-insensitive)
// or any form ParseHex understands.
func ParseColor(s string) (Color, bool) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, true
	}
	return ParseHex(s)
}

// ParseHex parses "#rrggbb", "rrggbb" or "0xaarrggbb" into a Color.
// The first two forms are always opaque. Returns false if the string is not
// recognized.
func ParseHex(s string) (Color, bool) {
	switch {
	case len(s) == 7 && s[0] == '#':
		return parseHexDigits(s[1:], true)
	case len(s) == 6:
		return parseHexDigits(s, true)
	case len(s) == 10 && (s[:2] == "0x" || s[:2] == "0X"):
		return parseHexDigits(s[2:], false)
	default:
		return Transparent, false
	}
}

func parseHexDigits(digits string, opaque bool) (Color, bool) {
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Transparent, false
	}
	c := Color(v)
	if opaque {
		c |= 0xff000000
	}
	return c, true
}
