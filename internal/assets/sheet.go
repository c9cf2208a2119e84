// Package assets holds the static sprite data. Sprites are stored as YAML
// palette sheets (one character per pixel, '.' is transparent) embedded in
// the binary and compiled into immutable gfx.Sprites on load.
package assets

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/gfx"
	"gopkg.in/yaml.v3"
)

// TransparentKey marks a transparent pixel in sprite rows.
const TransparentKey = '.'

var (
	ErrRaggedSprite  = errors.New("assets: sprite rows differ in width")
	ErrUnknownKey    = errors.New("assets: pixel key not in palette")
	ErrBadPalette    = errors.New("assets: invalid palette entry")
	ErrDuplicateName = errors.New("assets: duplicate sprite name")
)

// YAMLSheet is the on-disk layout of a sprite sheet.
type YAMLSheet struct {
	Name    string            `yaml:"name"`
	Palette map[string]string `yaml:"palette"`
	Sprites []YAMLSprite      `yaml:"sprites"`
}

// YAMLSprite is one named sprite: a list of equally long rows.
type YAMLSprite struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Sheet is a parsed sprite sheet, sprites kept in file order.
type Sheet struct {
	Name    string
	Names   []string
	Sprites map[string]*gfx.Sprite
}

// ParseSheet compiles a YAML sheet into sprites.
func ParseSheet(data []byte) (*Sheet, error) {
	var ys YAMLSheet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("assets: yaml unmarshal: %w", err)
	}

	palette := make(map[rune]core.Color, len(ys.Palette))
	for key, hex := range ys.Palette {
		r, size := utf8.DecodeRuneInString(key)
		if size != len(key) || r == TransparentKey {
			return nil, fmt.Errorf("%w: key %q in sheet %s", ErrBadPalette, key, ys.Name)
		}
		c, ok := core.ParseHex(hex)
		if !ok {
			return nil, fmt.Errorf("%w: color %q in sheet %s", ErrBadPalette, hex, ys.Name)
		}
		palette[r] = c
	}

	sheet := &Sheet{
		Name:    ys.Name,
		Names:   make([]string, 0, len(ys.Sprites)),
		Sprites: make(map[string]*gfx.Sprite, len(ys.Sprites)),
	}
	for _, s := range ys.Sprites {
		if _, dup := sheet.Sprites[s.Name]; dup {
			return nil, fmt.Errorf("%w: %s in sheet %s", ErrDuplicateName, s.Name, ys.Name)
		}
		sp, err := compileSprite(s, palette)
		if err != nil {
			return nil, fmt.Errorf("sprite %s in sheet %s: %w", s.Name, ys.Name, err)
		}
		sheet.Names = append(sheet.Names, s.Name)
		sheet.Sprites[s.Name] = sp
	}
	return sheet, nil
}

func compileSprite(s YAMLSprite, palette map[rune]core.Color) (*gfx.Sprite, error) {
	height := len(s.Rows)
	width := 0
	if height > 0 {
		width = utf8.RuneCountInString(s.Rows[0])
	}

	pix := make([]core.Color, 0, width*height)
	for y, row := range s.Rows {
		if utf8.RuneCountInString(row) != width {
			return nil, fmt.Errorf("%w: row %d", ErrRaggedSprite, y)
		}
		for _, r := range row {
			if r == TransparentKey {
				pix = append(pix, core.Transparent)
				continue
			}
			c, ok := palette[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d", ErrUnknownKey, r, y)
			}
			pix = append(pix, c)
		}
	}
	return gfx.NewSprite(width, height, pix), nil
}
