package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vovakirdan/rocketberry/internal/gfx"
)

//go:embed sheets/*.yaml
var embedded embed.FS

// Catalog is every sprite from a set of sheets, addressable by name.
type Catalog struct {
	sprites map[string]*gfx.Sprite
	order   []string
}

// Load compiles the embedded sheets.
func Load() (*Catalog, error) {
	return LoadFS(embedded, "sheets")
}

// LoadFS compiles every *.yaml sheet in dir of fsys, in lexical file order.
// Sprite names must be unique across sheets.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	files, err := fs.Glob(fsys, dir+"/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: listing %s: %w", dir, err)
	}
	sort.Strings(files)

	c := &Catalog{sprites: make(map[string]*gfx.Sprite)}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("assets: reading %s: %w", name, err)
		}
		sheet, err := ParseSheet(data)
		if err != nil {
			return nil, fmt.Errorf("assets: %s: %w", name, err)
		}
		for _, n := range sheet.Names {
			if _, dup := c.sprites[n]; dup {
				return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateName, n, name)
			}
			c.sprites[n] = sheet.Sprites[n]
			c.order = append(c.order, n)
		}
	}
	return c, nil
}

// Sprite returns the named sprite or nil.
func (c *Catalog) Sprite(name string) *gfx.Sprite {
	return c.sprites[name]
}

// Names lists sprite names in load order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of sprites.
func (c *Catalog) Len() int {
	return len(c.order)
}

// lookup collects sprites by name, failing on the first missing one.
func (c *Catalog) lookup(names ...string) ([]*gfx.Sprite, error) {
	out := make([]*gfx.Sprite, len(names))
	for i, n := range names {
		sp := c.sprites[n]
		if sp == nil {
			return nil, fmt.Errorf("assets: missing sprite %q", n)
		}
		out[i] = sp
	}
	return out, nil
}
