package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocketberry/internal/core"
	"github.com/vovakirdan/rocketberry/internal/gfx"
)

type cellColors struct {
	top, bottom core.Color
}

// styleCache maps a half-block color pair to its lipgloss style.
type styleCache map[cellColors]lipgloss.Style

func (c styleCache) get(k cellColors) lipgloss.Style {
	st, ok := c[k]
	if !ok {
		st = lipgloss.NewStyle().
			Foreground(lipgloss.Color(k.top.Hex())).
			Background(lipgloss.Color(k.bottom.Hex()))
		c[k] = st
	}
	return st
}

// RenderSurface converts the surface's front buffer into cols x rows
// half-block cells. Adjacent cells with the same colors are grouped to
// minimize ANSI escape sequences.
func RenderSurface(s *gfx.Surface, cols, rows int, styles styleCache) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if styles == nil {
		styles = styleCache{}
	}

	grid := make([]cellColors, cols*rows)
	s.HalfBlocks(cols, rows, func(col, row int, top, bottom core.Color) {
		grid[row*cols+col] = cellColors{top, bottom}
	})

	var sb strings.Builder
	sb.Grow(cols*rows*4 + rows)

	for y := 0; y < rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		line := grid[y*cols : (y+1)*cols]
		x := 0
		for x < cols {
			start := line[x]
			n := 0
			for x < cols && line[x] == start {
				n++
				x++
			}
			sb.WriteString(styles.get(start).Render(strings.Repeat(string(gfx.HalfBlock), n)))
		}
	}
	return sb.String()
}
