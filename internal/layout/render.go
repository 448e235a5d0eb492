package layout

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type segment struct {
	x     int
	width int
	text  string
}

// View renders every placed child into its cell and stitches the cells into
// a width x height block. Uncovered areas are blank.
func (g *Grid) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := make([][]segment, height)
	for _, c := range g.Arrange(width, height) {
		if c.Rect.Width <= 0 || c.Rect.Height <= 0 {
			continue
		}
		block := fit(c.Widget.View(c.Rect.Width, c.Rect.Height), c.Rect.Width, c.Rect.Height, c.Placement.Sticky)
		for i, line := range strings.Split(block, "\n") {
			y := c.Rect.Y + i
			if y >= height {
				break
			}
			lines[y] = append(lines[y], segment{x: c.Rect.X, width: c.Rect.Width, text: line})
		}
	}

	var b strings.Builder
	clip := lipgloss.NewStyle().MaxWidth(width)
	for y, segs := range lines {
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

		var line strings.Builder
		col := 0
		for _, s := range segs {
			if s.x < col {
				continue
			}
			line.WriteString(strings.Repeat(" ", s.x-col))
			line.WriteString(s.text)
			col = s.x + s.width
		}
		if col < width {
			line.WriteString(strings.Repeat(" ", width-col))
		}

		if col > width {
			b.WriteString(clip.Render(line.String()))
		} else {
			b.WriteString(line.String())
		}
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// fit clips block to the cell and aligns it the way sticky asks.
func fit(block string, width, height int, sticky Sticky) string {
	block = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(block)
	return lipgloss.Place(width, height, horizontal(sticky), vertical(sticky), block)
}

func horizontal(s Sticky) lipgloss.Position {
	east, west := s&StickyE != 0, s&StickyW != 0
	switch {
	case west && !east:
		return lipgloss.Left
	case east && !west:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

func vertical(s Sticky) lipgloss.Position {
	north, south := s&StickyN != 0, s&StickyS != 0
	switch {
	case north && !south:
		return lipgloss.Top
	case south && !north:
		return lipgloss.Bottom
	default:
		return lipgloss.Center
	}
}
