package ui

import (
	"fmt"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

const glyphHeight = 5

// blockGlyphs is a 3x5 font for temperature values.
var blockGlyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	'-': {"   ", "   ", "███", "   ", "   "},
	'°': {"██", "██", "  ", "  ", "  "},
}

// renderBlock draws text in the block font. ok is false when a rune has no
// glyph.
func renderBlock(text string) (out string, ok bool) {
	var rows [glyphHeight]strings.Builder
	first := true
	for _, r := range text {
		g, found := blockGlyphs[r]
		if !found {
			return "", false
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}
	lines := make([]string, glyphHeight)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n"), true
}

// bigValue shows the current temperature in the block font, or as plain
// bold text when the cell is too small for it.
type bigValue struct {
	text string
}

func (b *bigValue) View(width, height int) string {
	if block, ok := renderBlock(b.text); ok && lipgloss.Width(block) <= width && glyphHeight <= height {
		return bigValueStyle.Render(block)
	}
	return bigValueStyle.Render(truncate(b.text, width))
}

// temperatureBlock is the current temperature with a "feels like" caption
// below it.
type temperatureBlock struct {
	parent  *layout.Grid
	grid    *layout.Grid
	value   *bigValue
	caption *label
}

func newTemperatureBlock(parent *layout.Grid) *temperatureBlock {
	t := &temperatureBlock{
		parent:  parent,
		grid:    layout.NewGrid(),
		value:   &bigValue{},
		caption: newLabel(&captionStyle),
	}
	t.grid.RowConfigure(0, layout.Track{Weight: 2})
	t.grid.RowConfigure(1, layout.Track{Weight: 1})
	t.grid.ColumnConfigure(0, layout.Track{Weight: 1})
	t.grid.Place(t.value, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyS})
	t.grid.Place(t.caption, layout.Placement{Row: 1, Column: 0, Sticky: layout.StickyN})
	return t
}

func (t *temperatureBlock) Set(temperature, feelsLike string) {
	t.value.text = temperature
	t.caption.text = fmt.Sprintf("feels like: %s", feelsLike)
}

func (t *temperatureBlock) SetLayout(mode layout.Mode) error {
	switch mode {
	case layout.Normal, layout.VerticalRight:
		t.parent.Place(t, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyAll})
	case layout.VerticalBottom:
		t.parent.Place(t, layout.Placement{Row: 2, Column: 0, Sticky: layout.StickyAll})
	case layout.HorizontalRight:
		t.parent.Place(t, layout.Placement{Row: 3, Column: 0, Sticky: layout.StickyN})
	default:
		return fmt.Errorf("temperature: no placement for mode %v", mode)
	}
	return nil
}

func (t *temperatureBlock) View(width, height int) string {
	return t.grid.View(width, height)
}
