package ui

import (
	"fmt"

	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// address renders "City, " in bold followed by the country.
type address struct {
	city    string
	country string
}

func (a *address) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	city := a.city + ", "
	if a.country == "" {
		city = a.city
	}
	full := city + a.country
	if lipgloss.Width(full) > width {
		return boldTextStyle.Render(truncate(full, width))
	}
	return boldTextStyle.Render(city) + textStyle.Render(a.country)
}

// locationBlock shows the address and today's date. Its inner grid is
// rebuilt for every mode.
type locationBlock struct {
	parent  *layout.Grid
	grid    *layout.Grid
	address *address
	date    *label
}

func newLocationBlock(parent *layout.Grid) *locationBlock {
	return &locationBlock{
		parent:  parent,
		grid:    layout.NewGrid(),
		address: &address{},
		date:    newLabel(&textStyle),
	}
}

func (l *locationBlock) Set(city, country, date string) {
	l.address.city = city
	l.address.country = country
	l.date.text = date
}

func (l *locationBlock) SetLayout(mode layout.Mode) error {
	l.grid.Reset()

	switch mode {
	case layout.Normal, layout.VerticalRight:
		l.parent.Place(l, layout.Placement{Row: 1, Column: 0, ColumnSpan: 2, Sticky: layout.ParseSticky("sew")})
		l.grid.RowConfigure(0, layout.Track{Weight: 1})
		l.grid.ColumnConfigure(0, layout.Track{Weight: 1})
		l.grid.ColumnConfigure(1, layout.Track{Weight: 1})
		l.grid.Place(l.address, layout.Placement{Row: 0, Column: 0, Sticky: layout.ParseSticky("sw"), PadX: 1})
		l.grid.Place(l.date, layout.Placement{Row: 0, Column: 1, Sticky: layout.ParseSticky("se"), PadX: 1})
	case layout.VerticalBottom, layout.HorizontalRight:
		l.parent.Place(l, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyAll})
		l.grid.RowConfigure(0, layout.Track{Weight: 1})
		l.grid.RowConfigure(1, layout.Track{Weight: 1})
		l.grid.ColumnConfigure(0, layout.Track{Weight: 1})
		l.grid.Place(l.address, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyS})
		l.grid.Place(l.date, layout.Placement{Row: 1, Column: 0, Sticky: layout.StickyN})
	default:
		return fmt.Errorf("location: no placement for mode %v", mode)
	}
	return nil
}

func (l *locationBlock) View(width, height int) string {
	return l.grid.View(width, height)
}
