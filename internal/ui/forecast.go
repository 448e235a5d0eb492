package ui

import (
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/DarkTime312/Weather-App/internal/assets"
	"github.com/DarkTime312/Weather-App/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// ErrForecastOutOfData is returned when there are fewer icons than forecast
// entries to pair them with.
var ErrForecastOutOfData = errors.New("forecast: fewer icons than entries")

// ForecastEntry is one upcoming day.
type ForecastEntry struct {
	Day         string
	Temperature string
	Condition   string
}

// ShortDay is the three-letter form of the day name.
func (e ForecastEntry) ShortDay() string {
	r := []rune(e.Day)
	if len(r) <= 3 {
		return e.Day
	}
	return string(r[:3])
}

type stripAxis int

const (
	axisColumns stripAxis = iota
	axisRows
)

// iconView draws a condition icon as half blocks, keeping the last
// rendering while the size stays the same.
type iconView struct {
	img    image.Image
	size   int
	cached string
}

func (v *iconView) View(width, height int) string {
	if v.img == nil {
		return ""
	}
	size := min(width, 2*height)
	if size <= 0 {
		return ""
	}
	if size != v.size {
		v.size = size
		v.cached = assets.HalfBlock(v.img, size)
	}
	return v.cached
}

// dayCell is one forecast day. Column strips stack icon, temperature and
// day name; row strips lay them out side by side.
type dayCell struct {
	grid *layout.Grid
}

func newDayCell(entry ForecastEntry, icon image.Image, axis stripAxis) *dayCell {
	d := &dayCell{grid: layout.NewGrid()}
	temp := newLabel(&boldTextStyle)
	temp.text = entry.Temperature
	day := newLabel(&textStyle)
	view := &iconView{img: icon}

	if axis == axisColumns {
		day.text = entry.ShortDay()
		d.grid.ColumnConfigure(0, layout.Track{Weight: 1})
		d.grid.RowConfigure(0, layout.Track{Weight: 3})
		d.grid.RowConfigure(1, layout.Track{Weight: 1, MinSize: 1})
		d.grid.RowConfigure(2, layout.Track{Weight: 1, MinSize: 1})
		d.grid.Place(view, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyAll})
		d.grid.Place(temp, layout.Placement{Row: 1, Column: 0})
		d.grid.Place(day, layout.Placement{Row: 2, Column: 0, Sticky: layout.StickyN})
		return d
	}

	day.text = entry.Day
	d.grid.RowConfigure(0, layout.Track{Weight: 1})
	d.grid.ColumnConfigure(0, layout.Track{Weight: 2})
	d.grid.ColumnConfigure(1, layout.Track{Weight: 1})
	d.grid.ColumnConfigure(2, layout.Track{Weight: 1})
	d.grid.Place(day, layout.Placement{Row: 0, Column: 0, Sticky: layout.StickyW, PadX: 1})
	d.grid.Place(view, layout.Placement{Row: 0, Column: 1, Sticky: layout.StickyAll})
	d.grid.Place(temp, layout.Placement{Row: 0, Column: 2, Sticky: layout.StickyE, PadX: 1})
	return d
}

func (d *dayCell) View(width, height int) string {
	return d.grid.View(width, height)
}

// forecastStrip lists the upcoming days. Every SetLayout throws the old
// cells away and builds 2k-1 new ones: k days with k-1 separators between.
type forecastStrip struct {
	parent  *layout.Grid
	grid    *layout.Grid
	entries []ForecastEntry
	icons   []image.Image
	mode    layout.Mode
	err     error
}

func newForecastStrip(parent *layout.Grid) *forecastStrip {
	return &forecastStrip{parent: parent, grid: layout.NewGrid()}
}

// SetData replaces the entries and icons and rebuilds the cells for the
// current mode.
func (f *forecastStrip) SetData(entries []ForecastEntry, icons []image.Image) error {
	f.entries = entries
	f.icons = icons
	return f.rebuild()
}

func (f *forecastStrip) SetLayout(mode layout.Mode) error {
	f.mode = mode
	switch mode {
	case layout.Normal:
		// The strip has no place in the smallest window.
	case layout.VerticalBottom:
		f.parent.Place(f, layout.Placement{Row: 3, Column: 0, Sticky: layout.StickyAll})
	case layout.VerticalRight:
		f.parent.Place(f, layout.Placement{Row: 0, Column: 2, RowSpan: 2, Sticky: layout.StickyAll})
	case layout.HorizontalRight:
		f.parent.Place(f, layout.Placement{Row: 0, Column: 1, RowSpan: 4, Sticky: layout.StickyAll})
	default:
		return fmt.Errorf("forecast: no placement for mode %v", mode)
	}
	return f.rebuild()
}

func (f *forecastStrip) axis() stripAxis {
	if f.mode == layout.HorizontalRight {
		return axisRows
	}
	return axisColumns
}

func (f *forecastStrip) rebuild() error {
	f.grid.Reset()
	f.err = nil
	if f.mode == layout.Normal || f.mode == layout.Unset {
		return nil
	}
	if len(f.icons) < len(f.entries) {
		f.err = fmt.Errorf("%w: %d entries, %d icons", ErrForecastOutOfData, len(f.entries), len(f.icons))
		log.Printf("forecast strip: %v", f.err)
		return f.err
	}

	axis := f.axis()
	track := f.grid.ColumnConfigure
	if axis == axisRows {
		track = f.grid.RowConfigure
	}
	across := f.grid.RowConfigure
	if axis == axisRows {
		across = f.grid.ColumnConfigure
	}
	across(0, layout.Track{Weight: 1})

	place := func(w layout.Widget, index int) {
		p := layout.Placement{Sticky: layout.StickyAll}
		if axis == axisRows {
			p.Row = index
		} else {
			p.Column = index
		}
		f.grid.Place(w, p)
	}

	for i, entry := range f.entries {
		if i > 0 {
			track(2*i-1, layout.Track{Uniform: "b", MinSize: 1})
			place(&separator{vertical: axis == axisColumns}, 2*i-1)
		}
		track(2*i, layout.Track{Weight: 1, Uniform: "a"})
		place(newDayCell(entry, f.icons[i], axis), 2*i)
	}
	return nil
}

func (f *forecastStrip) View(width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW, innerH := width-2, height-2
	var body string
	if f.err != nil {
		lines := wrapText("Forecast unavailable: "+f.err.Error(), innerW)
		body = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, errorTextStyle.Render(strings.Join(lines, "\n")))
	} else {
		body = f.grid.View(innerW, innerH)
	}
	return stripBorderStyle.Render(body)
}
