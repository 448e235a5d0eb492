package layout

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Sticky says which cell edges a child clings to.
type Sticky uint8

const (
	StickyN Sticky = 1 << iota
	StickyS
	StickyE
	StickyW

	StickyNone Sticky = 0
	StickyAll         = StickyN | StickyS | StickyE | StickyW
)

// ParseSticky reads a compass string such as "news" or "sew".
// Unknown characters are ignored.
func ParseSticky(s string) Sticky {
	var st Sticky
	for _, r := range s {
		switch r {
		case 'n', 'N':
			st |= StickyN
		case 's', 'S':
			st |= StickyS
		case 'e', 'E':
			st |= StickyE
		case 'w', 'W':
			st |= StickyW
		}
	}
	return st
}

// Track configures one row or column. The zero value is the neutral track.
type Track struct {
	Weight  int
	Uniform string
	MinSize int
}

// Placement positions a child inside a Grid. Spans of 0 count as 1.
type Placement struct {
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
	Sticky     Sticky
	PadX       int
}

func (p Placement) rowSpan() int    { return max(p.RowSpan, 1) }
func (p Placement) columnSpan() int { return max(p.ColumnSpan, 1) }

// Widget is anything that can draw itself into a width x height block.
type Widget interface {
	View(width, height int) string
}

// Configurer is implemented by widgets that want to know their cell size
// whenever the grid is arranged for a new window size.
type Configurer interface {
	Configure(width, height int) tea.Cmd
}

// Rect is a cell area in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Cell is a placed child together with the area it was given.
type Cell struct {
	Widget    Widget
	Placement Placement
	Rect      Rect
}

type slot struct {
	widget    Widget
	placement Placement
}

// Grid is a container of weighted rows and columns. Children are compared by
// identity, so they should be pointers.
type Grid struct {
	rows    map[int]Track
	columns map[int]Track
	slots   []slot
}

func NewGrid() *Grid {
	return &Grid{
		rows:    map[int]Track{},
		columns: map[int]Track{},
	}
}

func (g *Grid) RowConfigure(index int, t Track) {
	if g.rows == nil {
		g.rows = map[int]Track{}
	}
	g.rows[index] = t
}

func (g *Grid) ColumnConfigure(index int, t Track) {
	if g.columns == nil {
		g.columns = map[int]Track{}
	}
	g.columns[index] = t
}

// Row returns the configuration of row index, or the neutral track.
func (g *Grid) Row(index int) Track {
	if g == nil {
		return Track{}
	}
	return g.rows[index]
}

// Column returns the configuration of column index, or the neutral track.
func (g *Grid) Column(index int) Track {
	if g == nil {
		return Track{}
	}
	return g.columns[index]
}

// Place puts w at p. Placing an already placed child moves it.
func (g *Grid) Place(w Widget, p Placement) {
	for i := range g.slots {
		if g.slots[i].widget == w {
			g.slots[i].placement = p
			return
		}
	}
	g.slots = append(g.slots, slot{widget: w, placement: p})
}

// Forget detaches w from the grid. Unknown children are ignored.
func (g *Grid) Forget(w Widget) {
	if g == nil {
		return
	}
	for i := range g.slots {
		if g.slots[i].widget == w {
			g.slots = append(g.slots[:i], g.slots[i+1:]...)
			return
		}
	}
}

// Placement reports where w currently sits.
func (g *Grid) Placement(w Widget) (Placement, bool) {
	if g == nil {
		return Placement{}, false
	}
	for _, s := range g.slots {
		if s.widget == w {
			return s.placement, true
		}
	}
	return Placement{}, false
}

// Placed returns the children in placement order.
func (g *Grid) Placed() []Widget {
	if g == nil {
		return nil
	}
	out := make([]Widget, 0, len(g.slots))
	for _, s := range g.slots {
		out = append(out, s.widget)
	}
	return out
}

// Size returns the number of columns and rows the grid spans, counting both
// configured tracks and child placements.
func (g *Grid) Size() (columns, rows int) {
	if g == nil {
		return 0, 0
	}
	for i := range g.columns {
		columns = max(columns, i+1)
	}
	for i := range g.rows {
		rows = max(rows, i+1)
	}
	for _, s := range g.slots {
		columns = max(columns, s.placement.Column+s.placement.columnSpan())
		rows = max(rows, s.placement.Row+s.placement.rowSpan())
	}
	return columns, rows
}

// Reset detaches every child and returns every row and column to the
// neutral track. It is safe on an empty or nil grid.
func (g *Grid) Reset() {
	if g == nil {
		return
	}
	g.slots = nil
	g.rows = map[int]Track{}
	g.columns = map[int]Track{}
}

// Arrange computes the area of every placed child for a width x height grid.
func (g *Grid) Arrange(width, height int) []Cell {
	if g == nil || len(g.slots) == 0 {
		return nil
	}
	ncols, nrows := g.Size()
	colSizes := distribute(width, tracks(g.columns, ncols))
	rowSizes := distribute(height, tracks(g.rows, nrows))
	colOffsets := offsets(colSizes)
	rowOffsets := offsets(rowSizes)

	cells := make([]Cell, 0, len(g.slots))
	for _, s := range g.slots {
		p := s.placement
		if p.Row < 0 || p.Column < 0 {
			continue
		}
		r := Rect{
			X:      colOffsets[p.Column],
			Y:      rowOffsets[p.Row],
			Width:  span(colSizes, p.Column, p.columnSpan()),
			Height: span(rowSizes, p.Row, p.rowSpan()),
		}
		if p.PadX > 0 {
			pad := min(p.PadX, r.Width/2)
			r.X += pad
			r.Width -= 2 * pad
		}
		cells = append(cells, Cell{Widget: s.widget, Placement: p, Rect: r})
	}
	return cells
}

// Configure tells every placed Configurer the size of its cell.
func (g *Grid) Configure(width, height int) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range g.Arrange(width, height) {
		if cf, ok := c.Widget.(Configurer); ok {
			cmds = append(cmds, cf.Configure(c.Rect.Width, c.Rect.Height))
		}
	}
	return tea.Batch(cmds...)
}

func tracks(configured map[int]Track, n int) []Track {
	out := make([]Track, n)
	for i := range out {
		out[i] = configured[i]
	}
	return out
}

// distribute splits total across tracks: minimum sizes first, uniform groups
// equalised per unit of weight, the rest by weight. Leftovers from integer
// division only go to tracks outside a uniform group.
func distribute(total int, ts []Track) []int {
	sizes := make([]int, len(ts))
	units := map[string]int{}
	for _, t := range ts {
		if t.Uniform == "" {
			continue
		}
		w := max(t.Weight, 1)
		u := (t.MinSize + w - 1) / w
		if u > units[t.Uniform] {
			units[t.Uniform] = u
		}
	}

	used := 0
	totalWeight := 0
	for i, t := range ts {
		s := max(t.MinSize, 0)
		if t.Uniform != "" {
			s = units[t.Uniform] * max(t.Weight, 1)
		}
		sizes[i] = s
		used += s
		totalWeight += max(t.Weight, 0)
	}

	extra := total - used
	if extra <= 0 || totalWeight == 0 {
		return sizes
	}

	given := 0
	for i, t := range ts {
		if t.Weight <= 0 {
			continue
		}
		add := extra * t.Weight / totalWeight
		sizes[i] += add
		given += add
	}

	left := extra - given
	for left > 0 {
		progressed := false
		for i, t := range ts {
			if left == 0 {
				break
			}
			if t.Weight > 0 && t.Uniform == "" {
				sizes[i]++
				left--
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return sizes
}

func offsets(sizes []int) []int {
	out := make([]int, len(sizes)+1)
	for i, s := range sizes {
		out[i+1] = out[i] + s
	}
	return out
}

func span(sizes []int, start, n int) int {
	total := 0
	for i := start; i < start+n && i < len(sizes); i++ {
		total += sizes[i]
	}
	return total
}
