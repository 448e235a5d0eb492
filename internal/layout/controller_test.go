package layout

import (
	"errors"
	"testing"
)

type recordingWidget struct {
	name   string
	grid   *Grid
	seen   []Mode
	err    error
	events *[]string
}

func (w *recordingWidget) View(int, int) string { return w.name }

func (w *recordingWidget) SetLayout(mode Mode) error {
	*w.events = append(*w.events, w.name)
	w.seen = append(w.seen, mode)
	if w.err != nil {
		return w.err
	}
	w.grid.Place(w, Placement{Row: 0, Column: 0})
	return nil
}

func testTable(events *[]string) map[Mode]Configure {
	return map[Mode]Configure{
		Normal: func(g *Grid) {
			*events = append(*events, "configure")
			g.RowConfigure(0, Track{Weight: 6, Uniform: "a"})
			g.RowConfigure(1, Track{Weight: 1, Uniform: "a"})
			g.ColumnConfigure(0, Track{Weight: 1, Uniform: "b"})
			g.ColumnConfigure(1, Track{Weight: 1, Uniform: "b"})
		},
		VerticalBottom: func(g *Grid) {
			*events = append(*events, "configure")
			for i, w := range []int{18, 28, 24, 30} {
				g.RowConfigure(i, Track{Weight: w, Uniform: "a"})
			}
			g.ColumnConfigure(0, Track{Weight: 1, Uniform: "b"})
		},
		VerticalRight: func(g *Grid) {
			*events = append(*events, "configure")
			g.RowConfigure(0, Track{Weight: 6, Uniform: "a"})
			g.RowConfigure(1, Track{Weight: 1, Uniform: "a"})
			g.ColumnConfigure(0, Track{Weight: 1, Uniform: "b"})
			g.ColumnConfigure(1, Track{Weight: 1, Uniform: "b"})
			g.ColumnConfigure(2, Track{Weight: 4, Uniform: "b"})
		},
		HorizontalRight: func(g *Grid) {
			*events = append(*events, "configure")
			for i := 0; i < 4; i++ {
				g.RowConfigure(i, Track{Weight: 1, Uniform: "a"})
			}
			g.ColumnConfigure(0, Track{Weight: 1, Uniform: "b"})
			g.ColumnConfigure(1, Track{Weight: 1, Uniform: "b"})
		},
	}
}

// newController wraps every table entry so a configuration step that finds
// leftovers in the grid is recorded as "dirty".
func newController(events *[]string, widgets ...*recordingWidget) (*Controller, *Grid) {
	g := NewGrid()
	table := testTable(events)
	for mode, apply := range table {
		apply := apply
		table[mode] = func(g *Grid) {
			if c, r := g.Size(); c != 0 || r != 0 {
				*events = append(*events, "dirty")
			}
			apply(g)
		}
	}
	var aware []LayoutAware
	for _, w := range widgets {
		w.grid = g
		w.events = events
		aware = append(aware, w)
	}
	return NewController(g, DefaultBreakpoints, table, aware...), g
}

func TestController_RelayoutOnlyOnTransition(t *testing.T) {
	var events []string
	temp := &recordingWidget{name: "temp"}
	c, _ := newController(&events, temp)

	mode, changed, err := c.Resize(500, 300)
	if err != nil || !changed || mode != Normal {
		t.Fatalf("Resize(500,300) = %v, %v, %v", mode, changed, err)
	}

	// Jitter inside the same quadrant.
	for _, size := range [][2]int{{501, 300}, {600, 310}, {999, 599}} {
		if _, changed, _ := c.Resize(size[0], size[1]); changed {
			t.Errorf("Resize(%d,%d) reported a transition", size[0], size[1])
		}
	}
	if len(temp.seen) != 1 {
		t.Errorf("SetLayout called %d times, want 1", len(temp.seen))
	}

	if _, changed, _ := c.Resize(1200, 700); !changed {
		t.Error("Resize(1200,700) did not transition")
	}
	if c.Active() != HorizontalRight {
		t.Errorf("Active = %v", c.Active())
	}
}

func TestController_ResetBeforeConfigureBeforeWidgets(t *testing.T) {
	var events []string
	a := &recordingWidget{name: "a"}
	b := &recordingWidget{name: "b"}
	c, _ := newController(&events, a, b)

	c.Resize(500, 300)
	c.Resize(1200, 300)

	want := []string{"configure", "a", "b", "configure", "a", "b"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestController_NoResidueFromPreviousMode(t *testing.T) {
	var events []string
	c, g := newController(&events)

	c.Resize(500, 1000) // VerticalBottom: 4 rows, 1 column
	c.Resize(1200, 300) // VerticalRight: 2 rows, 3 columns

	cols, rows := g.Size()
	if cols != 3 || rows != 2 {
		t.Fatalf("Size = (%d,%d), want (3,2)", cols, rows)
	}
	if tr := g.Row(2); tr != (Track{}) {
		t.Errorf("row 2 kept %+v from the previous mode", tr)
	}
	if tr := g.Row(0); tr.Weight != 6 {
		t.Errorf("row 0 weight = %d, want 6", tr.Weight)
	}
	if tr := g.Column(2); tr.Weight != 4 {
		t.Errorf("column 2 weight = %d, want 4", tr.Weight)
	}
}

func TestController_WidgetFailureIsolated(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	bad := &recordingWidget{name: "bad", err: boom}
	good := &recordingWidget{name: "good"}
	c, g := newController(&events, bad, good)

	_, changed, err := c.Resize(500, 300)
	if !changed {
		t.Fatal("expected a transition")
	}
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if _, ok := g.Placement(good); !ok {
		t.Error("good widget was not laid out after the bad one failed")
	}
}

func TestController_SetBreakpointsAndInvalidate(t *testing.T) {
	var events []string
	w := &recordingWidget{name: "w"}
	c, _ := newController(&events, w)

	c.Resize(800, 500)
	c.SetBreakpoints(Breakpoints{Width: 700, Height: 400})
	mode, changed, _ := c.Resize(800, 500)
	if !changed || mode != HorizontalRight {
		t.Errorf("after new breakpoints: %v, %v", mode, changed)
	}

	c.Invalidate()
	if _, changed, _ := c.Resize(800, 500); !changed {
		t.Error("Invalidate did not force a relayout")
	}
	if len(w.seen) != 3 {
		t.Errorf("SetLayout called %d times, want 3", len(w.seen))
	}
}

func TestController_MissingModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a mode without configuration")
		}
	}()
	c := NewController(NewGrid(), DefaultBreakpoints, map[Mode]Configure{})
	c.Resize(10, 10)
}
