package ui

import (
	"github.com/DarkTime312/Weather-App/internal/config"
	"github.com/DarkTime312/Weather-App/internal/layout"
)

// rootLayouts holds the row and column weights of the body grid per mode.
var rootLayouts = map[layout.Mode]layout.Configure{
	layout.Normal: func(g *layout.Grid) {
		g.RowConfigure(0, layout.Track{Weight: 6, Uniform: "a"})
		g.RowConfigure(1, layout.Track{Weight: 1, Uniform: "a"})
		g.ColumnConfigure(0, layout.Track{Weight: 1, Uniform: "b"})
		g.ColumnConfigure(1, layout.Track{Weight: 1, Uniform: "b"})
	},
	layout.VerticalBottom: func(g *layout.Grid) {
		for i, w := range []int{18, 28, 24, 30} {
			g.RowConfigure(i, layout.Track{Weight: w, Uniform: "a"})
		}
		g.ColumnConfigure(0, layout.Track{Weight: 1})
	},
	layout.VerticalRight: func(g *layout.Grid) {
		g.RowConfigure(0, layout.Track{Weight: 6, Uniform: "a"})
		g.RowConfigure(1, layout.Track{Weight: 1, Uniform: "a"})
		for i, w := range []int{1, 1, 4} {
			g.ColumnConfigure(i, layout.Track{Weight: w, Uniform: "b"})
		}
	},
	layout.HorizontalRight: func(g *layout.Grid) {
		for i := 0; i < 4; i++ {
			g.RowConfigure(i, layout.Track{Weight: 1, Uniform: "a"})
		}
		g.ColumnConfigure(0, layout.Track{Weight: 1, Uniform: "b"})
		g.ColumnConfigure(1, layout.Track{Weight: 1, Uniform: "b"})
	},
}

func breakpointsOf(cfg config.Config) layout.Breakpoints {
	return layout.Breakpoints{Width: cfg.Layout.BreakpointWidth, Height: cfg.Layout.BreakpointHeight}
}

// windowPixels converts a terminal size in cells to pixels.
func windowPixels(cfg config.Config, cols, rows int) (width, height int) {
	return cols * cfg.Layout.CellWidth, rows * cfg.Layout.CellHeight
}
