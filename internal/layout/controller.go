package layout

import (
	"errors"
	"fmt"
	"log"
)

// LayoutAware is a widget that can reposition itself for a mode.
type LayoutAware interface {
	SetLayout(mode Mode) error
}

// Configure applies the root row and column weights of one mode.
type Configure func(g *Grid)

// Controller owns the active mode of one window. It relayouts the root grid
// only when a resize moves the window into a different mode.
type Controller struct {
	grid        *Grid
	breakpoints Breakpoints
	table       map[Mode]Configure
	widgets     []LayoutAware
	active      Mode
}

func NewController(grid *Grid, breakpoints Breakpoints, table map[Mode]Configure, widgets ...LayoutAware) *Controller {
	return &Controller{
		grid:        grid,
		breakpoints: breakpoints,
		table:       table,
		widgets:     widgets,
	}
}

// Active returns the mode applied last, or Unset.
func (c *Controller) Active() Mode {
	return c.active
}

// Breakpoints returns the thresholds in use.
func (c *Controller) Breakpoints() Breakpoints {
	return c.breakpoints
}

// SetBreakpoints swaps the thresholds. The next Resize decides whether the
// mode changed under them.
func (c *Controller) SetBreakpoints(b Breakpoints) {
	c.breakpoints = b
}

// Invalidate forgets the active mode so the next Resize relayouts.
func (c *Controller) Invalidate() {
	c.active = Unset
}

// Resize classifies a window size. On a mode transition it resets the root
// grid, applies the mode's weights and then asks every widget to follow, in
// that order. Widget failures are joined; one failing widget does not stop
// the others.
func (c *Controller) Resize(width, height int) (Mode, bool, error) {
	mode := c.breakpoints.Classify(width, height)
	if mode == c.active {
		return mode, false, nil
	}

	apply, ok := c.table[mode]
	if !ok {
		panic(fmt.Sprintf("layout: no configuration for mode %v", mode))
	}

	log.Printf("layout: %v -> %v (%dx%d)", c.active, mode, width, height)
	c.active = mode

	c.grid.Reset()
	apply(c.grid)

	var errs []error
	for _, w := range c.widgets {
		if err := w.SetLayout(mode); err != nil {
			errs = append(errs, err)
		}
	}
	return mode, true, errors.Join(errs...)
}
