package ui

import (
	"fmt"

	"github.com/DarkTime312/Weather-App/internal/animation"
	"github.com/DarkTime312/Weather-App/internal/layout"
	tea "github.com/charmbracelet/bubbletea"
)

// animationCanvas hosts the condition animation. Only its placement depends
// on the mode; playback is left to the scheduler.
type animationCanvas struct {
	parent    *layout.Grid
	scheduler *animation.Scheduler
	width     int
	height    int
}

func newAnimationCanvas(parent *layout.Grid, scheduler *animation.Scheduler) *animationCanvas {
	return &animationCanvas{parent: parent, scheduler: scheduler}
}

func (c *animationCanvas) SetLayout(mode layout.Mode) error {
	switch mode {
	case layout.Normal, layout.VerticalRight:
		c.parent.Place(c, layout.Placement{Row: 0, Column: 1, Sticky: layout.StickyAll})
	case layout.VerticalBottom, layout.HorizontalRight:
		c.parent.Place(c, layout.Placement{Row: 1, Column: 0, Sticky: layout.StickyAll})
	default:
		return fmt.Errorf("canvas: no placement for mode %v", mode)
	}
	return nil
}

// Configure reports the cell size to the scheduler in half-block dots: one
// column is one dot wide and one row is two dots tall.
func (c *animationCanvas) Configure(width, height int) tea.Cmd {
	if width == c.width && height == c.height {
		return nil
	}
	c.width, c.height = width, height
	return c.scheduler.Resize(width, 2*height)
}

func (c *animationCanvas) Update(msg tea.Msg) tea.Cmd {
	return c.scheduler.Update(msg)
}

func (c *animationCanvas) View(width, height int) string {
	return c.scheduler.Frame()
}
