package assets

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Scale resizes img into a size x size square.
func Scale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if size <= 0 || img == nil {
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

type dot struct {
	color string
	solid bool
}

func dotAt(img image.Image, x, y int) dot {
	b := img.Bounds()
	if !(image.Point{X: x, Y: y}.In(b)) {
		return dot{}
	}
	r, g, bl, a := img.At(x, y).RGBA()
	if a < 0x8000 {
		return dot{}
	}
	return dot{color: fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8), solid: true}
}

type cell struct {
	glyph  string
	fg, bg string
}

func cellFor(top, bottom dot) cell {
	switch {
	case top.solid && bottom.solid:
		return cell{glyph: upperHalf, fg: top.color, bg: bottom.color}
	case top.solid:
		return cell{glyph: upperHalf, fg: top.color}
	case bottom.solid:
		return cell{glyph: lowerHalf, fg: bottom.color}
	default:
		return cell{glyph: " "}
	}
}

// HalfBlock renders img as a size x size dot square. Every terminal cell
// holds two vertically stacked dots, so the result is size cells wide and
// (size+1)/2 lines high. Transparent dots stay blank.
func HalfBlock(img image.Image, size int) string {
	if size <= 0 || img == nil {
		return ""
	}
	scaled := Scale(img, size)

	lines := make([]string, 0, (size+1)/2)
	for y := 0; y < size; y += 2 {
		var b strings.Builder
		var run strings.Builder
		var current cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle()
			if current.fg != "" {
				style = style.Foreground(lipgloss.Color(current.fg))
			}
			if current.bg != "" {
				style = style.Background(lipgloss.Color(current.bg))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < size; x++ {
			c := cellFor(dotAt(scaled, x, y), dotAt(scaled, x, y+1))
			if c.fg != current.fg || c.bg != current.bg {
				flush()
				current = c
			}
			run.WriteString(c.glyph)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
