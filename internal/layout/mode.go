package layout

// Mode is one of the four responsive arrangements of the window.
type Mode int

const (
	// Unset is the active mode before the first resize has been seen.
	Unset Mode = iota
	// Normal is a small window: temperature and animation side by side, location below.
	Normal
	// VerticalBottom is a narrow, tall window: everything stacked, forecast strip at the bottom.
	VerticalBottom
	// VerticalRight is a wide, short window: forecast strip as a column block on the right.
	VerticalRight
	// HorizontalRight is a large window: forecast strip as a row list on the right.
	HorizontalRight
)

// Modes lists every mode Classify can return.
var Modes = []Mode{Normal, VerticalBottom, VerticalRight, HorizontalRight}

func (m Mode) String() string {
	switch m {
	case Unset:
		return "unset"
	case Normal:
		return "normal"
	case VerticalBottom:
		return "vertical-bottom"
	case VerticalRight:
		return "vertical-right"
	case HorizontalRight:
		return "horizontal-right"
	default:
		return "unknown"
	}
}

// Breakpoints are the window size thresholds, in pixels, that split the plane into modes.
type Breakpoints struct {
	Width  int
	Height int
}

// DefaultBreakpoints are used when the config does not override them.
var DefaultBreakpoints = Breakpoints{Width: 1000, Height: 600}

// Classify maps a window size to its mode. A size equal to a threshold
// belongs to the larger side of that threshold.
func (b Breakpoints) Classify(width, height int) Mode {
	narrow := width < b.Width
	short := height < b.Height

	switch {
	case narrow && short:
		return Normal
	case narrow:
		return VerticalBottom
	case short:
		return VerticalRight
	default:
		return HorizontalRight
	}
}
