package layout

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      Mode
	}{
		{"Small window", 500, 300, Normal},
		{"Narrow and tall", 999, 600, VerticalBottom},
		{"Wide and short", 1000, 599, VerticalRight},
		{"Large window", 1200, 700, HorizontalRight},
		{"Both thresholds exactly", 1000, 600, HorizontalRight},
		{"Just below both", 999, 599, Normal},
		{"Zero size", 0, 0, Normal},
		{"Negative size", -10, -10, Normal},
		{"Huge height only", 10, 100000, VerticalBottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultBreakpoints.Classify(tt.width, tt.height); got != tt.expected {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.expected)
			}
		})
	}
}

// Every point of a sweep across both thresholds must land in exactly the
// quadrant its coordinates describe.
func TestClassify_TilesThePlane(t *testing.T) {
	b := Breakpoints{Width: 40, Height: 20}
	seen := map[Mode]int{}
	for w := 0; w <= 80; w++ {
		for h := 0; h <= 40; h++ {
			got := b.Classify(w, h)
			var want Mode
			switch {
			case w < 40 && h < 20:
				want = Normal
			case w < 40:
				want = VerticalBottom
			case h < 20:
				want = VerticalRight
			default:
				want = HorizontalRight
			}
			if got != want {
				t.Fatalf("Classify(%d, %d) = %v, want %v", w, h, got, want)
			}
			seen[got]++
		}
	}
	for _, m := range Modes {
		if seen[m] == 0 {
			t.Errorf("mode %v never produced", m)
		}
	}
	if seen[Unset] != 0 {
		t.Errorf("Classify returned Unset %d times", seen[Unset])
	}
}

func TestModeString(t *testing.T) {
	if Unset.String() != "unset" {
		t.Errorf("Unset.String() = %q", Unset.String())
	}
	if HorizontalRight.String() != "horizontal-right" {
		t.Errorf("HorizontalRight.String() = %q", HorizontalRight.String())
	}
	if Mode(42).String() != "unknown" {
		t.Errorf("Mode(42).String() = %q", Mode(42).String())
	}
}
