package layout

import "fmt"

// Axis selects one scroll direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Axes is a set of axes a SyncGroup keeps aligned.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	BothAxes = AxisX | AxisY
)

// Has reports whether the set contains the axis.
func (s Axes) Has(a Axis) bool {
	switch a {
	case Horizontal:
		return s&AxisX != 0
	case Vertical:
		return s&AxisY != 0
	}
	return false
}

func (s Axes) String() string {
	switch s {
	case AxisX:
		return "horizontal"
	case AxisY:
		return "vertical"
	case BothAxes:
		return "both"
	case 0:
		return "none"
	}
	return fmt.Sprintf("axes(%d)", uint8(s))
}

// ParseAxes accepts "horizontal", "vertical" or "both" (plus the x/y/xy
// shorthands).
func ParseAxes(value string) (Axes, error) {
	switch value {
	case "horizontal", "x":
		return AxisX, nil
	case "vertical", "y":
		return AxisY, nil
	case "both", "xy", "":
		return BothAxes, nil
	}
	return 0, fmt.Errorf("%w: unknown sync axes %q", ErrInvalidConfiguration, value)
}

// Size is a width/height pair measured in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Along returns the extent on the given axis.
func (s Size) Along(a Axis) int {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
