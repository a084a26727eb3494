package animate

// DefaultDuration is the duration, in seconds, used by scripts that omit one
// and the value callers are expected to pass to the factories for the
// standard feel.
const DefaultDuration float32 = 0.3

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default view color.
var ColorWhite = Color{1, 1, 1, 1}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Mode selects how the animations of a Token are composed. It is fixed when
// the token is created.
type Mode uint8

const (
	Sequential Mode = iota // each animation starts when the previous one finishes
	Parallel               // all animations start together; done when the last finishes
)

// String returns the lowercase mode name used by scripts and debug output.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}
