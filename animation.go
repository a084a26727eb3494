package animate

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidDuration is returned for negative or NaN durations.
	ErrInvalidDuration = errors.New("animate: invalid duration")
	// ErrNilMutation is returned when an animation has no mutation function.
	ErrNilMutation = errors.New("animate: nil mutation")
)

// Animation describes one visual change: a duration in seconds and a
// mutation applied to a view. Executors decide how the change is animated;
// the mutation itself only writes the end state.
//
// Implementations must be immutable. Any type satisfying the interface can be
// placed in a Token, so new effects need no changes to tokens or Run.
type Animation interface {
	Duration() float32
	Apply(v *View)
}

// animation is the closure-backed Animation returned by New and the factories.
type animation struct {
	duration float32
	mutate   func(*View)
}

func (a animation) Duration() float32 { return a.duration }
func (a animation) Apply(v *View)     { a.mutate(v) }

// New returns an Animation that applies mutate over duration seconds.
func New(duration float32, mutate func(*View)) (Animation, error) {
	if err := validDuration(duration); err != nil {
		return nil, err
	}
	if mutate == nil {
		return nil, ErrNilMutation
	}
	return animation{duration: duration, mutate: mutate}, nil
}

func validDuration(d float32) error {
	if d < 0 || math.IsNaN(float64(d)) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	return nil
}

// mustNew backs the factories. A negative duration there is a programming
// error, reported the same way as other contract violations in this package.
func mustNew(duration float32, mutate func(*View)) Animation {
	a, err := New(duration, mutate)
	if err != nil {
		panic(err)
	}
	return a
}

// FadeIn makes the view fully opaque.
func FadeIn(duration float32) Animation {
	return mustNew(duration, func(v *View) { v.Alpha = 1 })
}

// FadeOut makes the view fully transparent.
func FadeOut(duration float32) Animation {
	return mustNew(duration, func(v *View) { v.Alpha = 0 })
}

// Resize sets the view's size. The center does not move.
func Resize(to Size, duration float32) Animation {
	return mustNew(duration, func(v *View) {
		v.Width = to.Width
		v.Height = to.Height
	})
}

// Move offsets the view's center by (byX, byY).
func Move(byX, byY float64, duration float32) Animation {
	return mustNew(duration, func(v *View) {
		v.CenterX += byX
		v.CenterY += byY
	})
}

// MoveTo places the view's center at (x, y) in its parent's space.
func MoveTo(x, y float64, duration float32) Animation {
	return mustNew(duration, func(v *View) {
		v.CenterX = x
		v.CenterY = y
	})
}

// Tint sets the view's color.
func Tint(to Color, duration float32) Animation {
	return mustNew(duration, func(v *View) { v.Color = to })
}

// TintHex is Tint with a "#rrggbb" color. The view's alpha channel in Color
// is set to 1.
func TintHex(hex string, duration float32) (Animation, error) {
	if err := validDuration(duration); err != nil {
		return nil, err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("tint %q: %w", hex, err)
	}
	to := Color{R: c.R, G: c.G, B: c.B, A: 1}
	return Tint(to, duration), nil
}
