package style

import (
	"strconv"
	"strings"
	"time"
)

// DefaultEasing is the timing function shared by every surface style.
// It matches the CSS ease-in-out material curve.
const DefaultEasing = "cubic-bezier(0.4, 0, 0.2, 1)"

// DefaultDuration is the transition length for surface state changes.
const DefaultDuration = 300 * time.Millisecond

// Transition holds the CSS transition parameters of a style.
type Transition struct {
	// Properties lists the animated CSS properties, in emission order.
	Properties []string
	// Duration is the transition length.
	Duration time.Duration
	// Easing is the timing function. Empty means DefaultEasing.
	Easing string
}

// DefaultTransition animates transform, box-shadow and opacity over the
// default duration and easing.
func DefaultTransition() Transition {
	return Transition{
		Properties: []string{"transform", "box-shadow", "opacity"},
		Duration:   DefaultDuration,
	}
}

// CSS renders the transition as a CSS shorthand value, one segment per
// property: "transform 300ms cubic-bezier(0.4, 0, 0.2, 1), …".
func (t Transition) CSS() string {
	if len(t.Properties) == 0 {
		return "none"
	}
	easing := t.Easing
	if easing == "" {
		easing = DefaultEasing
	}
	ms := strconv.FormatInt(t.Duration.Milliseconds(), 10) + "ms"

	segments := make([]string, len(t.Properties))
	for i, p := range t.Properties {
		segments[i] = p + " " + ms + " " + easing
	}
	return strings.Join(segments, ", ")
}
