// Package scroll computes how far an element sits from the vertical
// center of the viewport, as a clamped [0, 1] progress value. Surface
// shadows fade as this progress grows.
package scroll

import "github.com/neu-ui/neu/pkg/graphics"

const (
	// Deadzone is the pixel distance from the viewport center inside
	// which progress snaps to exactly 0.
	Deadzone = 100.0

	// MaxDistanceFraction is the fraction of the viewport height at
	// which progress saturates to 1.
	MaxDistanceFraction = 0.30
)

// Viewport describes the host scroll state: the current scroll offset in
// document coordinates and the viewport height in pixels.
type Viewport struct {
	Offset float64
	Height float64
}

// Progress maps an element's vertical center (document coordinates) to a
// [0, 1] progress value for the given viewport.
//
// Distance is measured from the viewport center and normalized by
// MaxDistanceFraction of the viewport height. Inside Deadzone pixels the
// result is exactly 0 regardless of the normalized value, so elements
// near the center render at full shadow intensity without jitter.
func Progress(elementCenterY float64, vp Viewport) float64 {
	if vp.Height <= 0 {
		return 0
	}

	distance := elementCenterY - vp.Offset - vp.Height/2
	if distance < 0 {
		distance = -distance
	}
	if distance < Deadzone {
		return 0
	}

	normalized := distance / (MaxDistanceFraction * vp.Height)
	if normalized > 1 {
		return 1
	}
	return normalized
}

// ProgressForRect is Progress applied to the center of an element's
// bounding rectangle.
func ProgressForRect(bounds graphics.Rect, vp Viewport) float64 {
	return Progress(bounds.Center().Y, vp)
}
