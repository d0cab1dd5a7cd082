package graphics

import (
	"math"
	"strconv"
)

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Neg returns the offset mirrored through the origin.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// FormatNumber renders a float the way CSS expects: up to three decimal
// places, trailing zeros and a trailing decimal point trimmed, so 1.0
// becomes "1" and 0.98 stays "0.98".
func FormatNumber(v float64) string {
	rounded := math.Round(v*1000) / 1000
	if rounded == 0 {
		// Avoid "-0" for tiny negative values.
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// FormatPx renders a pixel length, e.g. "16px" or "19.2px".
func FormatPx(v float64) string {
	return FormatNumber(v) + "px"
}
