// Package style defines the descriptor produced by every surface
// computation: a transform, a composed box-shadow, an opacity, and the
// transition parameters a renderer needs to animate between states.
//
// Descriptors are plain values recomputed from the current inputs on
// every evaluation; they carry no identity and are never mutated after
// construction.
package style

import "github.com/neu-ui/neu/pkg/graphics"

// Style describes the visual treatment of a surface at one instant.
type Style struct {
	// Transform is a CSS transform, e.g. "scale(0.98)".
	Transform string
	// BoxShadow is the composed multi-layer shadow value.
	BoxShadow string
	// Opacity ranges from 0 (hidden) to 1 (fully shown).
	Opacity float64
	// Transition describes how a renderer animates to this style.
	Transition Transition
}

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Declarations returns the style as ordered CSS declarations.
func (s Style) Declarations() []Declaration {
	return []Declaration{
		{Property: "transform", Value: s.Transform},
		{Property: "box-shadow", Value: s.BoxShadow},
		{Property: "opacity", Value: graphics.FormatNumber(s.Opacity)},
		{Property: "transition", Value: s.Transition.CSS()},
	}
}

// Scale formats a uniform scale transform, trimming trailing zeros so a
// factor of 1.0 renders as "scale(1)".
func Scale(factor float64) string {
	return "scale(" + graphics.FormatNumber(factor) + ")"
}
