package graphics

import "strings"

// ShadowLayer is a single layer of a CSS box-shadow.
//
// Offset and Blur are in pixels. Inset layers render inside the shape
// (the "pressed-in" look); outer layers render behind it.
type ShadowLayer struct {
	Offset Offset
	Blur   float64
	Color  Color
	Inset  bool
}

// CSS returns the layer in box-shadow syntax, e.g.
// "16px 16px 32px #d1d1d1" or "inset 12px 12px 24px #151515".
func (l ShadowLayer) CSS() string {
	var b strings.Builder
	if l.Inset {
		b.WriteString("inset ")
	}
	b.WriteString(FormatPx(l.Offset.X))
	b.WriteByte(' ')
	b.WriteString(FormatPx(l.Offset.Y))
	b.WriteByte(' ')
	b.WriteString(FormatPx(l.Blur))
	b.WriteByte(' ')
	b.WriteString(l.Color.CSS())
	return b.String()
}

// ComposeShadows joins layers into a box-shadow value. An empty slice
// yields "none".
func ComposeShadows(layers []ShadowLayer) string {
	if len(layers) == 0 {
		return "none"
	}
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.CSS()
	}
	return strings.Join(parts, ", ")
}

// NeumorphicLayers builds the standard three-layer neumorphic shadow: a
// dark shadow toward the bottom-right, a light highlight toward the
// top-left simulating ambient light from the opposite corner, and a soft
// centered glow.
//
// offset and blur size the directional layers, glowBlur the centered one.
// Set inset to produce the pressed-in variant of the same family.
func NeumorphicLayers(offset, blur, glowBlur float64, dark, light, glow Color, inset bool) []ShadowLayer {
	return []ShadowLayer{
		{Offset: Offset{X: offset, Y: offset}, Blur: blur, Color: dark, Inset: inset},
		{Offset: Offset{X: -offset, Y: -offset}, Blur: blur, Color: light, Inset: inset},
		{Offset: Offset{}, Blur: glowBlur, Color: glow, Inset: inset},
	}
}
