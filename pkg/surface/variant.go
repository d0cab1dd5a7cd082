package surface

import "fmt"

// Variant selects the button's intensity profile.
type Variant int

const (
	// VariantDefault renders shadows at full strength.
	VariantDefault Variant = iota
	// VariantSubtle halves the shadow magnitudes and softens how
	// strongly scroll progress fades them.
	VariantSubtle
)

// String returns a human-readable representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantDefault:
		return "default"
	case VariantSubtle:
		return "subtle"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts "default" or "subtle" into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "default":
		return VariantDefault, nil
	case "subtle":
		return VariantSubtle, nil
	default:
		return VariantDefault, fmt.Errorf("unknown variant %q: want default or subtle", s)
	}
}

// subtleFactor scales all shadow magnitudes.
func (v Variant) subtleFactor() float64 {
	if v == VariantSubtle {
		return 0.5
	}
	return 1
}

// baseIntensity is the shadow intensity at progress 0.
func (v Variant) baseIntensity() float64 {
	if v == VariantSubtle {
		return 0.5
	}
	return 1
}

// scrollCoefficient is how strongly scroll progress fades the shadow.
func (v Variant) scrollCoefficient() float64 {
	if v == VariantSubtle {
		return 0.6
	}
	return 1.2
}

// shadowIntensity applies the shared fade formula: monotonically
// non-increasing in progress, floored at zero.
func shadowIntensity(base, coefficient, progress float64) float64 {
	intensity := base - coefficient*progress
	if intensity < 0 {
		return 0
	}
	return intensity
}
