// Package filter implements the perceptual constraints applied to generated
// swatches. Every predicate validates its input first and treats an invalid
// color as not excluded.
package filter

import (
	"math"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/config"
)

// TooGray reports whether c's saturation is below the gray threshold.
func TooGray(c color.HSL, t config.Thresholds) bool {
	return color.Validate(c) && c.Saturation < t.Gray
}

// TooDark reports whether c's lightness is below the dark threshold.
func TooDark(c color.HSL, t config.Thresholds) bool {
	return color.Validate(c) && c.Lightness < t.Dark
}

// TooBright reports whether c's lightness is above the bright threshold.
func TooBright(c color.HSL, t config.Thresholds) bool {
	return color.Validate(c) && c.Lightness > t.Bright
}

// OutOfBounds is the OR of all three predicates.
func OutOfBounds(c color.HSL, t config.Thresholds) bool {
	return TooGray(c, t) || TooDark(c, t) || TooBright(c, t)
}

// Limits selects which predicates are active.
type Limits struct {
	Gray   bool
	Dark   bool
	Bright bool
}

// Any reports whether at least one predicate is active.
func (l Limits) Any() bool { return l.Gray || l.Dark || l.Bright }

// OutOfBounds is the OR of the active predicates.
func (l Limits) OutOfBounds(c color.HSL, t config.Thresholds) bool {
	return (l.Gray && TooGray(c, t)) ||
		(l.Dark && TooDark(c, t)) ||
		(l.Bright && TooBright(c, t))
}

// Clamp moves c's saturation and lightness just inside the band accepted by
// the active predicates. Hue and alpha are untouched.
func (l Limits) Clamp(c color.HSL, t config.Thresholds) color.HSL {
	if l.Gray && c.Saturation < t.Gray {
		c.Saturation = color.SanitizePercentage(math.Ceil(t.Gray))
	}
	if l.Dark && c.Lightness < t.Dark {
		c.Lightness = color.SanitizePercentage(math.Ceil(t.Dark))
	}
	if l.Bright && c.Lightness > t.Bright {
		c.Lightness = color.SanitizePercentage(math.Floor(t.Bright))
	}
	return c
}
