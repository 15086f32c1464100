package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid color")

var (
	hexPattern      = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	hexAlphaPattern = regexp.MustCompile(`^[0-9A-Fa-f]{2}$`)
)

// Validate reports whether every channel of c is finite and inside the range
// of its format.
func Validate(c Color) bool {
	return Check(c) == nil
}

// Check is like Validate but names the first offending channel.
func Check(c Color) error {
	switch c := c.(type) {
	case CMYK:
		return checkAll(
			percentage("cyan", c.Cyan),
			percentage("magenta", c.Magenta),
			percentage("yellow", c.Yellow),
			percentage("key", c.Key),
			alpha(c.Alpha),
		)
	case Hex:
		if !hexPattern.MatchString(c.Hex) {
			return fmt.Errorf("%w: hex %q", ErrInvalid, c.Hex)
		}
		if !hexAlphaPattern.MatchString(c.Alpha) {
			return fmt.Errorf("%w: hex alpha %q", ErrInvalid, c.Alpha)
		}
		if err := alpha(c.NumericAlpha); err != nil {
			return err
		}
		if !alphaAgrees(c) {
			return fmt.Errorf("%w: hex alpha %q disagrees with numeric alpha %v", ErrInvalid, c.Alpha, c.NumericAlpha)
		}
		return nil
	case HSL:
		return checkAll(
			hue(c.Hue),
			percentage("saturation", c.Saturation),
			percentage("lightness", c.Lightness),
			alpha(c.Alpha),
		)
	case HSV:
		return checkAll(
			hue(c.Hue),
			percentage("saturation", c.Saturation),
			percentage("value", c.Value),
			alpha(c.Alpha),
		)
	case LAB:
		return checkAll(
			within("l", c.L, 0, MaxPercentage),
			within("a", c.A, MinLAB, MaxLAB),
			within("b", c.B, MinLAB, MaxLAB),
			alpha(c.Alpha),
		)
	case RGB:
		return checkAll(
			within("red", c.Red, 0, MaxRGB),
			within("green", c.Green, 0, MaxRGB),
			within("blue", c.Blue, 0, MaxRGB),
			alpha(c.Alpha),
		)
	case SL:
		return checkAll(
			percentage("saturation", c.Saturation),
			percentage("lightness", c.Lightness),
			alpha(c.Alpha),
		)
	case SV:
		return checkAll(
			percentage("saturation", c.Saturation),
			percentage("value", c.Value),
			alpha(c.Alpha),
		)
	case XYZ:
		return checkAll(
			within("x", c.X, 0, RefX),
			within("y", c.Y, 0, RefY),
			within("z", c.Z, 0, RefZ),
			alpha(c.Alpha),
		)
	case nil:
		return fmt.Errorf("%w: nil color", ErrInvalid)
	default:
		return fmt.Errorf("%w: unknown color type %T", ErrInvalid, c)
	}
}

func checkAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func within(name string, v, lo, hi float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalid, name)
	}
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s %v outside [%v,%v]", ErrInvalid, name, v, lo, hi)
	}
	return nil
}

func percentage(name string, v float64) error {
	return within(name, v, 0, MaxPercentage)
}

func alpha(v float64) error {
	return within("alpha", v, 0, 1)
}

func hue(v float64) error {
	if err := within("hue", v, 0, MaxHue); err != nil {
		return err
	}
	if v == MaxHue {
		return fmt.Errorf("%w: hue must be below %v", ErrInvalid, MaxHue)
	}
	return nil
}

// Channels returns the numeric channels of c followed by its alpha. Hex
// contributes only its numeric alpha.
func Channels(c Color) []float64 {
	switch c := c.(type) {
	case CMYK:
		return []float64{c.Cyan, c.Magenta, c.Yellow, c.Key, c.Alpha}
	case Hex:
		return []float64{c.NumericAlpha}
	case HSL:
		return []float64{c.Hue, c.Saturation, c.Lightness, c.Alpha}
	case HSV:
		return []float64{c.Hue, c.Saturation, c.Value, c.Alpha}
	case LAB:
		return []float64{c.L, c.A, c.B, c.Alpha}
	case RGB:
		return []float64{c.Red, c.Green, c.Blue, c.Alpha}
	case SL:
		return []float64{c.Saturation, c.Lightness, c.Alpha}
	case SV:
		return []float64{c.Saturation, c.Value, c.Alpha}
	case XYZ:
		return []float64{c.X, c.Y, c.Z, c.Alpha}
	default:
		return nil
	}
}

// Finite reports whether no channel of c is NaN or infinite.
func Finite(c Color) bool {
	for _, v := range Channels(c) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// alphaAgrees reports whether the two alpha encodings of c are within one
// hex step of each other. c.Alpha must be a valid hex alpha.
func alphaAgrees(c Hex) bool {
	a, err := ParseHexAlpha(c.Alpha)
	return err == nil && math.Abs(a-c.NumericAlpha) <= 1/MaxRGB
}
