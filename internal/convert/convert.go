// Package convert implements conversions between every pair of color
// formats. RGB is the hub: most paths go through it (HSL -> RGB -> CMYK,
// HSL -> RGB -> XYZ -> LAB), with direct shortcuts where one exists
// (HSL <-> HSV, XYZ <-> LAB, HSL -> SL, HSV -> SV).
//
// Every conversion is total. Each step validates its input, computes, and
// sanitizes its output; on any failure it reports to the configured
// diag.Reporter and returns the neutral default of the target format (see
// color.Zero).
package convert

import (
	"errors"
	"fmt"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/diag"
)

var (
	// ErrUnsupported is reported when no path exists between two formats,
	// e.g. from a hue-less SL value to RGB.
	ErrUnsupported = errors.New("unsupported conversion")
	// ErrDegenerate is reported when a computation yields NaN or Inf.
	ErrDegenerate = errors.New("degenerate arithmetic")
)

// Converter converts colors, reporting failures to Reporter. The zero value
// discards reports.
type Converter struct {
	Reporter diag.Reporter
}

// New returns a Converter reporting to r.
func New(r diag.Reporter) Converter {
	return Converter{Reporter: r}
}

// Convert converts c to the target format, discarding diagnostics.
func Convert(c color.Color, target color.Format) color.Color {
	return Converter{}.Convert(c, target)
}

// Convert converts c to the target format.
func (cv Converter) Convert(c color.Color, target color.Format) color.Color {
	if err := color.Check(c); err != nil {
		cv.fail(c, target, err)
		return color.Zero(target)
	}
	if c.Format() == target {
		return color.Sanitize(c)
	}

	switch src := c.(type) {
	case color.HSL:
		switch target {
		case color.FormatHSV:
			return cv.HSLToHSV(src)
		case color.FormatSL:
			return cv.HSLToSL(src)
		case color.FormatSV:
			return cv.HSVToSV(cv.HSLToHSV(src))
		}
	case color.HSV:
		switch target {
		case color.FormatHSL:
			return cv.HSVToHSL(src)
		case color.FormatSL:
			return cv.HSLToSL(cv.HSVToHSL(src))
		case color.FormatSV:
			return cv.HSVToSV(src)
		}
	case color.XYZ:
		if target == color.FormatLAB {
			return cv.XYZToLAB(src)
		}
	case color.LAB:
		if target == color.FormatXYZ {
			return cv.LABToXYZ(src)
		}
	case color.SL, color.SV:
		cv.fail(c, target, fmt.Errorf("%w: %s has no hue", ErrUnsupported, c.Format()))
		return color.Zero(target)
	}

	rgb, ok := cv.toRGB(c)
	if !ok {
		return color.Zero(target)
	}
	return cv.fromRGB(rgb, target)
}

// ToRGB converts any hue-bearing color to RGB.
func (cv Converter) ToRGB(c color.Color) color.RGB {
	return cv.Convert(c, color.FormatRGB).(color.RGB)
}

// ToHSL converts any hue-bearing color to HSL.
func (cv Converter) ToHSL(c color.Color) color.HSL {
	return cv.Convert(c, color.FormatHSL).(color.HSL)
}

func (cv Converter) toRGB(c color.Color) (color.RGB, bool) {
	switch c := c.(type) {
	case color.RGB:
		return color.Sanitize(c).(color.RGB), true
	case color.CMYK:
		return cv.CMYKToRGB(c), true
	case color.Hex:
		return cv.HexToRGB(c), true
	case color.HSL:
		return cv.HSLToRGB(c), true
	case color.HSV:
		return cv.HSVToRGB(c), true
	case color.XYZ:
		return cv.XYZToRGB(c), true
	case color.LAB:
		return cv.XYZToRGB(cv.LABToXYZ(c)), true
	default:
		cv.fail(c, color.FormatRGB, fmt.Errorf("%w: no path from %T", ErrUnsupported, c))
		return color.RGB{}, false
	}
}

func (cv Converter) fromRGB(rgb color.RGB, target color.Format) color.Color {
	switch target {
	case color.FormatRGB:
		return rgb
	case color.FormatCMYK:
		return cv.RGBToCMYK(rgb)
	case color.FormatHex:
		return cv.RGBToHex(rgb)
	case color.FormatHSL:
		return cv.RGBToHSL(rgb)
	case color.FormatHSV:
		return cv.RGBToHSV(rgb)
	case color.FormatXYZ:
		return cv.RGBToXYZ(rgb)
	case color.FormatLAB:
		return cv.XYZToLAB(cv.RGBToXYZ(rgb))
	case color.FormatSL:
		return cv.HSLToSL(cv.RGBToHSL(rgb))
	case color.FormatSV:
		return cv.HSVToSV(cv.RGBToHSV(rgb))
	default:
		cv.fail(rgb, target, fmt.Errorf("%w: unknown target", ErrUnsupported))
		return color.Zero(target)
	}
}

func (cv Converter) fail(c color.Color, target color.Format, err error) {
	var from any = "<nil>"
	if c != nil {
		from = c.Format()
	}
	diag.OrDiscard(cv.Reporter).Report("color conversion failed",
		"from", from, "to", target, "input", fmt.Sprintf("%+v", c), "err", err)
}

// step runs one pairwise conversion: validate in, compute, reject
// non-finite output, sanitize. Any failure yields Out's neutral default.
func step[In, Out color.Color](cv Converter, in In, compute func(In) Out) Out {
	var zero Out
	target := zero.Format()
	if err := color.Check(in); err != nil {
		cv.fail(in, target, err)
		return color.Zero(target).(Out)
	}
	out := compute(in)
	if !color.Finite(out) {
		cv.fail(in, target, fmt.Errorf("%w: %+v", ErrDegenerate, out))
		return color.Zero(target).(Out)
	}
	return color.Sanitize(out).(Out)
}
