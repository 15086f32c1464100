package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Channel bounds.
const (
	MaxHue        = 360.0
	MaxPercentage = 100.0
	MaxRGB        = 255.0
	MinLAB        = -125.0
	MaxLAB        = 125.0

	// D65 reference white, scaled so that Y is 100.
	RefX = 95.047
	RefY = 100.0
	RefZ = 108.883

	// CIEPlaces is the number of decimals kept on XYZ and LAB channels.
	CIEPlaces = 4
)

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Round rounds to the nearest integer with halves going up (2.5 -> 3,
// -2.5 -> -2).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return Round(v*p) / p
}

// SanitizePercentage clamps v to [0,100] and rounds it.
func SanitizePercentage(v float64) float64 {
	return Round(clamp(v, 0, MaxPercentage))
}

// SanitizeRGB clamps v to [0,255] and rounds it.
func SanitizeRGB(v float64) float64 {
	return Round(clamp(v, 0, MaxRGB))
}

// SanitizeLAB clamps v to [-125,125] and rounds it.
func SanitizeLAB(v float64) float64 {
	return Round(clamp(v, MinLAB, MaxLAB))
}

// SanitizeRadial rounds v and wraps it into [0,360). Non-finite input maps to
// 0.
func SanitizeRadial(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	h := math.Mod(Round(v), MaxHue)
	if h < 0 {
		h += MaxHue
	}
	return h + 0 // normalize -0
}

// SanitizeAlpha clamps v to [0,1] and rounds it to two decimals.
func SanitizeAlpha(v float64) float64 {
	return RoundTo(clamp(v, 0, 1), 2)
}

// HexAlpha renders a numeric alpha as two uppercase hex digits.
func HexAlpha(alpha float64) string {
	return fmt.Sprintf("%02X", int(Round(clamp(alpha, 0, 1)*MaxRGB)))
}

// ParseHexAlpha converts two hex digits into a numeric alpha in [0,1].
func ParseHexAlpha(s string) (float64, error) {
	if !hexAlphaPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: hex alpha %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: hex alpha %q: %v", ErrInvalid, s, err)
	}
	return float64(v) / MaxRGB, nil
}

// Sanitize coerces every channel of c into its valid range. The result always
// satisfies Validate.
func Sanitize(c Color) Color {
	switch c := c.(type) {
	case CMYK:
		return CMYK{
			Cyan:    SanitizePercentage(c.Cyan),
			Magenta: SanitizePercentage(c.Magenta),
			Yellow:  SanitizePercentage(c.Yellow),
			Key:     SanitizePercentage(c.Key),
			Alpha:   SanitizeAlpha(c.Alpha),
		}
	case Hex:
		return sanitizeHex(c)
	case HSL:
		return HSL{
			Hue:        SanitizeRadial(c.Hue),
			Saturation: SanitizePercentage(c.Saturation),
			Lightness:  SanitizePercentage(c.Lightness),
			Alpha:      SanitizeAlpha(c.Alpha),
		}
	case HSV:
		return HSV{
			Hue:        SanitizeRadial(c.Hue),
			Saturation: SanitizePercentage(c.Saturation),
			Value:      SanitizePercentage(c.Value),
			Alpha:      SanitizeAlpha(c.Alpha),
		}
	case LAB:
		return LAB{
			L:     RoundTo(clamp(c.L, 0, MaxPercentage), CIEPlaces),
			A:     RoundTo(clamp(c.A, MinLAB, MaxLAB), CIEPlaces),
			B:     RoundTo(clamp(c.B, MinLAB, MaxLAB), CIEPlaces),
			Alpha: SanitizeAlpha(c.Alpha),
		}
	case RGB:
		return RGB{
			Red:   SanitizeRGB(c.Red),
			Green: SanitizeRGB(c.Green),
			Blue:  SanitizeRGB(c.Blue),
			Alpha: SanitizeAlpha(c.Alpha),
		}
	case SL:
		return SL{
			Saturation: SanitizePercentage(c.Saturation),
			Lightness:  SanitizePercentage(c.Lightness),
			Alpha:      SanitizeAlpha(c.Alpha),
		}
	case SV:
		return SV{
			Saturation: SanitizePercentage(c.Saturation),
			Value:      SanitizePercentage(c.Value),
			Alpha:      SanitizeAlpha(c.Alpha),
		}
	case XYZ:
		// Clamp after rounding so that e.g. 95.04705 cannot round past RefX.
		return XYZ{
			X:     clamp(RoundTo(clamp(c.X, 0, RefX), CIEPlaces), 0, RefX),
			Y:     clamp(RoundTo(clamp(c.Y, 0, RefY), CIEPlaces), 0, RefY),
			Z:     clamp(RoundTo(clamp(c.Z, 0, RefZ), CIEPlaces), 0, RefZ),
			Alpha: SanitizeAlpha(c.Alpha),
		}
	default:
		return Zero(FormatRGB)
	}
}

func sanitizeHex(c Hex) Hex {
	out := Hex{Hex: strings.ToUpper(c.Hex), Alpha: strings.ToUpper(c.Alpha)}
	if !hexPattern.MatchString(out.Hex) {
		out.Hex = "#000000"
	}
	validAlpha := hexAlphaPattern.MatchString(out.Alpha)
	numeric := c.NumericAlpha
	if math.IsNaN(numeric) {
		numeric = 1
		if validAlpha {
			numeric, _ = ParseHexAlpha(out.Alpha)
		}
	}
	out.NumericAlpha = clamp(numeric, 0, 1)
	// The numeric alpha wins when the two encodings disagree.
	if !validAlpha || !alphaAgrees(out) {
		out.Alpha = HexAlpha(out.NumericAlpha)
	}
	return out
}
