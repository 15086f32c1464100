// Package color provides the color value model shared by the conversion
// engine and the palette generator:
//   - A closed set of nine color formats (CMYK, Hex, HSL, HSV, LAB, RGB, SL,
//     SV, XYZ), each a plain value type implementing Color.
//   - Per-format range validation.
//   - Per-channel sanitizers that clamp and round.
//
// SL and SV are hue-less views of an HSL/HSV value. They exist for display and
// cannot be converted back to a hue-bearing format on their own.
package color

// Color is implemented by exactly the nine format types in this package. Use
// a type switch to dispatch on the concrete format.
type Color interface {
	// Format returns the format tag of the color.
	Format() Format
	// Opacity returns the numeric alpha channel in [0,1].
	Opacity() float64

	sealed()
}

// CMYK channels are percentages in [0,100].
type CMYK struct {
	Cyan    float64 `json:"cyan"`
	Magenta float64 `json:"magenta"`
	Yellow  float64 `json:"yellow"`
	Key     float64 `json:"key"`
	Alpha   float64 `json:"alpha"`
}

// Hex holds a "#RRGGBB" string, the alpha channel as two hex digits, and the
// alpha channel as a number derived from those digits.
type Hex struct {
	Hex          string  `json:"hex"`
	Alpha        string  `json:"alpha"`
	NumericAlpha float64 `json:"numericAlpha"`
}

// HSL has hue in degrees [0,360) and saturation/lightness in [0,100].
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

// HSV has hue in degrees [0,360) and saturation/value in [0,100].
type HSV struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
	Alpha      float64 `json:"alpha"`
}

// LAB is CIE L*a*b* relative to the D65 white point. L is in [0,100], A and B
// in [-125,125].
type LAB struct {
	L     float64 `json:"l"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Alpha float64 `json:"alpha"`
}

// RGB channels are in [0,255].
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// SL is the saturation and lightness of an HSL value, without its hue.
type SL struct {
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Alpha      float64 `json:"alpha"`
}

// SV is the saturation and value of an HSV value, without its hue.
type SV struct {
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
	Alpha      float64 `json:"alpha"`
}

// XYZ is CIE 1931 XYZ scaled to the D65 reference white (95.047, 100,
// 108.883).
type XYZ struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Alpha float64 `json:"alpha"`
}

func (CMYK) Format() Format { return FormatCMYK }
func (Hex) Format() Format  { return FormatHex }
func (HSL) Format() Format  { return FormatHSL }
func (HSV) Format() Format  { return FormatHSV }
func (LAB) Format() Format  { return FormatLAB }
func (RGB) Format() Format  { return FormatRGB }
func (SL) Format() Format   { return FormatSL }
func (SV) Format() Format   { return FormatSV }
func (XYZ) Format() Format  { return FormatXYZ }

func (c CMYK) Opacity() float64 { return c.Alpha }
func (c Hex) Opacity() float64  { return c.NumericAlpha }
func (c HSL) Opacity() float64  { return c.Alpha }
func (c HSV) Opacity() float64  { return c.Alpha }
func (c LAB) Opacity() float64  { return c.Alpha }
func (c RGB) Opacity() float64  { return c.Alpha }
func (c SL) Opacity() float64   { return c.Alpha }
func (c SV) Opacity() float64   { return c.Alpha }
func (c XYZ) Opacity() float64  { return c.Alpha }

func (CMYK) sealed() {}
func (Hex) sealed()  {}
func (HSL) sealed()  {}
func (HSV) sealed()  {}
func (LAB) sealed()  {}
func (RGB) sealed()  {}
func (SL) sealed()   {}
func (SV) sealed()   {}
func (XYZ) sealed()  {}

// Zero returns the neutral default of the given format: opaque black, or for
// the hue-less formats a zero saturation/lightness (value). Unknown formats
// yield opaque black RGB.
func Zero(f Format) Color {
	switch f {
	case FormatCMYK:
		return CMYK{Key: 100, Alpha: 1}
	case FormatHex:
		return Hex{Hex: "#000000", Alpha: "FF", NumericAlpha: 1}
	case FormatHSL:
		return HSL{Alpha: 1}
	case FormatHSV:
		return HSV{Alpha: 1}
	case FormatLAB:
		return LAB{Alpha: 1}
	case FormatSL:
		return SL{Alpha: 1}
	case FormatSV:
		return SV{Alpha: 1}
	case FormatXYZ:
		return XYZ{Alpha: 1}
	default:
		return RGB{Alpha: 1}
	}
}
