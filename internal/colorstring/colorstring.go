// Package colorstring renders colors as text and parses them back. Every
// format has three renderings:
//
//   - Display, e.g. "hsl(210, 50%, 40%, 1)" or "#336699", consumed by the
//     render and export layers. Saturation, lightness, value and the CMYK
//     inks carry a '%' suffix.
//   - CSS, the presentation string stored on palette items. It uses the same
//     comma-separated function forms as Display: "cmyk(C%, M%, Y%, K%, A)",
//     "hsl(H, S%, L%, A)", "rgb(R, G, B, A)", "lab(L, A, B, A)",
//     "xyz(X, Y, Z, A)" and "#RRGGBB[AA]".
//   - CSS4, CSS Color 4 syntax where CSS defines a function for the format
//     ("hsl(210 50% 40% / 1)") and the display form otherwise. Only the CLI
//     prints it.
//
// Parse accepts any of them.
package colorstring

import (
	"strconv"
	"strings"

	"github.com/irfansharif/swatch/internal/color"
)

// Value is the string-channel counterpart of a color.Color.
type Value struct {
	Format   color.Format `json:"format"`
	Channels []string     `json:"channels"`
	Alpha    string       `json:"alpha"`
}

// channel describes how a numeric channel is rendered.
type channel struct {
	name    string
	percent bool
}

var layouts = map[color.Format][]channel{
	color.FormatCMYK: {{"cyan", true}, {"magenta", true}, {"yellow", true}, {"key", true}},
	color.FormatHSL:  {{"hue", false}, {"saturation", true}, {"lightness", true}},
	color.FormatHSV:  {{"hue", false}, {"saturation", true}, {"value", true}},
	color.FormatLAB:  {{"l", false}, {"a", false}, {"b", false}},
	color.FormatRGB:  {{"red", false}, {"green", false}, {"blue", false}},
	color.FormatSL:   {{"saturation", true}, {"lightness", true}},
	color.FormatSV:   {{"saturation", true}, {"value", true}},
	color.FormatXYZ:  {{"x", false}, {"y", false}, {"z", false}},
}

func number(v float64) string {
	return strconv.FormatFloat(v+0, 'f', -1, 64)
}

// From converts c into its string-channel form. Channels are sanitized
// first.
func From(c color.Color) Value {
	if c == nil {
		c = color.Zero(color.FormatRGB)
	}
	c = color.Sanitize(c)
	if h, ok := c.(color.Hex); ok {
		return Value{Format: color.FormatHex, Channels: []string{h.Hex}, Alpha: h.Alpha}
	}

	nums := color.Channels(c)
	layout := layouts[c.Format()]
	v := Value{Format: c.Format(), Channels: make([]string, len(layout))}
	for i, ch := range layout {
		v.Channels[i] = number(nums[i])
		if ch.percent {
			v.Channels[i] += "%"
		}
	}
	v.Alpha = number(c.Opacity())
	return v
}

// String renders the display form of v.
func (v Value) String() string {
	if v.Format == color.FormatHex {
		if len(v.Channels) == 0 {
			return ""
		}
		if strings.EqualFold(v.Alpha, "FF") || v.Alpha == "" {
			return v.Channels[0]
		}
		return v.Channels[0] + v.Alpha
	}
	parts := append(append([]string(nil), v.Channels...), v.Alpha)
	return v.Format.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Color parses v back into a color.Color.
func (v Value) Color() (color.Color, error) {
	return Parse(v.Format, v.String())
}

// Display renders c in its display form, e.g. "cmyk(0%, 0%, 0%, 100%, 1)".
func Display(c color.Color) string {
	return From(c).String()
}

// CSS renders the presentation string of c. Hex colors are "#RRGGBB" with
// "AA" appended unless fully opaque; every other format is
// "<format>(<channels>, <alpha>)".
func CSS(c color.Color) string {
	v := From(c)
	if v.Format == color.FormatHex {
		return v.String()
	}
	return v.Format.String() + "(" + strings.Join(v.Channels, ", ") + ", " + v.Alpha + ")"
}

// CSS4 renders c in CSS Color 4 syntax where CSS has a matching function.
func CSS4(c color.Color) string {
	if c == nil {
		c = color.Zero(color.FormatRGB)
	}
	c = color.Sanitize(c)
	v := From(c)
	alpha := " / " + v.Alpha
	switch c := c.(type) {
	case color.RGB:
		return "rgb(" + strings.Join(v.Channels, " ") + alpha + ")"
	case color.HSL:
		return "hsl(" + strings.Join(v.Channels, " ") + alpha + ")"
	case color.CMYK:
		return "device-cmyk(" + strings.Join(v.Channels, " ") + alpha + ")"
	case color.LAB:
		return "lab(" + v.Channels[0] + "% " + v.Channels[1] + " " + v.Channels[2] + alpha + ")"
	case color.XYZ:
		return "color(xyz-d65 " +
			number(color.RoundTo(c.X/100, color.CIEPlaces+2)) + " " +
			number(color.RoundTo(c.Y/100, color.CIEPlaces+2)) + " " +
			number(color.RoundTo(c.Z/100, color.CIEPlaces+2)) + alpha + ")"
	default:
		return v.String()
	}
}
