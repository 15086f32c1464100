package colorstring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/convert"
)

// functionFormats maps function names, including the CSS aliases, to
// formats.
var functionFormats = map[string]color.Format{
	"cmyk":        color.FormatCMYK,
	"device-cmyk": color.FormatCMYK,
	"hsl":         color.FormatHSL,
	"hsla":        color.FormatHSL,
	"hsv":         color.FormatHSV,
	"lab":         color.FormatLAB,
	"rgb":         color.FormatRGB,
	"rgba":        color.FormatRGB,
	"sl":          color.FormatSL,
	"sv":          color.FormatSV,
	"xyz":         color.FormatXYZ,
	"color":       color.FormatXYZ,
}

// Parse reads text as a color of the given format. Components may be
// separated by commas, spaces or a slash, and may carry a '%' suffix. The
// trailing alpha is optional and defaults to 1.
func Parse(f color.Format, text string) (color.Color, error) {
	text = strings.TrimSpace(text)
	if f == color.FormatHex {
		return convert.ParseHex(text)
	}
	layout, ok := layouts[f]
	if !ok {
		return nil, fmt.Errorf("%w: unknown format %v", color.ErrInvalid, f)
	}

	body, scale := text, 1.0
	if open := strings.IndexByte(text, '('); open >= 0 {
		if !strings.HasSuffix(text, ")") {
			return nil, fmt.Errorf("%w: unterminated %q", color.ErrInvalid, text)
		}
		name := strings.ToLower(strings.TrimSpace(text[:open]))
		if got, ok := functionFormats[name]; !ok || got != f {
			return nil, fmt.Errorf("%w: %q is not a %s color", color.ErrInvalid, text, f)
		}
		body = text[open+1 : len(text)-1]
		if name == "color" {
			space, rest, _ := strings.Cut(strings.TrimSpace(body), " ")
			if space != "xyz" && space != "xyz-d65" {
				return nil, fmt.Errorf("%w: unsupported color space %q", color.ErrInvalid, space)
			}
			body, scale = rest, 100
		}
	}

	tokens := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})
	if len(tokens) != len(layout) && len(tokens) != len(layout)+1 {
		return nil, fmt.Errorf("%w: %q has %d components, want %d or %d",
			color.ErrInvalid, text, len(tokens), len(layout), len(layout)+1)
	}

	nums := make([]float64, len(layout))
	for i, ch := range layout {
		v, _, err := component(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", color.ErrInvalid, ch.name, err)
		}
		if scale != 1 {
			v = color.RoundTo(v*scale, color.CIEPlaces)
		}
		nums[i] = v
	}
	alpha := 1.0
	if len(tokens) > len(layout) {
		v, percent, err := component(tokens[len(layout)])
		if err != nil {
			return nil, fmt.Errorf("%w: alpha: %v", color.ErrInvalid, err)
		}
		if percent {
			v /= 100
		}
		alpha = v
	}

	c := build(f, nums, alpha)
	if err := color.Check(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseAny detects the format from a leading '#' or the function name.
func ParseAny(text string) (color.Color, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "#") {
		return convert.ParseHex(text)
	}
	open := strings.IndexByte(text, '(')
	if open < 0 {
		if h, err := convert.ParseHex(text); err == nil {
			return h, nil
		}
		return nil, fmt.Errorf("%w: cannot detect the format of %q", color.ErrInvalid, text)
	}
	f, ok := functionFormats[strings.ToLower(strings.TrimSpace(text[:open]))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color function in %q", color.ErrInvalid, text)
	}
	return Parse(f, text)
}

func component(tok string) (v float64, percent bool, err error) {
	s, percent := strings.CutSuffix(tok, "%")
	v, err = strconv.ParseFloat(s, 64)
	return v, percent, err
}

func build(f color.Format, n []float64, alpha float64) color.Color {
	switch f {
	case color.FormatCMYK:
		return color.CMYK{Cyan: n[0], Magenta: n[1], Yellow: n[2], Key: n[3], Alpha: alpha}
	case color.FormatHSL:
		return color.HSL{Hue: n[0], Saturation: n[1], Lightness: n[2], Alpha: alpha}
	case color.FormatHSV:
		return color.HSV{Hue: n[0], Saturation: n[1], Value: n[2], Alpha: alpha}
	case color.FormatLAB:
		return color.LAB{L: n[0], A: n[1], B: n[2], Alpha: alpha}
	case color.FormatRGB:
		return color.RGB{Red: n[0], Green: n[1], Blue: n[2], Alpha: alpha}
	case color.FormatSL:
		return color.SL{Saturation: n[0], Lightness: n[1], Alpha: alpha}
	case color.FormatSV:
		return color.SV{Saturation: n[0], Value: n[1], Alpha: alpha}
	default:
		return color.XYZ{X: n[0], Y: n[1], Z: n[2], Alpha: alpha}
	}
}
