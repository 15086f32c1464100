package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/irfansharif/swatch/internal/color"
)

// RGBToHSL decomposes the max/min channels into hue, saturation and lightness.
func (cv Converter) RGBToHSL(c color.RGB) color.HSL {
	return step(cv, c, func(c color.RGB) color.HSL {
		r, g, b := c.Red/color.MaxRGB, c.Green/color.MaxRGB, c.Blue/color.MaxRGB
		hi, lo := math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
		l := (hi + lo) / 2

		var h, s float64
		if d := hi - lo; d != 0 {
			if l > 0.5 {
				s = d / (2 - hi - lo)
			} else {
				s = d / (hi + lo)
			}
			h = sectorHue(r, g, b, hi, d)
		}
		return color.HSL{Hue: h, Saturation: s * 100, Lightness: l * 100, Alpha: c.Alpha}
	})
}

// RGBToHSV decomposes the max/min channels into hue, saturation and value.
func (cv Converter) RGBToHSV(c color.RGB) color.HSV {
	return step(cv, c, func(c color.RGB) color.HSV {
		r, g, b := c.Red/color.MaxRGB, c.Green/color.MaxRGB, c.Blue/color.MaxRGB
		hi, lo := math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))
		d := hi - lo

		var h, s float64
		if hi != 0 {
			s = d / hi
		}
		if d != 0 {
			h = sectorHue(r, g, b, hi, d)
		}
		return color.HSV{Hue: h, Saturation: s * 100, Value: hi * 100, Alpha: c.Alpha}
	})
}

// sectorHue returns the hue in degrees, computed in the 60° sector of
// whichever channel is the maximum. d must be non-zero.
func sectorHue(r, g, b, hi, d float64) float64 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60
}

// HSLToRGB converts through the usual p/q construction.
func (cv Converter) HSLToRGB(c color.HSL) color.RGB {
	return step(cv, c, func(c color.HSL) color.RGB {
		h, s, l := c.Hue/color.MaxHue, c.Saturation/100, c.Lightness/100
		if s == 0 {
			return color.RGB{Red: l * color.MaxRGB, Green: l * color.MaxRGB, Blue: l * color.MaxRGB, Alpha: c.Alpha}
		}
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		return color.RGB{
			Red:   hueToChannel(p, q, h+1.0/3) * color.MaxRGB,
			Green: hueToChannel(p, q, h) * color.MaxRGB,
			Blue:  hueToChannel(p, q, h-1.0/3) * color.MaxRGB,
			Alpha: c.Alpha,
		}
	})
}

// hueToChannel maps a hue fraction t (wrapped into [0,1]) onto a channel
// intensity between p and q.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HSVToRGB converts by sector, i = floor(h/60).
func (cv Converter) HSVToRGB(c color.HSV) color.RGB {
	return step(cv, c, func(c color.HSV) color.RGB {
		s, v := c.Saturation/100, c.Value/100
		h := c.Hue / 60
		i := math.Floor(h)
		f := h - i
		p := v * (1 - s)
		q := v * (1 - f*s)
		t := v * (1 - (1-f)*s)

		var r, g, b float64
		switch int(i) % 6 {
		case 0:
			r, g, b = v, t, p
		case 1:
			r, g, b = q, v, p
		case 2:
			r, g, b = p, v, t
		case 3:
			r, g, b = p, q, v
		case 4:
			r, g, b = t, p, v
		default:
			r, g, b = v, p, q
		}
		return color.RGB{Red: r * color.MaxRGB, Green: g * color.MaxRGB, Blue: b * color.MaxRGB, Alpha: c.Alpha}
	})
}

// HSLToHSV converts directly with V = L + S*min(L, 1-L) and
// S_v = 2*(1 - L/V).
func (cv Converter) HSLToHSV(c color.HSL) color.HSV {
	return step(cv, c, func(c color.HSL) color.HSV {
		s, l := c.Saturation/100, c.Lightness/100
		v := l + s*math.Min(l, 1-l)
		var sv float64
		if v != 0 {
			sv = 2 * (1 - l/v)
		}
		return color.HSV{Hue: c.Hue, Saturation: sv * 100, Value: v * 100, Alpha: c.Alpha}
	})
}

// HSVToHSL converts directly with L = V*(1 - S/2) and
// S_l = (V - L) / min(L, 1-L).
func (cv Converter) HSVToHSL(c color.HSV) color.HSL {
	return step(cv, c, func(c color.HSV) color.HSL {
		s, v := c.Saturation/100, c.Value/100
		l := v * (1 - s/2)
		var sl float64
		if m := math.Min(l, 1-l); m > 0 {
			sl = (v - l) / m
		}
		return color.HSL{Hue: c.Hue, Saturation: sl * 100, Lightness: l * 100, Alpha: c.Alpha}
	})
}

// HSLToSL drops the hue.
func (cv Converter) HSLToSL(c color.HSL) color.SL {
	return step(cv, c, func(c color.HSL) color.SL {
		return color.SL{Saturation: c.Saturation, Lightness: c.Lightness, Alpha: c.Alpha}
	})
}

// HSVToSV drops the hue.
func (cv Converter) HSVToSV(c color.HSV) color.SV {
	return step(cv, c, func(c color.HSV) color.SV {
		return color.SV{Saturation: c.Saturation, Value: c.Value, Alpha: c.Alpha}
	})
}

// RGBToCMYK computes key = 1 - max(r', g', b') and each ink as
// (1 - channel - key) / (1 - key). Pure black has no ink besides key.
func (cv Converter) RGBToCMYK(c color.RGB) color.CMYK {
	return step(cv, c, func(c color.RGB) color.CMYK {
		r, g, b := c.Red/color.MaxRGB, c.Green/color.MaxRGB, c.Blue/color.MaxRGB
		k := 1 - math.Max(r, math.Max(g, b))
		ink := func(ch float64) float64 {
			if 1-k == 0 {
				return 0
			}
			return (1 - ch - k) / (1 - k)
		}
		return color.CMYK{
			Cyan:    ink(r) * 100,
			Magenta: ink(g) * 100,
			Yellow:  ink(b) * 100,
			Key:     k * 100,
			Alpha:   c.Alpha,
		}
	})
}

// CMYKToRGB computes channel = 255 * (1 - ink) * (1 - key).
func (cv Converter) CMYKToRGB(c color.CMYK) color.RGB {
	return step(cv, c, func(c color.CMYK) color.RGB {
		k := 1 - c.Key/100
		return color.RGB{
			Red:   color.MaxRGB * (1 - c.Cyan/100) * k,
			Green: color.MaxRGB * (1 - c.Magenta/100) * k,
			Blue:  color.MaxRGB * (1 - c.Yellow/100) * k,
			Alpha: c.Alpha,
		}
	})
}

// RGBToHex renders each channel as two uppercase hex digits and the alpha as
// round(alpha*255) in hex.
func (cv Converter) RGBToHex(c color.RGB) color.Hex {
	return step(cv, c, func(c color.RGB) color.Hex {
		return color.Hex{
			Hex: fmt.Sprintf("#%02X%02X%02X",
				int(color.SanitizeRGB(c.Red)),
				int(color.SanitizeRGB(c.Green)),
				int(color.SanitizeRGB(c.Blue))),
			Alpha:        color.HexAlpha(c.Alpha),
			NumericAlpha: c.Alpha,
		}
	})
}

// HexToRGB parses the hex digits back into channels.
func (cv Converter) HexToRGB(c color.Hex) color.RGB {
	return step(cv, c, func(c color.Hex) color.RGB {
		v, err := strconv.ParseUint(strings.TrimPrefix(c.Hex, "#"), 16, 32)
		if err != nil {
			// Unreachable for a validated Hex; surfaces as ErrDegenerate.
			return color.RGB{Red: math.NaN()}
		}
		return color.RGB{
			Red:   float64(v >> 16 & 0xFF),
			Green: float64(v >> 8 & 0xFF),
			Blue:  float64(v & 0xFF),
			Alpha: c.NumericAlpha,
		}
	})
}

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
// Without alpha digits the alpha is FF.
func ParseHex(text string) (color.Hex, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(text), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return color.Hex{}, fmt.Errorf("%w: hex %q must have 6 or 8 digits", color.ErrInvalid, text)
	}
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return color.Hex{}, fmt.Errorf("%w: hex %q", color.ErrInvalid, text)
	}
	alpha := "FF"
	if len(digits) == 8 {
		alpha = digits[6:]
	}
	numeric, err := color.ParseHexAlpha(alpha)
	if err != nil {
		return color.Hex{}, err
	}
	return color.Hex{
		Hex:          "#" + strings.ToUpper(digits[:6]),
		Alpha:        strings.ToUpper(alpha),
		NumericAlpha: numeric,
	}, nil
}
