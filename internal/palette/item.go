package palette

import (
	"github.com/google/uuid"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/colorstring"
)

// Item is one generated swatch, expanded into every format.
type Item struct {
	ID      uuid.UUID                          `json:"id"`
	Colors  Colors                             `json:"colors"`
	Strings map[color.Format]colorstring.Value `json:"colorStrings"`
	CSS     map[color.Format]string            `json:"cssStrings"`
}

// Colors holds a swatch in all nine formats.
type Colors struct {
	CMYK color.CMYK `json:"cmyk"`
	Hex  color.Hex  `json:"hex"`
	HSL  color.HSL  `json:"hsl"`
	HSV  color.HSV  `json:"hsv"`
	LAB  color.LAB  `json:"lab"`
	RGB  color.RGB  `json:"rgb"`
	SL   color.SL   `json:"sl"`
	SV   color.SV   `json:"sv"`
	XYZ  color.XYZ  `json:"xyz"`
}

// Get returns the swatch in format f.
func (c Colors) Get(f color.Format) color.Color {
	switch f {
	case color.FormatCMYK:
		return c.CMYK
	case color.FormatHex:
		return c.Hex
	case color.FormatHSL:
		return c.HSL
	case color.FormatHSV:
		return c.HSV
	case color.FormatLAB:
		return c.LAB
	case color.FormatSL:
		return c.SL
	case color.FormatSV:
		return c.SV
	case color.FormatXYZ:
		return c.XYZ
	default:
		return c.RGB
	}
}

// expand converts an accepted HSL swatch into an Item. RGB is derived from
// HSL, and XYZ, LAB, CMYK and Hex are chained off RGB.
func (s *session) expand(hsl color.HSL) Item {
	cv := s.conv
	rgb := cv.HSLToRGB(hsl)
	hsv := cv.HSLToHSV(hsl)
	xyz := cv.RGBToXYZ(rgb)
	colors := Colors{
		CMYK: cv.RGBToCMYK(rgb),
		Hex:  cv.RGBToHex(rgb),
		HSL:  hsl,
		HSV:  hsv,
		LAB:  cv.XYZToLAB(xyz),
		RGB:  rgb,
		SL:   cv.HSLToSL(hsl),
		SV:   cv.HSVToSV(hsv),
		XYZ:  xyz,
	}

	item := Item{
		ID:      s.newID(),
		Colors:  colors,
		Strings: make(map[color.Format]colorstring.Value, len(color.Formats)),
		CSS:     make(map[color.Format]string, len(color.Formats)),
	}
	for _, f := range color.Formats {
		c := colors.Get(f)
		item.Strings[f] = colorstring.From(c)
		item.CSS[f] = colorstring.CSS(c)
	}
	return item
}

// newID draws a version 4 UUID from the session's random source, so seeded
// palettes get stable IDs.
func (s *session) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		s.reporter.Report("generating item id", "err", err)
		return uuid.Nil
	}
	return id
}
