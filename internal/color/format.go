package color

import (
	"fmt"
	"strings"
)

// Format tags a Color with its representation.
type Format int

const (
	FormatCMYK Format = iota
	FormatHex
	FormatHSL
	FormatHSV
	FormatLAB
	FormatRGB
	FormatSL
	FormatSV
	FormatXYZ
)

// Formats lists every format, in declaration order.
var Formats = []Format{
	FormatCMYK, FormatHex, FormatHSL, FormatHSV, FormatLAB,
	FormatRGB, FormatSL, FormatSV, FormatXYZ,
}

var formatNames = [...]string{
	FormatCMYK: "cmyk",
	FormatHex:  "hex",
	FormatHSL:  "hsl",
	FormatHSV:  "hsv",
	FormatLAB:  "lab",
	FormatRGB:  "rgb",
	FormatSL:   "sl",
	FormatSV:   "sv",
	FormatXYZ:  "xyz",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// HasHue reports whether colors of this format can be converted to and from
// the other formats without external input.
func (f Format) HasHue() bool {
	return f != FormatSL && f != FormatSV
}

// ParseFormat maps a (case-insensitive) format name to its Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown color format %q", s)
}

// MarshalText encodes f as its name, so formats work as JSON map keys.
func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(formatNames) {
		return nil, fmt.Errorf("unknown color format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText decodes a format name.
func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
