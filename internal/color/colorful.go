package color

import "github.com/lucasb-eyer/go-colorful"

// Colorful returns c as a go-colorful color with channels in [0,1]. Alpha is
// dropped.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.Red / MaxRGB, G: c.Green / MaxRGB, B: c.Blue / MaxRGB}
}
