package convert

import (
	"math"

	"github.com/irfansharif/swatch/internal/color"
)

// sRGB <-> XYZ matrices for the D65 white point.
var (
	rgbToXYZ = [3][3]float64{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	xyzToRGB = [3][3]float64{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}
)

// CIE breakpoints.
const (
	epsilon = 0.008856
	kappa   = 7.787
	offset  = 16.0 / 116
)

func mul(m [3][3]float64, a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// expandGamma undoes the sRGB transfer curve.
func expandGamma(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

// compressGamma applies the sRGB transfer curve.
func compressGamma(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

// RGBToXYZ linearizes the channels and applies the sRGB matrix, scaled by
// 100.
func (cv Converter) RGBToXYZ(c color.RGB) color.XYZ {
	return step(cv, c, func(c color.RGB) color.XYZ {
		x, y, z := mul(rgbToXYZ,
			expandGamma(c.Red/color.MaxRGB),
			expandGamma(c.Green/color.MaxRGB),
			expandGamma(c.Blue/color.MaxRGB))
		return color.XYZ{X: x * 100, Y: y * 100, Z: z * 100, Alpha: c.Alpha}
	})
}

// XYZToRGB applies the inverse matrix and the sRGB curve. Out-of-gamut
// channels are clamped to [0,255].
func (cv Converter) XYZToRGB(c color.XYZ) color.RGB {
	return step(cv, c, func(c color.XYZ) color.RGB {
		r, g, b := mul(xyzToRGB, c.X/100, c.Y/100, c.Z/100)
		return color.RGB{
			Red:   compressGamma(r) * color.MaxRGB,
			Green: compressGamma(g) * color.MaxRGB,
			Blue:  compressGamma(b) * color.MaxRGB,
			Alpha: c.Alpha,
		}
	})
}

func labForward(t float64) float64 {
	if t > epsilon {
		return math.Cbrt(t)
	}
	return kappa*t + offset
}

func labInverse(f float64) float64 {
	if t := f * f * f; t > epsilon {
		return t
	}
	return (f - offset) / kappa
}

// XYZToLAB normalizes by the D65 white and applies the CIE piecewise cube
// root.
func (cv Converter) XYZToLAB(c color.XYZ) color.LAB {
	return step(cv, c, func(c color.XYZ) color.LAB {
		fx := labForward(c.X / color.RefX)
		fy := labForward(c.Y / color.RefY)
		fz := labForward(c.Z / color.RefZ)
		return color.LAB{
			L:     116*fy - 16,
			A:     500 * (fx - fy),
			B:     200 * (fy - fz),
			Alpha: c.Alpha,
		}
	})
}

// LABToXYZ reverses XYZToLAB.
func (cv Converter) LABToXYZ(c color.LAB) color.XYZ {
	return step(cv, c, func(c color.LAB) color.XYZ {
		fy := (c.L + 16) / 116
		fx := c.A/500 + fy
		fz := fy - c.B/200
		return color.XYZ{
			X:     labInverse(fx) * color.RefX,
			Y:     labInverse(fy) * color.RefY,
			Z:     labInverse(fz) * color.RefZ,
			Alpha: c.Alpha,
		}
	})
}
