package convert

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/diag"
)

// webSafe returns the 216 web-safe colors.
func webSafe() []color.RGB {
	var out []color.RGB
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				out = append(out, color.RGB{Red: float64(r), Green: float64(g), Blue: float64(b), Alpha: 1})
			}
		}
	}
	return out
}

// cube returns the RGB cube sampled every stride steps per channel, always
// including 255.
func cube(stride int) []color.RGB {
	var levels []float64
	for v := 0; v < 255; v += stride {
		levels = append(levels, float64(v))
	}
	levels = append(levels, 255)
	out := make([]color.RGB, 0, len(levels)*len(levels)*len(levels))
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				out = append(out, color.RGB{Red: r, Green: g, Blue: b, Alpha: 1})
			}
		}
	}
	return out
}

// sweep is the set of colors the round trip tests cover: a strided cube plus
// every color in the dark corner, where the sRGB curve is steepest.
func sweep(t *testing.T) []color.RGB {
	stride := 3
	if testing.Short() {
		stride = 15
	}
	out := cube(stride)
	for r := 0; r < 48; r++ {
		for g := 0; g < 48; g++ {
			for b := 0; b < 48; b++ {
				out = append(out, color.RGB{Red: float64(r), Green: float64(g), Blue: float64(b), Alpha: 1})
			}
		}
	}
	t.Logf("sweeping %d colors", len(out))
	return out
}

// maxDrift is the largest per-channel difference between a and b.
func maxDrift(a, b color.RGB) float64 {
	return math.Max(math.Abs(a.Red-b.Red), math.Max(math.Abs(a.Green-b.Green), math.Abs(a.Blue-b.Blue)))
}

// reportedErr returns the first "err" context value recorded.
func reportedErr(entries []diag.Entry) error {
	for _, e := range entries {
		for i := 0; i+1 < len(e.Context); i += 2 {
			if e.Context[i] == "err" {
				if err, ok := e.Context[i+1].(error); ok {
					return err
				}
			}
		}
	}
	return nil
}

func TestConvert(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		in     color.Color
		target color.Format
		want   color.Color
	}{
		{
			name:   "rgb-to-hex",
			in:     color.RGB{Red: 255, Green: 0, Blue: 0, Alpha: 1},
			target: color.FormatHex,
			want:   color.Hex{Hex: "#FF0000", Alpha: "FF", NumericAlpha: 1},
		},
		{
			name:   "translucent-rgb-to-hex",
			in:     color.RGB{Red: 255, Green: 0, Blue: 0, Alpha: 0.5},
			target: color.FormatHex,
			want:   color.Hex{Hex: "#FF0000", Alpha: "80", NumericAlpha: 0.5},
		},
		{
			name:   "hsl-to-rgb",
			in:     color.HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1},
			target: color.FormatRGB,
			want:   color.RGB{Red: 255, Green: 0, Blue: 0, Alpha: 1},
		},
		{
			name:   "black-to-cmyk",
			in:     color.RGB{Alpha: 1},
			target: color.FormatCMYK,
			want:   color.CMYK{Key: 100, Alpha: 1},
		},
		{
			name:   "white-to-cmyk",
			in:     color.RGB{Red: 255, Green: 255, Blue: 255, Alpha: 1},
			target: color.FormatCMYK,
			want:   color.CMYK{Alpha: 1},
		},
		{
			name:   "azure-to-cmyk",
			in:     color.RGB{Red: 0, Green: 128, Blue: 255, Alpha: 1},
			target: color.FormatCMYK,
			want:   color.CMYK{Cyan: 100, Magenta: 50, Yellow: 0, Key: 0, Alpha: 1},
		},
		{
			name:   "cmyk-to-rgb",
			in:     color.CMYK{Cyan: 100, Magenta: 50, Alpha: 1},
			target: color.FormatRGB,
			want:   color.RGB{Red: 0, Green: 128, Blue: 255, Alpha: 1},
		},
		{
			name:   "hsl-to-hsv",
			in:     color.HSL{Hue: 0, Saturation: 100, Lightness: 50, Alpha: 1},
			target: color.FormatHSV,
			want:   color.HSV{Hue: 0, Saturation: 100, Value: 100, Alpha: 1},
		},
		{
			name:   "muted-hsl-to-hsv",
			in:     color.HSL{Hue: 210, Saturation: 50, Lightness: 40, Alpha: 1},
			target: color.FormatHSV,
			want:   color.HSV{Hue: 210, Saturation: 67, Value: 60, Alpha: 1},
		},
		{
			name:   "hsv-to-hsl",
			in:     color.HSV{Hue: 210, Saturation: 67, Value: 60, Alpha: 1},
			target: color.FormatHSL,
			want:   color.HSL{Hue: 210, Saturation: 50, Lightness: 40, Alpha: 1},
		},
		{
			name:   "hsl-to-sl",
			in:     color.HSL{Hue: 210, Saturation: 50, Lightness: 40, Alpha: 0.3},
			target: color.FormatSL,
			want:   color.SL{Saturation: 50, Lightness: 40, Alpha: 0.3},
		},
		{
			name:   "white-to-xyz",
			in:     color.RGB{Red: 255, Green: 255, Blue: 255, Alpha: 1},
			target: color.FormatXYZ,
			want:   color.XYZ{X: 95.047, Y: 100, Z: 108.883, Alpha: 1},
		},
		{
			name:   "red-to-xyz",
			in:     color.RGB{Red: 255, Alpha: 1},
			target: color.FormatXYZ,
			want:   color.XYZ{X: 41.2456, Y: 21.2673, Z: 1.9334, Alpha: 1},
		},
		{
			name:   "white-to-lab",
			in:     color.RGB{Red: 255, Green: 255, Blue: 255, Alpha: 1},
			target: color.FormatLAB,
			want:   color.LAB{L: 100, A: 0, B: 0, Alpha: 1},
		},
		{
			name:   "same-format-sanitizes",
			in:     color.HSL{Hue: 120.4, Saturation: 50.6, Lightness: 10, Alpha: 1},
			target: color.FormatHSL,
			want:   color.HSL{Hue: 120, Saturation: 51, Lightness: 10, Alpha: 1},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := &diag.Recorder{}
			got := New(rec).Convert(tc.in, tc.target)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Convert(%+v, %s) mismatch (-want +got):\n%s", tc.in, tc.target, diff)
			}
			if entries := rec.Entries(); len(entries) != 0 {
				t.Errorf("unexpected reports: %v", entries)
			}
		})
	}
}

func TestConvertFailuresYieldZero(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		in      color.Color
		target  color.Format
		wantErr error
	}{
		{"out-of-range", color.RGB{Red: 300, Alpha: 1}, color.FormatHSL, color.ErrInvalid},
		{"nan", color.HSV{Hue: math.NaN(), Alpha: 1}, color.FormatCMYK, color.ErrInvalid},
		{"nil", nil, color.FormatHex, color.ErrInvalid},
		{"bad-hex", color.Hex{Hex: "#12345", Alpha: "FF", NumericAlpha: 1}, color.FormatRGB, color.ErrInvalid},
		{"sl-to-rgb", color.SL{Saturation: 50, Lightness: 50, Alpha: 1}, color.FormatRGB, ErrUnsupported},
		{"sv-to-hsl", color.SV{Saturation: 50, Value: 50, Alpha: 1}, color.FormatHSL, ErrUnsupported},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := &diag.Recorder{}
			got := New(rec).Convert(tc.in, tc.target)
			if diff := cmp.Diff(color.Zero(tc.target), got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			entries := rec.Entries()
			if len(entries) == 0 {
				t.Fatal("expected a report")
			}
			if err := reportedErr(entries); !errors.Is(err, tc.wantErr) {
				t.Errorf("reported err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestStepRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	rec := &diag.Recorder{}
	cv := New(rec)
	if got := cv.RGBToCMYK(color.RGB{Red: -3, Alpha: 1}); got != (color.CMYK{Key: 100, Alpha: 1}) {
		t.Errorf("RGBToCMYK(invalid) = %+v", got)
	}
	if got := cv.XYZToLAB(color.XYZ{X: 200, Alpha: 1}); got != (color.LAB{Alpha: 1}) {
		t.Errorf("XYZToLAB(invalid) = %+v", got)
	}
	if n := len(rec.Entries()); n != 2 {
		t.Errorf("got %d reports, want 2", n)
	}

	// The package-level helper discards diagnostics but still falls back.
	if got := Convert(color.RGB{Red: 256, Alpha: 1}, color.FormatRGB); got != (color.RGB{Alpha: 1}) {
		t.Errorf("Convert(invalid) = %+v", got)
	}
}

func TestRoundTrips(t *testing.T) {
	t.Parallel()

	cv := Converter{}
	colors := append(sweep(t), color.RGB{Red: 0, Green: 133, Blue: 231, Alpha: 1})
	for _, rgb := range colors {
		if got := cv.HexToRGB(cv.RGBToHex(rgb)); got != rgb {
			t.Errorf("hex round trip of %+v = %+v", rgb, got)
		}
		xyz := cv.RGBToXYZ(rgb)
		if got := cv.XYZToRGB(xyz); maxDrift(rgb, got) > 1 {
			t.Errorf("xyz round trip of %+v = %+v (via %+v)", rgb, got, xyz)
		}
		lab := cv.XYZToLAB(xyz)
		if got := cv.XYZToRGB(cv.LABToXYZ(lab)); maxDrift(rgb, got) > 1 {
			t.Errorf("lab round trip of %+v = %+v (via %+v)", rgb, got, lab)
		}
	}
}

// Whole-number HSL, HSV and CMYK channels each carry up to half a unit of
// rounding error, which the inverse conversion scales into RGB units. For HSL
// that is at most 255*(0.005*2 + 0.005/2 + 0.5/60) ~= 5.3 on the middle
// channel, for HSV 255*(0.005 + 0.005 + 0.5/60) ~= 4.7 and for CMYK
// 255*(0.005 + 0.005) ~= 2.6. The result is rounded to whole channels, so the
// bounds are 5, 5 and 3.
func TestQuantizedRoundTrips(t *testing.T) {
	t.Parallel()

	cv := Converter{}
	colors := sweep(t)
	for _, tc := range []struct {
		name  string
		trip  func(color.RGB) color.RGB
		bound float64
	}{
		{"hsl", func(c color.RGB) color.RGB { return cv.HSLToRGB(cv.RGBToHSL(c)) }, 5},
		{"hsv", func(c color.RGB) color.RGB { return cv.HSVToRGB(cv.RGBToHSV(c)) }, 5},
		{"cmyk", func(c color.RGB) color.RGB { return cv.CMYKToRGB(cv.RGBToCMYK(c)) }, 3},
	} {
		var worst float64
		for _, rgb := range colors {
			got := tc.trip(rgb)
			d := maxDrift(rgb, got)
			if d > tc.bound {
				t.Errorf("%s round trip of %+v = %+v drifts by %v", tc.name, rgb, got, d)
			}
			worst = math.Max(worst, d)
		}
		t.Logf("%s: worst drift %v", tc.name, worst)
	}
}

func TestEveryPairProducesValidColors(t *testing.T) {
	t.Parallel()

	rec := &diag.Recorder{}
	cv := New(rec)
	sources := []color.Color{
		color.RGB{Red: 12, Green: 200, Blue: 77, Alpha: 0.4},
		color.HSL{Hue: 300, Saturation: 80, Lightness: 90, Alpha: 1},
		color.HSV{Hue: 45, Saturation: 10, Value: 5, Alpha: 1},
		color.CMYK{Cyan: 5, Magenta: 90, Yellow: 40, Key: 20, Alpha: 1},
		color.Hex{Hex: "#c0ffee", Alpha: "80", NumericAlpha: 0.5},
		color.XYZ{X: 20, Y: 30, Z: 40, Alpha: 1},
		color.LAB{L: 60, A: -40, B: 30, Alpha: 1},
	}
	for _, src := range sources {
		for _, f := range color.Formats {
			got := cv.Convert(src, f)
			if got.Format() != f {
				t.Errorf("Convert(%+v, %s) returned %s", src, f, got.Format())
			}
			if err := color.Check(got); err != nil {
				t.Errorf("Convert(%+v, %s) = %+v: %v", src, f, got, err)
			}
		}
	}
	if entries := rec.Entries(); len(entries) != 0 {
		t.Errorf("unexpected reports: %v", entries)
	}
}

func TestAgreesWithColorful(t *testing.T) {
	t.Parallel()

	const tol = 0.5 + 1e-9
	hueDiff := func(a, b float64) float64 {
		d := math.Mod(math.Abs(a-b), 360)
		return math.Min(d, 360-d)
	}
	cv := Converter{}
	for _, rgb := range webSafe() {
		ref := rgb.Colorful()

		h, s, v := ref.Hsv()
		hsv := cv.RGBToHSV(rgb)
		if (s > 0 && hueDiff(hsv.Hue, h) > tol) ||
			math.Abs(hsv.Saturation-s*100) > tol || math.Abs(hsv.Value-v*100) > tol {
			t.Errorf("RGBToHSV(%+v) = %+v, colorful has %v %v %v", rgb, hsv, h, s, v)
		}

		h, s, l := ref.Hsl()
		hsl := cv.RGBToHSL(rgb)
		if (s > 0 && hueDiff(hsl.Hue, h) > tol) ||
			math.Abs(hsl.Saturation-s*100) > tol || math.Abs(hsl.Lightness-l*100) > tol {
			t.Errorf("RGBToHSL(%+v) = %+v, colorful has %v %v %v", rgb, hsl, h, s, l)
		}

		L, a, b := ref.Lab()
		lab := cv.XYZToLAB(cv.RGBToXYZ(rgb))
		if math.Abs(lab.L-L*100) > tol || math.Abs(lab.A-a*100) > tol || math.Abs(lab.B-b*100) > tol {
			t.Errorf("LAB of %+v = %+v, colorful has %v %v %v", rgb, lab, L, a, b)
		}

		if hex := cv.RGBToHex(rgb); !strings.EqualFold(hex.Hex, ref.Hex()) {
			t.Errorf("RGBToHex(%+v) = %s, colorful has %s", rgb, hex.Hex, ref.Hex())
		}
	}
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   string
		want color.Hex
	}{
		{"#ff0000", color.Hex{Hex: "#FF0000", Alpha: "FF", NumericAlpha: 1}},
		{"336699", color.Hex{Hex: "#336699", Alpha: "FF", NumericAlpha: 1}},
		{" #ff000000 ", color.Hex{Hex: "#FF0000", Alpha: "00", NumericAlpha: 0}},
		{"#FF000080", color.Hex{Hex: "#FF0000", Alpha: "80", NumericAlpha: 128.0 / 255}},
	} {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseHex(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	for _, bad := range []string{"", "#fff", "#GG0000", "#ff00000", "0xff0000"} {
		if _, err := ParseHex(bad); !errors.Is(err, color.ErrInvalid) {
			t.Errorf("ParseHex(%q) err = %v, want ErrInvalid", bad, err)
		}
	}
}

func TestDeltaE(t *testing.T) {
	t.Parallel()

	cv := Converter{}
	red := color.RGB{Red: 255, Alpha: 1}
	if d, err := cv.DeltaE(red, color.Hex{Hex: "#FF0000", Alpha: "80", NumericAlpha: 0.5}); err != nil || d > 1e-9 {
		t.Errorf("DeltaE(red, red) = %v, %v", d, err)
	}
	black, white := color.RGB{Alpha: 1}, color.HSL{Lightness: 100, Alpha: 1}
	d, err := cv.DeltaE(black, white)
	if err != nil || d < 0.5 {
		t.Errorf("DeltaE(black, white) = %v, %v", d, err)
	}
	near, err := cv.DeltaE(red, color.RGB{Red: 250, Green: 5, Alpha: 1})
	if err != nil || near <= 0 || near >= d {
		t.Errorf("DeltaE(red, near red) = %v, %v", near, err)
	}
	if _, err := cv.DeltaE(red, color.SL{Alpha: 1}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DeltaE with SL err = %v", err)
	}
	if _, err := cv.DeltaE(red, color.RGB{Red: -1, Alpha: 1}); !errors.Is(err, color.ErrInvalid) {
		t.Errorf("DeltaE with invalid err = %v", err)
	}
}
