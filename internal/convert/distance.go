package convert

import (
	"fmt"

	"github.com/irfansharif/swatch/internal/color"
)

// DeltaE returns the CIEDE2000 difference between two hue-bearing colors.
// Alpha is ignored.
func (cv Converter) DeltaE(a, b color.Color) (float64, error) {
	for _, c := range []color.Color{a, b} {
		if err := color.Check(c); err != nil {
			return 0, err
		}
		if !c.Format().HasHue() {
			return 0, fmt.Errorf("%w: %s has no hue", ErrUnsupported, c.Format())
		}
	}
	return cv.ToRGB(a).Colorful().DistanceCIEDE2000(cv.ToRGB(b).Colorful()), nil
}
