// Package harmony derives related hues from a base hue. Each scheme returns
// hues in [0,360), rounded to whole degrees, or nil when asked for fewer
// swatches than the scheme needs.
//
// All randomness comes from the caller's *rand.Rand, so a fixed seed
// reproduces a palette exactly.
package harmony

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/config"
)

// Scheme names a harmony.
type Scheme string

const (
	Complementary      Scheme = "complementary"
	Analogous          Scheme = "analogous"
	Triadic            Scheme = "triadic"
	Tetradic           Scheme = "tetradic"
	SplitComplementary Scheme = "splitComplementary"
	Diadic             Scheme = "diadic"
	Hexadic            Scheme = "hexadic"
	Monochromatic      Scheme = "monochromatic"
	Random             Scheme = "random"
)

// Schemes lists every scheme.
var Schemes = []Scheme{
	Complementary, Analogous, Triadic, Tetradic, SplitComplementary,
	Diadic, Hexadic, Monochromatic, Random,
}

// ParseScheme matches s against the scheme names, ignoring case, dashes and
// underscores ("split-complementary" is SplitComplementary).
func ParseScheme(s string) (Scheme, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for _, scheme := range Schemes {
		if strings.ToLower(string(scheme)) == key {
			return scheme, nil
		}
	}
	return "", fmt.Errorf("unknown harmony scheme %q", s)
}

// MinBoxes is the smallest palette the scheme can fill. Unknown schemes
// return 0.
func (s Scheme) MinBoxes() int {
	switch s {
	case Random:
		return 1
	case Complementary, Analogous, Diadic, Monochromatic:
		return 2
	case Triadic, SplitComplementary:
		return 3
	case Tetradic:
		return 4
	case Hexadic:
		return 6
	default:
		return 0
	}
}

// Hues dispatches to the generator for s. Unknown schemes return nil.
func Hues(s Scheme, base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	switch s {
	case Complementary:
		return ComplementaryHues(base, numBoxes, cfg, rng)
	case Analogous:
		return AnalogousHues(base, numBoxes, cfg, rng)
	case Triadic:
		return TriadicHues(base, numBoxes)
	case Tetradic:
		return TetradicHues(base, numBoxes, cfg, rng)
	case SplitComplementary:
		return SplitComplementaryHues(base, numBoxes, cfg, rng)
	case Diadic:
		return DiadicHues(base, numBoxes, cfg, rng)
	case Hexadic:
		return HexadicHues(base, numBoxes, cfg, rng)
	case Monochromatic:
		return MonochromaticHues(base, numBoxes)
	case Random:
		return RandomHues(numBoxes, rng)
	default:
		return nil
	}
}

func wrap(hues ...float64) []float64 {
	for i, h := range hues {
		hues[i] = color.SanitizeRadial(h)
	}
	return hues
}

// uniform draws from [r.Min, r.Max).
func uniform(r config.Range, rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// ComplementaryHues returns the base and its opposite, jittered by up to
// ±cfg.ComplementaryShift.
func ComplementaryHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < Complementary.MinBoxes() {
		return nil
	}
	shift := (2*rng.Float64() - 1) * cfg.ComplementaryShift
	return wrap(base, base+180+shift)
}

// AnalogousHues returns numBoxes-1 hues stepping away from the base. The
// total spread is drawn between a minimum that grows with the palette size
// and cfg.AnalogousMaxSpread. The base itself is not included.
func AnalogousHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < Analogous.MinBoxes() {
		return nil
	}
	count := numBoxes - 1
	lo := min(cfg.AnalogousStep*float64(count), cfg.AnalogousMaxSpread)
	spread := lo + rng.Float64()*(cfg.AnalogousMaxSpread-lo)
	increment := spread / float64(count)

	hues := make([]float64, count)
	for i := range hues {
		hues[i] = base + float64(i+1)*increment
	}
	return wrap(hues...)
}

// TriadicHues returns the base and the hues 120° and 240° away.
func TriadicHues(base float64, numBoxes int) []float64 {
	if numBoxes < Triadic.MinBoxes() {
		return nil
	}
	return wrap(base, base+120, base+240)
}

// TetradicHues returns two complementary pairs, the second rotated from the
// base by 90 ± a draw from cfg.TetradicOffset.
func TetradicHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < Tetradic.MinBoxes() {
		return nil
	}
	offset := uniform(cfg.TetradicOffset, rng)
	if rng.Intn(2) == 0 {
		offset = -offset
	}
	d := 90 + offset
	return wrap(base, base+180, base+d, base+d+180)
}

// SplitComplementaryHues returns the base and the two hues either side of
// its complement.
func SplitComplementaryHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < SplitComplementary.MinBoxes() {
		return nil
	}
	m := uniform(cfg.SplitModifier, rng)
	return wrap(base, base+180+m, base+180-m)
}

// DiadicHues returns the base and a second hue a weighted-random interval
// away.
func DiadicHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < Diadic.MinBoxes() {
		return nil
	}
	return wrap(base, base+WeightedInterval(cfg.Intervals(), cfg.Weights(), rng))
}

// HexadicHues returns the base, its complement, and two more complementary
// pairs at ±d from the base.
func HexadicHues(base float64, numBoxes int, cfg config.Config, rng *rand.Rand) []float64 {
	if numBoxes < Hexadic.MinBoxes() {
		return nil
	}
	d := uniform(cfg.HexadicDistance, rng)
	return wrap(base, base+180, base+d, base+d+180, base-d, base-d+180)
}

// MonochromaticHues repeats the base hue numBoxes times.
func MonochromaticHues(base float64, numBoxes int) []float64 {
	if numBoxes < Monochromatic.MinBoxes() {
		return nil
	}
	hues := make([]float64, numBoxes)
	for i := range hues {
		hues[i] = base
	}
	return wrap(hues...)
}

// RandomHues returns numBoxes unrelated hues.
func RandomHues(numBoxes int, rng *rand.Rand) []float64 {
	if numBoxes < Random.MinBoxes() {
		return nil
	}
	hues := make([]float64, numBoxes)
	for i := range hues {
		hues[i] = rng.Float64() * color.MaxHue
	}
	return wrap(hues...)
}
