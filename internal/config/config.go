// Package config holds the tunables of the constraint filters, the harmony
// generators and the palette generator. A Config is a plain value: callers
// pass it explicitly and nothing in this repository mutates it after
// construction.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Thresholds bound the constraint filters, in percent.
type Thresholds struct {
	Gray   float64 // saturation below this is too gray
	Dark   float64 // lightness below this is too dark
	Bright float64 // lightness above this is too bright
}

// Range is a half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Config configures palette generation.
type Config struct {
	Thresholds Thresholds

	// Complementary hue is base+180, shifted by up to ±ComplementaryShift.
	ComplementaryShift float64

	// Analogous spread is drawn from [min(AnalogousStep*(n-1),
	// AnalogousMaxSpread), AnalogousMaxSpread] and divided evenly.
	AnalogousStep      float64
	AnalogousMaxSpread float64

	// Tetradic distance is 90 ± a draw from TetradicOffset.
	TetradicOffset Range

	// Split-complementary modifier around base+180.
	SplitModifier Range

	// Hexadic pair distance from the base.
	HexadicDistance Range

	// Diadic intervals and their weights; parallel slices.
	DiadicIntervals []float64
	DiadicWeights   []float64

	// Saturation/lightness jitter around the base, ± percent.
	SaturationJitter float64
	LightnessJitter  float64

	// Monochromatic saturation drop per step and lightness swing.
	MonoSaturationStep Range
	MonoLightnessSwing float64

	// MaxAttempts caps the constrained rejection-sampling loop.
	MaxAttempts int
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Thresholds:         Thresholds{Gray: 20, Dark: 25, Bright: 75},
		ComplementaryShift: 10,
		AnalogousStep:      10,
		AnalogousMaxSpread: 90,
		TetradicOffset:     Range{Min: 20, Max: 66},
		SplitModifier:      Range{Min: 20, Max: 31},
		HexadicDistance:    Range{Min: 30, Max: 91},
		DiadicIntervals:    []float64{30, 45, 60, 90, 120, 150, 180},
		DiadicWeights:      []float64{0.1, 0.15, 0.2, 0.2, 0.15, 0.1, 0.1},
		SaturationJitter:   10,
		LightnessJitter:    10,
		MonoSaturationStep: Range{Min: 5, Max: 15},
		MonoLightnessSwing: 10,
		MaxAttempts:        100,
	}
}

// Intervals returns a copy of the diadic interval table.
func (c Config) Intervals() []float64 { return append([]float64(nil), c.DiadicIntervals...) }

// Weights returns a copy of the diadic weight table.
func (c Config) Weights() []float64 { return append([]float64(nil), c.DiadicWeights...) }

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	var errs []error
	pct := func(name string, v float64) {
		if v < 0 || v > 100 {
			errs = append(errs, fmt.Errorf("%s %v outside [0,100]", name, v))
		}
	}
	rng := func(name string, r Range) {
		if r.Min < 0 || r.Max <= r.Min {
			errs = append(errs, fmt.Errorf("%s range [%v,%v) is empty or negative", name, r.Min, r.Max))
		}
	}
	pct("gray threshold", c.Thresholds.Gray)
	pct("dark threshold", c.Thresholds.Dark)
	pct("bright threshold", c.Thresholds.Bright)
	if c.Thresholds.Dark > c.Thresholds.Bright {
		errs = append(errs, fmt.Errorf("dark threshold %v above bright threshold %v", c.Thresholds.Dark, c.Thresholds.Bright))
	}
	pct("saturation jitter", c.SaturationJitter)
	pct("lightness jitter", c.LightnessJitter)
	pct("monochromatic lightness swing", c.MonoLightnessSwing)
	if c.ComplementaryShift < 0 || c.ComplementaryShift >= 180 {
		errs = append(errs, fmt.Errorf("complementary shift %v outside [0,180)", c.ComplementaryShift))
	}
	if c.AnalogousStep < 0 || c.AnalogousMaxSpread <= 0 || c.AnalogousMaxSpread > 360 {
		errs = append(errs, fmt.Errorf("analogous step %v / spread %v invalid", c.AnalogousStep, c.AnalogousMaxSpread))
	}
	rng("tetradic offset", c.TetradicOffset)
	rng("split modifier", c.SplitModifier)
	rng("hexadic distance", c.HexadicDistance)
	rng("monochromatic saturation step", c.MonoSaturationStep)
	if len(c.DiadicIntervals) == 0 || len(c.DiadicIntervals) != len(c.DiadicWeights) {
		errs = append(errs, fmt.Errorf("diadic table has %d intervals and %d weights",
			len(c.DiadicIntervals), len(c.DiadicWeights)))
	}
	for _, w := range c.DiadicWeights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("negative diadic weight %v", w))
			break
		}
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max attempts %d must be positive", c.MaxAttempts))
	}
	return errors.Join(errs...)
}

// Load returns the default configuration overridden by environment
// variables, reading a .env file in the working directory if present.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv applies overrides read through getenv to the defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	e := env{getenv: getenv}
	c := Default()
	c.Thresholds.Gray = e.float("SWATCH_GRAY_THRESHOLD", c.Thresholds.Gray)
	c.Thresholds.Dark = e.float("SWATCH_DARK_THRESHOLD", c.Thresholds.Dark)
	c.Thresholds.Bright = e.float("SWATCH_BRIGHT_THRESHOLD", c.Thresholds.Bright)
	c.ComplementaryShift = e.float("SWATCH_COMPLEMENTARY_SHIFT", c.ComplementaryShift)
	c.AnalogousStep = e.float("SWATCH_ANALOGOUS_STEP", c.AnalogousStep)
	c.AnalogousMaxSpread = e.float("SWATCH_ANALOGOUS_MAX_SPREAD", c.AnalogousMaxSpread)
	c.SaturationJitter = e.float("SWATCH_SATURATION_JITTER", c.SaturationJitter)
	c.LightnessJitter = e.float("SWATCH_LIGHTNESS_JITTER", c.LightnessJitter)
	c.MonoLightnessSwing = e.float("SWATCH_MONO_LIGHTNESS_SWING", c.MonoLightnessSwing)
	c.TetradicOffset = e.rangeOf("SWATCH_TETRADIC_OFFSET", c.TetradicOffset)
	c.SplitModifier = e.rangeOf("SWATCH_SPLIT_MODIFIER", c.SplitModifier)
	c.HexadicDistance = e.rangeOf("SWATCH_HEXADIC_DISTANCE", c.HexadicDistance)
	c.MonoSaturationStep = e.rangeOf("SWATCH_MONO_SATURATION_STEP", c.MonoSaturationStep)
	c.DiadicIntervals = e.floats("SWATCH_DIADIC_INTERVALS", c.DiadicIntervals)
	c.DiadicWeights = e.floats("SWATCH_DIADIC_WEIGHTS", c.DiadicWeights)
	c.MaxAttempts = e.int("SWATCH_MAX_ATTEMPTS", c.MaxAttempts)

	if err := errors.Join(e.errs...); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

type env struct {
	getenv func(string) string
	errs   []error
}

func (e *env) float(key string, defaultValue float64) float64 {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return f
}

// rangeOf reads prefix_MIN and prefix_MAX. Either bound may be overridden on
// its own.
func (e *env) rangeOf(prefix string, defaultValue Range) Range {
	return Range{
		Min: e.float(prefix+"_MIN", defaultValue.Min),
		Max: e.float(prefix+"_MAX", defaultValue.Max),
	}
}

func (e *env) int(key string, defaultValue int) int {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return i
}

func (e *env) floats(key string, defaultValue []float64) []float64 {
	value := e.getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []float64
	for _, s := range strings.Split(value, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			e.errs = append(e.errs, fmt.Errorf("%s: %w", key, err))
			return defaultValue
		}
		out = append(out, f)
	}
	return out
}
