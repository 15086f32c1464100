// Package palette generates color palettes. It combines a base color, a
// harmony scheme, saturation/lightness/alpha jitter and constraint-filtered
// rejection sampling, then expands every accepted swatch into all color
// formats.
package palette

import (
	"math"
	"math/rand"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/config"
	"github.com/irfansharif/swatch/internal/convert"
	"github.com/irfansharif/swatch/internal/diag"
	"github.com/irfansharif/swatch/internal/filter"
	"github.com/irfansharif/swatch/internal/harmony"
)

// Options describes one palette.
type Options struct {
	Scheme      harmony.Scheme
	NumBoxes    int
	BaseColor   color.Color // nil, invalid or hue-less means a random base
	EnableAlpha bool
	LimitGray   bool
	LimitDark   bool
	LimitBright bool
	Seed        int64 // same seed, same palette
}

// Limits returns the constraint filters enabled by o.
func (o Options) Limits() filter.Limits {
	return filter.Limits{Gray: o.LimitGray, Dark: o.LimitDark, Bright: o.LimitBright}
}

// Generator produces palettes. It holds no mutable state and is safe for
// concurrent use.
type Generator struct {
	Config   config.Config
	Reporter diag.Reporter
}

// NewGenerator creates a new palette generator.
func NewGenerator(cfg config.Config, r diag.Reporter) *Generator {
	return &Generator{Config: cfg, Reporter: r}
}

// Generate returns the palette described by opts, base color first for every
// scheme except analogous (base last) and random (no base). Unknown schemes
// and palettes smaller than the scheme's minimum yield no items.
func (g *Generator) Generate(opts Options) []Item {
	reporter := diag.OrDiscard(g.Reporter)
	minBoxes := opts.Scheme.MinBoxes()
	if minBoxes == 0 {
		reporter.Report("unknown harmony scheme", "scheme", opts.Scheme)
		return nil
	}
	if opts.NumBoxes < minBoxes {
		reporter.Report("palette too small for scheme",
			"scheme", opts.Scheme, "numBoxes", opts.NumBoxes, "min", minBoxes)
		return nil
	}

	s := &session{
		cfg:      g.Config,
		opts:     opts,
		limits:   opts.Limits(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		conv:     convert.New(reporter),
		reporter: reporter,
	}
	swatches := s.swatches()

	items := make([]Item, len(swatches))
	for i, hsl := range swatches {
		items[i] = s.expand(hsl)
	}
	return items
}

// session carries the state of one Generate call.
type session struct {
	cfg      config.Config
	opts     Options
	limits   filter.Limits
	rng      *rand.Rand
	conv     convert.Converter
	reporter diag.Reporter
}

func (s *session) swatches() []color.HSL {
	n := s.opts.NumBoxes
	if s.opts.Scheme == harmony.Random {
		out := make([]color.HSL, 0, n)
		for _, h := range harmony.RandomHues(n, s.rng) {
			out = append(out, s.randomSwatch(h))
		}
		return out
	}

	base := s.resolveBase()
	out := make([]color.HSL, 0, n)
	if s.opts.Scheme == harmony.Monochromatic {
		// Every swatch keeps the base hue, so there is no hue list to draw.
		out = append(out, base)
		var drop float64
		for i := 1; i < n; i++ {
			drop += s.cfg.MonoSaturationStep.Min +
				s.rng.Float64()*(s.cfg.MonoSaturationStep.Max-s.cfg.MonoSaturationStep.Min)
			out = append(out, s.monochrome(base, i, drop))
		}
		return out
	}

	hues := harmony.Hues(s.opts.Scheme, base.Hue, n, s.cfg, s.rng)
	switch s.opts.Scheme {
	case harmony.Analogous:
		for _, h := range hues {
			out = append(out, s.jittered(h, base))
		}
		out = append(out, base)
	default:
		out = append(out, base)
		for i := 1; i < n; i++ {
			out = append(out, s.jittered(hues[i%len(hues)], base))
		}
	}
	return out
}

// resolveBase returns the caller's base color as HSL, or a random
// (constrained) one.
func (s *session) resolveBase() color.HSL {
	if c := s.opts.BaseColor; c != nil {
		if err := color.Check(c); err == nil && c.Format().HasHue() {
			return s.conv.ToHSL(c)
		}
		s.reporter.Report("unusable base color, using a random one", "base", c)
	}
	return s.randomSwatch(s.rng.Float64() * color.MaxHue)
}

func (s *session) alpha() float64 {
	if !s.opts.EnableAlpha {
		return 1
	}
	return color.SanitizeAlpha(s.rng.Float64())
}

func (s *session) percentage() float64 {
	return color.SanitizePercentage(s.rng.Float64() * color.MaxPercentage)
}

func (s *session) jitter(spread float64) float64 {
	return (2*s.rng.Float64() - 1) * spread
}

func (s *session) randomSwatch(hue float64) color.HSL {
	return s.constrain(color.HSL{
		Hue:        color.SanitizeRadial(hue),
		Saturation: s.percentage(),
		Lightness:  s.percentage(),
		Alpha:      s.alpha(),
	})
}

// jittered keeps the hue and moves saturation and lightness a little away
// from the base.
func (s *session) jittered(hue float64, base color.HSL) color.HSL {
	return s.constrain(color.HSL{
		Hue:        color.SanitizeRadial(hue),
		Saturation: color.SanitizePercentage(base.Saturation + s.jitter(s.cfg.SaturationJitter)),
		Lightness:  color.SanitizePercentage(base.Lightness + s.jitter(s.cfg.LightnessJitter)),
		Alpha:      s.alpha(),
	})
}

// monochrome lowers saturation by drop and swings lightness alternately
// above and below the base, further out every other step.
func (s *session) monochrome(base color.HSL, step int, drop float64) color.HSL {
	swing := s.cfg.MonoLightnessSwing * math.Ceil(float64(step)/2)
	if step%2 == 0 {
		swing = -swing
	}
	return s.constrain(color.HSL{
		Hue:        base.Hue,
		Saturation: color.SanitizePercentage(base.Saturation - drop),
		Lightness:  color.SanitizePercentage(base.Lightness + swing),
		Alpha:      s.alpha(),
	})
}

// constrain accepts c if it passes the active filters. Otherwise it redraws
// saturation and lightness up to cfg.MaxAttempts times, and failing that
// clamps the last candidate into the accepted band.
func (s *session) constrain(c color.HSL) color.HSL {
	if !s.limits.Any() {
		return c
	}
	t := s.cfg.Thresholds
	for attempt := 0; s.limits.OutOfBounds(c, t); attempt++ {
		if attempt >= s.cfg.MaxAttempts {
			s.reporter.Report("constrained sampling exhausted, clamping",
				"attempts", s.cfg.MaxAttempts, "candidate", c)
			return s.limits.Clamp(c, t)
		}
		c.Saturation = s.percentage()
		c.Lightness = s.percentage()
	}
	return c
}
