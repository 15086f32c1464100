package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/irfansharif/swatch/internal/color"
	"github.com/irfansharif/swatch/internal/colorstring"
	"github.com/irfansharif/swatch/internal/config"
	"github.com/irfansharif/swatch/internal/convert"
	"github.com/irfansharif/swatch/internal/diag"
	"github.com/irfansharif/swatch/internal/harmony"
	"github.com/irfansharif/swatch/internal/palette"
)

const logFlags = log.Ltime | log.Lshortfile

var (
	schemeFlag = flag.String("scheme", string(harmony.Complementary), "harmony scheme: "+schemeNames())
	boxesFlag  = flag.Int("n", 5, "number of swatches")
	baseFlag   = flag.String("base", "", `base color, e.g. "#336699" or "hsl(210, 50%, 40%)"; random if empty`)
	alphaFlag  = flag.Bool("alpha", false, "randomize alpha")
	grayFlag   = flag.Bool("gray", false, "reject swatches that are too gray")
	darkFlag   = flag.Bool("dark", false, "reject swatches that are too dark")
	brightFlag = flag.Bool("bright", false, "reject swatches that are too bright")
	seedFlag   = flag.Int64("seed", 0, "random seed; defaults to $SWATCH_SEED or the current time")
	formatFlag = flag.String("format", "hex,rgb,hsl,hsv,cmyk,lab,xyz", "comma-separated formats to print, or \"all\"")
	cssFlag    = flag.Bool("css", false, "print CSS strings instead of display strings")
	css4Flag   = flag.Bool("css4", false, "print CSS Color 4 strings instead of display strings")
)

func init() {
	log.SetFlags(logFlags)
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	scheme, err := harmony.ParseScheme(*schemeFlag)
	if err != nil {
		log.Fatalf("Invalid -scheme: %v", err)
	}
	formats, err := parseFormats(*formatFlag)
	if err != nil {
		log.Fatalf("Invalid -format: %v", err)
	}
	var base color.Color
	if *baseFlag != "" {
		if base, err = colorstring.ParseAny(*baseFlag); err != nil {
			log.Fatalf("Invalid -base: %v", err)
		}
	}

	s := seed()
	reporter := diag.FromEnv()
	generator := palette.NewGenerator(cfg, reporter)
	items := generator.Generate(palette.Options{
		Scheme:      scheme,
		NumBoxes:    *boxesFlag,
		BaseColor:   base,
		EnableAlpha: *alphaFlag,
		LimitGray:   *grayFlag,
		LimitDark:   *darkFlag,
		LimitBright: *brightFlag,
		Seed:        s,
	})
	if len(items) == 0 {
		log.Fatalf("No swatches generated: %s needs at least %d (got %d)", scheme, scheme.MinBoxes(), *boxesFlag)
	}

	title := lipgloss.NewStyle().Bold(true)
	fmt.Println(title.Render(fmt.Sprintf("%s, %d swatches (seed %d)", scheme, len(items), s)))
	conv := convert.New(reporter)
	text := func(item palette.Item, f color.Format) string { return item.Strings[f].String() }
	switch {
	case *css4Flag:
		text = func(item palette.Item, f color.Format) string { return colorstring.CSS4(item.Colors.Get(f)) }
	case *cssFlag:
		text = func(item palette.Item, f color.Format) string { return item.CSS[f] }
	}
	for _, item := range items {
		fmt.Println(renderItem(conv, item, formats, text))
	}
}

func renderItem(
	conv convert.Converter, item palette.Item, formats []color.Format, text func(palette.Item, color.Format) string,
) string {
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(item.Colors.Hex.Hex)).
		Foreground(lipgloss.Color(labelColor(conv, item.Colors.RGB))).
		Padding(0, 2).
		Render(item.Colors.Hex.Hex)

	texts := make([]string, len(formats))
	for i, f := range formats {
		texts[i] = text(item, f)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, swatch, "  ", strings.Join(texts, "  "))
}

// labelColor picks black or white text, whichever is perceptually further
// from the swatch.
func labelColor(conv convert.Converter, rgb color.RGB) string {
	black := color.RGB{Alpha: 1}
	white := color.RGB{Red: 255, Green: 255, Blue: 255, Alpha: 1}
	toBlack, err1 := conv.DeltaE(rgb, black)
	toWhite, err2 := conv.DeltaE(rgb, white)
	if err1 != nil || err2 != nil || toBlack > toWhite {
		return "#000000"
	}
	return "#FFFFFF"
}

func parseFormats(s string) ([]color.Format, error) {
	if strings.TrimSpace(s) == "all" {
		return color.Formats, nil
	}
	var out []color.Format
	for _, name := range strings.Split(s, ",") {
		f, err := color.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func schemeNames() string {
	names := make([]string, len(harmony.Schemes))
	for i, s := range harmony.Schemes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func seed() int64 {
	if *seedFlag != 0 {
		return *seedFlag
	}
	seedStr := os.Getenv("SWATCH_SEED")
	now := time.Now().UnixNano()
	if seedStr == "" {
		return now
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		log.Fatalf("Invalid SWATCH_SEED value '%s': %v", seedStr, err)
	}
	return seed
}
