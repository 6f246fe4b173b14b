package app

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"conway-fb/pkg/patterns"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	GPS    int

	Live string
	Dead string

	Seeds   []string
	Random  bool
	RNGSeed int64
	Density float64

	Headless    bool
	Generations int
	Progress    int
	NoColor     bool

	Output      string
	SnapshotDir string
	HUDWidth    int
}

// NewConfig returns a Config populated with the defaults of the original
// 100x100 demo.
func NewConfig() *Config {
	return &Config{
		Width:       100,
		Height:      100,
		Scale:       4,
		TPS:         60,
		GPS:         10,
		Live:        "#fdf900",
		Dead:        "#14141e",
		RNGSeed:     42,
		Density:     0.25,
		Generations: 200,
		Progress:    50,
		Output:      "final_game_state.png",
		SnapshotDir: ".",
		HUDWidth:    160,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "grid width in cells")
	p.Int(&c.Height, "y", "height", "grid height in cells")
	p.Int(&c.Scale, "", "scale", "window pixels per cell")
	p.Int(&c.TPS, "", "tps", "window ticks per second")
	p.Int(&c.GPS, "g", "gps", "generations per second in the window")
	p.String(&c.Live, "", "live", "live cell colour as #rrggbb")
	p.String(&c.Dead, "", "dead", "dead cell and background colour as #rrggbb")
	p.StringSlice(&c.Seeds, "p", "pattern", "pattern to seed as name@x:y (repeatable; patterns: "+strings.Join(patterns.Names(), ", ")+")")
	p.Bool(&c.Random, "r", "random", "seed a random soup instead of patterns")
	p.Int64(&c.RNGSeed, "", "rng-seed", "seed for the random soup")
	p.Float64(&c.Density, "", "density", "live probability of the random soup")
	p.Bool(&c.Headless, "", "headless", "run without a window")
	p.Int(&c.Generations, "n", "generations", "generations to run in headless mode")
	p.Int(&c.Progress, "", "progress", "report every N generations in headless mode (0 disables)")
	p.Bool(&c.NoColor, "", "no-color", "disable coloured console output")
	p.String(&c.Output, "o", "output", "PNG written with the final state (empty disables)")
	p.String(&c.SnapshotDir, "", "snapshots", "directory for PNG snapshots taken with P")
	p.Int(&c.HUDWidth, "", "hud", "HUD panel width in pixels (0 hides it)")
}

// ParseArgs builds a parser named name, binds a default Config to it and
// parses args.
func ParseArgs(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	p := flaggy.NewParser(name)
	p.Description = "Conway's Game of Life rendered through a framebuffer."
	p.ShowHelpOnUnexpected = false
	cfg.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.GPS <= 0 {
		errs = append(errs, fmt.Errorf("gps %d must be positive", c.GPS))
	}
	if c.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud width %d must not be negative", c.HUDWidth))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations %d must not be negative", c.Generations))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %g must be within [0,1]", c.Density))
	}
	if _, err := parseHexColor(c.Live); err != nil {
		errs = append(errs, fmt.Errorf("live colour: %w", err))
	}
	if _, err := parseHexColor(c.Dead); err != nil {
		errs = append(errs, fmt.Errorf("dead colour: %w", err))
	}
	if _, err := c.PatternSeeds(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// PatternSeeds parses the configured seeds, falling back to the default
// layout when none are given.
func (c *Config) PatternSeeds() ([]patterns.Seed, error) {
	if len(c.Seeds) == 0 {
		return patterns.DefaultSeeds(c.Width, c.Height), nil
	}
	seeds := make([]patterns.Seed, 0, len(c.Seeds))
	for _, v := range c.Seeds {
		s, err := patterns.ParseSeed(v)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, s)
	}
	return seeds, nil
}

// Colors returns the parsed live and dead colours.
func (c *Config) Colors() (live, dead color.RGBA, err error) {
	if live, err = parseHexColor(c.Live); err != nil {
		return live, dead, err
	}
	dead, err = parseHexColor(c.Dead)
	return live, dead, err
}

// parseHexColor reads straight (non-premultiplied) #rrggbb[aa] and returns the
// premultiplied equivalent.
func parseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%q is not #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	c := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(c).(color.RGBA), nil
}
