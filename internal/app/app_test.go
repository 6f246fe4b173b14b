package app

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conway-fb/pkg/framebuffer"
	"conway-fb/pkg/life"
	"conway-fb/pkg/patterns"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs("life", nil)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 100 {
		t.Fatalf("expected 100x100 default, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Output != "final_game_state.png" {
		t.Fatalf("unexpected default output %q", cfg.Output)
	}
	live, dead, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors: %v", err)
	}
	if live != (color.RGBA{R: 253, G: 249, B: 0, A: 255}) || dead != (color.RGBA{R: 20, G: 20, B: 30, A: 255}) {
		t.Fatalf("unexpected default colours %v %v", live, dead)
	}
}

func TestParseArgsFlags(t *testing.T) {
	cfg, err := ParseArgs("life", []string{
		"--width", "12", "--height", "8",
		"--pattern", "blinker@1:1",
		"--pattern", "glider@5:2",
		"--headless", "--generations", "3",
		"--live", "#ff000080",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 8 || !cfg.Headless || cfg.Generations != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	seeds, err := cfg.PatternSeeds()
	if err != nil {
		t.Fatalf("PatternSeeds: %v", err)
	}
	want := []patterns.Seed{{Name: "blinker", X: 1, Y: 1}, {Name: "glider", X: 5, Y: 2}}
	if len(seeds) != len(want) || seeds[0] != want[0] || seeds[1] != want[1] {
		t.Fatalf("seeds = %v, expected %v", seeds, want)
	}
	live, _, _ := cfg.Colors()
	if live != (color.RGBA{R: 128, A: 128}) {
		t.Fatalf("expected premultiplied half-alpha red, got %v", live)
	}
}

func TestTranslucentColorSurvivesExport(t *testing.T) {
	c, err := parseHexColor("#ff000080")
	if err != nil {
		t.Fatalf("parseHexColor: %v", err)
	}
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Fatalf("%v is not a valid premultiplied colour", c)
	}

	fb := framebuffer.New(1, 1)
	fb.SetPixel(0, 0, c)
	path := filepath.Join(t.TempDir(), "px.png")
	if err := fb.RenderToFile(path); err != nil {
		t.Fatalf("RenderToFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{R: 255, A: 128}) {
		t.Fatalf("exported pixel %v, expected straight red at half alpha", got)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"bad scale":      func(c *Config) { c.Scale = 0 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"negative gps":   func(c *Config) { c.GPS = -5 },
		"negative hud":   func(c *Config) { c.HUDWidth = -1 },
		"negative gens":  func(c *Config) { c.Generations = -1 },
		"density":        func(c *Config) { c.Density = 1.5 },
		"live colour":    func(c *Config) { c.Live = "yellow" },
		"dead colour":    func(c *Config) { c.Dead = "#12345z" },
		"unknown seed":   func(c *Config) { c.Seeds = []string{"spaceship@1:1"} },
		"malformed seed": func(c *Config) { c.Seeds = []string{"glider"} },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", name)
		}
	}

	cfg := NewConfig()
	cfg.Seeds = []string{"spaceship@1:1"}
	if err := cfg.Validate(); !errors.Is(err, patterns.ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Width = 5
	cfg.Height = 5
	cfg.Seeds = []string{"blinker@1:2"}
	cfg.NoColor = true
	return cfg
}

func TestSimulationTickRendersGrid(t *testing.T) {
	cfg := smallConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	live, dead, _ := cfg.Colors()

	if sim.Framebuffer().Background() != dead {
		t.Fatalf("framebuffer background should be the dead colour, got %v", sim.Framebuffer().Background())
	}
	if px, _ := sim.Framebuffer().Pixel(1, 2); px != live {
		t.Fatalf("initial frame should show the seed, got %v", px)
	}

	sim.Tick()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			state, _ := sim.Grid().Cell(x, y)
			px, _ := sim.Framebuffer().Pixel(x, y)
			want := dead
			if state == life.Alive {
				want = live
			}
			if px != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, px, want)
			}
		}
	}
	if state, _ := sim.Grid().Cell(2, 1); state != life.Alive {
		t.Fatal("blinker should be vertical after one tick")
	}

	params := sim.Parameters()
	if p, ok := params.Lookup("generation"); !ok || p.Value != "1" {
		t.Fatalf("unexpected generation parameter %+v", p)
	}
	if p, ok := params.Lookup("population"); !ok || p.Value != "3" {
		t.Fatalf("unexpected population parameter %+v", p)
	}
}

func TestSimulationReset(t *testing.T) {
	sim, err := NewSimulation(smallConfig())
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	start := sim.Grid().States()
	sim.Tick()
	sim.Randomize(9)
	if err := sim.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	got := sim.Grid().States()
	for i := range start {
		if start[i] != got[i] {
			t.Fatalf("cell %d differs after reset", i)
		}
	}
}

func TestSimulationRandomSoup(t *testing.T) {
	cfg := smallConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Random = true
	cfg.Density = 1
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if sim.Grid().Population() != 400 {
		t.Fatalf("density 1 should fill the board, got %d", sim.Grid().Population())
	}
}

func TestRunHeadless(t *testing.T) {
	cfg := smallConfig()
	cfg.Generations = 4
	cfg.Progress = 2
	cfg.Output = filepath.Join(t.TempDir(), "final.png")

	var out bytes.Buffer
	if err := RunHeadless(cfg, &out); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if _, err := os.Stat(cfg.Output); err != nil {
		t.Fatalf("expected exported image: %v", err)
	}
	text := out.String()
	for _, want := range []string{"generation 2 population 3", "generation 4 population 3", "Finished generation 4", "Image saved to " + cfg.Output} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Fatalf("expected plain output with colours disabled:\n%s", text)
	}
}

func TestRunHeadlessExportFailure(t *testing.T) {
	cfg := smallConfig()
	cfg.Generations = 1
	cfg.Output = filepath.Join(t.TempDir(), "missing", "final.png")

	var out bytes.Buffer
	err := RunHeadless(cfg, &out)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(out.String(), "Finished generation 1") {
		t.Fatalf("simulation should complete before the export fails:\n%s", out.String())
	}
	if strings.Contains(out.String(), cfg.Output) {
		t.Fatalf("the export error is returned, not printed:\n%s", out.String())
	}
}
