package app

import (
	"fmt"

	"conway-fb/internal/core"
	"conway-fb/internal/render"
	"conway-fb/pkg/framebuffer"
	"conway-fb/pkg/life"
	"conway-fb/pkg/patterns"
)

// Simulation binds a grid and a framebuffer of the same size. The grid is
// advanced first, then copied into the framebuffer pixel by pixel.
type Simulation struct {
	grid  *life.Grid
	fb    *framebuffer.Framebuffer
	seeds []patterns.Seed

	random  bool
	rngSeed int64
	density float64
}

// NewSimulation builds a seeded simulation from cfg. The framebuffer holds the
// initial generation on return.
func NewSimulation(cfg *Config) (*Simulation, error) {
	live, dead, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	seeds, err := cfg.PatternSeeds()
	if err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}

	fb := framebuffer.New(cfg.Width, cfg.Height)
	fb.SetBackgroundColor(dead)

	s := &Simulation{
		grid:    life.New(cfg.Width, cfg.Height, live, dead),
		fb:      fb,
		seeds:   seeds,
		random:  cfg.Random,
		rngSeed: cfg.RNGSeed,
		density: cfg.Density,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the simulated grid.
func (s *Simulation) Grid() *life.Grid { return s.grid }

// Framebuffer returns the render target.
func (s *Simulation) Framebuffer() *framebuffer.Framebuffer { return s.fb }

// Reset clears the grid and reapplies the configured seeding.
func (s *Simulation) Reset() error {
	if s.random {
		s.grid.Randomize(s.rngSeed, s.density)
		s.Draw()
		return nil
	}
	s.grid.Clear()
	for _, seed := range s.seeds {
		pts, err := seed.Points()
		if err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		s.grid.ApplyPattern(pts)
	}
	s.Draw()
	return nil
}

// Randomize replaces the board with a random soup from seed.
func (s *Simulation) Randomize(seed int64) {
	s.grid.Randomize(seed, s.density)
	s.Draw()
}

// Tick advances one generation and redraws the framebuffer.
func (s *Simulation) Tick() {
	s.grid.NextGeneration()
	s.Draw()
}

// Draw copies the grid into the framebuffer.
func (s *Simulation) Draw() {
	render.DrawGrid(s.grid, s.fb)
}

// Snapshot writes the framebuffer to path as a PNG.
func (s *Simulation) Snapshot(path string) error {
	return s.fb.RenderToFile(path)
}

// Parameters reports the current state of the simulation.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.BoolParam("random", "Random soup", s.random),
			},
		},
		{
			Name: "Life",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", s.grid.Generation()),
				core.IntParam("population", "Population", s.grid.Population()),
			},
		},
	}}
}
