//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"conway-fb/internal/core"
	"conway-fb/internal/render"
	"conway-fb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	sim     *Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(cfg *Config, sim *Simulation) *Game {
	size := sim.Grid().Size()
	return &Game{
		cfg:     cfg,
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedStep(cfg.GPS),
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.snapshot()
	}

	if g.tickOnce || (!g.paused && g.clock.ShouldStep()) {
		g.sim.Tick()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) snapshot() {
	name := fmt.Sprintf("generation-%06d.png", g.sim.Grid().Generation())
	path := filepath.Join(g.cfg.SnapshotDir, name)
	if err := g.sim.Snapshot(path); err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("snapshot saved to %s", path)
}

// Draw renders the current framebuffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Framebuffer(), g.cfg.Scale)
	size := g.sim.Grid().Size()
	g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.sim.Grid().Size()
	return size.W*g.cfg.Scale + g.cfg.HUDWidth, size.H * g.cfg.Scale
}

// Run opens the window and blocks until it is closed. The final framebuffer
// is exported to cfg.Output afterwards.
func Run(cfg *Config) error {
	sim, err := NewSimulation(cfg)
	if err != nil {
		return err
	}
	game := New(cfg, sim)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if cfg.Output == "" {
		return nil
	}
	if err := sim.Snapshot(cfg.Output); err != nil {
		return err
	}
	log.Printf("image saved to %s", cfg.Output)
	return nil
}
