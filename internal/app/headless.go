package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/logrusorgru/aurora"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("windowed mode requires building with the 'ebiten' tag")

// RunHeadless runs cfg.Generations generations without a window, reporting
// progress to out, and exports the final framebuffer to cfg.Output. Only the
// export can fail.
func RunHeadless(cfg *Config, out io.Writer) error {
	sim, err := NewSimulation(cfg)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(!cfg.NoColor)

	fmt.Fprintf(out, "%s %dx%d, %d generations, population %d\n",
		au.Bold("Game of Life"), cfg.Width, cfg.Height, cfg.Generations, sim.Grid().Population())

	start := time.Now()
	for i := 0; i < cfg.Generations; i++ {
		sim.Tick()
		gen := sim.Grid().Generation()
		if cfg.Progress > 0 && gen%cfg.Progress == 0 {
			fmt.Fprintf(out, "  generation %s population %s\n",
				au.Cyan(gen), au.Green(sim.Grid().Population()))
		}
	}
	elapsed := time.Since(start).Round(time.Millisecond)
	fmt.Fprintf(out, "Finished generation %d in %s, population %d\n",
		sim.Grid().Generation(), elapsed, sim.Grid().Population())

	if cfg.Output == "" {
		return nil
	}
	if err := sim.Snapshot(cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Image saved to %s\n", au.Yellow(cfg.Output))
	return nil
}
