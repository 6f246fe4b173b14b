// Package life implements Conway's Game of Life (B3/S23) on a fixed-size
// toroidal grid.
package life

import (
	"image/color"

	"conway-fb/pkg/core"
)

// CellState is the state of a single cell.
type CellState uint8

const (
	// Dead cells are empty.
	Dead CellState = iota
	// Alive cells are populated.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Grid owns the cell states of a Game of Life board. Cells are stored in
// row-major order; the dimensions never change after construction.
type Grid struct {
	size core.Size
	cur  []CellState
	nxt  []CellState
	gen  int

	live color.Color
	dead color.Color
}

// New returns a grid of the given dimensions with every cell dead. Negative
// dimensions are treated as zero.
func New(w, h int, live, dead color.Color) *Grid {
	size := core.NewSize(w, h)
	return &Grid{
		size: size,
		cur:  make([]CellState, size.Area()),
		nxt:  make([]CellState, size.Area()),
		live: live,
		dead: dead,
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Generation returns the number of generations computed since construction
// or the last Clear/Randomize.
func (g *Grid) Generation() int { return g.gen }

// Cell returns the state at (x, y). ok is false when the coordinate lies
// outside the grid.
func (g *Grid) Cell(x, y int) (state CellState, ok bool) {
	if !g.size.Contains(x, y) {
		return Dead, false
	}
	return g.cur[g.size.Index(x, y)], true
}

// SetCell writes state at (x, y). Out of range coordinates are ignored.
func (g *Grid) SetCell(x, y int, state CellState) {
	if !g.size.Contains(x, y) {
		return
	}
	g.cur[g.size.Index(x, y)] = state
}

// ColorFor maps a state to its display colour.
func (g *Grid) ColorFor(state CellState) color.Color {
	if state == Alive {
		return g.live
	}
	return g.dead
}

// CountLiveNeighbors counts live cells in the Moore neighbourhood of (x, y),
// wrapping around the grid edges.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	if g.size.Empty() {
		return 0
	}
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.size.Wrap(x+dx, y+dy)
			if g.cur[g.size.Index(nx, ny)] == Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// NextGeneration advances the grid by one generation. Every transition reads
// the previous generation only; the new states are written to a second buffer
// that replaces the current one once complete.
func (g *Grid) NextGeneration() {
	if g.size.Empty() {
		return
	}
	w, h := g.size.W, g.size.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := g.size.Index(x, y)
			g.nxt[idx] = rule(g.cur[idx], g.CountLiveNeighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

func rule(state CellState, neighbors int) CellState {
	if neighbors == 3 || (state == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}

// ApplyPattern marks every listed point alive. Points outside the grid are
// dropped.
func (g *Grid) ApplyPattern(points []core.Point) {
	for _, p := range points {
		g.SetCell(p.X, p.Y, Alive)
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell and resets the generation counter.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
	g.gen = 0
}

// Randomize replaces the board with a deterministic random soup where each
// cell is alive with the given probability.
func (g *Grid) Randomize(seed int64, density float64) {
	rng := core.NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = Dead
		if rng.Chance(density) {
			g.cur[i] = Alive
		}
	}
	g.gen = 0
}

// States returns a copy of the current state sequence in row-major order.
func (g *Grid) States() []CellState {
	return append([]CellState(nil), g.cur...)
}
