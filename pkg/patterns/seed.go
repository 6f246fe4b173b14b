package patterns

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"conway-fb/pkg/core"
)

// ErrUnknownPattern is returned when a seed names an unregistered pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// Seed places a named pattern at an offset.
type Seed struct {
	Name string
	X, Y int
}

func (s Seed) String() string {
	return fmt.Sprintf("%s@%d,%d", s.Name, s.X, s.Y)
}

// Points expands the seed into grid coordinates.
func (s Seed) Points() ([]core.Point, error) {
	f, ok := Lookup(s.Name)
	if !ok {
		return nil, fmt.Errorf("seed %q: %w", s.Name, ErrUnknownPattern)
	}
	return f(s.X, s.Y), nil
}

// ParseSeed parses a seed in the form "name@x,y" or "name@x:y".
func ParseSeed(v string) (Seed, error) {
	name, pos, ok := strings.Cut(strings.TrimSpace(v), "@")
	if !ok || name == "" {
		return Seed{}, fmt.Errorf("parse seed %q: expected name@x,y", v)
	}
	sep := strings.IndexAny(pos, ",:")
	if sep < 0 {
		return Seed{}, fmt.Errorf("parse seed %q: expected name@x,y", v)
	}
	xs, ys := pos[:sep], pos[sep+1:]
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %q: x: %w", v, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %q: y: %w", v, err)
	}
	if _, ok := Lookup(name); !ok {
		return Seed{}, fmt.Errorf("parse seed %q: %w", v, ErrUnknownPattern)
	}
	return Seed{Name: name, X: x, Y: y}, nil
}

// DefaultSeeds returns the start-up layout for a w*h board, arranged around
// the centre.
func DefaultSeeds(w, h int) []Seed {
	cx, cy := w/2, h/2
	return []Seed{
		{Name: "glider", X: 1, Y: 1},
		{Name: "small-exploder", X: cx - 25, Y: cy - 20},
		{Name: "ten-cell-row", X: cx - 5, Y: cy},
		{Name: "r-pentomino", X: cx, Y: cy + 30},
		{Name: "blinker", X: cx + 5, Y: cy - 10},
	}
}
