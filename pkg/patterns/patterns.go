// Package patterns is a catalogue of named Game of Life seeds. Each pattern is
// a function of an (x, y) offset returning the cells to mark alive.
package patterns

import (
	"sort"

	"conway-fb/pkg/core"
)

// Func produces the live cells of a pattern translated by (offsetX, offsetY).
type Func func(offsetX, offsetY int) []core.Point

var registry = map[string]Func{}

// Register adds a pattern under the provided name, replacing any previous
// entry. Empty names and nil functions are ignored.
func Register(name string, f Func) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func translate(offsetX, offsetY int, cells ...core.Point) []core.Point {
	out := make([]core.Point, len(cells))
	for i, c := range cells {
		out[i] = core.Pt(c.X+offsetX, c.Y+offsetY)
	}
	return out
}

// Glider travels one cell diagonally towards +x,+y every four generations.
func Glider(offsetX, offsetY int) []core.Point {
	return translate(offsetX, offsetY,
		core.Pt(1, 0),
		core.Pt(2, 1),
		core.Pt(0, 2), core.Pt(1, 2), core.Pt(2, 2),
	)
}

// SmallExploder is a seven cell methuselah that expands symmetrically.
func SmallExploder(offsetX, offsetY int) []core.Point {
	return translate(offsetX, offsetY,
		core.Pt(1, 0),
		core.Pt(0, 1), core.Pt(1, 1), core.Pt(2, 1),
		core.Pt(0, 2), core.Pt(2, 2),
		core.Pt(1, 3),
	)
}

// TenCellRow is ten horizontally adjacent cells.
func TenCellRow(offsetX, offsetY int) []core.Point {
	cells := make([]core.Point, 10)
	for i := range cells {
		cells[i] = core.Pt(i, 0)
	}
	return translate(offsetX, offsetY, cells...)
}

// RPentomino is the classic five cell methuselah.
func RPentomino(offsetX, offsetY int) []core.Point {
	return translate(offsetX, offsetY,
		core.Pt(1, 0), core.Pt(2, 0),
		core.Pt(0, 1), core.Pt(1, 1),
		core.Pt(1, 2),
	)
}

// Blinker is a period two oscillator, horizontal in its initial phase.
func Blinker(offsetX, offsetY int) []core.Point {
	return translate(offsetX, offsetY, core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0))
}

func init() {
	Register("glider", Glider)
	Register("small-exploder", SmallExploder)
	Register("ten-cell-row", TenCellRow)
	Register("r-pentomino", RPentomino)
	Register("blinker", Blinker)
}
