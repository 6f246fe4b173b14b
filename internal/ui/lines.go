package ui

import (
	"conway-fb/internal/core"
)

// ParameterProvider exposes a snapshot of displayable values.
type ParameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Lines flattens a snapshot into the text rows drawn by the HUD: a header per
// group followed by indented "Label: value" rows, then the key help.
func Lines(snap core.ParameterSnapshot, paused bool) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, "  "+p.Label+": "+p.Value)
		}
	}
	state := "running"
	if paused {
		state = "paused"
	}
	lines = append(lines, "", state, "")
	return append(lines, keyHelp...)
}

var keyHelp = []string{
	"space  pause",
	"n      step",
	"r      reset",
	"s      soup",
	"p      snapshot",
	"q      quit",
}
