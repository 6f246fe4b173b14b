//go:build !ebiten

package app

// Run reports that the window is unavailable in the headless build.
func Run(*Config) error { return ErrNoWindow }
