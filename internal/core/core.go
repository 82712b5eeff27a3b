// Package core provides fundamental types shared by the display host and its
// plugins. It contains no external dependencies (especially no Bubble Tea) so
// plugin logic stays pure and testable.
package core

// HostConfig is passed to plugins at initialization. Plugins use it to adapt
// to the display size and for deterministic simulation.
type HostConfig struct {
	ScreenW  int   // Display width in cells
	ScreenH  int   // Display height in cells
	TickRate int   // Update ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the host seeds from the clock
}

// DefaultHostConfig returns a HostConfig with sensible defaults.
func DefaultHostConfig() HostConfig {
	return HostConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 30,
	}
}

// Status is returned by a plugin after each update tick.
type Status struct {
	Score  int  // Current score, persisted by the host on completion
	Done   bool // The plugin's game has ended
	Paused bool // The plugin is paused or otherwise not simulating
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
