package core

import "time"

// Fallbacks used by RuntimeConfig.WithDefaults.
const (
	DefaultTickRate = 60
	DefaultScreenW  = 80
	DefaultScreenH  = 24
)

// RuntimeConfig is what the platform hands a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 asks WithDefaults for a time-based seed
}

// WithDefaults fills zero or negative fields. A zero seed becomes the
// current time, so call sites that need a reproducible run must set one.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Reseed returns c with a fresh time-based seed.
func (c RuntimeConfig) Reseed() RuntimeConfig {
	c.Seed = time.Now().UnixNano()
	return c
}

// DeltaTime is the fixed tick length in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game's status the platform acts on.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is what Game.Step reports after one tick.
type StepResult struct {
	State GameState
}
