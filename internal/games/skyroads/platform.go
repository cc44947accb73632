package skyroads

import (
	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/engine"
)

// PlatformColor selects what happens when the ball touches a platform.
type PlatformColor int

const (
	PlatformBlue   PlatformColor = iota // No effect
	PlatformRed                         // Ends the run
	PlatformYellow                      // Burns fuel
	PlatformOrange                      // Forces max speed for a while
	PlatformGreen                       // Refuels
	PlatformWhite                       // Extra life
	PlatformPurple                      // Already used
)

// String returns the color name.
func (c PlatformColor) String() string {
	switch c {
	case PlatformBlue:
		return "blue"
	case PlatformRed:
		return "red"
	case PlatformYellow:
		return "yellow"
	case PlatformOrange:
		return "orange"
	case PlatformGreen:
		return "green"
	case PlatformWhite:
		return "white"
	case PlatformPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// ScreenColor maps the platform color to a terminal color.
func (c PlatformColor) ScreenColor() core.Color {
	switch c {
	case PlatformRed:
		return core.ColorRed
	case PlatformYellow:
		return core.ColorYellow
	case PlatformOrange:
		return core.ColorOrange
	case PlatformGreen:
		return core.ColorGreen
	case PlatformWhite:
		return core.ColorBrightWhite
	case PlatformPurple:
		return core.ColorPurple
	default:
		return core.ColorBlue
	}
}

// HasEffect reports whether touching the platform changes the run.
func (c PlatformColor) HasEffect() bool {
	return c != PlatformBlue && c != PlatformPurple
}

// Platform is a road tile: a box object plus its gameplay color.
type Platform struct {
	Object *engine.Object
	Color  PlatformColor
	Lane   int
	Moving bool
}

// Top returns the Y of the platform's upper face.
func (p *Platform) Top() float64 {
	return p.Object.Position().Y() + p.Object.Extents().Y()
}
