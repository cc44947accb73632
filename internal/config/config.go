// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the Skyroads runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Fuel       RunnerFuel       `yaml:"fuel"`
	Lives      RunnerLives      `yaml:"lives"`
	Track      RunnerTrack      `yaml:"track"`
	Camera     RunnerCamera     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines world-level physics parameters.
type RunnerPhysics struct {
	Gravity    float64 `yaml:"gravity"`     // Downward acceleration magnitude, units/s²
	KillHeight float64 `yaml:"kill_height"` // Falling below this Y ends the run
}

// RunnerPlayer defines the player ball.
type RunnerPlayer struct {
	Radius       float64 `yaml:"radius"`
	Drag         float64 `yaml:"drag"`
	GravityCoef  float64 `yaml:"gravity_coef"`
	LateralSpeed float64 `yaml:"lateral_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	StartHeight  float64 `yaml:"start_height"`
}

// RunnerSpeed defines forward speed limits, in units per second.
type RunnerSpeed struct {
	Min            float64 `yaml:"min"`
	Max            float64 `yaml:"max"`
	Initial        float64 `yaml:"initial"`
	Step           float64 `yaml:"step"`
	ForcedDuration float64 `yaml:"forced_duration"` // Seconds an orange platform locks max speed
}

// RunnerFuel defines the fuel tank.
type RunnerFuel struct {
	Max  float64 `yaml:"max"`
	Flow float64 `yaml:"flow"` // Drained per second
	Loss float64 `yaml:"loss"` // Lost on a yellow platform
	Gain float64 `yaml:"gain"` // Gained on a green platform
}

// RunnerLives defines the life counter.
type RunnerLives struct {
	Initial int `yaml:"initial"`
	Max     int `yaml:"max"`
}

// RunnerTrack defines platform layout and generation.
type RunnerTrack struct {
	Lanes          []float64    `yaml:"lanes"`
	PlatformWidth  float64      `yaml:"platform_width"`
	PlatformHeight float64      `yaml:"platform_height"`
	PlatformLength float64      `yaml:"platform_length"`
	RowGap         float64      `yaml:"row_gap"`        // Empty space between consecutive rows
	ViewAhead      float64      `yaml:"view_ahead"`     // Rows are kept spawned this far ahead
	CullBehind     float64      `yaml:"cull_behind"`    // Platforms further behind are removed
	EmptyChance    float64      `yaml:"empty_chance"`   // Chance a lane is left empty
	SwayAmplitude  float64      `yaml:"sway_amplitude"` // Lateral reach of a moving platform
	SwayFrequency  float64      `yaml:"sway_frequency"` // Oscillations per second
	Weights        ColorWeights `yaml:"weights"`
}

// ColorWeights are relative spawn weights per platform color.
type ColorWeights struct {
	Blue   float64 `yaml:"blue"`
	Red    float64 `yaml:"red"`
	Yellow float64 `yaml:"yellow"`
	Orange float64 `yaml:"orange"`
	Green  float64 `yaml:"green"`
	White  float64 `yaml:"white"`
}

// RunnerCamera defines the camera.
type RunnerCamera struct {
	Mode    string  `yaml:"mode"` // "third" or "first"
	MinFOV  float64 `yaml:"min_fov"`
	MaxFOV  float64 `yaml:"max_fov"`
	OffsetY float64 `yaml:"offset_y"` // Third person offset above the player
	OffsetZ float64 `yaml:"offset_z"` // Third person offset behind the player
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to the speed range at max difficulty
	HazardMultiplier float64 `yaml:"hazard_multiplier"` // Added to red/yellow weights at max difficulty
	GapIncrease      float64 `yaml:"gap_increase"`      // Extra row gap at max difficulty
	SwayChance       float64 `yaml:"sway_chance"`       // Chance a platform moves at max difficulty
}

// Sum returns the total of all weights.
func (w ColorWeights) Sum() float64 {
	return w.Blue + w.Red + w.Yellow + w.Orange + w.Green + w.White
}

// Validate checks the config for values the game cannot run with.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Physics.Gravity < 0:
		return errors.New("config: physics.gravity must not be negative")
	case c.Player.Radius <= 0:
		return errors.New("config: player.radius must be positive")
	case c.Player.Drag < 0:
		return errors.New("config: player.drag must not be negative")
	case c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min:
		return fmt.Errorf("config: speed range [%g, %g] is invalid", c.Speed.Min, c.Speed.Max)
	case c.Speed.Initial < c.Speed.Min || c.Speed.Initial > c.Speed.Max:
		return fmt.Errorf("config: speed.initial %g outside [%g, %g]", c.Speed.Initial, c.Speed.Min, c.Speed.Max)
	case c.Speed.Step <= 0:
		return errors.New("config: speed.step must be positive")
	case c.Fuel.Max <= 0:
		return errors.New("config: fuel.max must be positive")
	case c.Fuel.Flow < 0 || c.Fuel.Loss < 0 || c.Fuel.Gain < 0:
		return errors.New("config: fuel amounts must not be negative")
	case c.Lives.Initial <= 0 || c.Lives.Max < c.Lives.Initial:
		return fmt.Errorf("config: lives initial %d / max %d are invalid", c.Lives.Initial, c.Lives.Max)
	case len(c.Track.Lanes) == 0:
		return errors.New("config: track.lanes must not be empty")
	case c.Track.PlatformWidth <= 0 || c.Track.PlatformHeight <= 0 || c.Track.PlatformLength <= 0:
		return errors.New("config: platform extents must be positive")
	case c.Track.RowGap < 0 || c.Track.ViewAhead <= 0 || c.Track.CullBehind < 0:
		return errors.New("config: track distances are invalid")
	case c.Track.EmptyChance < 0 || c.Track.EmptyChance > 1:
		return errors.New("config: track.empty_chance must be within [0, 1]")
	case c.Camera.MinFOV <= 0 || c.Camera.MaxFOV >= 180 || c.Camera.MaxFOV < c.Camera.MinFOV:
		return fmt.Errorf("config: fov range [%g, %g] is invalid", c.Camera.MinFOV, c.Camera.MaxFOV)
	case c.Camera.Mode != "third" && c.Camera.Mode != "first":
		return fmt.Errorf("config: unknown camera mode %q", c.Camera.Mode)
	}
	return c.Track.Weights.validate()
}

func (w ColorWeights) validate() error {
	for _, v := range []float64{w.Blue, w.Red, w.Yellow, w.Orange, w.Green, w.White} {
		if v < 0 {
			return errors.New("config: platform weights must not be negative")
		}
	}
	if w.Sum()-w.Red <= 0 {
		return errors.New("config: at least one non-red platform weight must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the selectable presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset maps a name to a preset. Unknown names return "".
func ParsePreset(name string) DifficultyPreset {
	for _, p := range Presets {
		if string(p) == name {
			return p
		}
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
