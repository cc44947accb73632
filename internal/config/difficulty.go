package config

import "math"

// Progression types.
const (
	ProgressScore = "score" // Level rises with the distance travelled
	ProgressTime  = "time"  // Level rises with simulated ticks
	ProgressNone  = "none"
)

// DifficultyManager turns run progress into a difficulty level in [0, 1].
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: unit(cfg.InitialLevel),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = unit(level)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// progress returns how far along the progression the run is, in [0, 1].
// ok is false when the level stays at its initial value.
func (d *DifficultyManager) progress(score, ticks int) (p float64, ok bool) {
	if !d.IsEnabled() {
		return 0, false
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	switch d.cfg.Progression.Type {
	case ProgressScore:
		return unit(float64(score) / maxAt), true
	case ProgressTime:
		return unit(float64(ticks) / maxAt), true
	}
	return 0, false
}

// Level returns the difficulty level for the given score and tick count.
// It moves linearly from the initial level up to 1.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	p, ok := d.progress(score, ticks)
	if !ok {
		return d.initialLevel
	}
	return d.initialLevel + p*(1-d.initialLevel)
}

// At captures the difficulty for the given moment of a run.
func (d *DifficultyManager) At(score, ticks int) Snapshot {
	return Snapshot{
		Level:   d.Level(score, ticks),
		scaling: d.cfg.Scaling,
	}
}

// Snapshot is the difficulty at one moment of a run.
type Snapshot struct {
	Level   float64
	scaling ScalingConfig
}

// Speed scales a speed: base at level 0 up to base*(1+speed_multiplier).
func (s Snapshot) Speed(base float64) float64 {
	return base * (1 + s.Level*s.scaling.SpeedMultiplier)
}

// HazardWeight scales the spawn weight of a harmful platform color.
func (s Snapshot) HazardWeight(base float64) float64 {
	return base * (1 + s.Level*s.scaling.HazardMultiplier)
}

// RowGap widens the gap between platform rows. Never negative.
func (s Snapshot) RowGap(base float64) float64 {
	return math.Max(0, base+s.Level*s.scaling.GapIncrease)
}

// SwayChance is the probability that a new platform moves sideways.
func (s Snapshot) SwayChance() float64 {
	return unit(s.Level * s.scaling.SwayChance)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
