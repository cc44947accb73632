package config

import (
	_ "embed"
)

//go:embed defaults/skyroads.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:    9.8,
			KillHeight: -6,
		},
		Player: RunnerPlayer{
			Radius:       0.25,
			Drag:         2,
			GravityCoef:  1,
			LateralSpeed: 4,
			JumpSpeed:    5,
			StartHeight:  0.25,
		},
		Speed: RunnerSpeed{
			Min:            4,
			Max:            16,
			Initial:        6,
			Step:           1,
			ForcedDuration: 3,
		},
		Fuel: RunnerFuel{
			Max:  100,
			Flow: 4,
			Loss: 15,
			Gain: 20,
		},
		Lives: RunnerLives{
			Initial: 3,
			Max:     5,
		},
		Track: RunnerTrack{
			Lanes:          []float64{-1.5, 0, 1.5},
			PlatformWidth:  1,
			PlatformHeight: 0.25,
			PlatformLength: 20,
			RowGap:         2,
			ViewAhead:      120,
			CullBehind:     15,
			EmptyChance:    0.2,
			SwayAmplitude:  0.5,
			SwayFrequency:  0.5,
			Weights: ColorWeights{
				Blue:   10,
				Red:    1,
				Yellow: 3,
				Orange: 1.5,
				Green:  2,
				White:  0.5,
			},
		},
		Camera: RunnerCamera{
			Mode:    "third",
			MinFOV:  60,
			MaxFOV:  90,
			OffsetY: 0.5,
			OffsetZ: 3.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				HazardMultiplier: 2,
				GapIncrease:      2,
				SwayChance:       0.3,
			},
		},
	}
}
