package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RunnerFile is the config file name looked up in the config directories.
const RunnerFile = "skyroads.yaml"

// searchPaths lists the implicit config locations, most specific first:
// ~/.arcade/configs then ./configs.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", RunnerFile))
	}
	return append(paths, filepath.Join("configs", RunnerFile))
}

// LoadRunner returns the runner configuration. An explicit path must load
// cleanly. Otherwise the first usable file from searchPaths wins, and the
// embedded defaults are used when there is none.
//
// Files are layered over DefaultRunnerConfig, so omitted keys keep their
// defaults.
func LoadRunner(path string) (RunnerConfig, error) {
	if path != "" {
		cfg, err := readRunner(path)
		if err != nil {
			return DefaultRunnerConfig(), err
		}
		return cfg, nil
	}

	for _, p := range searchPaths() {
		if cfg, err := readRunner(p); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseRunner(defaultRunnerYAML); err == nil {
		return cfg, nil
	}
	return DefaultRunnerConfig(), nil
}

func readRunner(path string) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := parseRunner(data)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// parseRunner decodes data over the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, cfg.Validate()
}

// MarshalRunner encodes cfg as YAML.
func MarshalRunner(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// presetTuning is what a preset changes besides the difficulty level.
type presetTuning struct {
	lives    int
	flowMult float64
}

var presetTunings = map[DifficultyPreset]presetTuning{
	DifficultyEasy: {lives: 5, flowMult: 0.75},
	DifficultyHard: {lives: 2, flowMult: 1.5},
}

// ApplyRunnerPreset applies a difficulty preset to cfg. Fixed turns
// progression off. Easy and hard also change lives and fuel use.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	t, ok := presetTunings[preset]
	if !ok {
		return
	}
	cfg.Lives.Initial = t.lives
	cfg.Lives.Max = max(cfg.Lives.Max, t.lives)
	cfg.Fuel.Flow *= t.flowMult
}
