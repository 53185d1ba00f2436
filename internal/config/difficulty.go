package config

import "math"

// DifficultyRamp maps run progress to a difficulty level in [initial, 1].
type DifficultyRamp struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyRamp creates a new difficulty ramp.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	return &DifficultyRamp{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyRamp) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from score or
// elapsed milliseconds, depending on the progression type.
func (d *DifficultyRamp) Level(score int, elapsedMs int64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(elapsedMs) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Lerp interpolates base toward base+delta by level.
func Lerp(base, delta, level float64) float64 {
	return base + delta*level
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
