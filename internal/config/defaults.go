package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/lunaris.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/lunaris.yaml.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Width:              1280,
			Height:             720,
			TickMs:             16,
			InputRadius:        20,
			GrowRate:           2,
			DefaultMaxAge:      3000,
			ExplosionParticles: 15,
			ParticleDecay:      0.05,
			TextDecay:          0.02,
			TextRise:           1,
			HitShake:           2,
			MissShake:          5,
			ShakeDecay:         0.9,
			CommentChance:      0.2,
		},
		Striker: StrikerConfig{
			Lives:           6,
			SpawnRate:       500,
			SpeedUp:         0.98,
			Margin:          100,
			ComboStarChance: 0.1,
			MaxAge:          1000,
			Drift:           2,
			ComboStep:       5,
			MaxMultiplier:   4,
		},
		Blitz: BlitzConfig{
			TimeLimit:     13,
			SpawnRate:     700,
			SpawnRateRamp: 400,
			BaseSpeed:     5,
			SpeedRamp:     4,
			MaxAge:        1200,
			MaxAgeRamp:    600,
			TimeOrbChance: 0.15,
			HitBonus:      2,
			OrbBonus:      5,
			MissPenalty:   5,
			Margin:        100,
		},
		Zen: ZenConfig{
			SpawnRate: 2000,
			MaxRadius: 40,
			MaxAge:    10000,
			Drift:     2,
			Margin:    100,
		},
		Hardcore: HardcoreConfig{
			SpawnRate:    600,
			MinSpawnRate: 400,
			SpeedUp:      0.99,
			MineChance:   0.2,
			Score:        20,
			Drift:        4,
			Margin:       100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60000, // one minute of play
			},
		},
		Companion: CompanionConfig{
			Enabled:         true,
			Endpoint:        "",
			Timeout:         5 * time.Second,
			MinInterval:     10 * time.Second,
			StallThreshold:  8 * time.Second,
			AmbientInterval: 25 * time.Second,
			AmbientChance:   0.5,
			Callouts:        false,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
