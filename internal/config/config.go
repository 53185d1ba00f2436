// Package config provides YAML-based configuration loading and
// difficulty management for Lunaris.
package config

import "time"

// Config is the full tunable configuration of the engine, the modes
// and the platform collaborators.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Striker    StrikerConfig    `yaml:"striker"`
	Blitz      BlitzConfig      `yaml:"blitz"`
	Zen        ZenConfig        `yaml:"zen"`
	Hardcore   HardcoreConfig   `yaml:"hardcore"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Companion  CompanionConfig  `yaml:"companion"`
	Audio      AudioConfig      `yaml:"audio"`
}

// EngineConfig defines the shared physics and juice parameters.
type EngineConfig struct {
	Width              float64 `yaml:"width"`               // Logical field width
	Height             float64 `yaml:"height"`              // Logical field height
	TickMs             float64 `yaml:"tick_ms"`             // Fixed dt handed to modes
	InputRadius        float64 `yaml:"input_radius"`        // Contact radius of a tracked point
	GrowRate           float64 `yaml:"grow_rate"`           // Radius growth per tick
	DefaultMaxAge      float64 `yaml:"default_max_age"`     // ms, for targets without MaxAge
	ExplosionParticles int     `yaml:"explosion_particles"` // Particles per hit
	ParticleDecay      float64 `yaml:"particle_decay"`      // Life lost per tick
	TextDecay          float64 `yaml:"text_decay"`          // Life lost per tick
	TextRise           float64 `yaml:"text_rise"`           // Upward drift per tick
	HitShake           float64 `yaml:"hit_shake"`           // Shake pulse amount on hit
	MissShake          float64 `yaml:"miss_shake"`          // Shake pulse amount on expiry
	ShakeDecay         float64 `yaml:"shake_decay"`         // Per-tick shake multiplier
	CommentChance      float64 `yaml:"comment_chance"`      // Chance of a companion remark per hit
}

// StrikerConfig defines the Striker rule-set.
type StrikerConfig struct {
	Lives           int     `yaml:"lives"`
	SpawnRate       float64 `yaml:"spawn_rate"`        // ms
	SpeedUp         float64 `yaml:"speed_up"`          // spawnRate multiplier on milestones
	Margin          float64 `yaml:"margin"`            // Spawn margin from field edges
	ComboStarChance float64 `yaml:"combo_star_chance"` // Probability of a COMBO_STAR
	MaxAge          float64 `yaml:"max_age"`           // ms
	Drift           float64 `yaml:"drift"`             // Velocity spread
	ComboStep       int     `yaml:"combo_step"`        // Combo hits per multiplier step
	MaxMultiplier   int     `yaml:"max_multiplier"`
}

// BlitzConfig defines the Blitz rule-set.
type BlitzConfig struct {
	TimeLimit     float64 `yaml:"time_limit"`      // seconds
	SpawnRate     float64 `yaml:"spawn_rate"`      // ms at difficulty 0
	SpawnRateRamp float64 `yaml:"spawn_rate_ramp"` // ms removed at difficulty 1
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedRamp     float64 `yaml:"speed_ramp"`
	MaxAge        float64 `yaml:"max_age"`      // ms at difficulty 0
	MaxAgeRamp    float64 `yaml:"max_age_ramp"` // ms removed at difficulty 1
	TimeOrbChance float64 `yaml:"time_orb_chance"`
	HitBonus      float64 `yaml:"hit_bonus"`    // seconds added per hit
	OrbBonus      float64 `yaml:"orb_bonus"`    // extra seconds for a TIME_ORB
	MissPenalty   float64 `yaml:"miss_penalty"` // seconds removed per miss
	Margin        float64 `yaml:"margin"`
}

// ZenConfig defines the Zen rule-set.
type ZenConfig struct {
	SpawnRate float64 `yaml:"spawn_rate"` // ms
	MaxRadius float64 `yaml:"max_radius"`
	MaxAge    float64 `yaml:"max_age"` // ms
	Drift     float64 `yaml:"drift"`
	Margin    float64 `yaml:"margin"`
}

// HardcoreConfig defines the Hardcore rule-set.
type HardcoreConfig struct {
	SpawnRate    float64 `yaml:"spawn_rate"`     // ms
	MinSpawnRate float64 `yaml:"min_spawn_rate"` // speed-up stops at this rate
	SpeedUp      float64 `yaml:"speed_up"`       // spawnRate multiplier per hit
	MineChance   float64 `yaml:"mine_chance"`
	Score        int     `yaml:"score"` // points per standard hit
	Drift        float64 `yaml:"drift"`
	Margin       float64 `yaml:"margin"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or elapsed ms at which max difficulty is reached
}

// CompanionConfig defines the commentary companion.
type CompanionConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Endpoint        string        `yaml:"endpoint"` // Empty uses the built-in line pool
	Timeout         time.Duration `yaml:"timeout"`
	MinInterval     time.Duration `yaml:"min_interval"`
	StallThreshold  time.Duration `yaml:"stall_threshold"`
	AmbientInterval time.Duration `yaml:"ambient_interval"`
	AmbientChance   float64       `yaml:"ambient_chance"`
	Callouts        bool          `yaml:"callouts"` // Caption a pool line for each sound cue
}

// AudioConfig defines the sound cue output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0..1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// The empty string yields "" (keep config values).
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return DifficultyPreset(s), true
	default:
		return "", false
	}
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
