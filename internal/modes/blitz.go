package modes

import (
	"math/rand"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/registry"
)

// Blitz is a time attack: hits buy seconds, misses cost them, and targets
// get faster and shorter-lived as the run goes on.
type Blitz struct {
	cfg        config.BlitzConfig
	ramp       *config.DifficultyRamp
	rng        *rand.Rand
	difficulty float64
}

// NewBlitz creates a Blitz mode ramping with the given difficulty settings.
func NewBlitz(cfg config.BlitzConfig, diff config.DifficultyConfig, rng *rand.Rand) *Blitz {
	return &Blitz{
		cfg:  cfg,
		ramp: config.NewDifficultyRamp(diff),
		rng:  ensureRNG(rng),
	}
}

// Name returns the display name.
func (m *Blitz) Name() string { return "BLITZ" }

// Description returns the menu summary.
func (m *Blitz) Description() string {
	return "Race against the clock! Targets spawn faster and disappear quicker as time goes on."
}

// Init sets infinite lives and a 13 second clock.
func (m *Blitz) Init(s *game.GameState) {
	s.Lives = game.InfiniteLives
	s.TimeLimit = m.cfg.TimeLimit
	s.TimeLeft = s.TimeLimit
	s.Score = 0
	s.Combo = 0
	m.difficulty = m.ramp.Level(0, 0)
	s.SpawnRate = m.spawnRate()
}

// Update runs the clock down and recomputes difficulty from elapsed time.
func (m *Blitz) Update(s *game.GameState, dt float64) {
	if s.TimeLeft > 0 {
		s.TimeLeft -= dt / 1000
	}

	m.difficulty = m.ramp.Level(s.Score, s.Elapsed())
	s.SpawnRate = m.spawnRate()
}

// Difficulty returns the level computed by the last Update.
func (m *Blitz) Difficulty() float64 {
	return m.difficulty
}

func (m *Blitz) spawnRate() float64 {
	return config.Lerp(m.cfg.SpawnRate, -m.cfg.SpawnRateRamp, m.difficulty)
}

// SpawnTarget spawns a fast target, or occasionally a time orb.
func (m *Blitz) SpawnTarget(width, height float64) *game.Target {
	x, y := spawnPoint(m.rng, width, height, m.cfg.Margin)

	typ := game.Standard
	if m.rng.Float64() < m.cfg.TimeOrbChance {
		typ = game.TimeOrb
	}
	color := typeColor(m.rng, typ)

	speed := config.Lerp(m.cfg.BaseSpeed, m.cfg.SpeedRamp, m.difficulty)
	maxAge := config.Lerp(m.cfg.MaxAge, -m.cfg.MaxAgeRamp, m.difficulty)

	return &game.Target{
		X:         x,
		Y:         y,
		MaxRadius: typ.MaxRadius(),
		Color:     color,
		Type:      typ,
		VX:        drift(m.rng, speed*2),
		VY:        drift(m.rng, speed*2),
		MaxAge:    maxAge,
	}
}

// OnTargetHit adds time and score. Time orbs add extra time.
// Remaining time is not capped.
func (m *Blitz) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	s.TimeLeft += m.cfg.HitBonus

	if t.Type == game.TimeOrb {
		s.TimeLeft += m.cfg.OrbBonus
		cues.Play(game.CueBonus)
	} else {
		cues.Play(game.CueHit)
	}

	s.Score += t.Type.Info().BaseScore
}

// OnTargetMiss costs time.
func (m *Blitz) OnTargetMiss(_ *game.Target, s *game.GameState, cues game.CueSink) {
	s.TimeLeft -= m.cfg.MissPenalty
	cues.Play(game.CueMiss)
}

func init() {
	registry.Register("blitz", func(rng *rand.Rand) game.Mode {
		cfg := activeConfig()
		return NewBlitz(cfg.Blitz, cfg.Difficulty, rng)
	})
}
