package modes

import (
	"math/rand"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/registry"
)

// Striker rewards unbroken hit streaks with a score multiplier.
// Every miss breaks the streak and costs a life.
type Striker struct {
	cfg config.StrikerConfig
	rng *rand.Rand
}

// NewStriker creates a Striker mode.
func NewStriker(cfg config.StrikerConfig, rng *rand.Rand) *Striker {
	return &Striker{cfg: cfg, rng: ensureRNG(rng)}
}

// Name returns the display name.
func (m *Striker) Name() string { return "STRIKER" }

// Description returns the menu summary.
func (m *Striker) Description() string {
	return "Build your combo by hitting targets. Avoid missing to keep your streak alive!"
}

// Init sets six lives, no timer and the base spawn rate.
func (m *Striker) Init(s *game.GameState) {
	s.Lives = m.cfg.Lives
	s.TimeLimit = 0
	s.Score = 0
	s.Combo = 0
	s.SpawnRate = m.cfg.SpawnRate
}

// Update does nothing; Striker has no timers.
func (m *Striker) Update(*game.GameState, float64) {}

// SpawnTarget spawns a standard target, or occasionally a combo star.
func (m *Striker) SpawnTarget(width, height float64) *game.Target {
	x, y := spawnPoint(m.rng, width, height, m.cfg.Margin)

	typ := game.Standard
	if m.rng.Float64() < m.cfg.ComboStarChance {
		typ = game.ComboStar
	}

	return &game.Target{
		X:         x,
		Y:         y,
		MaxRadius: typ.MaxRadius(),
		Color:     typeColor(m.rng, typ),
		Type:      typ,
		VX:        drift(m.rng, m.cfg.Drift),
		VY:        drift(m.rng, m.cfg.Drift),
		MaxAge:    m.cfg.MaxAge,
	}
}

// Multiplier returns the score multiplier for a combo count.
func (m *Striker) Multiplier(combo int) int {
	step := m.cfg.ComboStep
	if step <= 0 {
		step = 5
	}
	return min(combo/step+1, m.cfg.MaxMultiplier)
}

// OnTargetHit extends the combo and scores base points times the multiplier.
func (m *Striker) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	s.Combo++
	s.Score += t.Type.Info().BaseScore * m.Multiplier(s.Combo)

	// Speed up near every hundred points
	if s.Score%100 < 20 && s.SpawnRate > m.cfg.SpawnRate {
		s.SpawnRate *= m.cfg.SpeedUp
	}

	if t.Type == game.ComboStar {
		cues.Play(game.CueBonus)
	} else {
		cues.Play(game.CueHit)
	}
}

// OnTargetMiss breaks the combo and costs a life.
func (m *Striker) OnTargetMiss(_ *game.Target, s *game.GameState, cues game.CueSink) {
	s.Combo = 0
	s.Lives--
	cues.Play(game.CueMiss)
}

func init() {
	registry.Register("striker", func(rng *rand.Rand) game.Mode {
		return NewStriker(activeConfig().Striker, rng)
	})
}
