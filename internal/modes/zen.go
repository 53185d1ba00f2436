package modes

import (
	"math/rand"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/registry"
)

// Zen is a practice mode: slow flow orbs, no clock and no penalties.
type Zen struct {
	cfg config.ZenConfig
	rng *rand.Rand
}

// NewZen creates a Zen mode.
func NewZen(cfg config.ZenConfig, rng *rand.Rand) *Zen {
	return &Zen{cfg: cfg, rng: ensureRNG(rng)}
}

// Name returns the display name.
func (m *Zen) Name() string { return "ZEN" }

// Description returns the menu summary.
func (m *Zen) Description() string {
	return "Relax and practice. No time limit, no score pressure. Just flow."
}

// Init sets infinite lives and no clock.
func (m *Zen) Init(s *game.GameState) {
	s.Lives = game.InfiniteLives
	s.TimeLimit = 0
	s.SpawnRate = m.cfg.SpawnRate
}

// Update does nothing; Zen never ends on its own.
func (m *Zen) Update(*game.GameState, float64) {}

// SpawnTarget spawns a slow drifting flow orb.
func (m *Zen) SpawnTarget(width, height float64) *game.Target {
	x, y := spawnPoint(m.rng, width, height, m.cfg.Margin)

	return &game.Target{
		X:         x,
		Y:         y,
		MaxRadius: m.cfg.MaxRadius,
		Color:     game.FlowOrb.Info().Color,
		Type:      game.FlowOrb,
		VX:        drift(m.rng, m.cfg.Drift),
		VY:        drift(m.rng, m.cfg.Drift),
		MaxAge:    m.cfg.MaxAge,
	}
}

// OnTargetHit scores the orb's base points.
func (m *Zen) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	s.Score += t.Type.Info().BaseScore
	cues.Play(game.CueBonus)
}

// OnTargetMiss carries no penalty.
func (m *Zen) OnTargetMiss(*game.Target, *game.GameState, game.CueSink) {}

func init() {
	registry.Register("zen", func(rng *rand.Rand) game.Mode {
		return NewZen(activeConfig().Zen, rng)
	})
}
