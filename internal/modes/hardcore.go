package modes

import (
	"math/rand"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/registry"
)

// Hardcore is survival with a single life. Missing a target ends the run,
// and so does touching a void mine. Mines may expire harmlessly.
type Hardcore struct {
	cfg config.HardcoreConfig
	rng *rand.Rand
}

// NewHardcore creates a Hardcore mode.
func NewHardcore(cfg config.HardcoreConfig, rng *rand.Rand) *Hardcore {
	return &Hardcore{cfg: cfg, rng: ensureRNG(rng)}
}

// Name returns the display name.
func (m *Hardcore) Name() string { return "HARDCORE" }

// Description returns the menu summary.
func (m *Hardcore) Description() string {
	return "Survival mode. One miss and you're out. How long can you last?"
}

// Init sets one life and no timer.
func (m *Hardcore) Init(s *game.GameState) {
	s.Lives = 1
	s.TimeLimit = 0
	s.SpawnRate = m.cfg.SpawnRate
}

// Update does nothing; Hardcore has no timers.
func (m *Hardcore) Update(*game.GameState, float64) {}

// SpawnTarget spawns a standard target or a void mine.
// MaxAge is left unset so the engine default applies.
func (m *Hardcore) SpawnTarget(width, height float64) *game.Target {
	x, y := spawnPoint(m.rng, width, height, m.cfg.Margin)

	typ := game.Standard
	if m.rng.Float64() < m.cfg.MineChance {
		typ = game.VoidMine
	}

	return &game.Target{
		X:         x,
		Y:         y,
		MaxRadius: typ.MaxRadius(),
		Color:     typeColor(m.rng, typ),
		Type:      typ,
		VX:        drift(m.rng, m.cfg.Drift),
		VY:        drift(m.rng, m.cfg.Drift),
	}
}

// OnTargetHit scores a standard target and speeds up spawning.
// Hitting a mine ends the run without score.
func (m *Hardcore) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	if t.Type == game.VoidMine {
		s.Lives = 0
		cues.Play(game.CueHazard)
		return
	}

	s.Score += m.cfg.Score
	cues.Play(game.CueHit)

	if s.SpawnRate > m.cfg.MinSpawnRate {
		s.SpawnRate *= m.cfg.SpeedUp
	}
}

// OnTargetMiss ends the run unless the expired target was a mine.
func (m *Hardcore) OnTargetMiss(t *game.Target, s *game.GameState, cues game.CueSink) {
	if t.Type != game.VoidMine {
		s.Lives = 0
		cues.Play(game.CueMiss)
	}
}

func init() {
	registry.Register("hardcore", func(rng *rand.Rand) game.Mode {
		return NewHardcore(activeConfig().Hardcore, rng)
	})
}
