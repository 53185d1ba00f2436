// Package game defines the contract between the entity engine and the
// pluggable rule-sets that drive it, plus the narrow collaborator
// interfaces (audio cues, cosmetic theme) both sides share.
package game

import "github.com/vovakirdan/lunaris/internal/core"

// Mode is a rule-set. It decides pacing, spawning and scoring; the engine
// owns entities, physics and lifecycle.
type Mode interface {
	// Name returns the display name (e.g. "BLITZ").
	Name() string

	// Description returns a one-line summary shown in menus.
	Description() string

	// Init sets lives, timers and spawn rate on a fresh state.
	Init(s *GameState)

	// Update advances mode timers by dt milliseconds.
	Update(s *GameState, dt float64)

	// SpawnTarget proposes a new target inside a width x height field.
	// Returning nil declines the spawn.
	SpawnTarget(width, height float64) *Target

	// OnTargetHit is called once when a tracked point eliminates t.
	OnTargetHit(t *Target, s *GameState, cues CueSink)

	// OnTargetMiss is called once when t expires without being hit.
	OnTargetMiss(t *Target, s *GameState, cues CueSink)
}

// Cue names a sound effect.
type Cue string

const (
	CueHit      Cue = "hit"
	CueMiss     Cue = "miss"
	CueBonus    Cue = "bonus"
	CueHazard   Cue = "hazard"
	CueGameOver Cue = "gameover"
	CueEquip    Cue = "equip"
)

// AllCues lists every cue.
var AllCues = []Cue{CueHit, CueMiss, CueBonus, CueHazard, CueGameOver, CueEquip}

// CueSink plays sound cues. Play must not block.
type CueSink interface {
	Play(c Cue)
}

// NopCues is a CueSink that ignores everything.
type NopCues struct{}

// Play does nothing.
func (NopCues) Play(Cue) {}

// MultiCues fans a cue out to several sinks in order. Nil entries are skipped.
type MultiCues []CueSink

// Play forwards the cue to every sink.
func (m MultiCues) Play(c Cue) {
	for _, s := range m {
		if s != nil {
			s.Play(c)
		}
	}
}

// Theme is the cosmetic color set of the equipped skin.
type Theme struct {
	Primary  core.Color
	Glow     core.Color
	Particle core.Color
}

// ThemeSource reports the active theme.
type ThemeSource interface {
	ActiveTheme() Theme
}

// CueRecorder records played cues in order. Handy in tests.
type CueRecorder struct {
	Cues []Cue
}

// Play appends c.
func (r *CueRecorder) Play(c Cue) {
	r.Cues = append(r.Cues, c)
}

// Last returns the most recent cue or "".
func (r *CueRecorder) Last() Cue {
	if len(r.Cues) == 0 {
		return ""
	}
	return r.Cues[len(r.Cues)-1]
}
