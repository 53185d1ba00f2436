// Package engine runs the Lunaris entity simulation: it owns targets,
// particles, floating texts, the shared game state and the screen-shake
// accumulator, and drives the active mode once per tick.
//
// The engine is single-threaded and deterministic for a given seed and
// sequence of now values. It never reads a clock.
package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
)

// Commentator receives short gameplay events for commentary.
// Comment must return immediately.
type Commentator interface {
	Comment(event string)
}

// Engine is the tick-driven entity engine.
type Engine struct {
	cfg config.EngineConfig

	mode    game.Mode
	state   game.GameState
	running bool
	tick    uint64
	nextID  int

	targets   []*game.Target
	particles []Particle
	texts     []FloatingText
	shake     float64

	rng     *rand.Rand // gameplay randomness
	drawRng *rand.Rand // render jitter only

	cues        game.CueSink
	theme       game.ThemeSource
	commentator Commentator
	logger      *log.Logger
	metrics     *metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds both random sources.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
		e.drawRng = rand.New(rand.NewSource(seed ^ 0x5eed))
	}
}

// WithRand sets the gameplay random source.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithCues sets the audio cue sink handed to mode hooks.
func WithCues(c game.CueSink) Option {
	return func(e *Engine) { e.cues = c }
}

// WithTheme sets the cosmetic theme source polled on each explosion.
func WithTheme(t game.ThemeSource) Option {
	return func(e *Engine) { e.theme = t }
}

// WithCommentator sets the companion notified on some hits.
func WithCommentator(c Commentator) Option {
	return func(e *Engine) { e.commentator = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an idle engine. Call Start to begin a run.
func New(cfg config.EngineConfig, opts ...Option) *Engine {
	e := &Engine{cfg: cfg}
	WithSeed(1)(e)
	for _, opt := range opts {
		opt(e)
	}
	if e.cues == nil {
		e.cues = game.NopCues{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.metrics == nil {
		e.metrics = newMetrics(meter())
	}
	return e
}

// Start begins a run of mode at time now, discarding any previous run.
func (e *Engine) Start(mode game.Mode, now int64) {
	e.mode = mode
	e.running = true
	e.tick = 0
	e.nextID = 0
	e.targets = nil
	e.particles = nil
	e.texts = nil
	e.shake = 0

	e.state = game.GameState{
		StartTime: now,
		Now:       now,
	}
	mode.Init(&e.state)

	e.logger.Info("run started", "mode", mode.Name(), "lives", e.state.Lives, "spawnRate", e.state.SpawnRate)
}

// Stop freezes the simulation and zeroes the shake.
func (e *Engine) Stop() {
	if e.running && e.mode != nil {
		e.logger.Info("run stopped", "mode", e.mode.Name(), "score", e.state.Score, "ticks", e.tick)
	}
	e.running = false
	e.shake = 0
}

// Update advances the simulation one tick.
// p1 and p2 are the tracked points; nil means untracked this tick.
func (e *Engine) Update(now int64, p1, p2 *core.Vec2) {
	if !e.running {
		return
	}
	e.tick++
	e.state.Now = now

	e.spawnCheck(now)
	e.mode.Update(&e.state, e.cfg.TickMs)
	e.moveTargets()
	e.expireTargets(now)
	e.collide(p1, p2)
	e.updateParticles()
	e.updateTexts()
	e.decayShake()
}

// spawnCheck asks the mode for a target once the spawn interval elapsed.
// A declined spawn still resets the timer.
func (e *Engine) spawnCheck(now int64) {
	if float64(now-e.state.LastSpawnTime) <= e.state.SpawnRate {
		return
	}
	if t := e.mode.SpawnTarget(e.cfg.Width, e.cfg.Height); t != nil {
		e.nextID++
		t.ID = e.nextID
		t.BornTime = now
		if t.Radius < 0 {
			t.Radius = 0
		}
		e.targets = append(e.targets, t)
		e.metrics.spawned(e.mode.Name(), t.Type)
		e.logger.Debug("target spawned", "id", t.ID, "type", t.Type, "x", t.X, "y", t.Y)
	}
	e.state.LastSpawnTime = now
}

// moveTargets grows, translates and bounces every target.
func (e *Engine) moveTargets() {
	w, h := e.cfg.Width, e.cfg.Height
	for _, t := range e.targets {
		if t.Radius < t.MaxRadius {
			t.Radius = min(t.Radius+e.cfg.GrowRate, t.MaxRadius)
		}

		t.X += t.VX
		t.Y += t.VY

		if t.VX != 0 || t.VY != 0 {
			if t.X < t.Radius || t.X > w-t.Radius {
				t.VX = -t.VX
			}
			if t.Y < t.Radius || t.Y > h-t.Radius {
				t.VY = -t.VY
			}
		}
	}
}

// maxAge returns the lifetime of t in ms.
func (e *Engine) maxAge(t *game.Target) float64 {
	if t.MaxAge > 0 {
		return t.MaxAge
	}
	return e.cfg.DefaultMaxAge
}

// expireTargets removes targets past their lifetime, counting each as a miss.
// Runs before collision so an expired target can never also be hit.
func (e *Engine) expireTargets(now int64) {
	kept := e.targets[:0]
	for _, t := range e.targets {
		if float64(now-t.BornTime) > e.maxAge(t) {
			e.mode.OnTargetMiss(t, &e.state, e.cues)
			e.addText(t.X, t.Y, "MISS", core.ColorRed)
			e.pulseShake(e.cfg.MissShake)
			e.metrics.missed(e.mode.Name(), t.Type)
			e.logger.Debug("target missed", "id", t.ID, "type", t.Type, "lives", e.state.Lives)
			continue
		}
		kept = append(kept, t)
	}
	clearTail(e.targets, len(kept))
	e.targets = kept
}

// collide removes targets touched by a tracked point.
func (e *Engine) collide(p1, p2 *core.Vec2) {
	if p1 == nil && p2 == nil {
		return
	}
	kept := e.targets[:0]
	for _, t := range e.targets {
		if e.touched(t, p1, p2) {
			e.hit(t)
			continue
		}
		kept = append(kept, t)
	}
	clearTail(e.targets, len(kept))
	e.targets = kept
}

// touched reports whether the first present point is strictly closer than
// the sum of the target and input radii.
func (e *Engine) touched(t *game.Target, points ...*core.Vec2) bool {
	for _, p := range points {
		if p == nil {
			continue
		}
		if core.Dist(*p, t.Pos()) < t.Radius+e.cfg.InputRadius {
			return true
		}
	}
	return false
}

func (e *Engine) hit(t *game.Target) {
	e.mode.OnTargetHit(t, &e.state, e.cues)
	e.explode(t.X, t.Y, t.Color)
	e.addText(t.X, t.Y, "+SCORED", core.ColorWhite)
	e.pulseShake(e.cfg.HitShake)
	e.metrics.hit(e.mode.Name(), t.Type)
	e.logger.Debug("target hit", "id", t.ID, "type", t.Type, "score", e.state.Score, "combo", e.state.Combo)

	if e.commentator != nil && e.rng.Float64() < e.cfg.CommentChance {
		e.commentator.Comment("User scored a hit")
	}
}

// clearTail nils out the pointers dropped by in-place filtering.
func clearTail(s []*game.Target, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

// Running reports whether a run is in progress.
func (e *Engine) Running() bool {
	return e.running
}

// Mode returns the mode of the current or last run.
func (e *Engine) Mode() game.Mode {
	return e.mode
}

// State returns a copy of the game state.
func (e *Engine) State() game.GameState {
	return e.state
}

// Tick returns the number of updates in the current run.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Config returns the engine configuration.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Targets returns copies of the live targets.
func (e *Engine) Targets() []game.Target {
	out := make([]game.Target, len(e.targets))
	for i, t := range e.targets {
		out[i] = *t
	}
	return out
}

// Particles returns a copy of the live particles.
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Texts returns a copy of the live floating texts.
func (e *Engine) Texts() []FloatingText {
	return append([]FloatingText(nil), e.texts...)
}

// Shake returns the current shake magnitude.
func (e *Engine) Shake() float64 {
	return e.shake
}
