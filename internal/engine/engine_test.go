package engine

import (
	"image"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/modes"
)

// scriptMode spawns queued targets and records outcomes.
type scriptMode struct {
	queue     []*game.Target
	spawnRate float64
	hits      []int
	misses    []int
	updates   int
}

func (m *scriptMode) Name() string        { return "SCRIPT" }
func (m *scriptMode) Description() string { return "test mode" }

func (m *scriptMode) Init(s *game.GameState) {
	s.Lives = 3
	s.SpawnRate = m.spawnRate
}

func (m *scriptMode) Update(*game.GameState, float64) { m.updates++ }

func (m *scriptMode) SpawnTarget(float64, float64) *game.Target {
	if len(m.queue) == 0 {
		return nil
	}
	t := m.queue[0]
	m.queue = m.queue[1:]
	return t
}

func (m *scriptMode) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	m.hits = append(m.hits, t.ID)
	s.Score++
	cues.Play(game.CueHit)
}

func (m *scriptMode) OnTargetMiss(t *game.Target, s *game.GameState, cues game.CueSink) {
	m.misses = append(m.misses, t.ID)
	s.Lives--
	cues.Play(game.CueMiss)
}

// recordingMode wraps a real mode and counts outcomes per target ID.
type recordingMode struct {
	game.Mode
	outcomes map[int]int
}

func (m *recordingMode) OnTargetHit(t *game.Target, s *game.GameState, cues game.CueSink) {
	m.outcomes[t.ID]++
	m.Mode.OnTargetHit(t, s, cues)
}

func (m *recordingMode) OnTargetMiss(t *game.Target, s *game.GameState, cues game.CueSink) {
	m.outcomes[t.ID]++
	m.Mode.OnTargetMiss(t, s, cues)
}

type fixedTheme struct{ theme game.Theme }

func (f fixedTheme) ActiveTheme() game.Theme { return f.theme }

type countingCommentator struct{ events []string }

func (c *countingCommentator) Comment(event string) { c.events = append(c.events, event) }

func newEngine(opts ...Option) *Engine {
	return New(config.Default().Engine, append([]Option{WithSeed(42)}, opts...)...)
}

func staticTarget(x, y, r float64) *game.Target {
	return &game.Target{X: x, Y: y, Radius: r, MaxRadius: r, Color: core.ColorCyan, MaxAge: 10000}
}

func TestUpdateIdleIsNoop(t *testing.T) {
	e := newEngine()
	e.Update(100, nil, nil)
	assert.False(t, e.Running())
	assert.Zero(t, e.Tick())
	assert.Empty(t, e.Targets())
}

func TestStartResetsRun(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)
	e.Update(16, &core.Vec2{X: 100, Y: 100}, nil)
	require.Len(t, m.hits, 1)
	require.NotEmpty(t, e.Particles())

	m2 := &scriptMode{spawnRate: 100}
	e.Start(m2, 5000)
	assert.Empty(t, e.Targets())
	assert.Empty(t, e.Particles())
	assert.Empty(t, e.Texts())
	assert.Zero(t, e.Shake())
	assert.Zero(t, e.State().Score)
	assert.Equal(t, int64(5000), e.State().StartTime)
	assert.Equal(t, 3, e.State().Lives)
	assert.Equal(t, 100.0, e.State().SpawnRate)
}

func TestStopFreezes(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)
	e.Update(16, &core.Vec2{X: 100, Y: 100}, nil)
	require.Positive(t, e.Shake())

	e.Stop()
	assert.False(t, e.Running())
	assert.Zero(t, e.Shake())

	before := e.Snapshot()
	e.Update(32, nil, nil)
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, 1, m.updates)
}

func TestSpawnStampsTarget(t *testing.T) {
	m := &scriptMode{spawnRate: 100, queue: []*game.Target{
		staticTarget(100, 100, 30),
		staticTarget(200, 200, 30),
	}}
	e := newEngine()
	e.Start(m, 0)

	// 100 ms have not strictly elapsed yet
	e.Update(100, nil, nil)
	assert.Empty(t, e.Targets())

	e.Update(101, nil, nil)
	targets := e.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, 1, targets[0].ID)
	assert.Equal(t, int64(101), targets[0].BornTime)
	assert.Equal(t, int64(101), e.State().LastSpawnTime)

	e.Update(202, nil, nil)
	targets = e.Targets()
	require.Len(t, targets, 2)
	assert.Equal(t, 2, targets[1].ID)
}

func TestDeclinedSpawnResetsTimer(t *testing.T) {
	m := &scriptMode{spawnRate: 100}
	e := newEngine()
	e.Start(m, 0)

	e.Update(150, nil, nil)
	assert.Empty(t, e.Targets())
	assert.Equal(t, int64(150), e.State().LastSpawnTime)

	// The next attempt waits a full interval from the declined one.
	m.queue = []*game.Target{staticTarget(100, 100, 30)}
	e.Update(200, nil, nil)
	assert.Empty(t, e.Targets())
	e.Update(251, nil, nil)
	assert.Len(t, e.Targets(), 1)
}

func TestModeUpdateGetsFixedDt(t *testing.T) {
	var got []float64
	m := &dtMode{scriptMode: scriptMode{spawnRate: 1000}, dts: &got}
	e := newEngine()
	e.Start(m, 0)
	for i := 1; i <= 3; i++ {
		e.Update(int64(i*33), nil, nil)
	}
	assert.Equal(t, []float64{16, 16, 16}, got)
}

type dtMode struct {
	scriptMode
	dts *[]float64
}

func (m *dtMode) Update(_ *game.GameState, dt float64) { *m.dts = append(*m.dts, dt) }

func TestRadiusMonotonic(t *testing.T) {
	tg := &game.Target{X: 640, Y: 360, MaxRadius: 25, MaxAge: 10000}
	m := &scriptMode{queue: []*game.Target{tg}}
	e := newEngine()
	e.Start(m, 0)

	prev := -1.0
	for i := 1; i <= 30; i++ {
		e.Update(int64(i*16), nil, nil)
		targets := e.Targets()
		require.Len(t, targets, 1)
		r := targets[0].Radius
		assert.GreaterOrEqual(t, r, prev)
		assert.LessOrEqual(t, r, 25.0)
		prev = r
	}
	assert.Equal(t, 25.0, prev)
}

func TestCollisionBoundary(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec2
		hit   bool
	}{
		{"exactly R+r is a miss", core.V(150, 100), false},
		{"just inside", core.V(149.99, 100), true},
		{"center", core.V(100, 100), true},
		{"diagonal outside", core.V(100+36, 100+36), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
			e := newEngine()
			e.Start(m, 0)
			p := tc.point
			e.Update(16, &p, nil)
			if tc.hit {
				assert.Len(t, m.hits, 1)
				assert.Empty(t, e.Targets())
			} else {
				assert.Empty(t, m.hits)
				assert.Len(t, e.Targets(), 1)
			}
		})
	}
}

func TestSecondPointHits(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)

	far := core.V(900, 600)
	near := core.V(110, 100)
	e.Update(16, &far, &near)
	assert.Len(t, m.hits, 1)
}

func TestBothPointsHitOnce(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)

	p := core.V(100, 100)
	e.Update(16, &p, &p)
	assert.Equal(t, []int{1}, m.hits)
	assert.Equal(t, 1, e.State().Score)
}

func TestExpiryBeforeCollision(t *testing.T) {
	tg := staticTarget(100, 100, 30)
	tg.MaxAge = 100
	m := &scriptMode{queue: []*game.Target{tg}}
	cues := &game.CueRecorder{}
	e := newEngine(WithCues(cues))
	e.Start(m, 0)

	e.Update(16, nil, nil)
	require.Len(t, e.Targets(), 1)

	// Age 101 > 100: expires even though the point overlaps it.
	p := core.V(100, 100)
	e.Update(117, &p, nil)

	assert.Empty(t, m.hits)
	assert.Equal(t, []int{1}, m.misses)
	assert.Empty(t, e.Targets())
	assert.Equal(t, 2, e.State().Lives)
	assert.Equal(t, []game.Cue{game.CueMiss}, cues.Cues)

	texts := e.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "MISS", texts[0].Text)
	assert.Equal(t, core.ColorRed, texts[0].Color)
}

func TestExpiryUsesDefaultMaxAge(t *testing.T) {
	tg := staticTarget(100, 100, 30)
	tg.MaxAge = 0
	m := &scriptMode{queue: []*game.Target{tg}}
	e := newEngine()
	e.Start(m, 0)

	e.Update(16, nil, nil)
	e.Update(3016, nil, nil)
	assert.Len(t, e.Targets(), 1, "age 3000 is not past the default")
	e.Update(3017, nil, nil)
	assert.Empty(t, e.Targets())
	assert.Equal(t, []int{1}, m.misses)
}

func TestHitFeedback(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	cues := &game.CueRecorder{}
	e := newEngine(WithCues(cues))
	e.Start(m, 0)

	p := core.V(100, 100)
	e.Update(16, &p, nil)

	particles := e.Particles()
	require.Len(t, particles, 15)
	for _, pt := range particles {
		speed := math.Hypot(pt.VX, pt.VY)
		assert.GreaterOrEqual(t, speed, 2.0-1e-9)
		assert.Less(t, speed, 7.0)
		assert.Equal(t, core.ColorCyan, pt.Color)
		assert.InDelta(t, 0.95, pt.Life, 1e-9)
	}

	texts := e.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "+SCORED", texts[0].Text)
	assert.Equal(t, core.ColorWhite, texts[0].Color)
	assert.Equal(t, 99.0, texts[0].Y)

	// Pulse 2 gives 10, decayed once this tick.
	assert.InDelta(t, 9.0, e.Shake(), 1e-9)
	assert.Equal(t, []game.Cue{game.CueHit}, cues.Cues)
}

func TestThemeParticleColor(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine(WithTheme(fixedTheme{game.Theme{Particle: core.ColorGold}}))
	e.Start(m, 0)

	p := core.V(100, 100)
	e.Update(16, &p, nil)
	for _, pt := range e.Particles() {
		assert.Equal(t, core.ColorGold, pt.Color)
	}
}

func TestShakeReplacesAndDecays(t *testing.T) {
	tg := staticTarget(100, 100, 30)
	tg.MaxAge = 10
	m := &scriptMode{queue: []*game.Target{tg, staticTarget(500, 500, 30)}}
	e := newEngine()
	e.Start(m, 0)

	e.Update(16, nil, nil) // spawn first
	e.Update(32, nil, nil) // first expires: pulse 5 -> 25, second spawned
	assert.InDelta(t, 22.5, e.Shake(), 1e-9)

	p := core.V(500, 500)
	e.Update(48, &p, nil) // hit: pulse 2 replaces with 10
	assert.InDelta(t, 9.0, e.Shake(), 1e-9)

	prev := e.Shake()
	ticks := 0
	for e.Shake() > 0 {
		e.Update(int64(64+ticks*16), nil, nil)
		ticks++
		if e.Shake() > 0 {
			assert.InDelta(t, prev*0.9, e.Shake(), 1e-9)
			assert.GreaterOrEqual(t, e.Shake(), 0.5)
		}
		prev = e.Shake()
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 28, ticks)
}

func TestLifeDecayTermination(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)
	p := core.V(100, 100)
	e.Update(16, &p, nil)

	particleTicks, textTicks := 1, 1
	for i := 1; i <= 60; i++ {
		e.Update(int64(16+i*16), nil, nil)
		if len(e.Particles()) > 0 {
			particleTicks++
		}
		if len(e.Texts()) > 0 {
			textTicks++
		}
	}
	assert.LessOrEqual(t, particleTicks, 20)
	assert.LessOrEqual(t, textTicks, 50)
	assert.Empty(t, e.Particles())
	assert.Empty(t, e.Texts())
}

func TestBounce(t *testing.T) {
	tg := &game.Target{X: 31, Y: 360, VX: -3, Radius: 30, MaxRadius: 30, MaxAge: 10000}
	m := &scriptMode{queue: []*game.Target{tg}}
	e := newEngine()
	e.Start(m, 0)

	e.Update(16, nil, nil)
	targets := e.Targets()
	require.Len(t, targets, 1)
	assert.Equal(t, 28.0, targets[0].X)
	assert.Equal(t, 3.0, targets[0].VX)
}

func TestStaticTargetDoesNotBounce(t *testing.T) {
	tg := &game.Target{X: 5, Y: 5, Radius: 30, MaxRadius: 30, MaxAge: 10000}
	m := &scriptMode{queue: []*game.Target{tg}}
	e := newEngine()
	e.Start(m, 0)
	e.Update(16, nil, nil)
	targets := e.Targets()
	require.Len(t, targets, 1)
	assert.Zero(t, targets[0].VX)
	assert.Zero(t, targets[0].VY)
}

func TestCommentatorOnHit(t *testing.T) {
	cfg := config.Default().Engine
	cfg.CommentChance = 1
	c := &countingCommentator{}
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := New(cfg, WithSeed(1), WithCommentator(c))
	e.Start(m, 0)

	p := core.V(100, 100)
	e.Update(16, &p, nil)
	assert.Equal(t, []string{"User scored a hit"}, c.events)

	cfg.CommentChance = 0
	c2 := &countingCommentator{}
	m2 := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e2 := New(cfg, WithCommentator(c2))
	e2.Start(m2, 0)
	e2.Update(16, &p, nil)
	assert.Empty(t, c2.events)
}

// Every spawned target is resolved at most once, and resolved plus live
// targets account for everything spawned.
func TestLifecycleExclusivity(t *testing.T) {
	for _, id := range []string{"striker", "blitz", "zen", "hardcore"} {
		t.Run(id, func(t *testing.T) {
			base := modeByID(t, id, 5)
			m := &recordingMode{Mode: base, outcomes: make(map[int]int)}
			e := newEngine(WithMeter(noop.NewMeterProvider().Meter("test")))
			e.Start(m, 0)

			rng := rand.New(rand.NewSource(9))
			for i := 1; i <= 3000 && e.Running(); i++ {
				var p1 *core.Vec2
				if i%3 == 0 {
					p := core.V(rng.Float64()*1280, rng.Float64()*720)
					p1 = &p
				}
				e.Update(int64(i*16), p1, nil)
				if e.State().Over() {
					e.Stop()
				}
			}

			resolved := 0
			for tid, n := range m.outcomes {
				assert.Equal(t, 1, n, "target %d resolved %d times", tid, n)
				resolved += n
			}
			for _, tg := range e.Targets() {
				assert.Zero(t, m.outcomes[tg.ID], "live target %d already resolved", tg.ID)
			}
			assert.Equal(t, e.nextID, resolved+len(e.Targets()))
		})
	}
}

func modeByID(t *testing.T, id string, seed int64) game.Mode {
	t.Helper()
	cfg := config.Default()
	rng := rand.New(rand.NewSource(seed))
	switch id {
	case "striker":
		return modes.NewStriker(cfg.Striker, rng)
	case "blitz":
		return modes.NewBlitz(cfg.Blitz, cfg.Difficulty, rng)
	case "zen":
		return modes.NewZen(cfg.Zen, rng)
	case "hardcore":
		return modes.NewHardcore(cfg.Hardcore, rng)
	}
	t.Fatalf("unknown mode %q", id)
	return nil
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := newEngine()
		e.Start(modeByID(t, "blitz", 77), 0)
		for i := 1; i <= 600; i++ {
			p := core.V(float64((i*37)%1280), float64((i*53)%720))
			e.Update(int64(i*16), &p, nil)
			e.Draw(nil)
		}
		return e.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a, b)
	assert.Positive(t, a.NextID)
}

func TestDrawIsReadOnly(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30), staticTarget(400, 400, 30)}}
	e := newEngine()
	e.Start(m, 0)
	p := core.V(100, 100)
	e.Update(16, &p, nil)
	e.Update(32, nil, nil)

	before := e.Snapshot()
	targets := e.Targets()
	for i := 0; i < 10; i++ {
		e.Draw(nil)
	}
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, targets, e.Targets())
}

func TestDrawJitterBounded(t *testing.T) {
	m := &scriptMode{queue: []*game.Target{staticTarget(100, 100, 30)}}
	e := newEngine()
	e.Start(m, 0)
	p := core.V(100, 100)
	e.Update(16, &p, nil)

	shake := e.Shake()
	require.Positive(t, shake)
	for i := 0; i < 100; i++ {
		f := e.Draw(nil)
		assert.LessOrEqual(t, math.Abs(f.Offset.X), shake/2)
		assert.LessOrEqual(t, math.Abs(f.Offset.Y), shake/2)
	}

	e.Stop()
	f := e.Draw(nil)
	assert.Equal(t, core.Vec2{}, f.Offset)
}

func TestDrawContents(t *testing.T) {
	orb := staticTarget(300, 300, 25)
	orb.Type = game.TimeOrb
	orb.Color = core.ColorGold
	m := &scriptMode{queue: []*game.Target{orb}}
	e := newEngine()
	e.Start(m, 0)
	e.Update(16, nil, nil)

	bg := image.NewRGBA(image.Rect(0, 0, 4, 4))
	f := e.Draw(bg)
	assert.Equal(t, 0.5, f.Dim)
	assert.Equal(t, 1280.0, f.Width)
	require.Len(t, f.Circles, 1)
	c := f.Circles[0]
	assert.Equal(t, KindTarget, c.Kind)
	assert.Equal(t, "+5s", c.Label)
	assert.Equal(t, core.ColorWhite, c.Stroke)
	assert.Equal(t, 25.0, c.R)

	assert.Equal(t, "SCRIPT", f.HUD.Mode)
	assert.Equal(t, 3, f.HUD.Lives)
	assert.False(t, f.HUD.Infinite)
	assert.True(t, f.HUD.Running)

	f = e.Draw(nil)
	assert.Nil(t, f.Background)
	assert.Zero(t, f.Dim)
}

func TestDrawStrikerMultiplier(t *testing.T) {
	e := newEngine()
	e.Start(modeByID(t, "striker", 1), 0)
	f := e.Draw(nil)
	assert.Equal(t, 1, f.HUD.Multiplier)
	assert.Equal(t, "STRIKER", f.HUD.Mode)
}
