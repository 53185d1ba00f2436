package buddy

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

type recorder struct {
	mu    sync.Mutex
	lines []string
	gate  chan struct{}
}

func (r *recorder) Say(text string) {
	if r.gate != nil {
		<-r.gate
	}
	r.mu.Lock()
	r.lines = append(r.lines, text)
	r.mu.Unlock()
}

func (r *recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func testConfig() config.CompanionConfig {
	return config.CompanionConfig{
		Enabled:         true,
		Timeout:         2 * time.Second,
		MinInterval:     10 * time.Second,
		StallThreshold:  8 * time.Second,
		AmbientInterval: 25 * time.Second,
		AmbientChance:   1,
	}
}

func newTestCompanion(cfg config.CompanionConfig, sp Speaker, clock *fakeClock, opts ...Option) *Companion {
	opts = append([]Option{
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewSource(7))),
		WithStats(func() Stats { return Stats{Score: 42, Mode: "STRIKER", Skin: "NEON"} }),
	}, opts...)
	return New(cfg, sp, opts...)
}

func TestDisabledCompanionIsSilent(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	rec := &recorder{}
	c := newTestCompanion(cfg, rec, newFakeClock())

	assert.False(t, c.Trigger(EventHit, true))
	c.Greet()
	c.Wait()
	assert.Empty(t, rec.Lines())
}

func TestGreetOnce(t *testing.T) {
	rec := &recorder{}
	c := newTestCompanion(testConfig(), rec, newFakeClock())

	c.Greet()
	c.Wait()
	c.Greet()
	c.Wait()

	lines := rec.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, Pool("NEON", KindWelcome), lines[0])
}

func TestMinInterval(t *testing.T) {
	clock := newFakeClock()
	rec := &recorder{}
	c := newTestCompanion(testConfig(), rec, clock)

	require.True(t, c.Trigger(EventHit, false))
	c.Wait()

	assert.False(t, c.Trigger(EventHit, false), "second request inside the interval")
	clock.Advance(9 * time.Second)
	assert.False(t, c.Trigger(EventHit, false), "still inside the interval")
	clock.Advance(time.Second)
	assert.True(t, c.Trigger(EventHit, false), "interval elapsed")
	c.Wait()

	lines := rec.Lines()
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Contains(t, Pool("NEON", KindHit), l)
	}
}

func TestForceSkipsIntervalButNotOverlap(t *testing.T) {
	clock := newFakeClock()
	rec := &recorder{gate: make(chan struct{})}
	c := newTestCompanion(testConfig(), rec, clock)

	require.True(t, c.Trigger(EventHit, false))
	assert.True(t, c.Speaking())
	assert.False(t, c.Trigger(EventGreeting, true), "no two outstanding requests")

	close(rec.gate)
	c.Wait()
	assert.False(t, c.Speaking())

	assert.True(t, c.Trigger(EventGreeting, true), "force ignores the interval")
	c.Wait()
	assert.Len(t, rec.Lines(), 2)
}

func TestStallDetection(t *testing.T) {
	clock := newFakeClock()
	rec := &recorder{}
	c := newTestCompanion(testConfig(), rec, clock)

	clock.Advance(8 * time.Second)
	c.CheckStall()
	assert.False(t, c.Stalling(), "threshold itself is not a stall")

	clock.Advance(time.Millisecond)
	c.CheckStall()
	c.Wait()
	assert.True(t, c.Stalling())
	require.Len(t, rec.Lines(), 1)
	assert.Contains(t, Pool("NEON", KindEncourage), rec.Lines()[0])

	// Once per stall.
	clock.Advance(20 * time.Second)
	c.CheckStall()
	c.Wait()
	assert.Len(t, rec.Lines(), 1)

	c.Observe(nil, nil)
	assert.True(t, c.Stalling(), "absent points are not activity")

	p := core.V(10, 10)
	c.Observe(nil, &p)
	assert.False(t, c.Stalling())
}

func TestAmbient(t *testing.T) {
	clock := newFakeClock()
	rec := &recorder{}
	c := newTestCompanion(testConfig(), rec, clock)

	clock.Advance(30 * time.Second)
	c.Ambient()
	c.Wait()
	assert.Empty(t, rec.Lines(), "no ambient remarks before greeting")

	c.Greet()
	c.Wait()
	p := core.V(1, 1)

	clock.Advance(24 * time.Second)
	c.Observe(&p, nil)
	c.Ambient()
	c.Wait()
	assert.Len(t, rec.Lines(), 1, "ambient interval not reached")

	clock.Advance(time.Second)
	c.Observe(&p, nil)
	c.Ambient()
	c.Wait()
	assert.Len(t, rec.Lines(), 2)
}

func TestAmbientChanceZero(t *testing.T) {
	cfg := testConfig()
	cfg.AmbientChance = 0
	clock := newFakeClock()
	rec := &recorder{}
	c := newTestCompanion(cfg, rec, clock)

	c.Greet()
	c.Wait()
	clock.Advance(time.Minute)
	c.Ambient()
	c.Wait()
	assert.Len(t, rec.Lines(), 1)
}

func TestCompanionUsesEndpoint(t *testing.T) {
	var got Context
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Context Context `json:"context"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		got = req.Context
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Do pixels feel pain?"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Endpoint = server.URL
	rec := &recorder{}
	c := newTestCompanion(cfg, rec, newFakeClock())

	require.True(t, c.Trigger(EventAmbient, false))
	c.Wait()

	assert.Equal(t, []string{"Do pixels feel pain?"}, rec.Lines())
	assert.Equal(t, EventAmbient, got.Event)
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, "STRIKER", got.Mode)
	assert.False(t, got.IsStalling)
}

func TestCompanionEndpointFailureReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Endpoint = server.URL
	rec := &recorder{}
	c := newTestCompanion(cfg, rec, newFakeClock())

	require.True(t, c.Trigger(EventHit, true))
	c.Wait()

	assert.Empty(t, rec.Lines())
	assert.False(t, c.Speaking())
}

func TestClientFallbackMessageOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"System Override! Keep fighting!"}`))
	}))
	defer server.Close()

	msg, err := NewClient(server.URL, time.Second).Chat(t.Context(), Context{Event: EventHit})
	require.NoError(t, err)
	assert.Equal(t, "System Override! Keep fighting!", msg)
}

func TestHandler(t *testing.T) {
	server := httptest.NewServer(NewHandler(rand.New(rand.NewSource(3)), nil).Mux())
	defer server.Close()

	client := NewClient(server.URL+ChatPath+"/", time.Second)
	assert.Equal(t, server.URL+ChatPath, client.Endpoint())

	msg, err := client.Chat(t.Context(), Context{Event: EventGreeting, Skin: "NEON"})
	require.NoError(t, err)
	assert.Contains(t, Pool("NEON", KindWelcome), msg)

	msg, err = client.Chat(t.Context(), Context{Event: EventHit, Skin: "FIRE"})
	require.NoError(t, err)
	assert.Contains(t, Pool("FIRE", KindHit), msg)

	resp, err := http.Post(server.URL+ChatPath, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(server.URL + ChatPath)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPoolFallbacks(t *testing.T) {
	assert.Equal(t, pools[defaultPool][KindWelcome], Pool("NEON", KindWelcome), "skins have no welcome pool")
	assert.Equal(t, pools["CYBER"][KindHit], Pool("cyber", KindHit), "skin ids are case-insensitive")
	assert.Equal(t, pools[defaultPool][KindEncourage], Pool("", "nonsense"))
}

func TestKindForEvent(t *testing.T) {
	tests := []struct {
		event    string
		expected Kind
	}{
		{EventGreeting, KindWelcome},
		{EventHit, KindHit},
		{EventAmbient, KindEncourage},
		{EventStall, KindEncourage},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, KindForEvent(tc.event), tc.event)
	}
}

func TestCallouts(t *testing.T) {
	rec := &recorder{}
	c := NewCallouts(rec, func() string { return "FIRE" }, rand.New(rand.NewSource(1)))

	c.Play(game.CueHit)
	c.Play(game.CueHazard)
	c.Play("unknown")

	lines := rec.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, Pool("FIRE", KindHit), lines[0])
	assert.Contains(t, Pool("FIRE", KindMiss), lines[1])
}

func TestCaption(t *testing.T) {
	clock := newFakeClock()
	c := NewCaption(clock.Now)
	assert.Empty(t, c.Current(time.Second))

	c.Say("Bullseye!")
	assert.Equal(t, "Bullseye!", c.Current(3*time.Second))

	clock.Advance(3 * time.Second)
	assert.Empty(t, c.Current(3*time.Second))
}
