package buddy

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
)

// Speaker voices a line. Say may block until the line has been spoken;
// the companion stays "speaking" until it returns.
type Speaker interface {
	Say(text string)
}

// Stats is the game context attached to a comment request.
type Stats struct {
	Score int
	Mode  string
	Skin  string
}

// StatsFunc reports the current Stats. It is called with the companion's
// lock held and must not call back into the companion.
type StatsFunc func() Stats

// Companion comments on the game. It never lets two requests run at once,
// and non-forced requests are spaced by at least MinInterval.
type Companion struct {
	mu  sync.Mutex
	cfg config.CompanionConfig

	client  *Client
	speaker Speaker
	stats   StatsFunc
	rng     *rand.Rand
	logger  *log.Logger
	clock   func() time.Time

	lastSpeak   time.Time
	speaking    bool
	stalling    bool
	greeted     bool
	lastMove    time.Time
	lastAmbient time.Time

	wg sync.WaitGroup
}

// Option configures a Companion.
type Option func(*Companion)

// WithStats sets where score and mode are read from.
func WithStats(f StatsFunc) Option {
	return func(c *Companion) { c.stats = f }
}

// WithRand sets the rng used for line picks and the ambient coin flip.
func WithRand(rng *rand.Rand) Option {
	return func(c *Companion) { c.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Companion) { c.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Companion) { c.clock = now }
}

// New creates a companion voicing through speaker. With an empty endpoint,
// lines come from the built-in pools.
func New(cfg config.CompanionConfig, speaker Speaker, opts ...Option) *Companion {
	c := &Companion{
		cfg:     cfg,
		speaker: speaker,
		stats:   func() Stats { return Stats{} },
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:  log.New(io.Discard),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.Endpoint != "" {
		c.client = NewClient(cfg.Endpoint, cfg.Timeout)
	}
	c.lastMove = c.clock()
	c.lastAmbient = c.lastMove
	return c
}

// Comment requests a non-forced comment for event. It never blocks.
func (c *Companion) Comment(event string) {
	c.Trigger(event, false)
}

// Trigger starts a comment request in the background and reports whether
// it was accepted. A request is rejected while another is outstanding;
// non-forced requests are also rejected within MinInterval of the last one.
func (c *Companion) Trigger(event string, force bool) bool {
	if !c.cfg.Enabled || c.speaker == nil {
		return false
	}

	c.mu.Lock()
	now := c.clock()
	if c.speaking || (!force && now.Sub(c.lastSpeak) < c.cfg.MinInterval) {
		c.mu.Unlock()
		return false
	}
	c.lastSpeak = now
	c.speaking = true

	st := c.stats()
	in := Context{
		Event:      event,
		IsStalling: c.stalling,
		Score:      st.Score,
		Mode:       st.Mode,
		Skin:       st.Skin,
	}
	// Pick the pool line up front so the rng stays under the lock.
	line := Line(in.Skin, KindForEvent(event), c.rng)
	if in.IsStalling {
		line = Line(in.Skin, KindEncourage, c.rng)
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go c.deliver(in, line)
	return true
}

func (c *Companion) deliver(in Context, line string) {
	defer c.wg.Done()
	defer c.release()

	text := line
	if c.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.client.httpClient.Timeout)
		msg, err := c.client.Chat(ctx, in)
		cancel()
		if err != nil {
			c.logger.Warn("Buddy request failed", "event", in.Event, "err", err)
			return
		}
		text = msg
	}

	c.logger.Debug("Buddy speaking", "event", in.Event, "text", text)
	c.speaker.Say(text)
}

func (c *Companion) release() {
	c.mu.Lock()
	c.speaking = false
	c.mu.Unlock()
}

// Greet says hello once per companion and starts the ambient clock.
func (c *Companion) Greet() {
	c.mu.Lock()
	if c.greeted {
		c.mu.Unlock()
		return
	}
	c.greeted = true
	c.lastAmbient = c.clock()
	c.mu.Unlock()

	c.Trigger(EventGreeting, true)
}

// Observe records player presence. Either point being present counts as
// activity and ends a stall.
func (c *Companion) Observe(p1, p2 *core.Vec2) {
	if p1 == nil && p2 == nil {
		return
	}
	c.mu.Lock()
	c.lastMove = c.clock()
	c.stalling = false
	c.mu.Unlock()
}

// CheckStall flags the player as stalling after StallThreshold without
// presence and comments once per stall.
func (c *Companion) CheckStall() {
	c.mu.Lock()
	if c.stalling || c.clock().Sub(c.lastMove) <= c.cfg.StallThreshold {
		c.mu.Unlock()
		return
	}
	c.stalling = true
	c.mu.Unlock()

	c.Trigger(EventStall, true)
}

// Ambient makes an idle remark every AmbientInterval after Greet, with
// probability AmbientChance, unless already speaking or stalling.
func (c *Companion) Ambient() {
	c.mu.Lock()
	now := c.clock()
	if !c.greeted || c.cfg.AmbientInterval <= 0 || now.Sub(c.lastAmbient) < c.cfg.AmbientInterval {
		c.mu.Unlock()
		return
	}
	c.lastAmbient = now
	speak := !c.speaking && !c.stalling && c.rng.Float64() < c.cfg.AmbientChance
	c.mu.Unlock()

	if speak {
		c.Trigger(EventAmbient, false)
	}
}

// Speaking reports whether a request is outstanding.
func (c *Companion) Speaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

// Stalling reports whether the player is currently considered away.
func (c *Companion) Stalling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stalling
}

// Wait blocks until every started request has finished.
func (c *Companion) Wait() {
	c.wg.Wait()
}
