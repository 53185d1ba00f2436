package buddy

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/lunaris/internal/game"
)

// Caption is a Speaker that keeps the latest line for on-screen display.
type Caption struct {
	mu   sync.Mutex
	text string
	at   time.Time
	now  func() time.Time
}

// NewCaption creates an empty caption. A nil clock uses time.Now.
func NewCaption(now func() time.Time) *Caption {
	if now == nil {
		now = time.Now
	}
	return &Caption{now: now}
}

// Say replaces the caption text.
func (c *Caption) Say(text string) {
	c.mu.Lock()
	c.text = text
	c.at = c.now()
	c.mu.Unlock()
}

// Current returns the caption if it was said less than ttl ago.
func (c *Caption) Current(ttl time.Duration) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.text == "" || c.now().Sub(c.at) >= ttl {
		return ""
	}
	return c.text
}

// Callouts voices a short pool line for each sound cue. It satisfies
// game.CueSink, so Speaker.Say must not block when used here.
type Callouts struct {
	mu      sync.Mutex
	speaker Speaker
	skin    func() string
	rng     *rand.Rand
}

// NewCallouts creates a cue callout sink. skin reports the active skin id
// and may be nil.
func NewCallouts(speaker Speaker, skin func() string, rng *rand.Rand) *Callouts {
	if skin == nil {
		skin = func() string { return "" }
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Callouts{speaker: speaker, skin: skin, rng: rng}
}

// Play says a line matching the cue.
func (c *Callouts) Play(cue game.Cue) {
	kind, ok := KindForCue(cue)
	if !ok || c.speaker == nil {
		return
	}
	c.mu.Lock()
	line := Line(c.skin(), kind, c.rng)
	c.mu.Unlock()
	c.speaker.Say(line)
}
