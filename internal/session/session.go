// Package session runs one player's game: it owns the engine, the tick
// clock, the commentary companion and the score bookkeeping, and is shared
// by the terminal and window frontends.
package session

import (
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunaris/internal/buddy"
	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/engine"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/registry"
	"github.com/vovakirdan/lunaris/internal/skin"
	"github.com/vovakirdan/lunaris/internal/storage"
)

// CaptionTTL is how long a companion line stays on screen.
const CaptionTTL = 4 * time.Second

// Offsets from Config.Seed for each random stream, so no two consumers
// draw the same sequence.
const (
	seedMode int64 = iota
	seedCompanion
	seedCallouts
	seedEngine
)

// Config holds the per-session settings.
type Config struct {
	Engine    config.EngineConfig
	Companion config.CompanionConfig
	Seed      int64  // 0 = time-based
	Initials  string // Leaderboard tag, normalized on save
}

// Deps are the optional collaborators of a session. Zero values are valid.
type Deps struct {
	Store  *storage.Store
	Skins  *skin.Manager
	Cues   game.CueSink
	Logger *log.Logger
	Clock  func() time.Time // companion clock
}

// Session is one run of a mode plus its restarts.
type Session struct {
	cfg    Config
	modeID string

	eng       *engine.Engine
	rng       *rand.Rand
	store     *storage.Store
	skins     *skin.Manager
	cues      game.CueSink
	companion *buddy.Companion
	caption   *buddy.Caption
	logger    *log.Logger

	tick       int64
	finished   bool
	scoreSaved bool
	entry      storage.ScoreEntry
	best       int
	board      []storage.ScoreEntry

	lastP1, lastP2 *core.Vec2
}

// New creates a session for a registered mode and starts it.
func New(modeID string, cfg Config, deps Deps) (*Session, error) {
	if !registry.Exists(modeID) {
		return nil, fmt.Errorf("session: unknown mode %q", modeID)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		modeID: modeID,
		rng:    rand.New(rand.NewSource(cfg.Seed + seedMode)),
		store:  deps.Store,
		skins:  deps.Skins,
		cues:   deps.Cues,
		logger: deps.Logger,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.cues == nil {
		s.cues = game.NopCues{}
	}
	if s.skins == nil {
		s.skins = skin.NewManager(nil)
	}

	s.caption = buddy.NewCaption(deps.Clock)
	opts := []buddy.Option{
		buddy.WithStats(s.stats),
		buddy.WithRand(rand.New(rand.NewSource(cfg.Seed + seedCompanion))),
		buddy.WithLogger(s.logger),
	}
	if deps.Clock != nil {
		opts = append(opts, buddy.WithClock(deps.Clock))
	}
	s.companion = buddy.New(cfg.Companion, s.caption, opts...)
	if cfg.Companion.Enabled && cfg.Companion.Callouts {
		callouts := buddy.NewCallouts(s.caption, func() string { return s.skins.Current().ID },
			rand.New(rand.NewSource(cfg.Seed+seedCallouts)))
		s.cues = game.MultiCues{s.cues, callouts}
	}

	s.eng = engine.New(cfg.Engine,
		engine.WithSeed(cfg.Seed+seedEngine),
		engine.WithCues(s.cues),
		engine.WithTheme(s.skins),
		engine.WithCommentator(s.companion),
		engine.WithLogger(s.logger),
	)

	if err := s.start(); err != nil {
		return nil, err
	}
	s.companion.Greet()
	return s, nil
}

func (s *Session) start() error {
	mode, err := registry.Create(s.modeID, s.rng)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.eng.Start(mode, s.now())
	s.finished = false
	s.scoreSaved = false
	s.entry = storage.ScoreEntry{}
	s.board = nil
	s.best = s.loadBest()
	return nil
}

func (s *Session) now() int64 {
	return s.tick * int64(s.cfg.Engine.TickMs)
}

// stats feeds the companion. Trigger only runs on the tick goroutine, so
// the engine state is read without extra locking.
func (s *Session) stats() buddy.Stats {
	st := buddy.Stats{Score: s.eng.State().Score, Skin: s.skins.Current().ID}
	if m := s.eng.Mode(); m != nil {
		st.Mode = m.Name()
	}
	return st
}

// Step advances the game one tick with the two tracked points.
// It is a no-op once the run has finished.
func (s *Session) Step(p1, p2 *core.Vec2) {
	if s.finished {
		return
	}
	s.tick++
	s.eng.Update(s.now(), p1, p2)

	// Movement stands in for presence: a still cursor is an idle player.
	s.companion.Observe(moved(s.lastP1, p1), moved(s.lastP2, p2))
	s.lastP1, s.lastP2 = clonePoint(p1), clonePoint(p2)
	s.companion.CheckStall()
	s.companion.Ambient()

	if s.eng.State().Over() {
		s.finish()
	}
}

func (s *Session) finish() {
	s.eng.Stop()
	s.finished = true
	s.cues.Play(game.CueGameOver)
	s.saveScore()
}

// saveScore persists the final score once per run. Empty runs are not saved.
func (s *Session) saveScore() {
	if s.scoreSaved {
		return
	}
	s.scoreSaved = true

	score := s.eng.State().Score
	if s.store == nil || score <= 0 {
		return
	}
	entry, err := s.store.SaveScore(s.modeID, s.cfg.Initials, score)
	if err != nil {
		s.logger.Warn("could not save score", "mode", s.modeID, "err", err)
		return
	}
	s.entry = entry
	if score > s.best {
		s.best = score
	}
	board, err := s.store.TopScores(s.modeID, storage.DefaultLeaderboardSize)
	if err != nil {
		s.logger.Warn("could not load leaderboard", "mode", s.modeID, "err", err)
		return
	}
	s.board = board
}

func (s *Session) loadBest() int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.HighScore(s.modeID)
	if err != nil {
		s.logger.Warn("could not load high score", "mode", s.modeID, "err", err)
		return 0
	}
	return best
}

// Restart begins a fresh run of the same mode after game over.
func (s *Session) Restart() error {
	if !s.finished {
		return nil
	}
	return s.start()
}

// End finishes a running session early. The score is saved as for a
// natural game over.
func (s *Session) End() {
	if !s.finished {
		s.finish()
	}
}

// Field returns the logical playfield size.
func (s *Session) Field() (w, h float64) {
	return s.cfg.Engine.Width, s.cfg.Engine.Height
}

// Frame draws the current state.
func (s *Session) Frame(bg image.Image) engine.Frame {
	return s.eng.Draw(bg)
}

// NextSkin equips the next skin.
func (s *Session) NextSkin() (skin.Skin, error) {
	return s.skins.Next()
}

// ModeID returns the registry id of the running mode.
func (s *Session) ModeID() string { return s.modeID }

// State returns the current game state.
func (s *Session) State() game.GameState { return s.eng.State() }

// Finished reports whether the run is over.
func (s *Session) Finished() bool { return s.finished }

// Best returns the stored high score for the mode, including this run.
func (s *Session) Best() int { return s.best }

// Saved returns the stored entry of the finished run, if it was saved.
func (s *Session) Saved() (storage.ScoreEntry, bool) {
	return s.entry, s.entry.ID != 0
}

// Leaderboard returns the top scores loaded after the run was saved.
func (s *Session) Leaderboard() []storage.ScoreEntry { return s.board }

// Caption returns the companion's current line, if any.
func (s *Session) Caption() string { return s.caption.Current(CaptionTTL) }

// Skin returns the equipped skin.
func (s *Session) Skin() skin.Skin { return s.skins.Current() }

// Tick returns the number of steps taken.
func (s *Session) Tick() int64 { return s.tick }

// moved returns cur when it differs from prev, else nil.
func moved(prev, cur *core.Vec2) *core.Vec2 {
	if cur == nil {
		return nil
	}
	if prev != nil && *prev == *cur {
		return nil
	}
	return cur
}

func clonePoint(p *core.Vec2) *core.Vec2 {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Close waits for outstanding companion requests.
func (s *Session) Close() {
	s.companion.Wait()
}
