package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
	"github.com/vovakirdan/lunaris/internal/session"
	"github.com/vovakirdan/lunaris/internal/skin"
	"github.com/vovakirdan/lunaris/internal/storage"
)

// Env carries the services a terminal session plays with.
// Store, Skins, Cues and Logger may be nil.
type Env struct {
	Config   config.Config
	Store    *storage.Store
	Skins    *skin.Manager
	Cues     game.CueSink
	Logger   *log.Logger
	TickRate int
	Seed     int64 // 0 = time-based
	Initials string
}

// NewSession starts a game session for modeID.
func (e Env) NewSession(modeID string) (*session.Session, error) {
	return session.New(modeID, session.Config{
		Engine:    e.Config.Engine,
		Companion: e.Config.Companion,
		Seed:      e.Seed,
		Initials:  e.Initials,
	}, session.Deps{
		Store:  e.Store,
		Skins:  e.Skins,
		Cues:   e.Cues,
		Logger: e.Logger,
	})
}
