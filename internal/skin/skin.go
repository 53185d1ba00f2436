// Package skin manages the cosmetic skins that tint particles and HUD
// accents. The equipped skin is persisted through a SettingsStore.
package skin

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
)

// SettingKey is the settings key holding the equipped skin ID.
const SettingKey = "skin"

// Skin is a named cosmetic theme.
type Skin struct {
	ID    string
	Name  string
	Theme game.Theme
}

// Built-in skins, in menu order.
var (
	Neon = Skin{ID: "NEON", Name: "Nightshield", Theme: game.Theme{
		Primary: core.ColorCyan, Glow: core.ColorPurple, Particle: core.ColorWhite,
	}}
	Cyber = Skin{ID: "CYBER", Name: "Haven", Theme: game.Theme{
		Primary: "#00ff00", Glow: "#003300", Particle: "#00ff00",
	}}
	Fire = Skin{ID: "FIRE", Name: "Omnicore", Theme: game.Theme{
		Primary: "#ff4500", Glow: "#ffa500", Particle: "#ffff00",
	}}
	Midas = Skin{ID: "MIDAS", Name: "Metis", Theme: game.Theme{
		Primary: core.ColorGold, Glow: core.ColorWhite, Particle: "#ffec8b",
	}}
)

var all = []Skin{Neon, Cyber, Fire, Midas}

// All returns the built-in skins in menu order.
func All() []Skin {
	return append([]Skin(nil), all...)
}

// Lookup finds a skin by ID.
func Lookup(id string) (Skin, bool) {
	for _, s := range all {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}

// SettingsStore persists small key/value settings.
type SettingsStore interface {
	Setting(key string) (string, bool, error)
	SetSetting(key, value string) error
}

// Manager tracks the equipped skin. It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	current Skin
	store   SettingsStore
	cues    game.CueSink
	logger  *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithCues plays the equip cue on Equip.
func WithCues(c game.CueSink) Option {
	return func(m *Manager) { m.cues = c }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a manager with the persisted skin equipped, or NEON.
// A nil store keeps the choice in memory only.
func NewManager(store SettingsStore, opts ...Option) *Manager {
	m := &Manager{
		current: Neon,
		store:   store,
		cues:    game.NopCues{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.load()
	return m
}

func (m *Manager) load() {
	if m.store == nil {
		return
	}
	id, ok, err := m.store.Setting(SettingKey)
	if err != nil {
		m.logger.Warn("cannot load skin", "err", err)
		return
	}
	if !ok {
		return
	}
	if s, found := Lookup(id); found {
		m.current = s
	}
}

// Current returns the equipped skin.
func (m *Manager) Current() Skin {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// ActiveTheme implements game.ThemeSource.
func (m *Manager) ActiveTheme() game.Theme {
	return m.Current().Theme
}

// Equip switches to the skin with the given ID and persists the choice.
// Unknown IDs are rejected and leave the current skin unchanged.
func (m *Manager) Equip(id string) error {
	s, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("skin: unknown skin %q", id)
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.cues.Play(game.CueEquip)
	m.logger.Info("skin equipped", "id", s.ID, "name", s.Name)

	if m.store != nil {
		if err := m.store.SetSetting(SettingKey, s.ID); err != nil {
			return fmt.Errorf("skin: save: %w", err)
		}
	}
	return nil
}

// Next equips the skin after the current one, wrapping around.
func (m *Manager) Next() (Skin, error) {
	cur := m.Current()
	next := all[0]
	for i, s := range all {
		if s.ID == cur.ID {
			next = all[(i+1)%len(all)]
			break
		}
	}
	if err := m.Equip(next.ID); err != nil {
		return cur, err
	}
	return next, nil
}

var _ game.ThemeSource = (*Manager)(nil)
