package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/session"
)

// cursorSpeed is how far the keyboard cursor moves per key press, in field units.
const cursorSpeed = 40

// GameModel is the Bubble Tea model for one game session.
// The mouse drives the first tracked point, the keyboard cursor the second.
type GameModel struct {
	sess       *session.Session
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	cursor     *core.Cursor
	mouse      *core.Vec2
	tickRate   int
	tickGen    uint64
	paused     bool
	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone play has no menu to return to
}

// NewGameModel creates a game model around a running session.
func NewGameModel(sess *session.Session, width, height, tickRate int) GameModel {
	w, h := sess.Field()
	return GameModel{
		sess:       sess,
		screen:     core.NewScreen(width, height),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		cursor:     core.NewCursor(w, h, cursorSpeed),
		tickRate:   tickRate,
		tickGen:    nextTickGen(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		if m.sess.Finished() || m.paused {
			m.sess.End()
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
	case core.ActionPause:
		if !m.sess.Finished() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.sess.Finished() {
			//nolint:errcheck // The mode was valid when the session started
			m.sess.Restart()
			m.cursor.Pos = core.V(m.cursor.W/2, m.cursor.H/2)
			m.inputFrame.Clear()
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse moves the first tracked point to the pointer cell.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	w, h := m.sess.Field()
	vp := NewViewport(m.screen.Width(), m.screen.Height(), w, h)
	p := vp.ToField(msg.X, msg.Y)
	p.X = core.ClampF(p.X, 0, w)
	p.Y = core.ClampF(p.Y, 0, h)
	m.mouse = &p
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.paused {
		m.cursor.Apply(m.inputFrame)
		m.sess.Step(m.mouse, m.cursor.Point())
	}
	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate, m.tickGen)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".lunaris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sess.ModeID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *GameModel) render() {
	DrawFrame(m.screen, m.sess.Frame(nil), Overlay{
		Skin:        m.sess.Skin().Name,
		Best:        m.sess.Best(),
		Caption:     m.sess.Caption(),
		Paused:      m.paused,
		Finished:    m.sess.Finished(),
		Leaderboard: m.sess.Leaderboard(),
		Cursors:     []*core.Vec2{m.mouse, m.cursor.Point()},
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// Session returns the underlying game session.
func (m GameModel) Session() *session.Session {
	return m.sess
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single mode in the terminal until the user quits or goes back.
func Run(modeID string, env Env, width, height int) error {
	sess, err := env.NewSession(modeID)
	if err != nil {
		return err
	}
	defer sess.Close()

	model := NewGameModel(sess, width, height, env.TickRate)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the first point
	)

	_, err = p.Run()
	return err
}
