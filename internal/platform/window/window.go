// Package window is the desktop frontend: an ebiten game that draws engine
// frames with vector shapes. The mouse is the first tracked point and an
// arrow-key cursor the second.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/engine"
	"github.com/vovakirdan/lunaris/internal/session"
)

const (
	cursorSpeed = 12 // field units per tick while an arrow is held
	glowPad     = 6
	lineHeight  = 16
)

var arrowKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
}

var (
	background = color.RGBA{A: 255}
	dimOverlay = color.RGBA{A: 180}
)

// Game adapts a session to ebiten.Game.
type Game struct {
	sess   *session.Session
	cursor *core.Cursor
	input  core.InputFrame
	paused bool
}

// New creates a window game for a running session.
func New(sess *session.Session) *Game {
	w, h := sess.Field()
	return &Game{
		sess:   sess,
		cursor: core.NewCursor(w, h, cursorSpeed),
		input:  core.NewInputFrame(),
	}
}

// Update reads input and advances the session one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.sess.Finished() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyR):
			if err := g.sess.Restart(); err != nil {
				return err
			}
			g.cursor.Pos = core.V(g.cursor.W/2, g.cursor.H/2)
		case inpututil.IsKeyJustPressed(ebiten.KeyB), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			return ebiten.Termination
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyB) {
			g.sess.End()
			return ebiten.Termination
		}
		return nil
	}

	g.input.Clear()
	for key, action := range arrowKeys {
		if ebiten.IsKeyPressed(key) {
			g.input.Set(action)
		}
	}
	g.cursor.Apply(g.input)

	mx, my := ebiten.CursorPosition()
	mouse := core.V(
		core.ClampF(float64(mx), 0, g.cursor.W),
		core.ClampF(float64(my), 0, g.cursor.H),
	)
	g.sess.Step(&mouse, g.cursor.Point())
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	f := g.sess.Frame(nil)

	for _, c := range f.Circles {
		drawCircle(screen, c)
	}
	for _, t := range f.Texts {
		if t.Alpha < 0.15 {
			continue
		}
		ebitenutil.DebugPrintAt(screen, t.Text, int(t.X)-len(t.Text)*3, int(t.Y)-lineHeight/2)
	}

	cur := g.cursor.Pos
	vector.StrokeCircle(screen, float32(cur.X), float32(cur.Y), 10, 2, core.ColorPink.RGBA(), true)

	ebitenutil.DebugPrintAt(screen, session.HUDLine(f.HUD, g.sess.Best(), g.sess.Skin().Name), 8, 4)
	if caption := g.sess.Caption(); caption != "" {
		ebitenutil.DebugPrintAt(screen, "> "+caption, 8, int(f.Height)-lineHeight-4)
	}

	switch {
	case g.sess.Finished():
		drawPanel(screen, f, session.GameOverLines(f.HUD, g.sess.Best(), g.sess.Leaderboard()))
	case g.paused:
		drawPanel(screen, f, []string{"PAUSED", "", "P: Resume  B: Quit"})
	}
}

func drawCircle(screen *ebiten.Image, c engine.Circle) {
	x, y, r := float32(c.X), float32(c.Y), float32(c.R)
	if c.Kind == engine.KindTarget && c.Glow != core.ColorDefault {
		vector.DrawFilledCircle(screen, x, y, r+glowPad, c.Glow.WithAlpha(0.25), true)
	}
	vector.DrawFilledCircle(screen, x, y, r, c.Fill.WithAlpha(c.Alpha), true)
	if c.Stroke != core.ColorDefault {
		vector.StrokeCircle(screen, x, y, r, 2, c.Stroke.WithAlpha(c.Alpha), true)
	}
	if c.Label != "" {
		ebitenutil.DebugPrintAt(screen, c.Label, int(c.X)-len(c.Label)*3, int(c.Y)-lineHeight/2)
	}
}

func drawPanel(screen *ebiten.Image, f engine.Frame, lines []string) {
	w := float32(320)
	h := float32(len(lines)*lineHeight + 2*lineHeight)
	x := float32(f.Width)/2 - w/2
	y := float32(f.Height)/2 - h/2

	vector.DrawFilledRect(screen, x, y, w, h, dimOverlay, false)
	vector.StrokeRect(screen, x, y, w, h, 1, core.ColorWhite.RGBA(), false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+lineHeight, int(y)+lineHeight+i*lineHeight)
	}
}

// Layout fixes the logical screen to the playfield so cursor positions are
// already in field units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sess.Field()
	return int(w), int(h)
}

// Run opens the window and plays until the user quits.
func Run(sess *session.Session, title string) error {
	w, h := sess.Field()
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(New(sess))
}
