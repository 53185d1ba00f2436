package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/engine"
	"github.com/vovakirdan/lunaris/internal/session"
	"github.com/vovakirdan/lunaris/internal/storage"
)

// Layout rows reserved around the playfield.
const (
	hudRows     = 1
	captionRows = 1
)

var (
	styleMu    sync.Mutex
	styleCache = map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
)

// colorStyle returns a cached lipgloss style for a hex color.
// SSH sessions render concurrently, so the cache is locked.
func colorStyle(c core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styleCache[c] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyle(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps field coordinates onto the playfield rows of a screen.
type Viewport struct {
	Top    int     // First playfield row
	Rows   int     // Playfield height in cells
	Cols   int     // Playfield width in cells
	ScaleX float64 // Cells per field unit
	ScaleY float64
}

// NewViewport fits a fieldW x fieldH field into a cols x rows screen,
// leaving room for the HUD and caption lines.
func NewViewport(cols, rows int, fieldW, fieldH float64) Viewport {
	playRows := core.Max(rows-hudRows-captionRows, 1)
	cols = core.Max(cols, 1)
	return Viewport{
		Top:    hudRows,
		Rows:   playRows,
		Cols:   cols,
		ScaleX: float64(cols) / fieldW,
		ScaleY: float64(playRows) / fieldH,
	}
}

// ToCell converts a field point to fractional cell coordinates.
func (v Viewport) ToCell(p core.Vec2) (x, y float64) {
	return p.X * v.ScaleX, float64(v.Top) + p.Y*v.ScaleY
}

// ToField converts a cell (column, row) to the field point at its center.
func (v Viewport) ToField(col, row int) core.Vec2 {
	return core.V(
		(float64(col)+0.5)/v.ScaleX,
		(float64(row-v.Top)+0.5)/v.ScaleY,
	)
}

// Overlay is frontend state drawn on top of the frame.
type Overlay struct {
	Skin        string
	Best        int
	Caption     string
	Paused      bool
	Finished    bool
	Leaderboard []storage.ScoreEntry
	Cursors     []*core.Vec2
}

// DrawFrame rasterises an engine frame and its overlay onto scr.
func DrawFrame(scr *core.Screen, f engine.Frame, o Overlay) {
	scr.Clear()
	vp := NewViewport(scr.Width(), scr.Height(), f.Width, f.Height)

	for _, c := range f.Circles {
		drawCircle(scr, vp, c)
	}
	for _, t := range f.Texts {
		if t.Alpha < 0.15 {
			continue
		}
		x, y := vp.ToCell(core.V(t.X, t.Y))
		w := len([]rune(t.Text))
		scr.DrawTextColor(int(x)-w/2, int(y), t.Text, t.Color)
	}
	for i, p := range o.Cursors {
		if p == nil {
			continue
		}
		x, y := vp.ToCell(*p)
		marker, color := '+', core.ColorWhite
		if i > 0 {
			marker, color = 'x', core.ColorPink
		}
		scr.SetColor(int(x), int(y), marker, color)
	}

	drawHUD(scr, f.HUD, o)
	if o.Caption != "" {
		scr.DrawTextColor(1, scr.Height()-1, "» "+o.Caption, core.ColorMint)
	}
	switch {
	case o.Finished:
		drawGameOver(scr, f.HUD, o)
	case o.Paused:
		drawCenteredBox(scr, []string{"PAUSED", "", "P: Resume  B: Menu"})
	}
}

func drawCircle(scr *core.Screen, vp Viewport, c engine.Circle) {
	cx, cy := vp.ToCell(core.V(c.X, c.Y))
	rx, ry := c.R*vp.ScaleX, c.R*vp.ScaleY

	if c.Kind == engine.KindParticle {
		if c.Alpha >= 0.2 {
			scr.SetColor(int(cx), int(cy), '·', c.Fill)
		}
		return
	}

	if rx < 0.75 || ry < 0.5 {
		scr.SetColor(int(cx), int(cy), '•', c.Fill)
		return
	}
	if c.Stroke != core.ColorDefault {
		scr.FillEllipse(cx, cy, rx, ry, '█', c.Stroke)
		rx, ry = rx-0.75, ry-0.5
	}
	scr.FillEllipse(cx, cy, rx, ry, '█', c.Fill)
	if c.Label != "" {
		w := len([]rune(c.Label))
		scr.DrawTextColor(int(cx)-w/2, int(cy), c.Label, core.ColorWhite)
	}
}

func drawHUD(scr *core.Screen, h engine.HUD, o Overlay) {
	scr.DrawTextColor(1, 0, session.HUDLine(h, o.Best, o.Skin), core.ColorCyan)
}

func drawGameOver(scr *core.Screen, h engine.HUD, o Overlay) {
	drawCenteredBox(scr, session.GameOverLines(h, o.Best, o.Leaderboard))
}

// drawCenteredBox draws a framed box of centered lines in the middle of scr.
func drawCenteredBox(scr *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := core.Min(w+4, scr.Width())
	boxH := core.Min(len(lines)+2, scr.Height())
	r := core.NewRect((scr.Width()-boxW)/2, (scr.Height()-boxH)/2, boxW, boxH)

	scr.DrawRect(r, ' ')
	scr.DrawBox(r)
	for i, l := range lines {
		scr.DrawTextCentered(r.Y+1+i, l, core.ColorWhite)
	}
}
