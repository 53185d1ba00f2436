package engine

import (
	"image"

	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
)

// ParticleRadius is the drawn size of a particle.
const ParticleRadius = 3

// Frame is a display list produced by Draw. Coordinates are in field
// units and already include the shake offset.
type Frame struct {
	Width, Height float64

	// Background is the optional backdrop. When set, Dim is the opacity of
	// the black overlay drawn above it.
	Background image.Image
	Dim        float64

	Offset  core.Vec2
	Circles []Circle
	Texts   []Text
	HUD     HUD
}

// CircleKind tells renderers what a circle represents.
type CircleKind int

const (
	KindTarget CircleKind = iota
	KindParticle
)

// Circle is a filled disc, optionally outlined and labelled.
type Circle struct {
	Kind   CircleKind
	X, Y   float64
	R      float64
	Fill   core.Color
	Stroke core.Color // empty = no outline
	Glow   core.Color
	Alpha  float64
	Label  string
	Type   game.TargetType
}

// Text is a label drawn at a point.
type Text struct {
	X, Y  float64
	Text  string
	Color core.Color
	Alpha float64
}

// HUD carries the scoreboard fields shown by frontends.
type HUD struct {
	Mode       string
	Score      int
	Combo      int
	Lives      int
	Infinite   bool
	Timed      bool
	TimeLeft   float64
	Running    bool
	GameOver   bool
	Multiplier int
}

// Draw renders the entity state into a display list. It never mutates
// gameplay state; jitter comes from the draw-only random source.
func (e *Engine) Draw(bg image.Image) Frame {
	f := Frame{
		Width:  e.cfg.Width,
		Height: e.cfg.Height,
	}
	if bg != nil {
		f.Background = bg
		f.Dim = 0.5
	}

	if e.shake > 0 {
		f.Offset = core.V(
			(e.drawRng.Float64()-0.5)*e.shake,
			(e.drawRng.Float64()-0.5)*e.shake,
		)
	}
	off := f.Offset

	f.Circles = make([]Circle, 0, len(e.targets)+len(e.particles))
	for _, t := range e.targets {
		c := Circle{
			Kind:   KindTarget,
			X:      t.X + off.X,
			Y:      t.Y + off.Y,
			R:      t.Radius,
			Fill:   t.Color,
			Stroke: core.ColorWhite,
			Glow:   t.Color,
			Alpha:  1,
			Type:   t.Type,
		}
		if t.Type == game.TimeOrb {
			c.Label = "+5s"
		}
		f.Circles = append(f.Circles, c)
	}

	for _, p := range e.particles {
		f.Circles = append(f.Circles, Circle{
			Kind:  KindParticle,
			X:     p.X + off.X,
			Y:     p.Y + off.Y,
			R:     ParticleRadius,
			Fill:  p.Color,
			Alpha: core.ClampF(p.Life, 0, 1),
		})
	}

	f.Texts = make([]Text, 0, len(e.texts))
	for _, ft := range e.texts {
		f.Texts = append(f.Texts, Text{
			X:     ft.X + off.X,
			Y:     ft.Y + off.Y,
			Text:  ft.Text,
			Color: ft.Color,
			Alpha: core.ClampF(ft.Life, 0, 1),
		})
	}

	f.HUD = e.hud()
	return f
}

func (e *Engine) hud() HUD {
	h := HUD{
		Score:    e.state.Score,
		Combo:    e.state.Combo,
		Lives:    e.state.Lives,
		Infinite: e.state.HasInfiniteLives(),
		Timed:    e.state.Timed(),
		TimeLeft: max(e.state.TimeLeft, 0),
		Running:  e.running,
		GameOver: e.mode != nil && e.state.Over(),
	}
	if e.mode != nil {
		h.Mode = e.mode.Name()
	}
	if m, ok := e.mode.(interface{ Multiplier(int) int }); ok {
		h.Multiplier = m.Multiplier(e.state.Combo)
	}
	return h
}
