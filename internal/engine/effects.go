package engine

import (
	"math"

	"github.com/vovakirdan/lunaris/internal/core"
)

// Particle is cosmetic debris from a hit.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}

// FloatingText is a short label that rises and fades.
type FloatingText struct {
	X, Y  float64
	Text  string
	Color core.Color
	Life  float64
}

// explode scatters particles from (x, y). The theme's particle color wins
// over the target color when set.
func (e *Engine) explode(x, y float64, color core.Color) {
	if e.theme != nil {
		if pc := e.theme.ActiveTheme().Particle; pc != "" {
			color = pc
		}
	}

	for i := 0; i < e.cfg.ExplosionParticles; i++ {
		angle := e.rng.Float64() * math.Pi * 2
		speed := 2 + e.rng.Float64()*5
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1.0,
			Color: color,
		})
	}
}

func (e *Engine) addText(x, y float64, text string, color core.Color) {
	e.texts = append(e.texts, FloatingText{
		X:     x,
		Y:     y,
		Text:  text,
		Color: color,
		Life:  1.0,
	})
}

// pulseShake sets the shake magnitude. Pulses replace, they do not stack.
func (e *Engine) pulseShake(amount float64) {
	e.shake = amount * 5
}

func (e *Engine) updateParticles() {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= e.cfg.ParticleDecay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	e.particles = kept
}

func (e *Engine) updateTexts() {
	kept := e.texts[:0]
	for _, ft := range e.texts {
		ft.Y -= e.cfg.TextRise
		ft.Life -= e.cfg.TextDecay
		if ft.Life > 0 {
			kept = append(kept, ft)
		}
	}
	e.texts = kept
}

// decayShake damps the shake geometrically and snaps small values to zero.
func (e *Engine) decayShake() {
	if e.shake > 0 {
		e.shake *= e.cfg.ShakeDecay
	}
	if e.shake < 0.5 {
		e.shake = 0
	}
}
