package audio

import (
	"time"

	"github.com/vovakirdan/lunaris/internal/game"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// String returns the wave name.
func (w Wave) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Decay is the gain curve of a tone over its duration.
type Decay int

const (
	// DecayExp ramps the gain exponentially down to a thousandth of its peak.
	DecayExp Decay = iota
	// DecayLinear ramps the gain linearly to zero.
	DecayLinear
)

// Tone is one oscillator voice of a cue.
type Tone struct {
	Wave     Wave
	Freq     float64       // Hz
	Duration time.Duration // Audible length
	Delay    time.Duration // Offset from the start of the cue
	Gain     float64       // Peak amplitude, 0..1
	Decay    Decay
}

// End returns the offset at which the tone falls silent.
func (t Tone) End() time.Duration {
	return t.Delay + t.Duration
}

const (
	blipGain  = 0.1
	chimeGain = 0.2
)

func blip(w Wave, freq float64, d, delay time.Duration) Tone {
	return Tone{Wave: w, Freq: freq, Duration: d, Delay: delay, Gain: blipGain, Decay: DecayExp}
}

// Recipe returns the tones that make up a cue. Unknown cues have no recipe.
// The returned slice is freshly allocated and safe to modify.
func Recipe(cue game.Cue) []Tone {
	switch cue {
	case game.CueHit:
		return []Tone{
			blip(WaveSquare, 880, 100*time.Millisecond, 0),
			blip(WaveSquare, 1760, 100*time.Millisecond, 50*time.Millisecond),
		}
	case game.CueBonus:
		return []Tone{
			blip(WaveSine, 440, 100*time.Millisecond, 0),
			blip(WaveSine, 880, 100*time.Millisecond, 100*time.Millisecond),
		}
	case game.CueMiss:
		return []Tone{
			blip(WaveSaw, 150, 300*time.Millisecond, 0),
			blip(WaveSaw, 100, 300*time.Millisecond, 0),
		}
	case game.CueHazard:
		return []Tone{
			blip(WaveSaw, 100, 500*time.Millisecond, 0),
			blip(WaveSquare, 50, 500*time.Millisecond, 0),
		}
	case game.CueGameOver:
		freqs := []float64{400, 350, 300, 250}
		tones := make([]Tone, len(freqs))
		for i, f := range freqs {
			tones[i] = Tone{
				Wave:     WaveTriangle,
				Freq:     f,
				Duration: 200 * time.Millisecond,
				Delay:    time.Duration(i) * 200 * time.Millisecond,
				Gain:     chimeGain,
				Decay:    DecayLinear,
			}
		}
		return tones
	case game.CueEquip:
		return []Tone{blip(WaveSine, 660, 150*time.Millisecond, 0)}
	default:
		return nil
	}
}

// Length returns how long a set of tones takes to play out.
func Length(tones []Tone) time.Duration {
	var d time.Duration
	for _, t := range tones {
		if end := t.End(); end > d {
			d = end
		}
	}
	return d
}
