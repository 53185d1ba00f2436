package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/lunaris/internal/game"
)

// oscillator renders a single Tone, envelope included.
type oscillator struct {
	tone     Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
}

// NewOscillator creates a streamer that plays one tone and then drains.
// The tone's Delay is not applied here; see Build.
func NewOscillator(t Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		tone:  t,
		rate:  rate,
		total: rate.N(t.Duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		val := waveValue(o.tone.Wave, o.phase) * o.gain()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.tone.Freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gain is the envelope value at the current position.
func (o *oscillator) gain() float64 {
	if o.total == 0 {
		return 0
	}
	p := float64(o.position) / float64(o.total)
	switch o.tone.Decay {
	case DecayLinear:
		return o.tone.Gain * (1 - p)
	default:
		return o.tone.Gain * math.Pow(0.001, p)
	}
}

func waveValue(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Build assembles the streamer for a cue: each tone delayed by its offset,
// all mixed together and scaled by volume. Returns nil for cues without a
// recipe.
func Build(cue game.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	tones := Recipe(cue)
	if len(tones) == 0 {
		return nil
	}

	voices := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t, rate)
		if t.Delay > 0 {
			osc = beep.Seq(beep.Silence(rate.N(t.Delay)), osc)
		}
		voices = append(voices, osc)
	}

	// Bound the mix to the cue length.
	mixed := beep.Take(rate.N(Length(tones)), beep.Mix(voices...))
	return newVolume(mixed, volume)
}

// newVolume wraps s with a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume maps to a silent effect.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
