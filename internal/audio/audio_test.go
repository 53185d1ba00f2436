package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestRecipes(t *testing.T) {
	tests := []struct {
		cue    game.Cue
		freqs  []float64
		waves  []Wave
		length time.Duration
	}{
		{game.CueHit, []float64{880, 1760}, []Wave{WaveSquare, WaveSquare}, 150 * time.Millisecond},
		{game.CueBonus, []float64{440, 880}, []Wave{WaveSine, WaveSine}, 200 * time.Millisecond},
		{game.CueMiss, []float64{150, 100}, []Wave{WaveSaw, WaveSaw}, 300 * time.Millisecond},
		{game.CueHazard, []float64{100, 50}, []Wave{WaveSaw, WaveSquare}, 500 * time.Millisecond},
		{game.CueGameOver, []float64{400, 350, 300, 250}, []Wave{WaveTriangle, WaveTriangle, WaveTriangle, WaveTriangle}, 800 * time.Millisecond},
		{game.CueEquip, []float64{660}, []Wave{WaveSine}, 150 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.cue), func(t *testing.T) {
			tones := Recipe(tc.cue)
			require.Len(t, tones, len(tc.freqs))
			for i, tone := range tones {
				assert.Equal(t, tc.freqs[i], tone.Freq, "tone %d freq", i)
				assert.Equal(t, tc.waves[i], tone.Wave, "tone %d wave", i)
				assert.Greater(t, tone.Gain, 0.0)
			}
			assert.Equal(t, tc.length, Length(tones))
		})
	}
}

func TestRecipeCoversAllCues(t *testing.T) {
	for _, cue := range game.AllCues {
		assert.NotEmpty(t, Recipe(cue), "cue %s has no recipe", cue)
	}
	assert.Nil(t, Recipe("unknown"))
}

func TestRecipeIsFresh(t *testing.T) {
	a := Recipe(game.CueHit)
	a[0].Freq = 1
	assert.Equal(t, 880.0, Recipe(game.CueHit)[0].Freq)
}

func TestGameOverSteps(t *testing.T) {
	tones := Recipe(game.CueGameOver)
	for i, tone := range tones {
		assert.Equal(t, time.Duration(i)*200*time.Millisecond, tone.Delay)
		assert.Equal(t, DecayLinear, tone.Decay)
	}
}

func TestOscillatorDrains(t *testing.T) {
	tone := Tone{Wave: WaveSquare, Freq: 220, Duration: 50 * time.Millisecond, Gain: 0.5, Decay: DecayLinear}
	total, peak := drain(NewOscillator(tone, testRate))

	assert.Equal(t, testRate.N(50*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.4, "first samples should be near full gain")
}

func TestOscillatorWaveRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		t.Run(w.String(), func(t *testing.T) {
			tone := Tone{Wave: w, Freq: 440, Duration: 20 * time.Millisecond, Gain: 1, Decay: DecayExp}
			_, peak := drain(NewOscillator(tone, testRate))
			assert.LessOrEqual(t, peak, 1.0)
			assert.Greater(t, peak, 0.0)
		})
	}
}

func TestOscillatorEnvelopeDecays(t *testing.T) {
	tone := Tone{Wave: WaveSquare, Freq: 100, Duration: 100 * time.Millisecond, Gain: 0.1, Decay: DecayExp}
	osc := NewOscillator(tone, testRate)

	head := make([][2]float64, 10)
	osc.Stream(head)
	rest := make([][2]float64, testRate.N(100*time.Millisecond)-20)
	osc.Stream(rest)
	tail := make([][2]float64, 10)
	osc.Stream(tail)

	absHead, absTail := head[0][0], tail[len(tail)-1][0]
	if absHead < 0 {
		absHead = -absHead
	}
	if absTail < 0 {
		absTail = -absTail
	}
	assert.Greater(t, absHead, absTail*10)
}

func TestBuild(t *testing.T) {
	s := Build(game.CueGameOver, testRate, 0.3)
	require.NotNil(t, s)

	total, _ := drain(s)
	assert.Equal(t, testRate.N(800*time.Millisecond), total)

	assert.Nil(t, Build("unknown", testRate, 1))
}

func TestBuildSilentVolume(t *testing.T) {
	s := Build(game.CueHit, testRate, 0)
	require.NotNil(t, s)
	_, peak := drain(s)
	assert.Zero(t, peak)
}

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: true, Volume: 0.3}, nil)
	assert.False(t, sm.Active())

	// Must not panic or block without a device.
	sm.Play(game.CueHit)
	sm.Close()
}

func TestSoundManagerDisabled(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false}, nil)
	require.NoError(t, sm.Initialize())
	assert.False(t, sm.Active())
	sm.Play(game.CueMiss)
}
