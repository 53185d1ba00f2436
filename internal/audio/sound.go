package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/game"
)

// ErrNoDevice is returned by Initialize when the speaker cannot be opened.
var ErrNoDevice = errors.New("audio: no output device")

// SoundManager plays cue tones through the system speaker.
// It satisfies game.CueSink. Until Initialize succeeds (or when audio is
// disabled) every Play is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. A nil logger discards output.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = config.Default().Audio.SampleRate
	}
	return &SoundManager{
		cfg:    cfg,
		rate:   beep.SampleRate(rate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. Disabled audio returns nil and stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("Audio initialized", "rate", int(sm.rate), "volume", sm.cfg.Volume)
	return nil
}

// Active reports whether cues are actually reaching the speaker.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues the cue on the mixer and returns immediately.
func (sm *SoundManager) Play(cue game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := Build(cue, sm.rate, sm.cfg.Volume)
	if s == nil {
		sm.logger.Debug("No recipe for cue", "cue", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything queued on the mixer.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the device open; clearing the mixer is enough to stop output.
	sm.initialized = false
}
