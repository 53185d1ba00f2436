package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/lunaris/internal/audio"
	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/modes"
	"github.com/vovakirdan/lunaris/internal/platform/tui"
	"github.com/vovakirdan/lunaris/internal/skin"
	"github.com/vovakirdan/lunaris/internal/storage"
)

// services holds the services shared by the play commands.
type services struct {
	cfg     config.Config
	logger  *log.Logger
	store   *storage.Store
	skins   *skin.Manager
	sound   *audio.SoundManager
	logFile *os.File
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger builds the command logger. Terminal frontends own stdout, so
// logs are dropped unless --log-file is set or toStderr is true.
func newLogger(toStderr bool) (*log.Logger, *os.File, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q", flagLogLevel)
	}

	var (
		out  io.Writer = io.Discard
		file *os.File
	)
	switch {
	case flagLogFile != "":
		file, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = file
	case toStderr:
		out = os.Stderr
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lunaris",
		Level:           level,
	})
	return logger, file, nil
}

// openServices loads config, storage, skins and, when withAudio is set, the
// sound output. Storage and audio failures are warnings: the game still
// runs without them.
func openServices(withAudio, logToStderr bool) (*services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	modes.SetConfig(cfg)

	logger, logFile, err := newLogger(logToStderr)
	if err != nil {
		return nil, err
	}
	rt := &services{cfg: cfg, logger: logger, logFile: logFile}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
	} else {
		rt.store = store
	}

	skinOpts := []skin.Option{skin.WithLogger(logger)}
	if withAudio {
		rt.sound = audio.NewSoundManager(cfg.Audio, logger)
		if err := rt.sound.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
		skinOpts = append(skinOpts, skin.WithCues(rt.sound))
	}
	if rt.store != nil {
		rt.skins = skin.NewManager(rt.store, skinOpts...)
	} else {
		rt.skins = skin.NewManager(nil, skinOpts...)
	}

	return rt, nil
}

// env returns the terminal frontend environment.
func (rt *services) env() tui.Env {
	env := tui.Env{
		Config:   rt.cfg,
		Store:    rt.store,
		Skins:    rt.skins,
		Logger:   rt.logger,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Initials: flagInitials,
	}
	if rt.sound != nil {
		env.Cues = rt.sound
	}
	return env
}

// Close releases audio, storage and the log file.
func (rt *services) Close() {
	if rt.sound != nil {
		rt.sound.Close()
	}
	if rt.store != nil {
		rt.store.Close()
	}
	if rt.logFile != nil {
		rt.logFile.Close()
	}
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
