// Package modes implements the Lunaris rule-sets: Striker, Blitz, Zen and
// Hardcore. Each mode registers itself with the registry in init() and
// reads its tuning from the active configuration.
package modes

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/lunaris/internal/config"
	"github.com/vovakirdan/lunaris/internal/core"
	"github.com/vovakirdan/lunaris/internal/game"
)

var (
	cfgMu  sync.RWMutex
	active = config.Default()
)

// SetConfig sets the configuration used by registry-created modes.
func SetConfig(cfg config.Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	active = cfg
}

// activeConfig returns a copy of the current configuration.
func activeConfig() config.Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return active
}

// spawnPoint picks a uniform point at least margin away from the field edges.
func spawnPoint(rng *rand.Rand, width, height, margin float64) (float64, float64) {
	x := margin + rng.Float64()*(width-2*margin)
	y := margin + rng.Float64()*(height-2*margin)
	return x, y
}

// drift returns a velocity component uniform in [-spread/2, spread/2).
func drift(rng *rand.Rand, spread float64) float64 {
	return (rng.Float64() - 0.5) * spread
}

// paletteColor picks a cosmetic color for a standard target.
func paletteColor(rng *rand.Rand) core.Color {
	return game.Palette[rng.Intn(len(game.Palette))]
}

// typeColor returns the fixed color of typ, or a palette color when it has none.
func typeColor(rng *rand.Rand, typ game.TargetType) core.Color {
	if c := typ.Info().Color; c != "" {
		return c
	}
	return paletteColor(rng)
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(1))
	}
	return rng
}

var (
	_ game.Mode = (*Striker)(nil)
	_ game.Mode = (*Blitz)(nil)
	_ game.Mode = (*Zen)(nil)
	_ game.Mode = (*Hardcore)(nil)
)
