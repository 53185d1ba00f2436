// Package buddy implements the commentary companion: a rate-limited voice
// that reacts to game events with short lines, either fetched from a chat
// endpoint or picked from built-in per-skin line pools.
package buddy

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/lunaris/internal/game"
)

// Kind selects a line pool.
type Kind string

const (
	KindStart     Kind = "start"
	KindHit       Kind = "hit"
	KindMiss      Kind = "miss"
	KindBonus     Kind = "bonus"
	KindEquip     Kind = "equip"
	KindGameOver  Kind = "gameover"
	KindEncourage Kind = "encourage"
	KindWelcome   Kind = "welcome"
)

// Events the companion is triggered with.
const (
	EventGreeting = "GREETING"
	EventAmbient  = "AMBIENT"
	EventStall    = "User is stalling/stepped away"
	EventHit      = "User scored a hit"
)

// FallbackLine is said when nothing more specific is available.
const FallbackLine = "Excellent work! Keep moving!"

const defaultPool = "default"

var pools = map[string]map[Kind][]string{
	defaultPool: {
		KindStart: {
			"Boot sequence complete. Ready to rumble.",
			"Locking in targets. Let's go!",
			"Warm up those fists, pilot!",
		},
		KindHit:  {"Nice hit!", "Bullseye!", "Right on target!", "Smashed it!", "Clean strike!"},
		KindMiss: {"Close one, keep your eyes up.", "Missed. Reset and focus.", "Not quite, try again.", "Shake it off, you got this."},
		KindBonus: {
			"Sweet combo! Bonus!",
			"Extra points! You're cooking.",
			"Chain breaker! Keep it up.",
		},
		KindEquip: {"Gear equipped. Looking sharp.", "New loadout active. Stylish."},
		KindGameOver: {
			"Mission failed. Learn and return stronger.",
			"That was rough, regroup and retry.",
			"Game over. High-five for effort.",
		},
		KindEncourage: {"Keep pushing!", "You got the rhythm now!", "One more for the win!", "Push! Push! Push!"},
		KindWelcome:   {"Welcome, Pilot. Systems Online.", "Connection established. Ready.", "Neural link active."},
	},
	"MIDAS": {
		KindStart:     {"Metis online. Wisdom guides the fist.", "Calculate. Strike. Win."},
		KindHit:       {"Precisely.", "Optimal outcome.", "Knowledge is power.", "Calculated."},
		KindMiss:      {"Recalculating.", "Error in judgment.", "Focus your mind."},
		KindBonus:     {"Strategic advantage gained.", "Brilliant move!"},
		KindEquip:     {"Metis system engaged. Tactical advantage.", "Wisdom armor equipped."},
		KindGameOver:  {"The simulation ends.", "Review the data. Try again."},
		KindEncourage: {"Think before you strike.", "Analyze the pattern."},
	},
	"NEON": {
		KindStart:     {"Nightshield active. Shadows protect us.", "Darkness falls. We rise."},
		KindHit:       {"Silent strike.", "From the shadows.", "Too fast.", "Night falls."},
		KindMiss:      {"Revealed.", "Too loud.", "Back to the dark."},
		KindBonus:     {"Shadow arts!", "Unseen victory!"},
		KindEquip:     {"Nightshield cloak active.", "Embrace the dark."},
		KindGameOver:  {"The light finds us.", "Fade to black."},
		KindEncourage: {"Stay in the shadows.", "Strike when they blink."},
	},
	"CYBER": {
		KindStart:     {"Haven protocol initialized. Sanctuary secure.", "Peace through training."},
		KindHit:       {"Harmony.", "Flow like water.", "Perfect balance.", "Zen strike."},
		KindMiss:      {"Disruption detected.", "Unbalanced.", "Breathe."},
		KindBonus:     {"Nirvana achieved!", "Peaceful destruction!"},
		KindEquip:     {"Haven armor synced. Find your center.", "Sanctuary mode."},
		KindGameOver:  {"Balance lost.", "Return to one."},
		KindEncourage: {"Find your flow.", "Be the calm storm."},
	},
	"FIRE": {
		KindStart:     {"Omnicore systems online. Power overwhelming.", "Reactor at 100%."},
		KindHit:       {"Power surge!", "Critical hit!", "Overload!", "Maximum output!"},
		KindMiss:      {"System miss.", "Target lost.", "Re-calibrating core."},
		KindBonus:     {"Core meltdown!", "Limit break!"},
		KindEquip:     {"Omnicore fused. Unlimited power.", "Reactor suit on."},
		KindGameOver:  {"System failure.", "Shutdown sequence."},
		KindEncourage: {"Need more power!", "Push the engine!"},
	},
}

// Pool returns the lines for a skin and kind. A skin without its own pool
// for the kind falls back to the default pool, and an unknown kind falls
// back to encouragement.
func Pool(skinID string, kind Kind) []string {
	if p, ok := pools[strings.ToUpper(skinID)][kind]; ok {
		return p
	}
	if p, ok := pools[defaultPool][kind]; ok {
		return p
	}
	return pools[defaultPool][KindEncourage]
}

// Line picks a random line from Pool(skinID, kind).
func Line(skinID string, kind Kind, rng *rand.Rand) string {
	p := Pool(skinID, kind)
	if len(p) == 0 {
		return FallbackLine
	}
	return p[rng.Intn(len(p))]
}

// KindForEvent maps a companion event to the pool that answers it.
func KindForEvent(event string) Kind {
	switch event {
	case EventGreeting:
		return KindWelcome
	case EventHit:
		return KindHit
	default:
		return KindEncourage
	}
}

// KindForCue maps a sound cue to a callout pool. Cues without a callout
// report false.
func KindForCue(cue game.Cue) (Kind, bool) {
	switch cue {
	case game.CueHit:
		return KindHit, true
	case game.CueMiss, game.CueHazard:
		return KindMiss, true
	case game.CueBonus:
		return KindBonus, true
	case game.CueGameOver:
		return KindGameOver, true
	case game.CueEquip:
		return KindEquip, true
	default:
		return "", false
	}
}
