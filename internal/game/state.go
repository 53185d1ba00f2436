package game

import "math"

// InfiniteLives marks a mode without a life budget.
// It is large and positive so Lives <= 0 stays the failure test.
const InfiniteLives = math.MaxInt32

// GameState is the per-run scoreboard and pacing record shared between
// the engine and the active mode.
type GameState struct {
	Score         int
	Combo         int
	Lives         int
	SpawnRate     float64 // ms between spawn attempts
	TimeLimit     float64 // seconds, 0 = untimed
	TimeLeft      float64 // seconds
	StartTime     int64   // ms
	LastSpawnTime int64   // ms
	Now           int64   // ms, timestamp of the current tick
}

// HasInfiniteLives reports whether the run has no life budget.
func (s GameState) HasInfiniteLives() bool {
	return s.Lives == InfiniteLives
}

// Timed reports whether the run has a time limit.
func (s GameState) Timed() bool {
	return s.TimeLimit > 0
}

// Over reports whether the run reached a terminal condition.
func (s GameState) Over() bool {
	if s.Lives <= 0 {
		return true
	}
	return s.Timed() && s.TimeLeft <= 0
}

// Elapsed returns milliseconds since the run started.
func (s GameState) Elapsed() int64 {
	return s.Now - s.StartTime
}
