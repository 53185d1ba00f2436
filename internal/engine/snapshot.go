package engine

// Snapshot is a compact, comparable summary of the engine state.
// Two engines fed the same seed and inputs produce equal snapshots.
type Snapshot struct {
	Tick      uint64
	Running   bool
	Score     int
	Combo     int
	Lives     int
	SpawnRate int // ms scaled by 1000 for precision
	TimeLeft  int // seconds scaled by 1000
	Targets   int
	Particles int
	Texts     int
	Shake     int // scaled by 1000
	NextID    int
	TargetSum int // sum of target positions scaled by 1000
}

// Snapshot returns the current engine state as a Snapshot.
func (e *Engine) Snapshot() Snapshot {
	sum := 0.0
	for _, t := range e.targets {
		sum += t.X + t.Y
	}
	return Snapshot{
		Tick:      e.tick,
		Running:   e.running,
		Score:     e.state.Score,
		Combo:     e.state.Combo,
		Lives:     e.state.Lives,
		SpawnRate: int(e.state.SpawnRate * 1000),
		TimeLeft:  int(e.state.TimeLeft * 1000),
		Targets:   len(e.targets),
		Particles: len(e.particles),
		Texts:     len(e.texts),
		Shake:     int(e.shake * 1000),
		NextID:    e.nextID,
		TargetSum: int(sum * 1000),
	}
}
