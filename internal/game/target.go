package game

import "github.com/vovakirdan/lunaris/internal/core"

// TargetType classifies a target and selects its scoring and look.
type TargetType int

const (
	Standard TargetType = iota
	TimeOrb
	VoidMine
	FlowOrb
	ComboStar
)

// DefaultMaxRadius is the full-grown radius of targets whose type does not fix one.
const DefaultMaxRadius = 30.0

// TypeInfo holds the fixed attributes of a target type.
type TypeInfo struct {
	Name      string
	BaseScore int
	Color     core.Color // empty means cosmetic, picked from Palette
	Radius    float64    // 0 means DefaultMaxRadius
}

var typeTable = map[TargetType]TypeInfo{
	Standard:  {Name: "STANDARD", BaseScore: 10},
	TimeOrb:   {Name: "TIME_ORB", BaseScore: 50, Color: core.ColorGold, Radius: 25},
	VoidMine:  {Name: "VOID_MINE", BaseScore: 0, Color: core.ColorRed, Radius: 35},
	FlowOrb:   {Name: "FLOW_ORB", BaseScore: 5, Color: core.ColorMint},
	ComboStar: {Name: "COMBO_STAR", BaseScore: 20, Color: core.ColorPurple},
}

// Info returns the read-only attributes of the type.
func (t TargetType) Info() TypeInfo {
	return typeTable[t]
}

// String returns the type name, e.g. "TIME_ORB".
func (t TargetType) String() string {
	if info, ok := typeTable[t]; ok {
		return info.Name
	}
	return "UNKNOWN"
}

// MaxRadius returns the type's fixed radius, or DefaultMaxRadius.
func (t TargetType) MaxRadius() float64 {
	if r := typeTable[t].Radius; r > 0 {
		return r
	}
	return DefaultMaxRadius
}

// Palette is the cosmetic color set for standard targets.
var Palette = []core.Color{
	core.ColorCyan,
	core.ColorPurple,
	core.ColorYellow,
	core.ColorPink,
	core.ColorMint,
}

// Target is a circular entity that grows from zero radius, drifts, and is
// eliminated by contact or by expiring.
type Target struct {
	ID        int
	X, Y      float64
	VX, VY    float64
	Radius    float64
	MaxRadius float64
	Color     core.Color
	Type      TargetType
	BornTime  int64   // ms, stamped by the engine
	MaxAge    float64 // ms, 0 = engine default
}

// Pos returns the target center.
func (t *Target) Pos() core.Vec2 {
	return core.V(t.X, t.Y)
}
