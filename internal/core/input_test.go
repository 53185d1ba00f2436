package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionConfirm)
	if !f.Has(ActionUp) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if tc.action.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.action.String(), tc.expected)
		}
	}
}

func TestCursorApply(t *testing.T) {
	c := NewCursor(100, 50, 10)
	if c.Pos != V(50, 25) {
		t.Fatalf("NewCursor position = %v, expected (50, 25)", c.Pos)
	}

	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionUp)
	c.Apply(f)
	if c.Pos != V(60, 15) {
		t.Errorf("Apply() = %v, expected (60, 15)", c.Pos)
	}

	// Clamped to the field
	for i := 0; i < 10; i++ {
		c.Apply(f)
	}
	if c.Pos != V(100, 0) {
		t.Errorf("cursor should clamp to field edge, got %v", c.Pos)
	}

	p := c.Point()
	p.X = -1
	if c.Pos.X != 100 {
		t.Error("Point should return a copy")
	}
}
