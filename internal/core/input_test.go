package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUp) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionNone)
	if !f.Has(ActionUp) {
		t.Error("Set(ActionUp) not recorded")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should drop every action")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionLeft, ActionUndo)
	if !f.Has(ActionLeft) || !f.Has(ActionUndo) || f.Has(ActionRight) {
		t.Errorf("FrameOf built %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionUndo:    "Undo",
		ActionNewGame: "NewGame",
		ActionDecline: "Decline",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
