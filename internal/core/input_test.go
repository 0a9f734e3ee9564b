package core

import "testing"

func TestInputFrameKeepsOrderAndRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionHardDrop)

	got := f.Actions()
	want := []Action{ActionLeft, ActionLeft, ActionHardDrop}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionHardDrop) || f.Has(ActionRotateCW) {
		t.Error("Has reports wrong membership")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone is never stored")
	}
}

func TestInputFrameActionsIsCopy(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	a := f.Actions()
	a[0] = ActionQuit

	if !f.Has(ActionPause) || f.Has(ActionQuit) {
		t.Error("mutating Actions() result must not change the frame")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionSoftDrop)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if f.Has(ActionRight) {
		t.Error("cleared frame still has actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionToggleMute, "ToggleMute"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.a, got, tt.want)
		}
	}
}

func TestColorANSI(t *testing.T) {
	if ColorNone.ANSI() != "" {
		t.Errorf("ColorNone.ANSI() = %q, expected empty", ColorNone.ANSI())
	}
	seen := map[string]Color{}
	for c := ColorRed; c <= ColorDim; c++ {
		code := c.ANSI()
		if code == "" {
			t.Errorf("%v has no ANSI code", c)
		}
		if prev, ok := seen[code]; ok {
			t.Errorf("%v and %v share ANSI code %s", prev, c, code)
		}
		seen[code] = c
	}
}
