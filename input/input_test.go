package input

import "testing"

func TestSimulatedDownAndPressed(t *testing.T) {
	d := NewSimulated()
	if d.Down(Right) {
		t.Fatalf("expected Right up initially")
	}

	d.SimulateDown(Right)
	if !d.Down(Right) {
		t.Errorf("expected Right down after SimulateDown")
	}
	if !d.Pressed(Right) {
		t.Errorf("expected Right pressed on the frame it went down")
	}

	d.Advance()
	if d.Pressed(Right) {
		t.Errorf("expected Right not pressed on the following frame while still held")
	}
	if !d.Down(Right) {
		t.Errorf("expected Right to remain down")
	}
}

func TestSimulatedDisableMasksQueries(t *testing.T) {
	d := NewSimulated()
	d.SimulateDown(Fire1)
	d.Disable()
	if d.Down(Fire1) || d.Pressed(Fire1) {
		t.Errorf("disabled device must report everything up")
	}
	d.Reset()
	if d.Down(Fire1) {
		t.Errorf("expected Reset to clear held buttons")
	}
}
