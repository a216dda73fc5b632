package core

import "testing"

func TestFixedStepDT(t *testing.T) {
	fs := NewFixedStep(50)
	if got := fs.DT(); got != 0.02 {
		t.Fatalf("expected 0.02s per tick at 50 TPS, got %f", got)
	}
	fs.SetTPS(100)
	if got := fs.DT(); got != 0.01 {
		t.Fatalf("expected 0.01s per tick at 100 TPS, got %f", got)
	}
}

func TestFixedStepDefaultsBadTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.DT(); got != 1.0/60 {
		t.Fatalf("non-positive TPS should fall back to 60, got %f", got)
	}
	fs.SetTPS(-5)
	if got := fs.DT(); got != 1.0/60 {
		t.Fatalf("SetTPS should also fall back to 60, got %f", got)
	}
}

func TestFixedStepFiresImmediatelyThenWaits(t *testing.T) {
	// One-second steps keep the second call comfortably inside the wait
	// window regardless of scheduling.
	fs := NewFixedStep(1)
	if !fs.ShouldStep() {
		t.Fatal("a fresh controller should fire its first tick at once")
	}
	if fs.ShouldStep() {
		t.Fatal("the next tick must wait for a full step of wall time")
	}
}
