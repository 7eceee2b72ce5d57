package core

import (
	"testing"
	"time"
)

func TestPacerReady(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPacer(100 * time.Millisecond)
	p.now = func() time.Time { return now }

	if !p.Ready() {
		t.Fatal("first call must be ready")
	}
	now = now.Add(50 * time.Millisecond)
	if p.Ready() {
		t.Fatal("ready before delay elapsed")
	}
	now = now.Add(50 * time.Millisecond)
	if !p.Ready() {
		t.Fatal("not ready after delay elapsed")
	}
	if p.Ready() {
		t.Fatal("ready twice at the same instant")
	}
}

func TestPacerNegativeDelay(t *testing.T) {
	p := NewPacer(-time.Second)
	if p.Delay() != 0 {
		t.Fatalf("Delay = %v, want 0", p.Delay())
	}
	now := time.Unix(0, 1)
	p.now = func() time.Time { return now }
	for i := 0; i < 3; i++ {
		if !p.Ready() {
			t.Fatal("zero delay must always be ready")
		}
	}
}
