package util

import "testing"

func TestNewDeterministicForSeed(t *testing.T) {
	a := New(5)
	b := New(5)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(3), b.Intn(3); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}

func TestNewZeroSeed(t *testing.T) {
	if New(0) == nil {
		t.Fatal("New(0) returned nil")
	}
}
