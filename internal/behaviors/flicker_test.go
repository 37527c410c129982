package behaviors

import "testing"

func TestFlickerStaysWithinBounds(t *testing.T) {
	f := NewFlicker(1.0, 0.3, 42)

	for i := 0; i < 10000; i++ {
		v := f.Update(1.0 / 60.0)
		if v < 0.7 || v > 1.3 {
			t.Fatalf("frame %d: intensidade %f fora de [0.7, 1.3]", i, v)
		}
	}
}

func TestFlickerIsDeterministicPerSeed(t *testing.T) {
	a := NewFlicker(1.0, 0.3, 7)
	b := NewFlicker(1.0, 0.3, 7)

	for i := 0; i < 100; i++ {
		if va, vb := a.Update(1.0/60.0), b.Update(1.0/60.0); va != vb {
			t.Fatalf("frame %d: mesma semente divergiu (%f vs %f)", i, va, vb)
		}
	}
}

func TestFlickerZeroAmplitudeHoldsBase(t *testing.T) {
	f := NewFlicker(2.0, 0, 1)

	for i := 0; i < 100; i++ {
		if v := f.Update(1.0 / 60.0); v != 2.0 {
			t.Fatalf("frame %d: intensidade %f, want 2.0", i, v)
		}
	}
}
