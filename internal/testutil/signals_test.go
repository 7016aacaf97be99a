package testutil

import "testing"

func TestTutorialHRF(t *testing.T) {
	k := TutorialHRF()
	if len(k) != 20 {
		t.Fatalf("len = %d, want 20", len(k))
	}
	if k[5] != 9.2 {
		t.Fatalf("k[5] = %v, want 9.2 (peak)", k[5])
	}

	k[5] = 0
	if TutorialHRF()[5] != 9.2 {
		t.Fatal("TutorialHRF shares storage between calls")
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	if len(imp) != 8 {
		t.Fatalf("len = %d, want 8", len(imp))
	}
	for i, v := range imp {
		if i == 3 {
			if v != 1 {
				t.Fatalf("imp[3] = %v, want 1", v)
			}
		} else if v != 0 {
			t.Fatalf("imp[%d] = %v, want 0", i, v)
		}
	}
}

func TestImpulseOutOfBounds(t *testing.T) {
	imp := Impulse(4, 10)
	for i, v := range imp {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds pos", i, v)
		}
	}
}

func TestZeros(t *testing.T) {
	z := Zeros(3)
	if len(z) != 3 {
		t.Fatalf("len = %d, want 3", len(z))
	}
	for i, v := range z {
		if v != 0 {
			t.Fatalf("Zeros[%d] = %v, want 0", i, v)
		}
	}
}
