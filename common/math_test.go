package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{10, 0, 0.25, 7.5},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Fatalf("Clamp01 out of range")
	}
}
