package mathutil

import "testing"

func TestRoundEven(t *testing.T) {
	type in struct {
		v, exp float32
	}
	ins := []in{
		{0, 0},
		{1, 0}, // 0.5 ties to even
		{2, 2},
		{3, 4}, // 1.5 ties to even
		{5, 4}, // 2.5 ties to even
		{853.3333, 854},
		{333.3333, 334},
		{640, 640},
		{-3, -4},
	}
	for _, u := range ins {
		if v := RoundEven(u.v); v != u.exp {
			t.Fatalf("roundeven(%v)=%v, expected %v", u.v, v, u.exp)
		}
	}
}

func TestLimit(t *testing.T) {
	if v := Limit(5, 0, 3); v != 3 {
		t.Fatal(v)
	}
	if v := LimitFloat32(-0.5, 0, 1); v != 0 {
		t.Fatal(v)
	}
	if v := Max(1, 7, 3); v != 7 {
		t.Fatal(v)
	}
}
