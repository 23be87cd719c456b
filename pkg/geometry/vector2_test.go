package geometry

import (
	"math"
	"testing"
)

func TestVector2AddSub(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, -6)

	if got, want := v1.Add(v2), NewVector2(5, -4); got != want {
		t.Errorf("Add failed: expected %v, got %v", want, got)
	}
	if got, want := v1.Sub(v2), NewVector2(-3, 8); got != want {
		t.Errorf("Sub failed: expected %v, got %v", want, got)
	}
}

func TestVector2Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector2
		want float64
	}{
		{"same point", NewVector2(3, 3), NewVector2(3, 3), 0},
		{"pythagorean", NewVector2(0, 0), NewVector2(3, 4), 5},
		{"negative quadrant", NewVector2(-1, -1), NewVector2(-4, -5), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Distance(tt.b); math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Distance failed: expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestVector2Abs(t *testing.T) {
	if got, want := NewVector2(-2, 3).Abs(), NewVector2(2, 3); got != want {
		t.Errorf("Abs failed: expected %v, got %v", want, got)
	}
}

func TestVector2Angle(t *testing.T) {
	tests := []struct {
		v    Vector2
		want float64
	}{
		{NewVector2(1, 0), 0},
		{NewVector2(0, 1), 90},
		{NewVector2(-1, 0), 180},
		{NewVector2(0, -1), -90},
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("Angle(%v) failed: expected %v, got %v", tt.v, tt.want, got)
		}
	}
}
