package core

import (
	"math"
	"testing"
)

func TestGradientBackground_Sample(t *testing.T) {
	sky := NewGradientBackground(NewVec3(1, 1, 1), NewVec3(0.5, 0.7, 1.0))

	tests := []struct {
		name      string
		direction Vec3
		expected  Vec3
	}{
		{
			name:      "straight up returns the top color",
			direction: NewVec3(0, 1, 0),
			expected:  NewVec3(0.5, 0.7, 1.0),
		},
		{
			name:      "straight down returns the bottom color",
			direction: NewVec3(0, -1, 0),
			expected:  NewVec3(1, 1, 1),
		},
		{
			name:      "horizontal returns the midpoint",
			direction: NewVec3(1, 0, 0),
			expected:  NewVec3(0.75, 0.85, 1.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sky.Sample(NewRay(NewVec3(0, 0, 0), tt.direction))
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGradientBackground_NormalizesDirection(t *testing.T) {
	sky := NewGradientBackground(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	// Scaling the direction must not change the sample
	a := sky.Sample(NewRay(NewVec3(0, 0, 0), NewVec3(1, 1, 0)))
	b := sky.Sample(NewRay(NewVec3(0, 0, 0), NewVec3(10, 10, 0)))

	if math.Abs(a.X-b.X) > 1e-12 {
		t.Errorf("Expected direction length to not matter: %v vs %v", a, b)
	}
}

func TestSolidBackground_Sample(t *testing.T) {
	black := NewSolidBackground(NewVec3(0, 0, 0))

	for _, dir := range []Vec3{NewVec3(0, 1, 0), NewVec3(1, -2, 3)} {
		if got := black.Sample(NewRay(NewVec3(0, 0, 0), dir)); got != NewVec3(0, 0, 0) {
			t.Errorf("Expected constant black, got %v", got)
		}
	}
}
