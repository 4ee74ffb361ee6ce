package core

import "testing"

func TestBoundsIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoundsOf(0, 0, 10, 10),
			b:        BoundsOf(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        BoundsOf(0, 0, 10, 10),
			b:        BoundsOf(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        BoundsOf(0, 0, 10, 10),
			b:        BoundsOf(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        BoundsOf(0, 0, 10, 10),
			b:        BoundsOf(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoundsOf(0, 0, 20, 20),
			b:        BoundsOf(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        BoundsOf(0, 0, 10, 10),
			b:        BoundsOf(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(5, 10, 20, 15)
	if b.Right != 25 || b.Bottom != 25 {
		t.Errorf("BoundsOf edges = (%v, %v), expected (25, 25)", b.Right, b.Bottom)
	}
	if b.Width() != 20 || b.Height() != 15 {
		t.Errorf("size = %vx%v, expected 20x15", b.Width(), b.Height())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventScored, Score: 3}}}
	if !r.Has(EventScored) {
		t.Error("Has(EventScored) should be true")
	}
	if r.Has(EventGameOver) {
		t.Error("Has(EventGameOver) should be false")
	}
}
