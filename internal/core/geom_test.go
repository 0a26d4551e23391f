package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not collide",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRectF(0, 0, 20, 20),
			b:        NewRectF(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRectF(0, 0, 10, 10),
			b:        NewRectF(9.5, 9.5, 10, 10),
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

func TestRectFInsetX(t *testing.T) {
	r := NewRectF(10, 20, 40, 30).InsetX(5)
	if r.X != 15 || r.W != 30 || r.Y != 20 || r.H != 30 {
		t.Errorf("InsetX(5) = %+v, expected {15 20 30 30}", r)
	}

	collapsed := NewRectF(0, 0, 4, 4).InsetX(5)
	if collapsed.W != 0 {
		t.Errorf("InsetX larger than half width should collapse to 0, got %f", collapsed.W)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %f, expected 15", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %f, expected 10", got)
	}
}
