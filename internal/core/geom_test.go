package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
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

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(10, 10, 10, 10), NewBox(15, 15, 10, 10), true},
		{"touching edges", NewBox(10, 10, 10, 10), NewBox(20, 10, 10, 10), false},
		{"far apart", NewBox(10, 10, 4, 4), NewBox(100, 100, 4, 4), false},
		{"contained", NewBox(50, 50, 40, 40), NewBox(50, 50, 2, 2), true},
		{"same center", NewBox(5, 5, 1, 1), NewBox(5, 5, 1, 1), true},
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

func TestBoxEdges(t *testing.T) {
	b := NewBox(100, 200, 40, 20)
	if b.Left() != 80 || b.Right() != 120 || b.Top() != 190 || b.Bottom() != 210 {
		t.Errorf("edges = (%v, %v, %v, %v), expected (80, 120, 190, 210)",
			b.Left(), b.Right(), b.Top(), b.Bottom())
	}

	b.SetLeft(0)
	if b.C.X != 20 {
		t.Errorf("SetLeft(0) center x = %v, expected 20", b.C.X)
	}
	b.SetBottom(720)
	if b.C.Y != 710 {
		t.Errorf("SetBottom(720) center y = %v, expected 710", b.C.Y)
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name       string
		box        Box
		horizontal bool
		vertical   bool
	}{
		{"inside", NewBox(240, 360, 48, 48), true, true},
		{"left edge out", NewBox(10, 360, 48, 48), false, true},
		{"right edge out", NewBox(470, 360, 48, 48), false, true},
		{"above", NewBox(240, 0, 48, 48), true, false},
		{"below", NewBox(240, 719, 48, 48), true, false},
		{"corner", NewBox(0, 0, 48, 48), false, false},
		{"flush with edges", NewBox(24, 24, 48, 48), true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, v := InBounds(tc.box, 480, 720)
			if h != tc.horizontal || v != tc.vertical {
				t.Errorf("InBounds() = (%v, %v), expected (%v, %v)", h, v, tc.horizontal, tc.vertical)
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	from := NewBox(0, 0, 10, 10)

	d := DirectionTo(from, NewBox(3, 4, 10, 10))
	if math.Abs(d.X-0.6) > 1e-9 || math.Abs(d.Y-0.8) > 1e-9 {
		t.Errorf("DirectionTo() = %v, expected (0.6, 0.8)", d)
	}
	if math.Abs(d.Len()-1) > 1e-9 {
		t.Errorf("DirectionTo() length = %v, expected 1", d.Len())
	}

	// Coincident centers must not divide by zero
	d = DirectionTo(from, NewBox(0, 0, 50, 50))
	if d != FallbackDirection {
		t.Errorf("DirectionTo() coincident = %v, expected %v", d, FallbackDirection)
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
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
