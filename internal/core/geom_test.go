package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 12, false},
		{12, 15, false},
		{9, 12, false},
		{12, 9, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even", NewRect(0, 0, 20, 10), 10, 4, NewRect(5, 3, 10, 4)},
		{"odd remainder", NewRect(0, 0, 21, 11), 10, 4, NewRect(5, 3, 10, 4)},
		{"offset outer", NewRect(4, 2, 20, 10), 10, 4, NewRect(9, 5, 10, 4)},
		{"larger than outer", NewRect(0, 0, 4, 4), 8, 2, NewRect(-2, 1, 8, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) || f.Has(ActionDown) {
		t.Errorf("unexpected actions: %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Actions) != 0 {
		t.Error("Clear should remove all actions")
	}
}
