package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
	}{
		{"origin", NewRect(0, 0, 4, 3), 4, 3},
		{"offset", NewRect(5, 10, 20, 15), 25, 25},
		{"empty", NewRect(7, 2, 0, 0), 7, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.r.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestClampToGrid(t *testing.T) {
	// Cell lookups clamp into [0, size-1].
	tests := []struct {
		name string
		val  int
		want int
	}{
		{"inside", 40, 40},
		{"left of grid", -3, 0},
		{"past right edge", 80, 79},
		{"first cell", 0, 0},
		{"last cell", 79, 79},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.val, 0, 79); got != tt.want {
				t.Errorf("Clamp(%d, 0, 79) = %d, want %d", tt.val, got, tt.want)
			}
		})
	}
}
