package cursor

import "testing"

func TestNew(t *testing.T) {
	w := New(1)
	if w.Offset() != 0 {
		t.Errorf("New() offset = %d, want 0", w.Offset())
	}
	if w.Margin() != 1 {
		t.Errorf("New() margin = %d, want 1", w.Margin())
	}
	if New(-3).Margin() != 0 {
		t.Errorf("New(-3) margin = %d, want 0", New(-3).Margin())
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		row        int
		rows       int
		height     int
		wantOffset int
	}{
		{
			name:       "fits without scrolling",
			row:        2,
			rows:       3,
			height:     4,
			wantOffset: 0,
		},
		{
			name:       "scrolls down to reveal row",
			row:        5,
			rows:       10,
			height:     3,
			wantOffset: 3,
		},
		{
			name:       "scrolls down keeping margin",
			margin:     1,
			row:        4,
			rows:       10,
			height:     4,
			wantOffset: 2,
		},
		{
			name:       "scrolls up to reveal row",
			initial:    6,
			row:        2,
			rows:       10,
			height:     3,
			wantOffset: 2,
		},
		{
			name:       "scrolls up keeping margin",
			margin:     1,
			initial:    6,
			row:        4,
			rows:       10,
			height:     4,
			wantOffset: 3,
		},
		{
			name:       "stays put while row visible",
			initial:    2,
			row:        3,
			rows:       10,
			height:     3,
			wantOffset: 2,
		},
		{
			name:       "offset clamped to last page",
			margin:     1,
			row:        9,
			rows:       10,
			height:     4,
			wantOffset: 6,
		},
		{
			name:       "row beyond grid clamps",
			row:        50,
			rows:       5,
			height:     2,
			wantOffset: 3,
		},
		{
			name:       "margin larger than viewport",
			margin:     5,
			row:        3,
			rows:       10,
			height:     2,
			wantOffset: 2,
		},
		{
			name:       "zero height resets",
			initial:    4,
			row:        3,
			rows:       10,
			height:     0,
			wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(tt.margin)
			w.offset = tt.initial
			w.Follow(tt.row, tt.rows, tt.height)
			if w.Offset() != tt.wantOffset {
				t.Errorf("Follow() offset = %d, want %d", w.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		rows      int
		height    int
		wantStart int
		wantEnd   int
	}{
		{"empty", 0, 0, 5, 0, 0},
		{"all visible", 0, 3, 5, 0, 3},
		{"window", 2, 10, 3, 2, 5},
		{"stale offset after shrink", 8, 4, 3, 1, 4},
		{"no height", 0, 4, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window{offset: tt.offset}
			start, end := w.VisibleRange(tt.rows, tt.height)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("VisibleRange() = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestReset(t *testing.T) {
	w := Window{offset: 7, margin: 1}
	w.Reset()
	if w.Offset() != 0 || w.Margin() != 1 {
		t.Errorf("Reset() = %+v, want offset 0 margin 1", w)
	}
}
