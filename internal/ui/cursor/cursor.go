// Package cursor keeps a window of grid rows scrolled so the focused row stays visible.
package cursor

// Window is the scroll state of a grid rendered a few rows at a time.
// The row count and viewport height are passed to methods rather than stored,
// since they change with the section and the terminal size.
type Window struct {
	offset int // First visible row
	margin int // Rows to keep visible above/below the focused row
}

// New creates a Window with the specified scroll margin.
func New(margin int) Window {
	return Window{margin: max(margin, 0)}
}

// Offset returns the first visible row.
func (w Window) Offset() int {
	return w.offset
}

// Margin returns the scroll margin.
func (w Window) Margin() int {
	return w.margin
}

// Follow scrolls the minimum needed to keep row visible among rows total rows
// shown height at a time.
func (w *Window) Follow(row, rows, height int) {
	if height <= 0 || rows <= 0 {
		w.offset = 0
		return
	}
	row = clamp(row, rows-1)

	// The margin cannot exceed half the viewport or the row could never settle
	margin := min(w.margin, (height-1)/2)

	// Scroll up: row too close to top
	if row < w.offset+margin {
		w.offset = max(row-margin, 0)
	}

	// Scroll down: row too close to bottom
	if row >= w.offset+height-margin {
		w.offset = row - height + margin + 1
	}

	w.offset = clamp(w.offset, max(rows-height, 0))
}

// VisibleRange returns the range of visible rows [start, end).
func (w Window) VisibleRange(rows, height int) (start, end int) {
	if rows <= 0 || height <= 0 {
		return 0, 0
	}
	start = clamp(w.offset, max(rows-height, 0))
	end = min(start+height, rows)
	return start, end
}

// Reset scrolls back to the first row.
func (w *Window) Reset() {
	w.offset = 0
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
