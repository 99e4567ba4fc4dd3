package board

import (
	"fmt"
	"strings"

	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/botonera/internal/ui/styles"
)

const (
	// PadWidth is the outer width of a pad including its border.
	PadWidth = 24
	// PadHeight is the outer height of a pad including its border.
	PadHeight = 5
	padGap    = 1
	innerW    = PadWidth - 2
)

// Direction is a cursor movement on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	First
	Last
)

// Columns returns how many pads fit side by side in width.
func Columns(width int) int {
	if width <= 0 {
		return 1
	}
	return max(1, (width+padGap)/(PadWidth+padGap))
}

// Move returns the cursor after moving in dir over count pads laid out in
// cols columns. Moves that would leave the grid keep the cursor in place.
func Move(cursor int, dir Direction, count, cols int) int {
	if count <= 0 {
		return 0
	}
	cols = max(1, cols)
	cursor = max(0, min(cursor, count-1))
	switch dir {
	case Up:
		if cursor-cols >= 0 {
			return cursor - cols
		}
	case Down:
		if cursor+cols < count {
			return cursor + cols
		}
	case Left:
		if cursor%cols > 0 {
			return cursor - 1
		}
	case Right:
		if cursor%cols < cols-1 && cursor+1 < count {
			return cursor + 1
		}
	case First:
		return 0
	case Last:
		return count - 1
	}
	return cursor
}

// NewProgressBar returns the per-pad progress bar.
func NewProgressBar() bar.Model {
	t := styles.T()
	return bar.New(
		bar.WithSolidFill(string(t.Playing)),
		bar.WithoutPercentage(),
		bar.WithWidth(innerW-2),
	)
}

// Rows returns how many grid rows count pads take in cols columns.
func Rows(count, cols int) int {
	cols = max(1, cols)
	return (count + cols - 1) / cols
}

// VisibleRows returns how many pad rows fit in height lines, at least one.
func VisibleRows(height int) int {
	return max(1, height/PadHeight)
}

// RenderGrid lays pads out in rows that fit width.
func RenderGrid(pads []*Pad, cursor, width int, pb bar.Model) string {
	return RenderGridRows(pads, cursor, width, 0, Rows(len(pads), Columns(width)), pb)
}

// RenderGridRows renders grid rows [first, last) and marks rows hidden above
// and below.
func RenderGridRows(pads []*Pad, cursor, width, first, last int, pb bar.Model) string {
	if len(pads) == 0 {
		return styles.T().S().Muted.Render("No sounds in this section")
	}
	cols := Columns(width)
	total := Rows(len(pads), cols)
	first = max(0, min(first, total-1))
	last = max(first+1, min(last, total))

	rows := make([]string, 0, last-first+2)
	if first > 0 {
		rows = append(rows, moreLine("▲", first))
	}
	for r := first; r < last; r++ {
		start := r * cols
		end := min(start+cols, len(pads))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", padGap))
			}
			cells = append(cells, RenderPad(pads[i].State(), i == cursor, pb))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	if last < total {
		rows = append(rows, moreLine("▼", total-last))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func moreLine(arrow string, rows int) string {
	label := fmt.Sprintf("%s %d more row", arrow, rows)
	if rows > 1 {
		label += "s"
	}
	return styles.T().S().Subtle.Render(label)
}

// RenderPad renders one pad: label, then progress bar and time while playing.
func RenderPad(s PadState, focused bool, pb bar.Model) string {
	t := styles.T()
	st := t.S()

	label := ansi.Truncate(s.Label, innerW-2, "…")
	var lines [3]string
	if s.Playing {
		lines[0] = st.Playing.Render("▶ " + ansi.Truncate(s.Label, innerW-4, "…"))
		lines[1] = pb.ViewAs(s.Percent / 100)
		lines[2] = st.Muted.Render(ansi.Truncate(s.TimeLabel, innerW, ""))
	} else {
		labelStyle := st.Base
		if focused {
			labelStyle = st.Title
		}
		lines[1] = labelStyle.Render(label)
	}

	body := lipgloss.NewStyle().
		Width(innerW).
		Height(PadHeight - 2).
		Align(lipgloss.Center).
		Render(strings.Join(lines[:], "\n"))

	return styles.PadFrame(t.PadColor(s.Color), focused, s.Playing).Render(body)
}
