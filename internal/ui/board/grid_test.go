package board

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/keymap"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{10, 1},
		{PadWidth, 1},
		{2*PadWidth + padGap, 2},
		{2*PadWidth + padGap - 1, 1},
		{100, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Columns(tt.width), "width %d", tt.width)
	}
}

func TestMove(t *testing.T) {
	// 7 pads in 3 columns:
	// 0 1 2
	// 3 4 5
	// 6
	tests := []struct {
		name   string
		cursor int
		dir    Direction
		want   int
	}{
		{"right", 0, Right, 1},
		{"right at row end stays", 2, Right, 2},
		{"right past last pad stays", 6, Right, 6},
		{"left", 4, Left, 3},
		{"left at row start stays", 3, Left, 3},
		{"down", 1, Down, 4},
		{"down into short row", 3, Down, 6},
		{"down past end stays", 4, Down, 4},
		{"up", 4, Up, 1},
		{"up at top stays", 1, Up, 1},
		{"first", 5, First, 0},
		{"last", 1, Last, 6},
		{"out of range cursor is clamped", 40, Up, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Move(tt.cursor, tt.dir, 7, 3))
		})
	}
}

func TestMove_Empty(t *testing.T) {
	assert.Equal(t, 0, Move(3, Down, 0, 3))
}

func testPads() []*Pad {
	return NewPads([]catalog.Clip{
		{Label: "Airhorn", File: "airhorn.mp3", Color: "red"},
		{Label: "Applause", File: "applause.mp3", Color: "green"},
		{Label: "Drumroll please, a very long label", File: "drumroll.mp3"},
	})
}

func TestRenderGrid_Layout(t *testing.T) {
	pads := testPads()

	wide := ansi.Strip(RenderGrid(pads, 0, 200, NewProgressBar()))
	assert.True(t, containsLine(wide, "Airhorn"))
	assert.Contains(t, findLine(wide, "Airhorn"), "Applause", "wide terminals put pads side by side")

	narrow := ansi.Strip(RenderGrid(pads, 0, PadWidth, NewProgressBar()))
	assert.NotContains(t, findLine(narrow, "Airhorn"), "Applause")
	assert.Equal(t, 3*PadHeight, len(strings.Split(narrow, "\n")))
}

func TestRenderGrid_TruncatesLongLabels(t *testing.T) {
	out := ansi.Strip(RenderGrid(testPads(), 0, 200, NewProgressBar()))
	assert.Contains(t, out, "…")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 3*PadWidth+2*padGap)
	}
}

func TestRenderGridRows_Window(t *testing.T) {
	pads := testPads()

	out := ansi.Strip(RenderGridRows(pads, 1, PadWidth, 1, 2, NewProgressBar()))
	assert.Contains(t, out, "Applause")
	assert.NotContains(t, out, "Airhorn")
	assert.Contains(t, out, "▲ 1 more row")
	assert.Contains(t, out, "▼ 1 more row")
	assert.Equal(t, PadHeight+2, len(strings.Split(out, "\n")))
}

func TestRenderGridRows_ClampsRange(t *testing.T) {
	out := ansi.Strip(RenderGridRows(testPads(), 0, PadWidth, 5, 9, NewProgressBar()))
	assert.Contains(t, out, "▲ 2 more rows")
	assert.NotContains(t, out, "▼")
}

func TestRows(t *testing.T) {
	assert.Equal(t, 0, Rows(0, 3))
	assert.Equal(t, 3, Rows(7, 3))
	assert.Equal(t, 2, Rows(6, 3))
	assert.Equal(t, 4, Rows(4, 0))
	assert.Equal(t, 1, VisibleRows(2))
	assert.Equal(t, 3, VisibleRows(3*PadHeight+1))
}

func TestRenderGrid_Empty(t *testing.T) {
	out := ansi.Strip(RenderGrid(nil, 0, 80, NewProgressBar()))
	assert.Contains(t, out, "No sounds")
}

func TestRenderPad_Playing(t *testing.T) {
	p := NewPad(catalog.Clip{Label: "Airhorn", File: "airhorn.mp3"})
	p.SetPlaying(true)
	p.SetTimeLabel("0:01 / 0:04 · -0:03")
	p.SetProgress(25)

	out := ansi.Strip(RenderPad(p.State(), false, NewProgressBar()))
	assert.Contains(t, out, "▶ Airhorn")
	assert.Contains(t, out, "0:01 / 0:04 · -0:03")
}

func TestRenderPad_IdleHasNoTime(t *testing.T) {
	p := NewPad(catalog.Clip{Label: "Airhorn", File: "airhorn.mp3"})
	p.SetTimeLabel("0:01 / 0:04 · -0:03")

	out := ansi.Strip(RenderPad(p.State(), true, NewProgressBar()))
	assert.Contains(t, out, "Airhorn")
	assert.NotContains(t, out, "0:01")
}

func TestRenderHeader(t *testing.T) {
	out := ansi.Strip(RenderHeader([]string{"Party", "Memes"}, 1, 0))
	assert.Contains(t, out, "botonera")
	assert.Contains(t, out, "Party")
	assert.Contains(t, out, "Memes")

	cut := RenderHeader([]string{"Party", "Memes", "Sports", "Movies"}, 0, 20)
	assert.LessOrEqual(t, lipgloss.Width(cut), 20)
}

func TestRenderSectionError(t *testing.T) {
	out := ansi.Strip(RenderSectionError("Failed to load section './data/x.json': fetch failed", 0))
	assert.Contains(t, out, "fetch failed")
}

func TestRenderHelp(t *testing.T) {
	out := ansi.Strip(RenderHelp(keymap.All))
	assert.Contains(t, out, "Pads")
	assert.Contains(t, out, "Sections")
	assert.Contains(t, out, "enter/space")
	assert.Contains(t, out, "Stop playback")
}

func findLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

func containsLine(output, substr string) bool {
	return findLine(output, substr) != ""
}
