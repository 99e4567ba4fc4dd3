package styles

import "github.com/charmbracelet/lipgloss"

// PadFrame returns the border style of a pad. The focused pad gets a thick
// border in the focus color; a sounding pad keeps its own color at full
// strength while idle pads are dimmed toward the background.
func PadFrame(color lipgloss.Color, focused, playing bool) lipgloss.Style {
	t := T()
	border := lipgloss.RoundedBorder()
	fg := color
	if !playing {
		fg = Blend(color, t.BgBase, 0.35)
	}
	if focused {
		border = lipgloss.ThickBorder()
		fg = t.BorderFocus
	}
	style := lipgloss.NewStyle().
		BorderStyle(border).
		BorderForeground(fg)
	if focused {
		style = style.Background(t.BgCursor)
	}
	return style
}
