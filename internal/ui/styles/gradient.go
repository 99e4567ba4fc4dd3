package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders text bold with a horizontal color gradient, one color
// per grapheme cluster. Non-hex colors render the whole text in from.
func TitleGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	bold := lipgloss.NewStyle().Bold(true)
	c1, ok1 := parseHex(from)
	c2, ok2 := parseHex(to)
	switch {
	case len(clusters) == 0:
		return ""
	case len(clusters) == 1 || !ok1 || !ok2:
		return bold.Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the steps perceptually even
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(bold.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// Blend mixes from toward to by t (0 keeps from, 1 gives to) in HCL space.
// Non-hex colors are returned unchanged.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	c1, ok1 := parseHex(from)
	c2, ok2 := parseHex(to)
	switch {
	case !ok1 || !ok2, t <= 0:
		return from
	case t >= 1:
		return to
	}
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

func parseHex(c lipgloss.Color) (colorful.Color, bool) {
	if len(c) != 7 || c[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(string(c))
	return col, err == nil
}
