package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/botonera/internal/keymap"
	"github.com/llehouerou/botonera/internal/ui/styles"
)

var helpContexts = []struct {
	context string
	title   string
}{
	{"grid", "Pads"},
	{"section", "Sections"},
	{"global", "General"},
}

// RenderHelp lists the bindings grouped by context.
func RenderHelp(bindings []keymap.Binding) string {
	st := styles.T().S()

	var blocks []string
	for _, hc := range helpContexts {
		var lines []string
		for _, b := range bindings {
			if b.Context != hc.context {
				continue
			}
			keys := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				keys[i] = keymap.KeyLabel(k)
			}
			lines = append(lines, st.Title.Render(padRight(strings.Join(keys, "/"), 16))+st.Muted.Render(b.Description))
		}
		if len(lines) == 0 {
			continue
		}
		blocks = append(blocks, st.Playing.Render(hc.title)+"\n"+strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Render(strings.Join(blocks, "\n\n"))
}

// RenderStatus renders the bottom hint line.
func RenderStatus(text string) string {
	return styles.T().S().Subtle.Render(text)
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s + " "
}
