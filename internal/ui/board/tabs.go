package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/botonera/internal/ui/styles"
)

const appTitle = "botonera"

// RenderHeader renders the title and the section tabs on one line, cut to width.
func RenderHeader(titles []string, active, width int) string {
	t := styles.T()
	st := t.S()

	parts := []string{styles.TitleGradient(appTitle, t.Primary, t.Secondary), " "}
	for i, title := range titles {
		style := st.Tab
		if i == active {
			style = st.TabActive
		}
		parts = append(parts, style.Render(title))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if width > 0 && lipgloss.Width(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// RenderSectionError renders a section load failure in place of its grid.
func RenderSectionError(msg string, width int) string {
	st := styles.T().S()
	style := st.Error
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render("✗ " + strings.TrimSpace(msg))
}
