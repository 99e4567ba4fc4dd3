// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/botonera/internal/keymap"
	"github.com/llehouerou/botonera/internal/ui/board"
	"github.com/llehouerou/botonera/internal/ui/styles"
)

// View renders the UI.
func (m Model) View() string {
	titles := make([]string, len(m.Sections))
	for i, sec := range m.Sections {
		titles[i] = sec.Title
	}

	parts := []string{board.RenderHeader(titles, m.Active, m.Width), ""}
	parts = append(parts, m.renderBody())
	parts = append(parts, "", board.RenderStatus(m.statusLine()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderBody() string {
	st := styles.T().S()

	if m.ShowHelp {
		return board.RenderHelp(m.bindings)
	}
	if m.SectionsErr != "" {
		return board.RenderSectionError(m.SectionsErr, m.Width)
	}
	if !m.SectionsLoaded {
		return st.Muted.Render("Loading sections…")
	}
	sec, ok := m.ActiveSection()
	if !ok {
		return st.Muted.Render("No sections")
	}

	v := m.views[sec.Ref]
	switch {
	case v == nil || (v.loading && !v.loaded):
		return st.Muted.Render("Loading " + sec.Title + "…")
	case v.err != "":
		return board.RenderSectionError(v.err, m.Width)
	}
	first, last := m.scroll.VisibleRange(board.Rows(len(v.pads), m.columns()), m.gridRows())
	return board.RenderGridRows(v.pads, m.Cursor, m.Width, first, last, m.bar)
}

func (m Model) statusLine() string {
	hints := []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionTrigger, "play/stop"},
		{keymap.ActionCancel, "stop all"},
		{keymap.ActionNextSection, "section"},
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		if key, ok := m.keys.Hint(h.action); ok {
			parts = append(parts, key+" "+h.label)
		}
	}
	return strings.Join(parts, " · ")
}
