// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/botonera/internal/keymap"
	"github.com/llehouerou/botonera/internal/ui/board"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())

	// Help swallows everything except closing it and quitting
	if m.ShowHelp {
		switch action {
		case keymap.ActionQuit:
			return m.quit()
		case keymap.ActionHelp, keymap.ActionCancel:
			m.ShowHelp = false
		}
		return m, nil
	}

	switch action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionCancel:
		m.player.CancelAll()
		return m, nil
	case keymap.ActionReload:
		return m, LoadSectionsCmd(m.catalog)
	case keymap.ActionNextSection:
		return m.switchSection(1)
	case keymap.ActionPrevSection:
		return m.switchSection(-1)
	case keymap.ActionTrigger:
		return m.trigger()
	case keymap.ActionMoveUp:
		return m.move(board.Up), nil
	case keymap.ActionMoveDown:
		return m.move(board.Down), nil
	case keymap.ActionMoveLeft:
		return m.move(board.Left), nil
	case keymap.ActionMoveRight:
		return m.move(board.Right), nil
	case keymap.ActionJumpStart:
		return m.move(board.First), nil
	case keymap.ActionJumpEnd:
		return m.move(board.Last), nil
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.player.CancelAll()
	return m, tea.Quit
}

// switchSection moves the selection by delta, wrapping around. Navigating
// away stops playback and persists the new selection.
func (m Model) switchSection(delta int) (tea.Model, tea.Cmd) {
	n := len(m.Sections)
	if n == 0 {
		return m, nil
	}
	next := ((m.Active+delta)%n + n) % n
	if next == m.Active {
		return m, nil
	}

	m.player.CancelAll()
	m.Active = next
	m.Cursor = 0
	m.scroll.Reset()

	sec := m.Sections[next]
	m.state.SaveSelection(sec.Ref)
	m.log.Debug().Str("section", sec.Title).Msg("section selected")

	if v := m.views[sec.Ref]; v == nil || (!v.loaded && !v.loading) {
		return m, m.loadSection(sec.Ref)
	}
	return m, nil
}

func (m Model) trigger() (tea.Model, tea.Cmd) {
	pads := m.ActivePads()
	if m.Cursor < 0 || m.Cursor >= len(pads) {
		return m, nil
	}
	pad := pads[m.Cursor]
	m.player.Toggle(pad, pad.ClipID(), pad)
	if pad.Playing() {
		return m, m.ensureTicking()
	}
	return m, nil
}

func (m Model) move(dir board.Direction) Model {
	m.Cursor = board.Move(m.Cursor, dir, len(m.ActivePads()), m.columns())
	m.syncScroll()
	return m
}

func (m Model) columns() int {
	return board.Columns(m.Width)
}
