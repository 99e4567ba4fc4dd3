// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/errmsg"
	"github.com/llehouerou/botonera/internal/ui/board"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.syncScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SectionsLoadedMsg:
		return m.handleSectionsLoaded(msg)

	case ClipsLoadedMsg:
		return m.handleClipsLoaded(msg)

	case TickMsg:
		if m.anyPlaying() {
			return m, TickCmd(m.redraw)
		}
		m.ticking = false
		return m, nil

	case PlaybackEventMsg:
		return m.handlePlaybackEvent(msg)

	case PlaybackClosedMsg:
		m.events = nil
		return m, nil

	case CatalogChangedMsg:
		cmd := m.handleCatalogChanged(msg.Ref)
		return m, tea.Batch(cmd, WatchCatalogChanges(m.changes))
	}

	return m, nil
}

func (m Model) handleSectionsLoaded(msg SectionsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.SectionsErr = errmsg.Format(errmsg.OpSectionsLoad, msg.Err)
		m.log.Error().Err(msg.Err).Str("ref", m.catalog.SectionsRef()).Msg("sections load failed")
		return m, nil
	}

	var previous string
	if sec, ok := m.ActiveSection(); ok && m.SectionsLoaded {
		previous = sec.Ref
	}

	m.Sections = msg.Sections
	m.SectionsErr = ""
	if m.SectionsLoaded {
		m.Active = m.indexOf(previous)
	} else {
		m.Active = m.initialSection()
		m.SectionsLoaded = true
	}
	m.Cursor = min(m.Cursor, max(0, len(m.ActivePads())-1))
	m.syncScroll()

	m.log.Info().Int("sections", len(m.Sections)).Msg("sections loaded")

	// Every section renders up front so that a broken one only hides itself
	cmds := make([]tea.Cmd, 0, len(m.Sections))
	for _, sec := range m.Sections {
		m.watch(sec.Ref)
		cmds = append(cmds, m.loadSection(sec.Ref))
	}
	return m, tea.Batch(cmds...)
}

// initialSection picks the start section: explicit flag, then the persisted
// selection, then the configured default, then the first one.
func (m Model) initialSection() int {
	persisted, ok, err := m.state.Selection()
	if err != nil {
		m.log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpSelectionLoad, err))
	}
	if !ok {
		persisted = ""
	}
	for _, ref := range []string{m.startSection, persisted, m.defaultSection} {
		if ref == "" {
			continue
		}
		if i, ok := m.findSection(ref); ok {
			return i
		}
	}
	return 0
}

func (m Model) findSection(ref string) (int, bool) {
	for i, sec := range m.Sections {
		if catalog.SameRef(sec.Ref, ref) {
			return i, true
		}
	}
	return 0, false
}

// indexOf returns the index of the section ref, or 0 when absent.
func (m Model) indexOf(ref string) int {
	i, _ := m.findSection(ref)
	return i
}

func (m Model) loadSection(ref string) tea.Cmd {
	v := m.view(ref)
	v.gen++
	v.loading = true
	return LoadClipsCmd(m.catalog, ref, v.gen)
}

func (m Model) handleClipsLoaded(msg ClipsLoadedMsg) (tea.Model, tea.Cmd) {
	v := m.view(msg.Ref)
	if msg.Gen != v.gen {
		return m, nil
	}
	v.loading = false
	v.loaded = true

	if msg.Err != nil {
		title := msg.Ref
		if i, ok := m.findSection(msg.Ref); ok {
			title = m.Sections[i].Title
		}
		v.err = errmsg.FormatWith(errmsg.OpClipsLoad, title, msg.Err)
		v.pads = nil
		m.log.Error().Err(msg.Err).Str("ref", msg.Ref).Msg("section load failed")
		return m, nil
	}

	// A reload replaces the pads; whatever plays on the old ones is stopped so
	// no orphaned pad keeps the playing visual.
	if board.AnyPlaying(v.pads) {
		m.player.CancelAll()
	}
	v.err = ""
	v.pads = board.NewPads(msg.Clips)
	if m.preloader != nil {
		m.preloader.Preload(board.ClipIDs(v.pads)...)
	}
	if sec, ok := m.ActiveSection(); ok && catalog.SameRef(sec.Ref, msg.Ref) {
		m.Cursor = min(m.Cursor, max(0, len(v.pads)-1))
		m.syncScroll()
	}
	m.log.Debug().Str("ref", msg.Ref).Int("clips", len(msg.Clips)).Msg("section loaded")
	return m, nil
}

func (m Model) handlePlaybackEvent(msg PlaybackEventMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{WatchPlaybackEvents(m.events)}
	switch {
	case msg.Started != nil:
		cmds = append(cmds, m.ensureTicking())
	case msg.Error != nil:
		// Rejected plays only leave the pad unlit
		m.log.Debug().Err(msg.Error.Err).Str("clip", string(msg.Error.Clip)).Msg("play rejected")
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return TickCmd(m.redraw)
}

// watch extends the file watcher to the directory holding ref.
func (m Model) watch(ref string) {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Add(ref); err != nil {
		m.log.Debug().Err(err).Str("ref", ref).Msg("section not watched")
	}
}

func (m Model) handleCatalogChanged(ref string) tea.Cmd {
	if catalog.SameRef(ref, m.catalog.SectionsRef()) {
		m.log.Info().Str("ref", ref).Msg("sections changed, reloading")
		return LoadSectionsCmd(m.catalog)
	}
	for _, sec := range m.Sections {
		if catalog.SameRef(sec.Ref, ref) {
			m.log.Info().Str("ref", ref).Msg("section changed, reloading")
			return m.loadSection(sec.Ref)
		}
	}
	return nil
}
