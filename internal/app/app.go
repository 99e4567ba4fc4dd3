// internal/app/app.go
package app

import (
	"time"

	bar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/keymap"
	"github.com/llehouerou/botonera/internal/playback"
	"github.com/llehouerou/botonera/internal/state"
	"github.com/llehouerou/botonera/internal/ui/board"
	"github.com/llehouerou/botonera/internal/ui/cursor"
)

// DefaultRedrawInterval paces redraws while a pad plays.
const DefaultRedrawInterval = 100 * time.Millisecond

// chromeLines is the height taken by the header, the status line and the
// blank lines around the body.
const chromeLines = 4

// Deps are the collaborators of the board model.
type Deps struct {
	Player    Player
	Catalog   Catalog
	Preloader Preloader // optional
	State     state.Interface

	Events  *playback.Subscription // optional
	Changes <-chan string          // optional, refs changed on disk
	Watcher Watcher                // optional, extended with every section ref

	Bindings       []keymap.Binding // nil means keymap.All
	Section        string           // explicit start section, wins over the persisted one
	DefaultSection string           // used when nothing is persisted
	RedrawInterval time.Duration
	Logger         zerolog.Logger
}

// sectionView holds what is known about one section's clip list.
type sectionView struct {
	pads    []*board.Pad
	err     string
	loading bool
	loaded  bool
	gen     int
}

// Model is the root application model containing all state.
type Model struct {
	player    Player
	catalog   Catalog
	preloader Preloader
	state     state.Interface
	events    *playback.Subscription
	changes   <-chan string
	watcher   Watcher
	log       zerolog.Logger

	bindings []keymap.Binding
	keys     *keymap.Resolver
	redraw   time.Duration

	startSection   string
	defaultSection string

	Sections       []catalog.Section
	SectionsErr    string
	SectionsLoaded bool
	Active         int
	views          map[string]*sectionView
	Cursor         int
	scroll         cursor.Window

	ShowHelp bool
	ticking  bool
	bar      bar.Model

	Width  int
	Height int
}

// New creates the board model.
func New(d Deps) Model {
	bindings := d.Bindings
	if bindings == nil {
		bindings = keymap.All
	}
	redraw := d.RedrawInterval
	if redraw <= 0 {
		redraw = DefaultRedrawInterval
	}
	st := d.State
	if st == nil {
		st = state.NewMock()
	}
	return Model{
		player:         d.Player,
		catalog:        d.Catalog,
		preloader:      d.Preloader,
		state:          st,
		events:         d.Events,
		changes:        d.Changes,
		watcher:        d.Watcher,
		log:            d.Logger,
		bindings:       bindings,
		keys:           keymap.NewResolver(bindings),
		redraw:         redraw,
		startSection:   d.Section,
		defaultSection: d.DefaultSection,
		views:          make(map[string]*sectionView),
		bar:            board.NewProgressBar(),
		scroll:         cursor.New(0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadSectionsCmd(m.catalog),
		WatchPlaybackEvents(m.events),
		WatchCatalogChanges(m.changes),
	)
}

// ActiveSection returns the selected section, if sections are loaded.
func (m Model) ActiveSection() (catalog.Section, bool) {
	if m.Active < 0 || m.Active >= len(m.Sections) {
		return catalog.Section{}, false
	}
	return m.Sections[m.Active], true
}

// ActivePads returns the pads of the selected section.
func (m Model) ActivePads() []*board.Pad {
	sec, ok := m.ActiveSection()
	if !ok {
		return nil
	}
	if v := m.views[sec.Ref]; v != nil {
		return v.pads
	}
	return nil
}

// SectionError returns the load error shown for the section ref, if any.
func (m Model) SectionError(ref string) string {
	if v := m.views[ref]; v != nil {
		return v.err
	}
	return ""
}

func (m Model) view(ref string) *sectionView {
	v := m.views[ref]
	if v == nil {
		v = &sectionView{}
		m.views[ref] = v
	}
	return v
}

func (m Model) anyPlaying() bool {
	for _, v := range m.views {
		if board.AnyPlaying(v.pads) {
			return true
		}
	}
	return false
}

// WithSize returns the model laid out for a width x height terminal.
func (m Model) WithSize(width, height int) Model {
	m.Width = width
	m.Height = height
	m.syncScroll()
	return m
}

// gridRows returns how many pad rows fit under the header.
func (m Model) gridRows() int {
	if m.Height <= 0 {
		// Size unknown yet, render everything
		return max(1, board.Rows(len(m.ActivePads()), m.columns()))
	}
	return board.VisibleRows(m.Height - chromeLines)
}

// syncScroll keeps the cursor row of the active grid in view.
func (m *Model) syncScroll() {
	cols := m.columns()
	m.scroll.Follow(m.Cursor/cols, board.Rows(len(m.ActivePads()), cols), m.gridRows())
}
