// internal/app/app_test.go
package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/clip"
	"github.com/llehouerou/botonera/internal/playback"
	"github.com/llehouerou/botonera/internal/sched"
	"github.com/llehouerou/botonera/internal/state"
)

const (
	partyRef = "./data/party.json"
	memesRef = "./data/memes.json"
	brokeRef = "./data/broken.json"
)

type fakeCatalog struct {
	mu          sync.Mutex
	sections    []catalog.Section
	sectionsErr error
	clips       map[string][]catalog.Clip
	errs        map[string]error
	clipCalls   []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		sections: []catalog.Section{
			{Title: "Party", Ref: partyRef},
			{Title: "Memes", Ref: memesRef},
		},
		clips: map[string][]catalog.Clip{
			partyRef: {
				{Label: "Airhorn", File: "airhorn.mp3", Color: "red"},
				{Label: "Applause", File: "applause.mp3", Color: "green"},
				{Label: "Drumroll", File: "drumroll.mp3"},
			},
			memesRef: {
				{Label: "Bruh", File: "bruh.mp3", Color: "blue"},
			},
		},
		errs: map[string]error{},
	}
}

func (f *fakeCatalog) SectionsRef() string { return catalog.DefaultSectionsRef }

func (f *fakeCatalog) Sections(context.Context) ([]catalog.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sectionsErr != nil {
		return nil, f.sectionsErr
	}
	return append([]catalog.Section(nil), f.sections...), nil
}

func (f *fakeCatalog) Clips(_ context.Context, ref string) ([]catalog.Clip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clipCalls = append(f.clipCalls, ref)
	if err := f.errs[ref]; err != nil {
		return nil, &catalog.LoadError{Ref: ref, Err: err}
	}
	return f.clips[ref], nil
}

type fixture struct {
	sched   *sched.Manual
	cache   *clip.Cache
	coord   *playback.Coordinator
	catalog *fakeCatalog
	state   *state.Mock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := sched.NewManual()
	cache := clip.NewCache("sounds", func(id clip.ID, _ string) clip.Handle {
		h := clip.NewMock(id)
		h.SetDuration(4 * time.Second)
		return h
	})
	coord := playback.New(s, cache, playback.Options{
		FadeDuration:     100 * time.Millisecond,
		FrameInterval:    10 * time.Millisecond,
		ProgressInterval: 50 * time.Millisecond,
		Logger:           zerolog.Nop(),
	})
	return &fixture{
		sched:   s,
		cache:   cache,
		coord:   coord,
		catalog: newFakeCatalog(),
		state:   state.NewMock(),
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		Player:         f.coord,
		Catalog:        f.catalog,
		Preloader:      f.cache,
		State:          f.state,
		RedrawInterval: time.Millisecond,
		Logger:         zerolog.Nop(),
	}
}

func (f *fixture) handle(id clip.ID) *clip.Mock {
	return f.cache.Get(id).(*clip.Mock)
}

// loaded returns a model after feeding it the catalog load results.
func (f *fixture) loaded(t *testing.T, d Deps) Model {
	t.Helper()
	m := New(d)
	m = m.WithSize(120, 40)
	return drain(t, m, LoadSectionsCmd(m.catalog))
}

// drain runs cmd and feeds catalog results back into the model. Other
// messages are dropped so that timers and watchers never block the test.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case SectionsLoadedMsg, ClipsLoadedMsg:
		next, c := m.Update(msg)
		m = next.(Model)
		m = drain(t, m, c)
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyHelp     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	keyQuit     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

var errBoom = errors.New("boom")
