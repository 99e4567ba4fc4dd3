// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/botonera/internal/playback"
)

const loadTimeout = 15 * time.Second

// TickCmd returns a command that sends TickMsg after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LoadSectionsCmd reads the sections document.
func LoadSectionsCmd(c Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		sections, err := c.Sections(ctx)
		return SectionsLoadedMsg{Sections: sections, Err: err}
	}
}

// LoadClipsCmd reads the clips of the section document ref.
func LoadClipsCmd(c Catalog, ref string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		clips, err := c.Clips(ctx, ref)
		return ClipsLoadedMsg{Ref: ref, Gen: gen, Clips: clips, Err: err}
	}
}

// WatchPlaybackEvents returns a command that waits for the next coordinator event.
func WatchPlaybackEvents(sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.Started:
			return PlaybackEventMsg{Started: &e}
		case e := <-sub.Ended:
			return PlaybackEventMsg{Ended: &e}
		case e := <-sub.Error:
			return PlaybackEventMsg{Error: &e}
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}

// WatchCatalogChanges returns a command that waits for the next changed ref.
func WatchCatalogChanges(ch <-chan string) tea.Cmd {
	return waitForChannel(ch, func(ref string, ok bool) tea.Msg {
		if !ok {
			return nil // Watcher closed
		}
		return CatalogChangedMsg{Ref: ref}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
