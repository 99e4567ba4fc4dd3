// Package app hosts the board's root bubbletea model and wires the
// application together.
package app

import (
	"time"

	"github.com/llehouerou/botonera/internal/catalog"
	"github.com/llehouerou/botonera/internal/playback"
)

// SectionsLoadedMsg carries the result of reading the sections document.
type SectionsLoadedMsg struct {
	Sections []catalog.Section
	Err      error
}

// ClipsLoadedMsg carries the clips of one section. Gen discards results of
// loads that were superseded by a reload.
type ClipsLoadedMsg struct {
	Ref   string
	Gen   int
	Clips []catalog.Clip
	Err   error
}

// TickMsg redraws progress while a pad plays.
type TickMsg time.Time

// PlaybackEventMsg wraps one coordinator event; exactly one field is set.
type PlaybackEventMsg struct {
	Started *playback.SessionStarted
	Ended   *playback.SessionEnded
	Error   *playback.ErrorEvent
}

// PlaybackClosedMsg is sent when the coordinator's subscription closes.
type PlaybackClosedMsg struct{}

// CatalogChangedMsg reports a catalog document changed on disk.
type CatalogChangedMsg struct {
	Ref string
}
