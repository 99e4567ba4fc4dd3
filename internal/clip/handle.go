// Package clip owns the playable audio handles of the soundboard: one handle per
// clip, created lazily and kept for the lifetime of the process.
package clip

import (
	"errors"
	"time"
)

// ID identifies an audio resource. It is the clip's file name relative to the
// sounds directory.
type ID string

// ErrRejected is returned by Play when the output device refuses to start audio
// or the clip could not be loaded.
var ErrRejected = errors.New("playback rejected")

// Handle is one playable resource bound to a clip ID.
//
// Handles are not safe for concurrent use: every method must be called from the
// scheduler thread that created them. OnEnded callbacks run on that thread too.
type Handle interface {
	ID() ID
	// Play starts or resumes playback from the current position.
	Play() error
	// Pause halts playback and keeps the position.
	Pause()
	// Playing reports whether playback was requested and not paused or ended.
	Playing() bool
	// Loading reports whether a requested play is still waiting for the clip
	// to load. Such a handle makes no sound yet.
	Loading() bool
	Position() time.Duration
	// Seek moves the playback position; it is clamped to the clip.
	Seek(pos time.Duration)
	// Duration returns the clip length; ok is false until it is known.
	Duration() (d time.Duration, ok bool)
	// Volume returns the level in [0, 1].
	Volume() float64
	SetVolume(level float64)
	// OnEnded registers the end hook, replacing any previous one. It fires when
	// the clip runs out and when an accepted play fails later; Err tells the two
	// apart. A nil fn removes the hook.
	OnEnded(fn func())
	// Err returns why the last accepted play ended without sound, or nil.
	Err() error
}

func clampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
