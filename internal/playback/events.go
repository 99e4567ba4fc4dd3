package playback

import (
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/botonera/internal/clip"
)

// Info is a snapshot of a session.
type Info struct {
	ID        uuid.UUID
	Clip      clip.ID
	StartedAt time.Time
}

// SessionStarted is emitted when a pad starts playing.
type SessionStarted struct {
	Session Info
}

// SessionEnded is emitted after the stop sequence of a session ran.
type SessionEnded struct {
	Session Info
	Reason  EndReason
}

// ErrorEvent is emitted when a play request is rejected.
type ErrorEvent struct {
	Clip clip.ID
	Err  error
}
