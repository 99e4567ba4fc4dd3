// internal/playback/state.go
package playback

// State represents the coordinator state machine.
//
//	┌──────┐   toggle (new pad)    ┌────────┐
//	│ Idle │ ─────────────────────▶│ Active │ ──┐ toggle (other pad):
//	└──────┘                       └────────┘ ◀─┘ stop, then start
//	    ▲                              │
//	    └──────────────────────────────┘
//	     toggle (same pad, playing), natural end,
//	     cancel, rejected play
//
// Only one session exists while Active. Cancel in Idle is a no-op.
type State int

const (
	StateIdle State = iota
	StateActive
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	default:
		return "Unknown"
	}
}

// EndReason tells why a session ended.
type EndReason int

const (
	// EndToggled: the active pad was pressed again.
	EndToggled EndReason = iota
	// EndSuperseded: another pad started.
	EndSuperseded
	// EndCompleted: the clip played to its end.
	EndCompleted
	// EndCancelled: external cancel (cancel key, section switch, shutdown).
	EndCancelled
	// EndRejected: the output refused to start the clip.
	EndRejected
)

// String returns the reason name.
func (r EndReason) String() string {
	switch r {
	case EndToggled:
		return "toggled"
	case EndSuperseded:
		return "superseded"
	case EndCompleted:
		return "completed"
	case EndCancelled:
		return "cancelled"
	case EndRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
