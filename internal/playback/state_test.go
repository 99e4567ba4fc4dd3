package playback

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "Idle"},
		{StateActive, "Active"},
		{State(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestEndReason_String(t *testing.T) {
	tests := []struct {
		reason EndReason
		want   string
	}{
		{EndToggled, "toggled"},
		{EndSuperseded, "superseded"},
		{EndCompleted, "completed"},
		{EndCancelled, "cancelled"},
		{EndRejected, "rejected"},
		{EndReason(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("EndReason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
