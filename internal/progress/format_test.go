//nolint:goconst // test cases intentionally repeat strings for readability
package progress

import (
	"math"
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"negative", -1, "0:00"},
		{"nan", math.NaN(), "0:00"},
		{"positive infinity", math.Inf(1), "0:00"},
		{"negative infinity", math.Inf(-1), "0:00"},
		{"seconds only", 9, "0:09"},
		{"minute and seconds", 75, "1:15"},
		{"fraction floors", 59.99, "0:59"},
		{"exact minute", 120, "2:00"},
		{"long clip", 3725, "62:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTime(tt.seconds); got != tt.want {
				t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		known    bool
		want     string
	}{
		{"start", 0, 75 * time.Second, true, "0:00 / 1:15 · -1:15"},
		{"middle", 30500 * time.Millisecond, 75 * time.Second, true, "0:30 / 1:15 · -0:44"},
		{"unknown duration", 3 * time.Second, 0, false, "0:03 / 0:00 · -0:00"},
		{"past end", 80 * time.Second, 75 * time.Second, true, "1:20 / 1:15 · -0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.position, tt.duration, tt.known); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		position time.Duration
		duration time.Duration
		known    bool
		want     float64
		wantOK   bool
	}{
		{"half", 5 * time.Second, 10 * time.Second, true, 50, true},
		{"clamped high", 12 * time.Second, 10 * time.Second, true, 100, true},
		{"clamped low", -time.Second, 10 * time.Second, true, 0, true},
		{"unknown", 5 * time.Second, 0, false, 0, false},
		{"zero duration", 0, 0, true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percent(tt.position, tt.duration, tt.known)
			if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Percent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
