//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSectionsLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSectionsLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load sections: file not found",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "selection operation",
			op:       OpSelectionSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save selected section: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpClipsLoad,
			context:  "./data/party.json",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpClipsLoad,
			context:  "./data/party.json",
			err:      errors.New("unexpected EOF"),
			expected: "Failed to load section './data/party.json': unexpected EOF",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpClipLoad,
			context:  "",
			err:      errors.New("unsupported format"),
			expected: "Failed to load clip: unsupported format",
		},
		{
			name:     "clip with filename context",
			op:       OpClipLoad,
			context:  "airhorn.mp3",
			err:      errors.New("unsupported format"),
			expected: "Failed to load clip 'airhorn.mp3': unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{
		OpSectionsLoad, OpClipsLoad, OpCatalogWatch,
		OpClipLoad,
		OpPlaybackStart,
		OpSelectionLoad, OpSelectionSave,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
