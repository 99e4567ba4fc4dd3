// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpSectionsLoad Op = "load sections"
	OpClipsLoad    Op = "load section"
	OpCatalogWatch Op = "watch catalog"

	// Clip operations
	OpClipLoad Op = "load clip"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Persisted selection
	OpSelectionLoad Op = "load selected section"
	OpSelectionSave Op = "save selected section"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
