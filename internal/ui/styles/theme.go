package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the board.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused pad, active tab
	Secondary lipgloss.Color // Gold/orange - title gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Board background
	BgCursor lipgloss.Color // Focused pad fill

	// Borders
	Border      lipgloss.Color // Pads without a color tag
	BorderFocus lipgloss.Color // Focused pad border

	// Status colors
	Playing lipgloss.Color // Progress fill of the sounding pad
	Error   lipgloss.Color // Section load failures

	// Pads carries the color tags a clip may name.
	Pads map[string]lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Playing   lipgloss.Style // Label of the sounding pad
	Tab       lipgloss.Style // Inactive section tab
	TabActive lipgloss.Style // Selected section tab
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Playing: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),

	// Arcade button colors
	Pads: map[string]lipgloss.Color{
		"red":    lipgloss.Color("#ff5555"),
		"orange": lipgloss.Color("#ff9f43"),
		"yellow": lipgloss.Color("#f1c40f"),
		"green":  lipgloss.Color("#42b883"),
		"blue":   lipgloss.Color("#4aa3ff"),
		"purple": lipgloss.Color("#a78bfa"),
		"pink":   lipgloss.Color("#ff79c6"),
		"white":  lipgloss.Color("#e0e0e0"),
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// PadColor maps a clip color tag to a palette color. Unknown or empty tags
// fall back to the neutral border color.
func (t *Theme) PadColor(tag string) lipgloss.Color {
	if c, ok := t.Pads[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return c
	}
	return t.Border
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Playing).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
