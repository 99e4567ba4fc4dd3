package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "section", "grid"
}

// All contains the default key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionCancel, []string{"esc"}, "Stop playback", "global"},
	{ActionReload, []string{"ctrl+r"}, "Reload catalog", "global"},

	// Sections
	{ActionNextSection, []string{"tab", "]"}, "Next section", "section"},
	{ActionPrevSection, []string{"shift+tab", "["}, "Previous section", "section"},

	// Grid
	{ActionMoveUp, []string{"k", "up"}, "Move up", "grid"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "grid"},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", "grid"},
	{ActionMoveRight, []string{"l", "right"}, "Move right", "grid"},
	{ActionJumpStart, []string{"g", "home"}, "First pad", "grid"},
	{ActionJumpEnd, []string{"G", "end"}, "Last pad", "grid"},
	{ActionTrigger, []string{"enter", " "}, "Play/stop pad", "grid"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithCancelKey returns bindings with the cancel action rebound to key.
// An empty key keeps the defaults. Any other binding on key is dropped from
// that key so the override wins.
func WithCancelKey(bindings []Binding, key string) []Binding {
	if key == "" {
		return bindings
	}
	result := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		if b.Action == ActionCancel {
			b.Keys = []string{key}
			result = append(result, b)
			continue
		}
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if k != key {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 {
			continue
		}
		b.Keys = keys
		result = append(result, b)
	}
	return result
}
