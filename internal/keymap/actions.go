// Package keymap defines key bindings and action dispatch for the board.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionCancel Action = "cancel" // stop whatever is playing
	ActionReload Action = "reload" // reread the catalog

	// Section actions
	ActionNextSection Action = "next_section"
	ActionPrevSection Action = "prev_section"

	// Grid navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"

	// Trigger the focused pad: play it, stop it, or hand off to it
	ActionTrigger Action = "trigger"
)
