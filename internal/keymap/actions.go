// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionSwitchLayout Action = "switch_layout"

	// Result list navigation
	ActionMoveDown Action = "move_down"
	ActionMoveUp   Action = "move_up"
	ActionSelect   Action = "select" // enter - commit selection or raw text
	ActionClear    Action = "clear"  // esc - clear query and selection

	// Desktop
	ActionToggleDropdown Action = "toggle_dropdown"

	// Mobile overlay
	ActionOpenOverlay Action = "open_overlay"
	ActionBack        Action = "back"
	ActionErase       Action = "erase"
	ActionSubmit      Action = "submit"
)
