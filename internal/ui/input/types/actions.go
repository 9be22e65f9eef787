package types

// Action is something the model should do in response to input
type Action interface {
	Type() string
}

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// MoveCursorAction places the cursor on a row, e.g. after a mouse click
type MoveCursorAction struct {
	Index int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Selection actions
type ToggleRowAction struct {
	Index int // -1 for current
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ToggleAllAction struct{}

func (a ToggleAllAction) Type() string { return "toggle_all" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Pager actions
type ShowDetailAction struct{}

func (a ShowDetailAction) Type() string { return "show_detail" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
