package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"issuepick/internal/ui/input/types"
)

// Handler turns key and mouse messages into actions
type Handler struct {
	keys KeyMap
}

// New creates a handler with the default key map
func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active key map
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps a key press to actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	k := h.keys
	switch {
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}
	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}
	case key.Matches(msg, k.Help):
		return []types.Action{types.ShowHelpAction{}}
	}

	// The remaining bindings act on rows
	if ctx.RowCount() == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, k.Toggle):
		return []types.Action{types.ToggleRowAction{Index: -1}}
	case key.Matches(msg, k.ToggleAll):
		return []types.Action{types.ToggleAllAction{}}
	case key.Matches(msg, k.Clear):
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}
		}
	case key.Matches(msg, k.Detail):
		return []types.Action{types.ShowDetailAction{}}
	}
	return nil
}

// HandleMouse maps a left click to actions. Clicking a row moves the
// cursor there and toggles it; clicking the header toggles select-all.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}
	case tea.MouseButtonWheelDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}
	case tea.MouseButtonLeft:
	default:
		return nil
	}

	kind, index := ctx.LineAt(msg.Y)
	switch kind {
	case types.LineSelectAll:
		if ctx.RowCount() == 0 {
			return nil
		}
		return []types.Action{types.ToggleAllAction{}}
	case types.LineRow:
		return []types.Action{
			types.MoveCursorAction{Index: index},
			types.ToggleRowAction{Index: index},
		}
	}
	return nil
}
