package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"issuepick/internal/ui/input/types"
)

type fakeContext struct {
	current      int
	rows         int
	hasSelection bool
}

func (c fakeContext) CurrentIndex() int  { return c.current }
func (c fakeContext) RowCount() int      { return c.rows }
func (c fakeContext) HasSelection() bool { return c.hasSelection }

// Line 0 is the select-all control, line 1 column headers, rows from line 2
func (c fakeContext) LineAt(y int) (types.LineKind, int) {
	switch {
	case y == 0:
		return types.LineSelectAll, 0
	case y >= 2 && y-2 < c.rows:
		return types.LineRow, y - 2
	}
	return types.LineOther, 0
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKey(t *testing.T) {
	ctx := fakeContext{rows: 3, hasSelection: true}

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []types.Action
	}{
		{"space toggles current row", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, []types.Action{types.ToggleRowAction{Index: -1}}},
		{"x toggles current row", runes("x"), []types.Action{types.ToggleRowAction{Index: -1}}},
		{"a toggles all", runes("a"), []types.Action{types.ToggleAllAction{}}},
		{"esc clears", tea.KeyMsg{Type: tea.KeyEsc}, []types.Action{types.ClearSelectionAction{}}},
		{"j moves down", runes("j"), []types.Action{types.NavigateAction{Direction: "down"}}},
		{"up moves up", tea.KeyMsg{Type: tea.KeyUp}, []types.Action{types.NavigateAction{Direction: "up"}}},
		{"G goes to end", runes("G"), []types.Action{types.NavigateAction{Direction: "end"}}},
		{"enter shows detail", tea.KeyMsg{Type: tea.KeyEnter}, []types.Action{types.ShowDetailAction{}}},
		{"? shows help", runes("?"), []types.Action{types.ShowHelpAction{}}},
		{"q quits", runes("q"), []types.Action{types.QuitAction{}}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []types.Action{types.QuitAction{}}},
		{"unbound key", runes("z"), nil},
	}

	h := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.HandleKey(tt.msg, ctx))
		})
	}
}

func TestHandleKeyEmptyList(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	assert.Nil(t, h.HandleKey(runes("x"), ctx))
	assert.Nil(t, h.HandleKey(runes("a"), ctx))
	assert.Nil(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx))
	assert.Equal(t, []types.Action{types.QuitAction{}}, h.HandleKey(runes("q"), ctx))
}

func TestEscWithoutSelection(t *testing.T) {
	h := New()
	assert.Nil(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{rows: 2}))
}

func TestHandleMouse(t *testing.T) {
	h := New()
	ctx := fakeContext{rows: 3}

	click := func(y int) tea.MouseMsg {
		return tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	assert.Equal(t, []types.Action{types.ToggleAllAction{}}, h.HandleMouse(click(0), ctx))
	assert.Equal(t, []types.Action{
		types.MoveCursorAction{Index: 1},
		types.ToggleRowAction{Index: 1},
	}, h.HandleMouse(click(3), ctx))
	assert.Nil(t, h.HandleMouse(click(1), ctx), "column header is inert")
	assert.Nil(t, h.HandleMouse(click(10), ctx), "below the list is inert")

	release := tea.MouseMsg{Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	assert.Nil(t, h.HandleMouse(release, ctx))

	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, h.HandleMouse(wheel, ctx))

	assert.Nil(t, h.HandleMouse(click(0), fakeContext{}), "select-all on an empty list does nothing")
}
