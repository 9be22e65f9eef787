package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"issuepick/internal/config"
	"issuepick/internal/domain"
	"issuepick/internal/eventbus"
	"issuepick/internal/ui/services/selection"
	"issuepick/internal/ui/views"
)

func testIssues() []domain.Issue {
	return []domain.Issue{
		{ID: "1", Name: "TypeError", Message: "Cannot read properties", Status: domain.StatusOpen, Value: 10},
		{ID: "2", Name: "RangeError", Message: "Maximum call stack", Status: domain.StatusResolved, Value: 5},
		{ID: "3", Name: "SyntaxError", Message: "Unexpected token", Status: domain.StatusOpen, Value: 20},
	}
}

func newTestModel(t *testing.T, issues []domain.Issue) *Model {
	t.Helper()
	svc := selection.NewService(nil)
	svc.Load(issues)
	cfg := config.DefaultConfig()
	cfg.UISettings.MarkdownStyle = "notty"
	m := NewModel(cfg, svc, "test.json")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func click(m *Model, y int) {
	m.Update(tea.MouseMsg{Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func TestKeyboardSelection(t *testing.T) {
	m := newTestModel(t, testIssues())

	press(m, "space")
	assert.True(t, m.Selection().Checked(0))
	assert.Equal(t, 10, m.Selection().Summary().TotalSelectedValue)
	assert.True(t, m.Selection().Summary().Indeterminate)

	press(m, "j", "space")
	assert.False(t, m.Selection().Checked(1), "resolved row stays unchecked")
	assert.Equal(t, 10, m.Selection().Summary().TotalSelectedValue)

	press(m, "j", "space")
	assert.Equal(t, 30, m.Selection().Summary().TotalSelectedValue)
	assert.True(t, m.Selection().Summary().AllSelected)

	press(m, "esc")
	assert.Zero(t, m.Selection().Summary().TotalSelectedValue)
	assert.False(t, m.Selection().Summary().AllSelected)
}

func TestSelectAllKey(t *testing.T) {
	m := newTestModel(t, testIssues())

	press(m, "a")
	assert.True(t, m.Selection().Checked(0))
	assert.False(t, m.Selection().Checked(1))
	assert.True(t, m.Selection().Checked(2))
	assert.Equal(t, 30, m.Selection().Summary().TotalSelectedValue)

	press(m, "a")
	assert.Zero(t, m.Selection().Summary().CheckedCount)
}

func TestMouseSelection(t *testing.T) {
	m := newTestModel(t, testIssues())

	click(m, views.FirstRowLine+2)
	assert.True(t, m.Selection().Checked(2))
	assert.Equal(t, 2, m.CurrentIndex(), "click moves the cursor")

	click(m, views.FirstRowLine+1)
	assert.False(t, m.Selection().Checked(1))

	click(m, views.SelectAllLine)
	assert.True(t, m.Selection().Summary().AllSelected, "indeterminate header click selects all")

	click(m, views.SelectAllLine)
	assert.Zero(t, m.Selection().Summary().CheckedCount)

	click(m, views.ColumnsLine)
	click(m, views.FirstRowLine+10)
	assert.Zero(t, m.Selection().Summary().CheckedCount)
}

func TestViewReflectsState(t *testing.T) {
	m := newTestModel(t, testIssues())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, views.BoxUnchecked+" None selected")
	assert.Contains(t, out, "test.json")

	press(m, "space")
	out = ansi.Strip(m.View())
	assert.Contains(t, out, views.BoxIndeterminate+" Selected 10")

	press(m, "a")
	out = ansi.Strip(m.View())
	assert.Contains(t, out, views.BoxChecked+" Selected 30")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[views.FirstRowLine+1], views.BoxDisabled)
}

func TestIssuesLoadedEventReplacesSelection(t *testing.T) {
	m := newTestModel(t, testIssues())
	press(m, "a", "G")

	reloaded := []domain.Issue{{ID: "9", Name: "Only", Status: domain.StatusOpen, Value: 4}}
	_, cmd := m.Update(EventMsg{Event: eventbus.IssuesLoadedEvent{Source: "new.json", Issues: reloaded}})
	require.NotNil(t, cmd)

	assert.Equal(t, 1, m.RowCount())
	assert.Zero(t, m.Selection().Summary().CheckedCount)
	assert.Equal(t, 0, m.CurrentIndex())
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "Reloaded 1 issues")
	assert.Contains(t, out, "new.json")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, ansi.Strip(m.View()), "Reloaded")
}

func TestErrorEventShowsStatus(t *testing.T) {
	m := newTestModel(t, testIssues())

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "reload failed", Err: errors.New("bad json")}})
	assert.Contains(t, ansi.Strip(m.View()), "reload failed: bad json")
}

func TestEmptyList(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Nil(t, press(m, "space"))
	assert.Nil(t, press(m, "a"))
	assert.Nil(t, press(m, "enter"))
	assert.True(t, m.Selection().Summary().AllSelected)
	assert.Contains(t, ansi.Strip(m.View()), "No issues")
}

func TestDetailWithoutProgramReportsFailure(t *testing.T) {
	m := newTestModel(t, testIssues())

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	msg := cmd()
	detail, ok := msg.(detailPagerMsg)
	require.True(t, ok)
	assert.ErrorIs(t, detail.err, errNoProgram)
	assert.Equal(t, "1", detail.issueID)

	m.Update(msg)
	assert.Contains(t, ansi.Strip(m.View()), "Could not open issue details")
}

func TestPagerModeBlanksView(t *testing.T) {
	m := newTestModel(t, testIssues())

	m.Update(pauseRenderingMsg{})
	assert.Empty(t, m.View())
	m.Update(resumeRenderingMsg{})
	assert.NotEmpty(t, m.View())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, testIssues())

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderIssueDetail(t *testing.T) {
	issue := domain.Issue{
		ID: "abc", Name: "NetworkError", Message: "Failed to fetch *user profile*",
		Status: domain.StatusOpen, NumEvents: 7, NumUsers: 3, Value: 5,
	}

	out := ansi.Strip(RenderIssueDetail(issue, 80, "notty"))
	assert.Contains(t, out, "NetworkError")
	assert.Contains(t, out, "Open")
	assert.Contains(t, out, "user profile")
	assert.Contains(t, out, "abc")
}

func TestHelpContent(t *testing.T) {
	out := ansi.Strip(NewHelpRenderer().RenderHelpContent())
	assert.Contains(t, out, "Select/deselect all open issues")
	assert.Contains(t, out, "Resolved issues cannot be selected")
}
