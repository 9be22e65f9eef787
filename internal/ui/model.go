package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"issuepick/internal/config"
	"issuepick/internal/eventbus"
	engine "issuepick/internal/selection"
	"issuepick/internal/ui/input"
	inputtypes "issuepick/internal/ui/input/types"
	"issuepick/internal/ui/logic"
	"issuepick/internal/ui/services/selection"
	"issuepick/internal/ui/views"
)

// statusTimeout is how long transient status messages stay visible
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	config    *config.Config
	selection *selection.Service
	source    string // where the issue list came from

	// UI-specific state
	width         int
	height        int
	help          help.Model
	statusMessage string
	statusIsError bool
	inPagerMode   bool // tracks if we're currently in pager mode
	markdownStyle string

	// Handlers
	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over an already loaded selection service
func NewModel(cfg *config.Config, svc *selection.Service, source string) *Model {
	m := &Model{
		config:        cfg,
		selection:     svc,
		source:        source,
		help:          help.New(),
		markdownStyle: cfg.UISettings.MarkdownStyle,
		navigator:     logic.NewNavigator(),
		renderer:      views.NewRenderer(cfg.UISettings.ShowCounts, cfg.UISettings.MessageWidth),
		inputHandler:  input.New(),
		helpRenderer:  NewHelpRenderer(),
		pager:         NewPager(),
	}

	// Will be updated on first WindowSizeMsg
	m.navigator.SetViewportHeight(20)
	m.navigator.Reset(svc.State().Len())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(views.ViewportHeightFor(msg.Height))
		return m, nil

	case tea.KeyMsg:
		return m, m.processActions(m.inputHandler.HandleKey(msg, m))

	case tea.MouseMsg:
		return m, m.processActions(m.inputHandler.HandleMouse(msg, m))

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.config.UISettings.Title,
		Source:         m.source,
		Selection:      m.selection.State(),
		Cursor:         m.navigator.Cursor(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		HelpView:       m.help.View(m.inputHandler.Keys()),
	})
}

// CurrentIndex implements inputtypes.Context
func (m *Model) CurrentIndex() int {
	return m.navigator.Cursor()
}

// RowCount implements inputtypes.Context
func (m *Model) RowCount() int {
	return m.selection.State().Len()
}

// HasSelection implements inputtypes.Context
func (m *Model) HasSelection() bool {
	return m.selection.HasSelection()
}

// LineAt implements inputtypes.Context
func (m *Model) LineAt(y int) (inputtypes.LineKind, int) {
	if y == views.SelectAllLine {
		return inputtypes.LineSelectAll, 0
	}
	if index, ok := m.navigator.RowAt(y - views.FirstRowLine); ok {
		return inputtypes.LineRow, index
	}
	return inputtypes.LineOther, 0
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Move(a.Direction)

	case inputtypes.MoveCursorAction:
		m.navigator.SetCursor(a.Index)

	case inputtypes.ToggleRowAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Cursor()
		}
		if err := m.selection.ToggleRow(index); err != nil {
			log.Printf("Toggle row failed: %v", err)
			return m.setStatus(fmt.Sprintf("Cannot toggle row: %v", err), true)
		}

	case inputtypes.ToggleAllAction:
		m.selection.ToggleAllFromControl()

	case inputtypes.ClearSelectionAction:
		m.selection.Clear()

	case inputtypes.ShowDetailAction:
		state := m.selection.State()
		if state.Len() == 0 {
			return nil
		}
		issue := state.Issue(m.navigator.Cursor())
		return m.fetchDetailPager(issue.ID, RenderIssueDetail(issue, m.width, m.markdownStyle))

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		sum := m.selection.Summary()
		log.Printf("Quit with %d of %d open issues selected, total %d",
			sum.CheckedCount, sum.EligibleCount, sum.TotalSelectedValue)
		return tea.Quit
	}
	return nil
}

// handleNonKeyboardMsg processes domain events and command results
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case detailPagerMsg:
		if msg.err != nil {
			log.Printf("Detail pager failed for %s: %v", msg.issueID, msg.err)
			return m, m.setStatus("Could not open issue details", true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}
	return m, nil
}

// handleEvent applies a domain event forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.IssuesLoadedEvent:
		// A new list means a new selection; nothing carries over
		m.selection.Load(e.Issues)
		m.navigator.Reset(len(e.Issues))
		if e.Source != "" {
			m.source = e.Source
		}
		return m.setStatus(fmt.Sprintf("Reloaded %d issues", len(e.Issues)), false)

	case eventbus.ErrorEvent:
		text := e.Message
		if e.Err != nil {
			text = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return m.setStatus(text, true)
	}
	return nil
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// fetchDetailPager returns a command that shows one issue using ov pager
func (m *Model) fetchDetailPager(issueID, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return detailPagerMsg{issueID: issueID, err: errNoProgram}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		m.program.Send(resumeRenderingMsg{})
		return detailPagerMsg{issueID: issueID, err: err}
	}
}

var errNoProgram = errors.New("program not set")

// Selection returns the current selection state
func (m *Model) Selection() engine.State {
	return m.selection.State()
}
