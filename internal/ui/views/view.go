package views

import (
	"fmt"
	"strings"

	"issuepick/internal/selection"
)

// Screen lines used for mouse hit-testing
const (
	TitleLine     = 0
	SelectAllLine = 1
	ColumnsLine   = 2
	FirstRowLine  = 3
	// lines below the rows: blank, status, help
	footerLines = 3
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Source         string
	Selection      selection.State
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	StatusIsError  bool
	HelpView       string
}

// Renderer handles the main view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showCounts bool, messageWidth int) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles, showCounts, messageWidth),
	}
}

// ViewportHeightFor returns how many rows fit in a terminal of the given height
func ViewportHeightFor(height int) int {
	h := height - FirstRowLine - footerLines
	if h < 1 {
		return 1
	}
	return h
}

// Render renders the whole screen
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(vs.Title))
	if vs.Source != "" {
		b.WriteString(r.styles.Dim.Render("  " + vs.Source))
	}
	b.WriteString("\n")

	state := vs.Selection
	b.WriteString(r.table.RenderSelectAll(state.Summary()))
	b.WriteString("\n")
	b.WriteString(r.table.RenderColumns())
	b.WriteString("\n")

	if state.Len() == 0 {
		b.WriteString(r.styles.Empty.Render("  No issues"))
		b.WriteString("\n")
	}

	start, end := visibleRange(state.Len(), vs.ViewportOffset, vs.ViewportHeight)
	for i := start; i < end; i++ {
		b.WriteString(r.table.RenderRow(state.Issue(i), state.Checked(i), i == vs.Cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.renderStatus(vs, start, end))
	b.WriteString("\n")
	if vs.HelpView != "" {
		b.WriteString(r.styles.Help.Render(vs.HelpView))
	}
	return b.String()
}

func (r *Renderer) renderStatus(vs ViewState, start, end int) string {
	if vs.StatusMessage != "" {
		if vs.StatusIsError {
			return r.styles.StatusError.Render(vs.StatusMessage)
		}
		return r.styles.Status.Render(vs.StatusMessage)
	}
	total := vs.Selection.Len()
	if total == 0 || (start == 0 && end == total) {
		return r.styles.Status.Render(fmt.Sprintf("%d issues", total))
	}
	return r.styles.Scroll.Render(fmt.Sprintf("%d-%d of %d issues", start+1, end, total))
}

// visibleRange clamps the viewport window to the row count
func visibleRange(rows, offset, height int) (int, int) {
	if height <= 0 {
		height = rows
	}
	if offset < 0 {
		offset = 0
	}
	if offset > rows {
		offset = rows
	}
	end := offset + height
	if end > rows {
		end = rows
	}
	return offset, end
}
