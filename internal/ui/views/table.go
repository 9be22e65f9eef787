package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"issuepick/internal/domain"
	"issuepick/internal/selection"
)

// Checkbox glyphs
const (
	BoxUnchecked     = "[ ]"
	BoxChecked       = "[x]"
	BoxIndeterminate = "[-]"
	BoxDisabled      = "[·]"
)

// Column widths
const (
	nameWidth   = 18
	statusWidth = 11
	countWidth  = 8
)

// TableRenderer renders the select-all header, column headers and rows
type TableRenderer struct {
	styles       *Styles
	showCounts   bool
	messageWidth int
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles, showCounts bool, messageWidth int) *TableRenderer {
	if messageWidth <= 0 {
		messageWidth = 48
	}
	return &TableRenderer{
		styles:       styles,
		showCounts:   showCounts,
		messageWidth: messageWidth,
	}
}

// SelectAllBox returns the glyph for the select-all control
func SelectAllBox(sum selection.Summary) string {
	switch {
	case sum.Indeterminate:
		return BoxIndeterminate
	case sum.AllSelected && sum.EligibleCount > 0:
		return BoxChecked
	}
	return BoxUnchecked
}

// TotalLabel returns the text next to the select-all control
func TotalLabel(total int) string {
	if total == 0 {
		return "None selected"
	}
	return fmt.Sprintf("Selected %d", total)
}

// RenderSelectAll renders the select-all control and the running total
func (r *TableRenderer) RenderSelectAll(sum selection.Summary) string {
	box := SelectAllBox(sum)
	if sum.EligibleCount == 0 {
		box = r.styles.Dim.Render(BoxDisabled)
	}

	label := TotalLabel(sum.TotalSelectedValue)
	if sum.TotalSelectedValue == 0 {
		label = r.styles.SummaryNone.Render(label)
	} else {
		label = r.styles.Summary.Render(label)
	}

	counts := r.styles.Dim.Render(fmt.Sprintf("  (%d of %d open)", sum.CheckedCount, sum.EligibleCount))
	return "  " + box + " " + label + counts
}

// RenderColumns renders the column header line
func (r *TableRenderer) RenderColumns() string {
	h := r.styles.ColumnHeader
	cols := []string{
		"      ",
		pad(h.Render("Name"), nameWidth),
		pad(h.Render("Message"), r.messageWidth),
		pad(h.Render("Status"), statusWidth),
	}
	if r.showCounts {
		cols = append(cols, pad(h.Render("Events"), countWidth), pad(h.Render("Users"), countWidth))
	}
	return strings.Join(cols, " ")
}

// RenderRow renders a single issue line
func (r *TableRenderer) RenderRow(issue domain.Issue, checked, isCursor bool) string {
	base := lipgloss.NewStyle()
	switch {
	case isCursor:
		base = base.Background(r.styles.CursorBg)
	case checked:
		base = base.Background(r.styles.CheckedBg)
	}

	text := base
	if !issue.IsOpen() {
		text = text.Foreground(lipgloss.Color("241"))
	}

	cursor := "  "
	if isCursor {
		cursor = "› "
	}

	box := BoxUnchecked
	switch {
	case !issue.IsOpen():
		box = BoxDisabled
	case checked:
		box = BoxChecked
	}

	dot, label := r.styles.OpenDot, r.styles.OpenLabel
	if !issue.IsOpen() {
		dot, label = r.styles.ResolvedDot, r.styles.ResolvedLabel
	}
	if isCursor || checked {
		dot = dot.Background(base.GetBackground())
		label = label.Background(base.GetBackground())
	}
	status := dot.Render("●") + base.Render(" ") + label.Render(issue.Status.Label())

	sep := base.Render(" ")
	parts := []string{
		text.Render(cursor + box + " "),
		cell(text, issue.Name, nameWidth),
		cell(text, firstLine(issue.Message), r.messageWidth),
		padStyled(base, status, statusWidth),
	}
	if r.showCounts {
		parts = append(parts,
			cell(text, fmt.Sprintf("%d", issue.NumEvents), countWidth),
			cell(text, fmt.Sprintf("%d", issue.NumUsers), countWidth),
		)
	}
	return strings.Join(parts, sep)
}

// cell truncates text to width and pads it with the given style
func cell(style lipgloss.Style, text string, width int) string {
	text = ansi.Truncate(text, width, "…")
	return style.Width(width).Render(text)
}

// pad right-pads already styled text to width
func pad(styled string, width int) string {
	if w := lipgloss.Width(styled); w < width {
		return styled + strings.Repeat(" ", width-w)
	}
	return styled
}

// padStyled right-pads styled text using the background of style
func padStyled(style lipgloss.Style, styled string, width int) string {
	if w := lipgloss.Width(styled); w < width {
		return styled + style.Render(strings.Repeat(" ", width-w))
	}
	return styled
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
