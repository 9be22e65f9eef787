package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the full help text shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))

	line := func(key, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", key)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("issuepick Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, k/j", "Move up/down"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("g/G", "Go to top/bottom"))
	help.WriteString(line("wheel", "Scroll"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(line("Space, x", "Toggle the issue under the cursor"))
	help.WriteString(line("click row", "Toggle that issue"))
	help.WriteString(line("a", "Select/deselect all open issues"))
	help.WriteString(line("click header", "Select/deselect all open issues"))
	help.WriteString(line("Esc", "Clear selection"))
	help.WriteString(noteStyle.Render("  Resolved issues cannot be selected. [-] means some open issues are selected."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("Enter", "Show issue details"))
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}
