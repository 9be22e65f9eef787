package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Summary       lipgloss.Style
	SummaryNone   lipgloss.Style
	ColumnHeader  lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style
	Scroll        lipgloss.Style
	Empty         lipgloss.Style
	OpenDot       lipgloss.Style
	OpenLabel     lipgloss.Style
	ResolvedDot   lipgloss.Style
	ResolvedLabel lipgloss.Style
	CursorBg      lipgloss.Color
	CheckedBg     lipgloss.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Summary:       lipgloss.NewStyle().Bold(true),
		SummaryNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ColumnHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Underline(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:          lipgloss.NewStyle().Faint(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Empty:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		OpenDot:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		OpenLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		ResolvedDot:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
		ResolvedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CursorBg:      lipgloss.Color("238"),
		CheckedBg:     lipgloss.Color("17"),
	}
}
