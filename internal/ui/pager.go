package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"issuepick/internal/domain"
)

// maxReadableWidth caps the markdown wrap width
const maxReadableWidth = 100

// Pager shows long content in ov, handing the terminal over while it runs
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show displays content in the ov pager
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// issueMarkdown builds the markdown document for one issue
func issueMarkdown(issue domain.Issue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", issue.Name)
	fmt.Fprintf(&b, "**Status:** %s · **Events:** %d · **Users:** %d · **Value:** %d\n\n",
		issue.Status.Label(), issue.NumEvents, issue.NumUsers, issue.Value)
	fmt.Fprintf(&b, "ID: `%s`\n\n---\n\n", issue.ID)
	b.WriteString(issue.Message)
	b.WriteString("\n")
	return b.String()
}

// RenderIssueDetail renders an issue as terminal markdown.
// style is a glamour style name; empty detects the terminal background.
// Returns the raw markdown if rendering fails.
func RenderIssueDetail(issue domain.Issue, width int, style string) string {
	markdown := issueMarkdown(issue)

	wrapWidth := width
	if wrapWidth <= 0 {
		wrapWidth = 80
	}
	if wrapWidth > maxReadableWidth {
		wrapWidth = maxReadableWidth
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrapWidth))
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
