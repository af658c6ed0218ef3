package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Summary  string // e.g. "3 tasks · 1 done"
	Theme    string
	KeyHints []KeyHint
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := s.styles.ThemeBadge

	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	rightContent := mutedStyle.Render(info.Summary + "  theme:" + info.Theme)
	if s.width <= 0 {
		return s.styles.Footer.Render(content + "  " + rightContent)
	}

	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	maxContentWidth := s.width - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := s.width - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	return s.styles.Footer.Render(content + strings.Repeat(" ", spacing) + rightContent)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	tasks := m.vm.Tasks()
	done := 0
	for _, t := range tasks {
		if t.IsDone {
			done++
		}
	}
	summary := fmt.Sprintf("%d tasks · %d done", len(tasks), done)
	if q := m.vm.State().Search; q != "" {
		summary = fmt.Sprintf("%d of %s", len(m.taskList.Items()), summary)
	}

	info := StatusLineInfo{
		Summary: summary,
		Theme:   m.vm.State().Theme.String(),
	}

	switch m.mode {
	case ModeNormal:
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "n", Desc: "new"},
			{Key: "space", Desc: "toggle"},
			{Key: "d", Desc: "delete"},
			{Key: "/", Desc: "search"},
			{Key: "t", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeDraft:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "add"},
			{Key: "esc", Desc: "done"},
		}
	case ModeSearch:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "keep"},
			{Key: "esc", Desc: "clear"},
		}
	case ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs/views themselves
		info.KeyHints = nil
	}

	return info
}
