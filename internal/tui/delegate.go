package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/tracker/internal/domain"
)

// prefixWidth is the width of "  > [ ] " before the task text.
const prefixWidth = 8

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	maxTextLen := listWidth - prefixWidth - 2
	if maxTextLen < 10 {
		maxTextLen = 10
	}

	text := escapeNewlines(task.Text)
	if runewidth.StringWidth(text) > maxTextLen {
		text = runewidth.Truncate(text, maxTextLen-3, "...")
	}

	indicator := d.styles.SelectionIndicator
	mark := d.styles.MarkStyle(task.IsDone)
	textStyle := d.styles.TextStyle(task.IsDone)
	if selected {
		indicator = indicator.Bold(true)
		textStyle = textStyle.Bold(true)
	}

	line := "  " + indicator.Render(indicatorChar) + " " +
		mark.Render(DoneMark(task.IsDone)) + " " +
		textStyle.Render(text)
	_, _ = fmt.Fprintln(w, padRight(line, listWidth))

	meta := strings.Repeat(" ", prefixWidth) + task.CreatedAt
	_, _ = fmt.Fprint(w, d.styles.TaskMeta.Render(padRight(meta, listWidth)))
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
