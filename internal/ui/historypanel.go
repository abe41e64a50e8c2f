package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// HistoryPanel lists the active history stack. It is read-only: entries after
// the current position are shown dimmed because the next navigation drops them.
type HistoryPanel struct {
	entries   []browser.HistoryItem
	current   int
	cursor    int
	offset    int // scroll offset for visible window
	width     int
	height    int
	visible   bool
	incognito bool
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{}
}

// SetEntries replaces the listed stack and moves the cursor to its current
// entry.
func (hp *HistoryPanel) SetEntries(entries []browser.HistoryItem, current int, incognito bool) {
	hp.entries = entries
	hp.current = current
	hp.incognito = incognito
	hp.cursor = current
	hp.offset = 0
	hp.ensureVisible()
}

// SetSize updates the panel dimensions.
func (hp *HistoryPanel) SetSize(w, h int) {
	hp.width = w
	hp.height = h
	hp.ensureVisible()
}

// Show makes the panel visible.
func (hp *HistoryPanel) Show() {
	hp.visible = true
}

// Hide closes the panel.
func (hp *HistoryPanel) Hide() {
	hp.visible = false
}

// IsVisible reports whether the panel is shown.
func (hp *HistoryPanel) IsVisible() bool {
	return hp.visible
}

// CursorUp moves the cursor up one entry.
func (hp *HistoryPanel) CursorUp() {
	if hp.cursor > 0 {
		hp.cursor--
		hp.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (hp *HistoryPanel) CursorDown() {
	if hp.cursor < len(hp.entries)-1 {
		hp.cursor++
		hp.ensureVisible()
	}
}

// Cursor returns the highlighted index.
func (hp *HistoryPanel) Cursor() int {
	return hp.cursor
}

// visibleCount returns how many entries fit. Each entry takes 2 lines, plus
// 2 header lines.
func (hp *HistoryPanel) visibleCount() int {
	count := (hp.height - 2) / 2
	if count < 1 {
		count = 1
	}
	return count
}

// ensureVisible adjusts offset so the cursor is within the visible window.
func (hp *HistoryPanel) ensureVisible() {
	visible := hp.visibleCount()
	if hp.cursor < hp.offset {
		hp.offset = hp.cursor
	}
	if hp.cursor >= hp.offset+visible {
		hp.offset = hp.cursor - visible + 1
	}
	if hp.offset < 0 {
		hp.offset = 0
	}
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}

	t := theme.For(hp.incognito)
	rowWidth := hp.width - 2

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height).
		Background(t.Background)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Surface).
		Width(hp.width).
		Padding(0, 1)

	rowStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hp.width).
		Padding(0, 1)
	selectedStyle := rowStyle.
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true)
	urlStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(hp.width).
		Padding(0, 1)
	droppedStyle := urlStyle.Italic(true)

	label := "History"
	if hp.incognito {
		label = "Incognito history"
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s  %d/%d", label, hp.current+1, len(hp.entries))))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", max(rowWidth, 1))))
	sb.WriteString("\n")

	end := min(hp.offset+hp.visibleCount(), len(hp.entries))
	for i := hp.offset; i < end; i++ {
		entry := hp.entries[i]

		title := entry.Title
		if entry.URL == browser.HomeURL {
			title = "Home"
		}
		marker := "  "
		if i == hp.current {
			marker = "● "
		}
		title = truncate(marker+title, rowWidth)
		url := truncate("  "+entry.URL, rowWidth)

		switch {
		case i == hp.cursor:
			sb.WriteString(selectedStyle.Render(title))
		case i > hp.current:
			sb.WriteString(droppedStyle.Render(title))
		default:
			sb.WriteString(rowStyle.Render(title))
		}
		sb.WriteString("\n")
		sb.WriteString(urlStyle.Render(url))
		sb.WriteString("\n")
	}

	return panelStyle.Render(sb.String())
}

// truncate shortens s to n cells, adding an ellipsis when cut.
func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
