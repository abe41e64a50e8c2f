package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// ClockMsg carries the time for the phone status bar.
type ClockMsg time.Time

// ClockTick refreshes the clock once a minute.
func ClockTick() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// StatusBar is the phone status bar: clock on the left, radio and battery
// glyphs on the right, and a transient message in between.
type StatusBar struct {
	now       time.Time
	incognito bool
	message   string
	width     int
}

// NewStatusBar creates a status bar showing the current time.
func NewStatusBar() StatusBar {
	return StatusBar{now: time.Now()}
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// SetTime updates the clock.
func (s *StatusBar) SetTime(t time.Time) {
	s.now = t
}

// SetIncognito switches the palette and badge.
func (s *StatusBar) SetIncognito(incognito bool) {
	s.incognito = incognito
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the temporary status message.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := theme.For(s.incognito)

	base := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.StatusBar)
	if s.incognito {
		base = base.Foreground(t.TextDim)
	}

	left := base.Bold(true).Padding(0, 2).Render(s.now.Format("15:04"))

	var middle string
	if s.message != "" {
		middle = base.Foreground(t.Accent).Render(s.message)
	}

	icons := "▂▄▆ ᯤ ▮"
	if s.incognito {
		icons = lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Badge).
			Padding(0, 1).
			Render("INCOGNITO") + base.Render(" "+icons)
	} else {
		icons = base.Render(icons)
	}
	right := icons + base.Render("  ")

	spacer := s.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if spacer < 0 {
		// Drop the message before squeezing the clock and icons.
		middle = ""
		spacer = max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	}
	gap := base.Render(fmt.Sprintf("%*s", spacer, ""))

	return left + middle + gap + right
}
