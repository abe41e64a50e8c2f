package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// NavBar is the Android three-button bar at the bottom of the screen.
type NavBar struct {
	width     int
	canGoBack bool
	incognito bool
}

// NewNavBar creates a navigation bar.
func NewNavBar() NavBar {
	return NavBar{}
}

// SetWidth sets the bar width.
func (n *NavBar) SetWidth(w int) {
	n.width = w
}

// SetState updates the back button and palette.
func (n *NavBar) SetState(canGoBack, incognito bool) {
	n.canGoBack = canGoBack
	n.incognito = incognito
}

// View renders back, home and overview buttons spread across the bar.
func (n *NavBar) View() string {
	t := theme.For(n.incognito)

	button := lipgloss.NewStyle().
		Foreground(t.NavIcon).
		Background(t.NavBar).
		Bold(true)
	back := button
	if !n.canGoBack {
		back = back.Faint(true).Bold(false)
	}

	slot := max(n.width/3, 1)
	place := func(s lipgloss.Style, glyph string) string {
		return s.Width(slot).Align(lipgloss.Center).Render(glyph)
	}

	row := place(back, "◀") + place(button, "●") + place(button, "■")

	return lipgloss.NewStyle().
		Background(t.NavBar).
		Width(n.width).
		Render(row)
}
