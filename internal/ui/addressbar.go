package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// AddressBar is the URL and search input below the phone status bar.
type AddressBar struct {
	input     textinput.Model
	active    bool
	incognito bool
	width     int
}

// NewAddressBar creates a new address bar.
func NewAddressBar() AddressBar {
	ti := textinput.New()
	ti.Placeholder = "Search or type URL"
	ti.CharLimit = 2048
	ti.Prompt = ""
	ti.Width = 40

	return AddressBar{
		input: ti,
	}
}

// SetWidth updates the address bar width.
func (a *AddressBar) SetWidth(w int) {
	a.width = w
	// home glyph, border, padding and the right-hand buttons
	a.input.Width = max(w-16, 1)
}

// SetIncognito switches the palette.
func (a *AddressBar) SetIncognito(incognito bool) {
	a.incognito = incognito
}

// Focus activates the address bar for input.
func (a *AddressBar) Focus() tea.Cmd {
	a.active = true
	a.input.CursorEnd()
	return a.input.Focus()
}

// Blur deactivates the address bar.
func (a *AddressBar) Blur() {
	a.active = false
	a.input.Blur()
}

// IsActive reports whether the address bar is focused.
func (a *AddressBar) IsActive() bool {
	return a.active
}

// Value returns the current input text.
func (a *AddressBar) Value() string {
	return a.input.Value()
}

// ShowURL displays url, leaving the field empty for the home page.
func (a *AddressBar) ShowURL(url string) {
	if url == browser.HomeURL {
		url = ""
	}
	a.input.SetValue(url)
}

// Update handles messages for the address bar.
func (a *AddressBar) Update(msg tea.Msg) (*AddressBar, tea.Cmd) {
	if !a.active {
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the address bar.
func (a *AddressBar) View() string {
	t := theme.For(a.incognito)

	fieldStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	if a.active {
		fieldStyle = fieldStyle.BorderForeground(t.Accent)
	}

	buttonStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Background).
		Padding(1, 1, 0, 1)

	maskStyle := buttonStyle
	mask := "◐"
	if a.incognito {
		maskStyle = maskStyle.Foreground(t.Text).Bold(true)
		mask = "◉"
	}

	field := a.input.View()
	if a.active && a.input.Value() != "" {
		field += lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true).
			Render(" GO")
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render("⌂"),
		fieldStyle.Width(max(a.width-12, 4)).Render(field),
		maskStyle.Render(mask),
		buttonStyle.Render("↻"),
	)

	return lipgloss.NewStyle().
		Background(t.Background).
		Width(a.width).
		Render(bar)
}
