package ui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// ProgressBar is the thin loading indicator under the address bar.
type ProgressBar struct {
	bar       progress.Model
	width     int
	incognito bool
}

// NewProgressBar creates a hidden, full-width progress bar.
func NewProgressBar() ProgressBar {
	return ProgressBar{
		bar: progress.New(
			progress.WithoutPercentage(),
			progress.WithFillCharacters('━', '━'),
		),
	}
}

// SetWidth sets the bar width.
func (p *ProgressBar) SetWidth(w int) {
	p.width = w
	p.bar.Width = w
}

// SetIncognito switches the palette.
func (p *ProgressBar) SetIncognito(incognito bool) {
	p.incognito = incognito
}

// View renders the bar for the given load state. When nothing is loading it
// renders a blank line so the layout does not jump.
func (p *ProgressBar) View(state browser.LoadState) string {
	t := theme.For(p.incognito)
	if !state.IsLoading {
		return lipgloss.NewStyle().
			Background(t.Background).
			Width(p.width).
			Render("")
	}

	p.bar.FullColor = string(t.ProgressFill)
	p.bar.EmptyColor = string(t.ProgressTrack)
	return p.bar.ViewAs(state.Progress / 100)
}
