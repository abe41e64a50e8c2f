package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the browser chrome.
type Theme struct {
	Name string

	// Chrome surfaces
	Background lipgloss.Color
	Surface    lipgloss.Color // address bar, cards
	Frame      lipgloss.Color // content area behind embedded pages
	Border     lipgloss.Color
	StatusBar  lipgloss.Color
	NavBar     lipgloss.Color

	// Text
	Text    lipgloss.Color
	TextDim lipgloss.Color
	NavIcon lipgloss.Color

	// Accents
	Accent        lipgloss.Color
	ProgressFill  lipgloss.Color
	ProgressTrack lipgloss.Color
	Badge         lipgloss.Color

	// Glamour standard style for Markdown landing views.
	MarkdownStyle string
}

var themes = map[string]Theme{
	"default":  Default,
	"midnight": Midnight,
	"sepia":    Sepia,
}

// Default mirrors a stock Android browser: white chrome, blue accents.
var Default = Theme{
	Name:          "default",
	Background:    lipgloss.Color("#FFFFFF"),
	Surface:       lipgloss.Color("#F3F4F6"),
	Frame:         lipgloss.Color("#FAFAFA"),
	Border:        lipgloss.Color("#E5E7EB"),
	StatusBar:     lipgloss.Color("#FFFFFF"),
	NavBar:        lipgloss.Color("#000000"),
	Text:          lipgloss.Color("#1F2937"),
	TextDim:       lipgloss.Color("#9CA3AF"),
	NavIcon:       lipgloss.Color("#FFFFFF"),
	Accent:        lipgloss.Color("#2563EB"),
	ProgressFill:  lipgloss.Color("#3B82F6"),
	ProgressTrack: lipgloss.Color("#EFF6FF"),
	Badge:         lipgloss.Color("#2563EB"),
	MarkdownStyle: "light",
}

var Midnight = Theme{
	Name:          "midnight",
	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	Frame:         lipgloss.Color("#111827"),
	Border:        lipgloss.Color("#334155"),
	StatusBar:     lipgloss.Color("#0F172A"),
	NavBar:        lipgloss.Color("#020617"),
	Text:          lipgloss.Color("#E2E8F0"),
	TextDim:       lipgloss.Color("#64748B"),
	NavIcon:       lipgloss.Color("#E2E8F0"),
	Accent:        lipgloss.Color("#38BDF8"),
	ProgressFill:  lipgloss.Color("#0EA5E9"),
	ProgressTrack: lipgloss.Color("#1E293B"),
	Badge:         lipgloss.Color("#38BDF8"),
	MarkdownStyle: "dark",
}

var Sepia = Theme{
	Name:          "sepia",
	Background:    lipgloss.Color("#FBF1C7"),
	Surface:       lipgloss.Color("#F2E5BC"),
	Frame:         lipgloss.Color("#F9F5D7"),
	Border:        lipgloss.Color("#D5C4A1"),
	StatusBar:     lipgloss.Color("#FBF1C7"),
	NavBar:        lipgloss.Color("#3C3836"),
	Text:          lipgloss.Color("#3C3836"),
	TextDim:       lipgloss.Color("#928374"),
	NavIcon:       lipgloss.Color("#FBF1C7"),
	Accent:        lipgloss.Color("#AF3A03"),
	ProgressFill:  lipgloss.Color("#D65D0E"),
	ProgressTrack: lipgloss.Color("#EBDBB2"),
	Badge:         lipgloss.Color("#AF3A03"),
	MarkdownStyle: "light",
}

// Incognito replaces whichever theme is current while browsing privately.
var Incognito = Theme{
	Name:          "incognito",
	Background:    lipgloss.Color("#18181B"),
	Surface:       lipgloss.Color("#27272A"),
	Frame:         lipgloss.Color("#000000"),
	Border:        lipgloss.Color("#27272A"),
	StatusBar:     lipgloss.Color("#09090B"),
	NavBar:        lipgloss.Color("#09090B"),
	Text:          lipgloss.Color("#F4F4F5"),
	TextDim:       lipgloss.Color("#71717A"),
	NavIcon:       lipgloss.Color("#FFFFFF"),
	Accent:        lipgloss.Color("#D4D4D8"),
	ProgressFill:  lipgloss.Color("#A1A1AA"),
	ProgressTrack: lipgloss.Color("#27272A"),
	Badge:         lipgloss.Color("#3F3F46"),
	MarkdownStyle: "dark",
}

// Current is the active normal-mode theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// For returns the palette to draw with: Incognito while browsing privately,
// Current otherwise.
func For(incognito bool) Theme {
	if incognito {
		return Incognito
	}
	return Current
}

// List returns all available theme names, sorted.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
