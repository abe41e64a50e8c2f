package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/theme"
)

// Version is shown in the home page footer.
const Version = "2.0.4"

// Shortcut is a tile on the home page grid.
type Shortcut struct {
	Name  string
	URL   string // empty for the inert "Add" tile
	Glyph string
}

// Shortcuts is the home page grid, four per row.
var Shortcuts = []Shortcut{
	{Name: "Google", URL: "https://www.google.com", Glyph: "G"},
	{Name: "YouTube", URL: "https://www.youtube.com", Glyph: "▶"},
	{Name: "Wikipedia", URL: "https://www.wikipedia.org", Glyph: "W"},
	{Name: "Reddit", URL: "https://www.reddit.com", Glyph: "R"},
	{Name: "GitHub", URL: "https://www.github.com", Glyph: "⌥"},
	{Name: "Twitter", URL: "https://www.twitter.com", Glyph: "𝕏"},
	{Name: "Amazon", URL: "https://www.amazon.com", Glyph: "a"},
	{Name: "Add", Glyph: "+"},
}

// ShortcutURL returns the URL of the n-th tile (1-based), or false for the
// inert tile and out-of-range numbers.
func ShortcutURL(n int) (string, bool) {
	if n < 1 || n > len(Shortcuts) {
		return "", false
	}
	s := Shortcuts[n-1]
	return s.URL, s.URL != ""
}

const homeMarkdown = `# DroidBrowser

Press **o** to search or type a URL, or pick a shortcut by number.
`

const incognitoMarkdown = `# You've gone incognito

Now you can browse privately, and other people who use this device won't
see your activity.

**DroidBrowser won't save:**

- Your browsing history
- Cookies and site data
- Information entered in forms

---

*PROTECTED SESSION ACTIVE*
`

// ContentFrame is the page area. It shows the built-in landing views, a
// placeholder for embedded frames, or arbitrary text such as the visit log.
type ContentFrame struct {
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	cache    *lru.Cache[string, string] // rendered landing views
}

// NewContentFrame creates a frame (dimensions set on first WindowSizeMsg).
func NewContentFrame() ContentFrame {
	cache, _ := lru.New[string, string](16)
	return ContentFrame{cache: cache}
}

// SetSize updates the frame dimensions.
func (cf *ContentFrame) SetSize(width, height int) {
	cf.width = width
	cf.height = height
	if !cf.ready {
		cf.viewport = viewport.New(width, height)
		cf.viewport.MouseWheelEnabled = true
		cf.viewport.MouseWheelDelta = 3
		cf.ready = true
	} else {
		cf.viewport.Width = width
		cf.viewport.Height = height
	}
}

// ShowPage renders the view for url in the given mode.
func (cf *ContentFrame) ShowPage(url string, incognito bool) {
	if url == browser.HomeURL {
		cf.setContent(cf.Landing(incognito, cf.width), incognito)
		return
	}
	cf.setContent(RenderFrame(url, incognito, cf.width), incognito)
}

// ShowText replaces the frame with a titled block of text.
func (cf *ContentFrame) ShowText(title, body string, incognito bool) {
	t := theme.For(incognito)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(1, 2, 0, 2)
	bodyStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(1, 2)
	cf.setContent(titleStyle.Render(title)+"\n"+bodyStyle.Render(body), incognito)
}

func (cf *ContentFrame) setContent(content string, incognito bool) {
	if !cf.ready {
		return
	}
	t := theme.For(incognito)
	cf.viewport.Style = lipgloss.NewStyle().Background(t.Frame)
	cf.viewport.SetContent(content)
	cf.viewport.GotoTop()
}

// Landing returns the rendered home or incognito view, cached per theme and
// width.
func (cf *ContentFrame) Landing(incognito bool, width int) string {
	t := theme.For(incognito)
	key := fmt.Sprintf("%s/%d", t.Name, width)
	if cf.cache != nil {
		if v, ok := cf.cache.Get(key); ok {
			return v
		}
	}

	var out string
	if incognito {
		out = renderMarkdown(incognitoMarkdown, t, width)
	} else {
		out = renderMarkdown(homeMarkdown, t, width) +
			"\n" + renderShortcutGrid(t, width) +
			"\n\n" + lipgloss.NewStyle().
			Foreground(t.TextDim).
			Italic(true).
			Width(width).
			Align(lipgloss.Center).
			Render("Version "+Version+" Premium")
	}

	if cf.cache != nil {
		cf.cache.Add(key, out)
	}
	return out
}

// LineDown scrolls down n lines.
func (cf *ContentFrame) LineDown(n int) {
	if cf.ready {
		cf.viewport.LineDown(n)
	}
}

// LineUp scrolls up n lines.
func (cf *ContentFrame) LineUp(n int) {
	if cf.ready {
		cf.viewport.LineUp(n)
	}
}

// Update forwards messages to the viewport.
func (cf *ContentFrame) Update(msg tea.Msg) (*ContentFrame, tea.Cmd) {
	if !cf.ready {
		return cf, nil
	}
	var cmd tea.Cmd
	cf.viewport, cmd = cf.viewport.Update(msg)
	return cf, cmd
}

// View renders the frame.
func (cf *ContentFrame) View() string {
	if !cf.ready {
		return "\n  Initializing..."
	}
	return cf.viewport.View()
}

// RenderFrame draws the placeholder for an embedded page: the address the
// host renderer would load and the simulation notice.
func RenderFrame(url string, incognito bool, width int) string {
	t := theme.For(incognito)
	inner := max(width-8, 10)

	urlStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		Width(inner)
	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(inner)

	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(urlStyle.Render(url) + "\n\n" + hintStyle.Render("embedded frame (sandboxed)"))

	label := "BROWSER SECURITY INFO"
	notice := "Some modern sites block frame embedding. If a page appears blank, try searching for a different site."
	if incognito {
		label = "INCOGNITO MODE"
		notice = "Browsing history isn't saved. Note: embedded frames share browser session state in most environments."
	}

	overlay := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		Render(
			lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(label) + "\n" +
				lipgloss.NewStyle().Foreground(t.TextDim).Width(inner).Render(notice),
		)

	return lipgloss.NewStyle().Padding(1, 1).Render(frame + "\n\n" + overlay)
}

func renderShortcutGrid(t theme.Theme, width int) string {
	const perRow = 4
	cell := max(width/perRow, 8)

	glyphStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	addStyle := glyphStyle.
		Foreground(t.TextDim).
		Background(t.Surface)
	nameStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(cell).
		Align(lipgloss.Center)

	var rows []string
	for start := 0; start < len(Shortcuts); start += perRow {
		var tiles []string
		for i := start; i < min(start+perRow, len(Shortcuts)); i++ {
			s := Shortcuts[i]
			gs := glyphStyle
			if s.URL == "" {
				gs = addStyle
			}
			label := s.Name
			if s.URL != "" {
				label = fmt.Sprintf("%d %s", i+1, s.Name)
			}
			tile := lipgloss.JoinVertical(lipgloss.Center,
				lipgloss.PlaceHorizontal(cell, lipgloss.Center, gs.Render(s.Glyph)),
				nameStyle.Render(truncate(label, cell-1)),
			)
			tiles = append(tiles, tile)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return strings.Join(rows, "\n\n")
}

// renderMarkdown renders md with glamour, falling back to the raw text.
func renderMarkdown(md string, t theme.Theme, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(t.MarkdownStyle),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
