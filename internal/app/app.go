package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/vidyasagar/droidbrowser/internal/browser"
	"github.com/vidyasagar/droidbrowser/internal/storage"
	"github.com/vidyasagar/droidbrowser/internal/theme"
	"github.com/vidyasagar/droidbrowser/internal/ui"
)

// Mode represents the current input mode.
type Mode int

const (
	ModeBrowse  Mode = iota
	ModeAddress      // address bar focused
	ModeCommand      // command bar active
	ModeHistory      // history panel active
)

const (
	statusBarHeight   = 1
	addressBarHeight  = 3 // border adds height
	progressBarHeight = 1
	navBarHeight      = 1
)

// Options configures the model.
type Options struct {
	Navigator *browser.Navigator
	// Visits may be nil, in which case :visits reports it is unavailable.
	Visits   *storage.VisitLog
	Logger   logrus.FieldLogger
	StartURL string
}

// Model is the top-level bubbletea model for droidbrowser.
type Model struct {
	// UI components
	statusBar    ui.StatusBar
	addressBar   ui.AddressBar
	progressBar  ui.ProgressBar
	content      ui.ContentFrame
	navBar       ui.NavBar
	commandBar   ui.CommandBar
	historyPanel ui.HistoryPanel

	nav    *browser.Navigator
	visits *storage.VisitLog
	log    logrus.FieldLogger

	keys     KeyMap
	mode     Mode
	width    int
	height   int
	ready    bool
	startURL string
	// showingText is set while the content area shows help or the visit log
	// instead of the current page.
	showingText bool
}

// New creates a new Model.
func New(opts Options) Model {
	nav := opts.Navigator
	if nav == nil {
		nav = browser.NewNavigator(browser.Options{Logger: opts.Logger})
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	m := Model{
		statusBar:    ui.NewStatusBar(),
		addressBar:   ui.NewAddressBar(),
		progressBar:  ui.NewProgressBar(),
		content:      ui.NewContentFrame(),
		navBar:       ui.NewNavBar(),
		commandBar:   ui.NewCommandBar(),
		historyPanel: ui.NewHistoryPanel(),
		nav:          nav,
		visits:       opts.Visits,
		log:          log,
		keys:         DefaultKeyMap(),
		mode:         ModeBrowse,
		startURL:     opts.StartURL,
	}
	m.syncChrome()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ui.ClockTick()}
	if m.startURL != "" {
		cmds = append(cmds, func() tea.Msg { return openMsg{input: m.startURL} })
	}
	return tea.Batch(cmds...)
}

// openMsg asks the model to navigate, used for the start URL.
type openMsg struct{ input string }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.syncChrome()
		return m, nil

	case ui.ClockMsg:
		m.statusBar.SetTime(time.Time(msg))
		return m, ui.ClockTick()

	case openMsg:
		return m, m.navigate(msg.input)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Load simulator ticks and anything else.
	var cmds []tea.Cmd
	if cmd := m.nav.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	switch m.mode {
	case ModeBrowse:
		cf, cmd := m.content.Update(msg)
		m.content = *cf
		cmds = append(cmds, cmd)
	case ModeAddress:
		ab, cmd := m.addressBar.Update(msg)
		m.addressBar = *ab
		cmds = append(cmds, cmd)
	case ModeCommand:
		cb, cmd := m.commandBar.Update(msg)
		m.commandBar = *cb
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  Starting DroidBrowser..."
	}

	sections := []string{
		m.statusBar.View(),
		m.addressBar.View(),
		m.progressBar.View(m.nav.Load()),
	}

	if m.historyPanel.IsVisible() {
		sections = append(sections, m.historyPanel.View())
	} else {
		sections = append(sections, m.content.View())
	}

	sections = append(sections, m.navBar.View())

	if m.commandBar.IsActive() {
		sections = append(sections, m.commandBar.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Navigator returns the navigation controller driving the model.
func (m Model) Navigator() *browser.Navigator {
	return m.nav
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.statusBar.SetWidth(m.width)
	m.addressBar.SetWidth(m.width)
	m.progressBar.SetWidth(m.width)
	m.navBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	commandBarHeight := 0
	if m.commandBar.IsActive() {
		commandBarHeight = 1
	}
	contentHeight := m.height - statusBarHeight - addressBarHeight - progressBarHeight - navBarHeight - commandBarHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	m.content.SetSize(m.width, contentHeight)
	m.historyPanel.SetSize(m.width, contentHeight)
}

// syncChrome pushes navigator state into every component.
func (m *Model) syncChrome() {
	incognito := m.nav.IsIncognito()
	url := m.nav.CurrentURL()

	m.statusBar.SetIncognito(incognito)
	m.addressBar.SetIncognito(incognito)
	m.progressBar.SetIncognito(incognito)
	m.commandBar.SetIncognito(incognito)
	m.navBar.SetState(m.nav.CanGoBack(), incognito)

	if !m.addressBar.IsActive() {
		m.addressBar.ShowURL(url)
	}
	if !m.showingText {
		m.content.ShowPage(url, incognito)
	}
	if m.historyPanel.IsVisible() {
		items, idx := m.nav.History()
		m.historyPanel.SetEntries(items, idx, incognito)
	}
}

// afterNavigation refreshes the chrome once the current entry changes.
func (m *Model) afterNavigation(cmd tea.Cmd, visited bool) tea.Cmd {
	if cmd == nil {
		return nil
	}
	m.showingText = false
	m.statusBar.SetMessage("")
	m.syncChrome()
	if visited {
		m.recordVisit()
	}
	return cmd
}

// recordVisit logs the current page in the session visit log. Incognito
// browsing and the home page are never recorded.
func (m *Model) recordVisit() {
	if m.visits == nil || m.nav.IsIncognito() || m.nav.IsHome() {
		return
	}
	cur := m.nav.Current()
	if err := m.visits.Record(cur.URL, cur.Title); err != nil {
		m.log.WithError(err).Warn("recording visit")
	}
}

func (m *Model) navigate(input string) tea.Cmd {
	return m.afterNavigation(m.nav.Navigate(input), true)
}

func (m *Model) back() tea.Cmd {
	return m.afterNavigation(m.nav.Back(), true)
}

func (m *Model) home() tea.Cmd {
	return m.afterNavigation(m.nav.Home(), false)
}

func (m *Model) toggleMode() tea.Cmd {
	cmd := m.afterNavigation(m.nav.ToggleMode(), false)
	if m.nav.IsIncognito() {
		m.statusBar.SetMessage("Incognito on")
	} else {
		m.statusBar.SetMessage("Incognito off")
	}
	return cmd
}

func (m *Model) reload() tea.Cmd {
	return m.afterNavigation(m.nav.Reload(), false)
}

// quit cancels any simulated load before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.nav.Stop()
	return m, tea.Quit
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case ModeAddress:
		return m.handleAddressMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	case ModeHistory:
		return m.handleHistoryMode(msg)
	default:
		return m.handleBrowseMode(msg)
	}
}

// handleBrowseMode processes keys while browsing.
func (m Model) handleBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Back):
		return m, m.back()

	case key.Matches(msg, m.keys.Home):
		return m, m.home()

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()

	case key.Matches(msg, m.keys.Incognito):
		return m, m.toggleMode()

	case key.Matches(msg, m.keys.OpenURL):
		m.mode = ModeAddress
		return m, m.addressBar.Focus()

	case key.Matches(msg, m.keys.ScrollDown):
		m.content.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.content.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryToggle):
		m.openHistory()
		return m, nil

	case key.Matches(msg, m.keys.CommandMode):
		m.mode = ModeCommand
		cmd := m.commandBar.Open()
		m.layout()
		return m, cmd

	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil

	case msg.Type == tea.KeyEsc && m.showingText:
		m.showingText = false
		m.syncChrome()
		return m, nil
	}

	// Digits pick a shortcut on the home page.
	if n, err := strconv.Atoi(msg.String()); err == nil && m.nav.IsHome() && !m.showingText {
		if url, ok := ui.ShortcutURL(n); ok {
			return m, m.navigate(url)
		}
		return m, nil
	}

	return m, nil
}

// handleAddressMode processes keys while the address bar is focused.
func (m Model) handleAddressMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeBrowse
		m.addressBar.Blur()
		m.addressBar.ShowURL(m.nav.CurrentURL())
		return m, nil

	case tea.KeyEnter:
		input := m.addressBar.Value()
		m.mode = ModeBrowse
		m.addressBar.Blur()
		if cmd := m.navigate(input); cmd != nil {
			return m, cmd
		}
		// Blank input: put the current address back.
		m.addressBar.ShowURL(m.nav.CurrentURL())
		return m, nil
	}

	ab, cmd := m.addressBar.Update(msg)
	m.addressBar = *ab
	return m, cmd
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandBar.Close()
		m.mode = ModeBrowse
		m.layout()
		return m, nil

	case tea.KeyEnter:
		line := m.commandBar.Submit()
		m.mode = ModeBrowse
		m.layout()
		return m.executeCommand(line)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	return m, cmd
}

// handleHistoryMode processes keys while the history panel is shown.
func (m Model) handleHistoryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ScrollDown):
		m.historyPanel.CursorDown()
	case key.Matches(msg, m.keys.ScrollUp):
		m.historyPanel.CursorUp()
	case key.Matches(msg, m.keys.Back):
		return m, m.back()
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.HistoryToggle):
		m.historyPanel.Hide()
		m.mode = ModeBrowse
	}
	return m, nil
}

func (m *Model) openHistory() {
	items, idx := m.nav.History()
	m.historyPanel.SetEntries(items, idx, m.nav.IsIncognito())
	m.historyPanel.Show()
	m.mode = ModeHistory
}

// executeCommand handles :commands.
func (m Model) executeCommand(line string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "q", "quit":
		return m.quit()
	case "o", "open":
		if len(parts) > 1 {
			return m, m.navigate(strings.Join(parts[1:], " "))
		}
		m.statusBar.SetMessage("Usage: :open <url or search>")
	case "back":
		return m, m.back()
	case "home":
		return m, m.home()
	case "reload":
		return m, m.reload()
	case "incognito":
		return m, m.toggleMode()
	case "history":
		m.openHistory()
	case "visits":
		m.showVisits(strings.Join(parts[1:], " "))
	case "clearvisits":
		if m.visits == nil {
			m.statusBar.SetMessage("Visit log not available")
			break
		}
		if err := m.visits.Clear(); err != nil {
			m.log.WithError(err).Warn("clearing visits")
			m.statusBar.SetMessage("Could not clear visits")
			break
		}
		m.statusBar.SetMessage("Visits cleared")
	case "theme":
		if len(parts) > 1 {
			if theme.Set(parts[1]) {
				m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", parts[1]))
				m.syncChrome()
			} else {
				m.statusBar.SetMessage(fmt.Sprintf("Unknown theme: %s", parts[1]))
			}
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Themes: %s", strings.Join(theme.List(), ", ")))
		}
	case "help":
		m.showHelp()
	default:
		m.statusBar.SetMessage(fmt.Sprintf("Unknown command: %s", parts[0]))
	}

	return m, nil
}

// showVisits lists this session's normal-mode visits, optionally filtered.
func (m *Model) showVisits(query string) {
	switch {
	case m.nav.IsIncognito():
		m.statusBar.SetMessage("Visits are hidden in incognito")
		return
	case m.visits == nil:
		m.statusBar.SetMessage("Visit log not available")
		return
	}

	var (
		visits []storage.Visit
		err    error
	)
	if query != "" {
		visits, err = m.visits.Search(query)
	} else {
		visits, err = m.visits.Recent(50)
	}
	if err != nil {
		m.log.WithError(err).Warn("listing visits")
		m.statusBar.SetMessage("Could not list visits")
		return
	}

	var sb strings.Builder
	if len(visits) == 0 {
		sb.WriteString("No visits yet.")
	}
	for _, v := range visits {
		fmt.Fprintf(&sb, "%s\n  %s\n\n", v.URL, timeAgo(v.VisitedAt))
	}

	m.showingText = true
	m.content.ShowText("Visited this session", sb.String(), false)
}

// showHelp displays the keybinding reference in the content area.
func (m *Model) showHelp() {
	t := theme.For(m.nav.IsIncognito())
	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Width(12)
	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var sb strings.Builder
	for _, b := range m.keys.Bindings() {
		h := b.Help()
		sb.WriteString(keyStyle.Render(h.Key))
		sb.WriteString(descStyle.Render(h.Desc))
		sb.WriteString("\n")
	}
	sb.WriteString(keyStyle.Render("1-7"))
	sb.WriteString(descStyle.Render("open a home shortcut"))
	sb.WriteString("\n\n")

	commands := []struct{ k, d string }{
		{":open <q>", "open URL or search"},
		{":back", "go back"},
		{":home", "home page"},
		{":reload", "reload page"},
		{":incognito", "toggle incognito"},
		{":history", "show history"},
		{":visits [q]", "session visits"},
		{":theme <n>", "change theme"},
		{":quit", "quit"},
	}
	for _, c := range commands {
		sb.WriteString(keyStyle.Render(c.k))
		sb.WriteString(descStyle.Render(c.d))
		sb.WriteString("\n")
	}

	m.showingText = true
	m.content.ShowText("Keybindings", sb.String(), m.nav.IsIncognito())
}

// timeAgo returns a human-readable relative time string.
func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
}
