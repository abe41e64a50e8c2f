package browser

import (
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Mode selects which history stack is active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeIncognito
)

func (m Mode) String() string {
	if m == ModeIncognito {
		return "incognito"
	}
	return "normal"
}

// Options configures a Navigator.
type Options struct {
	// SearchPrefix is prepended to escaped search queries. Empty means the
	// default engine.
	SearchPrefix string
	// StartIncognito makes the incognito stack active at start.
	StartIncognito bool
	// Rand drives the load simulator. Nil seeds from the clock.
	Rand *rand.Rand
	// Logger receives debug events. Nil uses the logrus standard logger.
	Logger logrus.FieldLogger
}

// Navigator owns the per-mode history stacks and the load simulator.
//
// Each mode has its own stack. The active pointer always refers to the stack
// of the current mode, so leaving a mode keeps that stack exactly as it was
// and coming back restores its entries and position.
type Navigator struct {
	stacks       [2]*HistoryStack
	active       *HistoryStack
	mode         Mode
	searchPrefix string
	loader       *LoadSimulator
	log          logrus.FieldLogger
}

// NewNavigator creates a navigator with both stacks seeded at home.
func NewNavigator(opts Options) *Navigator {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	n := &Navigator{
		stacks:       [2]*HistoryStack{NewHistoryStack(), NewHistoryStack()},
		searchPrefix: opts.SearchPrefix,
		loader:       NewLoadSimulator(opts.Rand, log),
		log:          log,
	}
	if opts.StartIncognito {
		n.mode = ModeIncognito
	}
	n.active = n.stacks[n.mode]
	return n
}

// Navigate normalizes input and pushes it onto the active stack. Blank input
// is ignored and returns a nil command.
func (n *Navigator) Navigate(input string) tea.Cmd {
	target, ok := NormalizeInput(input, n.searchPrefix)
	if !ok {
		return nil
	}

	n.active.Push(HistoryItem{URL: target, Title: target})
	n.log.WithFields(logrus.Fields{
		"mode":  n.mode,
		"url":   target,
		"index": n.active.Index(),
	}).Debug("navigate")
	return n.loader.Start()
}

// Back steps the active stack back one entry. At the first entry it does
// nothing and returns a nil command.
func (n *Navigator) Back() tea.Cmd {
	item, ok := n.active.Back()
	if !ok {
		return nil
	}
	n.log.WithFields(logrus.Fields{
		"mode":  n.mode,
		"url":   item.URL,
		"index": n.active.Index(),
	}).Debug("back")
	return n.loader.Start()
}

// Home navigates to the landing view.
func (n *Navigator) Home() tea.Cmd {
	return n.Navigate(HomeURL)
}

// Reload restarts the load simulation without touching history.
func (n *Navigator) Reload() tea.Cmd {
	return n.loader.Start()
}

// ToggleMode switches between normal and incognito browsing.
func (n *Navigator) ToggleMode() tea.Cmd {
	// The active stack is the current mode's slot, so nothing needs copying
	// before the other slot takes over.
	if n.mode == ModeNormal {
		n.mode = ModeIncognito
	} else {
		n.mode = ModeNormal
	}
	n.active = n.stacks[n.mode]

	n.log.WithFields(logrus.Fields{
		"mode":  n.mode,
		"url":   n.active.Current().URL,
		"index": n.active.Index(),
	}).Debug("mode switched")
	return n.loader.Start()
}

// Update forwards messages to the load simulator.
func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	return n.loader.Update(msg)
}

// Stop cancels any simulated load. Call it on teardown.
func (n *Navigator) Stop() {
	n.loader.Stop()
}

// Current returns the active entry.
func (n *Navigator) Current() HistoryItem {
	return n.active.Current()
}

// CurrentURL returns the active entry's URL.
func (n *Navigator) CurrentURL() string {
	return n.active.Current().URL
}

// IsHome reports whether the landing view is showing.
func (n *Navigator) IsHome() bool {
	return n.CurrentURL() == HomeURL
}

// Mode returns the current browsing mode.
func (n *Navigator) Mode() Mode {
	return n.mode
}

// IsIncognito reports whether the incognito stack is active.
func (n *Navigator) IsIncognito() bool {
	return n.mode == ModeIncognito
}

// CanGoBack reports whether Back would do anything.
func (n *Navigator) CanGoBack() bool {
	return n.active.CanGoBack()
}

// History returns a copy of the active stack and its position.
func (n *Navigator) History() ([]HistoryItem, int) {
	return n.active.Items(), n.active.Index()
}

// Load returns the simulated load state.
func (n *Navigator) Load() LoadState {
	return n.loader.State()
}

// Loader exposes the simulator.
func (n *Navigator) Loader() *LoadSimulator {
	return n.loader
}
