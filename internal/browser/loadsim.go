package browser

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

const (
	// TickInterval is the delay between progress steps.
	TickInterval = 150 * time.Millisecond
	// FinishDelay is how long a finished bar stays at 100% before hiding.
	FinishDelay = 200 * time.Millisecond

	seedProgress   = 5
	slowdownAt     = 80
	finishAt       = 95
	fastStepMax    = 20
	slowStepMax    = 2
	completeAmount = 100
)

// Phase is the lifecycle stage of a simulated load.
type Phase int

const (
	PhaseIdle      Phase = iota
	PhaseLoading         // ticking towards 95
	PhaseFinishing       // clamped at 100, waiting to hide
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFinishing:
		return "finishing"
	default:
		return "idle"
	}
}

// LoadState is a snapshot of the simulated load.
type LoadState struct {
	IsLoading bool
	Progress  float64 // 0..100
	Phase     Phase
}

// loadTickMsg advances the run identified by gen.
type loadTickMsg struct{ gen int }

// loadDoneMsg ends the finishing delay of the run identified by gen.
type loadDoneMsg struct{ gen int }

// LoadSimulator drives a fake page-load progress value. It is not safe for
// concurrent use; all calls must come from the Bubble Tea update loop.
type LoadSimulator struct {
	rng      *rand.Rand
	log      logrus.FieldLogger
	tick     time.Duration
	finish   time.Duration
	gen      int
	phase    Phase
	progress float64
	loading  bool
}

// NewLoadSimulator creates an idle simulator. A nil rng seeds one from the
// clock and a nil logger uses the logrus standard logger.
func NewLoadSimulator(rng *rand.Rand, log logrus.FieldLogger) *LoadSimulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LoadSimulator{
		rng:    rng,
		log:    log,
		tick:   TickInterval,
		finish: FinishDelay,
	}
}

// Start cancels any run in flight and begins a new one.
func (s *LoadSimulator) Start() tea.Cmd {
	s.gen++
	s.phase = PhaseLoading
	s.progress = seedProgress
	s.loading = true
	s.log.WithField("generation", s.gen).Debug("load started")
	return s.scheduleTick()
}

// Stop cancels the current run. Progress and the loading flag are left as
// they are.
func (s *LoadSimulator) Stop() {
	if s.phase == PhaseIdle {
		return
	}
	s.log.WithFields(logrus.Fields{
		"generation": s.gen,
		"progress":   s.progress,
	}).Debug("load stopped")
	s.gen++
	s.phase = PhaseIdle
}

// Update handles the simulator's own messages and ignores everything else,
// including messages from cancelled runs.
func (s *LoadSimulator) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadTickMsg:
		if msg.gen != s.gen || s.phase != PhaseLoading {
			return nil
		}
		return s.advance()

	case loadDoneMsg:
		if msg.gen != s.gen || s.phase != PhaseFinishing {
			return nil
		}
		s.loading = false
		s.phase = PhaseIdle
		s.log.WithField("generation", s.gen).Debug("load finished")
	}
	return nil
}

// State returns the current load state.
func (s *LoadSimulator) State() LoadState {
	return LoadState{
		IsLoading: s.loading,
		Progress:  s.progress,
		Phase:     s.phase,
	}
}

// Generation identifies the current run.
func (s *LoadSimulator) Generation() int {
	return s.gen
}

func (s *LoadSimulator) advance() tea.Cmd {
	limit := float64(fastStepMax)
	if s.progress >= slowdownAt {
		limit = slowStepMax
	}
	s.progress += s.rng.Float64() * limit

	if s.progress < finishAt {
		return s.scheduleTick()
	}

	s.progress = completeAmount
	s.phase = PhaseFinishing
	gen := s.gen
	return tea.Tick(s.finish, func(time.Time) tea.Msg {
		return loadDoneMsg{gen: gen}
	})
}

func (s *LoadSimulator) scheduleTick() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.tick, func(time.Time) tea.Msg {
		return loadTickMsg{gen: gen}
	})
}
