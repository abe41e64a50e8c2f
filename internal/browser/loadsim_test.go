package browser

import (
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestSimulator(seed int64) *LoadSimulator {
	return NewLoadSimulator(rand.New(rand.NewSource(seed)), quietLogger())
}

// runToFinish feeds ticks for the current run until it leaves the loading
// phase, checking progress never decreases along the way.
func runToFinish(t *testing.T, s *LoadSimulator) {
	t.Helper()
	prev := s.State().Progress
	for i := 0; s.State().Phase == PhaseLoading; i++ {
		require.Less(t, i, 10000, "simulation never finished")
		require.True(t, s.State().IsLoading)

		cmd := s.Update(loadTickMsg{gen: s.Generation()})
		require.NotNil(t, cmd)

		cur := s.State().Progress
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestLoadSimulatorStartSeedsProgress(t *testing.T) {
	s := newTestSimulator(1)
	assert.Equal(t, PhaseIdle, s.State().Phase)

	cmd := s.Start()
	require.NotNil(t, cmd)

	st := s.State()
	assert.True(t, st.IsLoading)
	assert.Equal(t, float64(seedProgress), st.Progress)
	assert.Equal(t, PhaseLoading, st.Phase)
}

func TestLoadSimulatorRunsToCompletion(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newTestSimulator(seed)
		s.Start()
		runToFinish(t, s)

		st := s.State()
		require.Equal(t, PhaseFinishing, st.Phase)
		assert.Equal(t, float64(completeAmount), st.Progress)
		assert.True(t, st.IsLoading, "loading must outlast reaching 100")

		// Ticks during the finishing delay are ignored.
		assert.Nil(t, s.Update(loadTickMsg{gen: s.Generation()}))
		assert.Equal(t, float64(completeAmount), s.State().Progress)

		assert.Nil(t, s.Update(loadDoneMsg{gen: s.Generation()}))
		st = s.State()
		assert.False(t, st.IsLoading)
		assert.Equal(t, PhaseIdle, st.Phase)
		assert.Equal(t, float64(completeAmount), st.Progress)
	}
}

func TestLoadSimulatorSlowsDownNearTheEnd(t *testing.T) {
	s := newTestSimulator(7)
	s.Start()
	for s.State().Phase == PhaseLoading {
		before := s.State().Progress
		s.Update(loadTickMsg{gen: s.Generation()})
		after := s.State().Progress
		if before >= slowdownAt && after < finishAt {
			assert.LessOrEqual(t, after-before, float64(slowStepMax))
		} else if after < finishAt {
			assert.LessOrEqual(t, after-before, float64(fastStepMax))
		}
	}
}

func TestLoadSimulatorRestartCancelsStaleTicks(t *testing.T) {
	s := newTestSimulator(3)
	s.Start()
	stale := s.Generation()
	s.Update(loadTickMsg{gen: stale})
	s.Update(loadTickMsg{gen: stale})

	s.Start()
	require.NotEqual(t, stale, s.Generation())
	assert.Equal(t, float64(seedProgress), s.State().Progress)

	assert.Nil(t, s.Update(loadTickMsg{gen: stale}))
	assert.Nil(t, s.Update(loadDoneMsg{gen: stale}))
	assert.Equal(t, float64(seedProgress), s.State().Progress)
	assert.True(t, s.State().IsLoading)
}

func TestLoadSimulatorStopMidLoad(t *testing.T) {
	s := newTestSimulator(5)
	s.Start()
	s.Update(loadTickMsg{gen: s.Generation()})
	before := s.State()

	s.Stop()

	after := s.State()
	assert.True(t, after.IsLoading, "stop must not force completion")
	assert.Equal(t, before.Progress, after.Progress)
	assert.Equal(t, PhaseIdle, after.Phase)

	for _, gen := range []int{s.Generation() - 1, s.Generation()} {
		assert.Nil(t, s.Update(loadTickMsg{gen: gen}))
		assert.Nil(t, s.Update(loadDoneMsg{gen: gen}))
	}
	assert.Equal(t, after, s.State())
}

func TestLoadSimulatorStopWhileFinishing(t *testing.T) {
	s := newTestSimulator(9)
	s.Start()
	runToFinish(t, s)
	gen := s.Generation()

	s.Stop()
	assert.Nil(t, s.Update(loadDoneMsg{gen: gen}))

	st := s.State()
	assert.True(t, st.IsLoading)
	assert.Equal(t, float64(completeAmount), st.Progress)
}

func TestLoadSimulatorStopWhenIdle(t *testing.T) {
	s := newTestSimulator(1)
	gen := s.Generation()
	s.Stop()

	assert.Equal(t, gen, s.Generation())
	assert.Equal(t, LoadState{}, s.State())
}

func TestLoadSimulatorTickCommand(t *testing.T) {
	s := newTestSimulator(1)
	cmd := s.Start()

	msg := cmd()
	tick, ok := msg.(loadTickMsg)
	require.True(t, ok)
	assert.Equal(t, s.Generation(), tick.gen)
}

func TestIgnoresForeignMessages(t *testing.T) {
	s := newTestSimulator(1)
	s.Start()
	before := s.State()

	assert.Nil(t, s.Update("unrelated"))
	assert.Equal(t, before, s.State())
}
