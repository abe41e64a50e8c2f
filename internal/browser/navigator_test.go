package browser

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNavigator(opts Options) *Navigator {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(42))
	}
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	return NewNavigator(opts)
}

func urls(items []HistoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.URL
	}
	return out
}

func TestNavigatorStartsAtHome(t *testing.T) {
	n := newTestNavigator(Options{})

	assert.Equal(t, HomeURL, n.CurrentURL())
	assert.True(t, n.IsHome())
	assert.Equal(t, ModeNormal, n.Mode())
	assert.False(t, n.IsIncognito())
	assert.False(t, n.Load().IsLoading)
}

func TestNavigatorStartIncognito(t *testing.T) {
	n := newTestNavigator(Options{StartIncognito: true})

	assert.True(t, n.IsIncognito())
	assert.True(t, n.IsHome())

	n.Navigate("private.example")
	n.ToggleMode()
	assert.Equal(t, ModeNormal, n.Mode())
	assert.True(t, n.IsHome())
}

func TestNavigatorNavigateAppends(t *testing.T) {
	n := newTestNavigator(Options{})

	inputs := []string{"a.com", "b.com", "c.com"}
	for i, in := range inputs {
		cmd := n.Navigate(in)
		require.NotNil(t, cmd)

		items, idx := n.History()
		assert.Len(t, items, i+2)
		assert.Equal(t, len(items)-1, idx)
		assert.Equal(t, "https://"+in, n.CurrentURL())
		assert.Equal(t, HistoryItem{URL: n.CurrentURL(), Title: n.CurrentURL()}, n.Current())
		assert.True(t, n.Load().IsLoading)
	}
}

func TestNavigatorBlankInputIsNoop(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")
	gen := n.Loader().Generation()

	assert.Nil(t, n.Navigate("   "))
	assert.Nil(t, n.Navigate(""))

	items, idx := n.History()
	assert.Len(t, items, 2)
	assert.Equal(t, 1, idx)
	assert.Equal(t, gen, n.Loader().Generation(), "blank input must not restart loading")
}

func TestNavigatorBackAtStartIsNoop(t *testing.T) {
	n := newTestNavigator(Options{})

	assert.Nil(t, n.Back())
	assert.Nil(t, n.Back())

	items, idx := n.History()
	assert.Equal(t, []string{HomeURL}, urls(items))
	assert.Equal(t, 0, idx)
	assert.False(t, n.Load().IsLoading)
}

func TestNavigatorBackThenNavigateTruncates(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("https://A.com")
	n.Navigate("https://B.com")
	n.Navigate("https://C.com")

	require.NotNil(t, n.Back())
	_, idx := n.History()
	assert.Equal(t, 2, idx)
	assert.Equal(t, "https://B.com", n.CurrentURL())

	n.Navigate("https://D.com")
	items, idx := n.History()
	assert.Equal(t, []string{HomeURL, "https://A.com", "https://B.com", "https://D.com"}, urls(items))
	assert.Equal(t, 3, idx)
}

func TestNavigatorBackDoesNotMutateStack(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")
	n.Navigate("b.com")
	before, _ := n.History()

	n.Back()
	n.Back()
	after, idx := n.History()

	assert.Equal(t, before, after)
	assert.Equal(t, 0, idx)
	assert.True(t, n.IsHome())
}

func TestNavigatorModeIsolation(t *testing.T) {
	n := newTestNavigator(Options{})

	n.Navigate("x.com")
	n.ToggleMode()
	assert.True(t, n.IsIncognito())
	assert.True(t, n.IsHome(), "incognito starts on its own home entry")

	n.Navigate("y.com")
	n.ToggleMode()
	assert.Equal(t, ModeNormal, n.Mode())
	assert.Equal(t, "https://x.com", n.CurrentURL())

	n.ToggleMode()
	assert.Equal(t, "https://y.com", n.CurrentURL())
}

func TestNavigatorToggleRestoresPosition(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")
	n.Navigate("b.com")
	n.Navigate("c.com")
	n.Back()
	wantItems, wantIdx := n.History()

	n.ToggleMode()
	n.Navigate("secret.com")
	n.Navigate("other.com")
	n.Back()
	incItems, incIdx := n.History()

	for i := 0; i < 3; i++ {
		n.ToggleMode()
		items, idx := n.History()
		assert.Equal(t, wantItems, items)
		assert.Equal(t, wantIdx, idx)

		n.ToggleMode()
		items, idx = n.History()
		assert.Equal(t, incItems, items)
		assert.Equal(t, incIdx, idx)
	}

	assert.Equal(t, "https://secret.com", n.CurrentURL())
}

func TestNavigatorToggleStartsLoad(t *testing.T) {
	n := newTestNavigator(Options{})
	gen := n.Loader().Generation()

	require.NotNil(t, n.ToggleMode())
	assert.Equal(t, gen+1, n.Loader().Generation())
	assert.True(t, n.Load().IsLoading)
}

func TestNavigatorHome(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")

	require.NotNil(t, n.Home())
	assert.True(t, n.IsHome())

	items, idx := n.History()
	assert.Equal(t, []string{HomeURL, "https://a.com", HomeURL}, urls(items))
	assert.Equal(t, 2, idx)
	assert.True(t, n.CanGoBack())
}

func TestNavigatorReloadKeepsHistory(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")
	before, idx := n.History()
	gen := n.Loader().Generation()

	require.NotNil(t, n.Reload())

	after, idx2 := n.History()
	assert.Equal(t, before, after)
	assert.Equal(t, idx, idx2)
	assert.Equal(t, gen+1, n.Loader().Generation())
}

func TestNavigatorSearchPrefix(t *testing.T) {
	n := newTestNavigator(Options{SearchPrefix: SearchEngines["bing"]})
	n.Navigate("find cats")

	assert.Equal(t, "https://www.bing.com/search?q=find%20cats", n.CurrentURL())
}

func TestNavigatorUpdateDrivesLoad(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")

	for i := 0; n.Load().Phase == PhaseLoading; i++ {
		require.Less(t, i, 10000)
		n.Update(loadTickMsg{gen: n.Loader().Generation()})
	}
	assert.Equal(t, float64(completeAmount), n.Load().Progress)

	n.Update(loadDoneMsg{gen: n.Loader().Generation()})
	assert.False(t, n.Load().IsLoading)
}

func TestNavigatorStop(t *testing.T) {
	n := newTestNavigator(Options{})
	n.Navigate("a.com")
	gen := n.Loader().Generation()

	n.Stop()
	assert.Nil(t, n.Update(loadTickMsg{gen: gen}))
	assert.True(t, n.Load().IsLoading)
	assert.Equal(t, float64(seedProgress), n.Load().Progress)
}
