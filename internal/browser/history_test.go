package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryStackSeededAtHome(t *testing.T) {
	h := NewHistoryStack()

	require.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Index())
	assert.Equal(t, HistoryItem{URL: HomeURL, Title: "Home"}, h.Current())
	assert.False(t, h.CanGoBack())
}

func TestHistoryStackPushAdvances(t *testing.T) {
	h := NewHistoryStack()
	for i, u := range []string{"https://a.com", "https://b.com", "https://c.com"} {
		h.Push(HistoryItem{URL: u, Title: u})
		assert.Equal(t, i+2, h.Len())
		assert.Equal(t, h.Len()-1, h.Index())
		assert.Equal(t, u, h.Current().URL)
	}
}

func TestHistoryStackBackAtStartIsNoop(t *testing.T) {
	h := NewHistoryStack()

	item, ok := h.Back()
	assert.False(t, ok)
	assert.Equal(t, HistoryItem{}, item)
	assert.Equal(t, 0, h.Index())
	assert.Equal(t, 1, h.Len())
}

func TestHistoryStackPushTruncatesAfterBack(t *testing.T) {
	h := NewHistoryStack()
	h.Push(HistoryItem{URL: "A"})
	h.Push(HistoryItem{URL: "B"})
	h.Push(HistoryItem{URL: "C"})

	item, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "B", item.URL)
	assert.Equal(t, 2, h.Index())

	h.Push(HistoryItem{URL: "D"})

	var urls []string
	for _, it := range h.Items() {
		urls = append(urls, it.URL)
	}
	assert.Equal(t, []string{HomeURL, "A", "B", "D"}, urls)
	assert.Equal(t, 3, h.Index())
}

func TestHistoryStackItemsIsCopy(t *testing.T) {
	h := NewHistoryStack()
	items := h.Items()
	items[0].URL = "mutated"

	assert.Equal(t, HomeURL, h.Current().URL)
}
