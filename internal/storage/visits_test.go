package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVisitLog(t *testing.T) *VisitLog {
	t.Helper()
	db, err := OpenSessionDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewVisitLog(db)
}

func count(t *testing.T, vl *VisitLog) int {
	t.Helper()
	n, err := vl.Count()
	require.NoError(t, err)
	return n
}

func TestVisitLogCountAfterClose(t *testing.T) {
	db, err := OpenSessionDB()
	require.NoError(t, err)
	vl := NewVisitLog(db)
	require.NoError(t, db.Close())

	_, err = vl.Count()
	assert.Error(t, err)
}

func TestVisitLogRecordAndRecent(t *testing.T) {
	vl := newTestVisitLog(t)

	require.NoError(t, vl.Record("https://a.com", "A"))
	require.NoError(t, vl.Record("https://b.com", "B"))
	require.NoError(t, vl.Record("https://c.com", "C"))

	visits, err := vl.Recent(2)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "https://c.com", visits[0].URL)
	assert.Equal(t, "https://b.com", visits[1].URL)

	all, err := vl.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, count(t, vl))
}

func TestVisitLogCollapsesRepeats(t *testing.T) {
	vl := newTestVisitLog(t)
	clock := time.UnixMilli(1_700_000_000_000)
	vl.now = func() time.Time { return clock }

	require.NoError(t, vl.Record("https://a.com", "A"))
	clock = clock.Add(time.Minute)
	require.NoError(t, vl.Record("https://a.com", "A again"))

	visits, err := vl.Recent(0)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "A again", visits[0].Title)
	assert.True(t, visits[0].VisitedAt.Equal(clock))
}

func TestVisitLogIgnoresEmptyURL(t *testing.T) {
	vl := newTestVisitLog(t)

	require.NoError(t, vl.Record("", "nothing"))
	assert.Equal(t, 0, count(t, vl))
}

func TestVisitLogSearch(t *testing.T) {
	vl := newTestVisitLog(t)
	require.NoError(t, vl.Record("https://golang.org", "The Go Programming Language"))
	require.NoError(t, vl.Record("https://example.com", "Example Domain"))

	got, err := vl.Search("go")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://golang.org", got[0].URL)

	got, err = vl.Search("EXAMPLE")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVisitLogClear(t *testing.T) {
	vl := newTestVisitLog(t)
	require.NoError(t, vl.Record("https://a.com", "A"))

	require.NoError(t, vl.Clear())
	assert.Equal(t, 0, count(t, vl))
}

func TestSessionDBsAreIsolated(t *testing.T) {
	a := newTestVisitLog(t)
	b := newTestVisitLog(t)

	require.NoError(t, a.Record("https://a.com", "A"))
	assert.Equal(t, 1, count(t, a))
	assert.Equal(t, 0, count(t, b))
}
