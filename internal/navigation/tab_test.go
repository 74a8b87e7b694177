package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webb-inc/webb/internal/content"
)

func TestTabURL(t *testing.T) {
	assert.Equal(t, "/", TabLanding.URL())
	assert.Equal(t, "/?view=JAMES_WEBB", TabJamesWebb.URL())
	assert.Equal(t, "/?view=ABOUT", TabAbout.URL())
}

func TestTabCategory(t *testing.T) {
	c, ok := TabJamesWebb.Category()
	assert.True(t, ok)
	assert.Equal(t, content.CategoryJamesWebb, c)

	_, ok = TabAbout.Category()
	assert.False(t, ok)
	_, ok = TabLanding.Category()
	assert.False(t, ok)
}

func TestTabLabels(t *testing.T) {
	assert.Equal(t, "TOP", TabLanding.Label())
	assert.Equal(t, "JAMES WEBB", TabJamesWebb.Label())
	assert.Equal(t, "ABOUT US", TabAbout.Label())
}

func TestTabFromLocation(t *testing.T) {
	tab, ok := TabFromLocation("https://webb.example/?view=COMMERCIAL&utm=x")
	assert.True(t, ok)
	assert.Equal(t, TabCommercial, tab)

	_, ok = TabFromLocation("/?view=")
	assert.False(t, ok)
}

func TestHistoryCursor(t *testing.T) {
	h := NewHistory()
	assert.False(t, h.CanGoBack())

	h.Push(EntryFor(TabMV))
	h.Push(EntryFor(TabAbout))
	e, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, TabMV, e.Tab)

	h.Replace(EntryFor(TabCommercial))
	assert.Equal(t, TabCommercial, h.Current().Tab)
	assert.True(t, h.CanGoForward())

	h.Push(EntryFor(TabLanding))
	assert.Equal(t, 3, h.Len())
	assert.False(t, h.CanGoForward())
}

func TestHistoryDropsOldestBeyondCap(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxHistory+5; i++ {
		h.Push(EntryFor(Tabs[i%len(Tabs)]))
	}

	assert.Equal(t, MaxHistory, h.Len())
	assert.Equal(t, MaxHistory-1, h.Index())
	assert.Equal(t, Tabs[(MaxHistory+4)%len(Tabs)], h.Current().Tab)

	for h.CanGoBack() {
		_, ok := h.Back()
		require.True(t, ok)
	}
	assert.Equal(t, Tabs[5%len(Tabs)], h.Current().Tab, "initial entries were dropped")
}
