package navigation

// Entry is one history record. Tab is empty for the entry the session
// started on before any state was recorded.
type Entry struct {
	Tab Tab
	URL string
}

// EntryFor builds the history entry for tab.
func EntryFor(tab Tab) Entry {
	return Entry{Tab: tab, URL: tab.URL()}
}

// MaxHistory caps the number of entries a History keeps.
const MaxHistory = 50

// History is a session history with a cursor, modelled on a browser's
// back/forward stack.
type History struct {
	entries []Entry
	index   int
}

// NewHistory starts a history holding a single stateless entry at "/".
func NewHistory() *History {
	return &History{entries: []Entry{{URL: "/"}}}
}

// Push drops any forward entries and appends e as the current entry. The
// oldest entries are dropped beyond MaxHistory.
func (h *History) Push(e Entry) {
	h.entries = append(h.entries[:h.index+1], e)
	if over := len(h.entries) - MaxHistory; over > 0 {
		h.entries = append([]Entry(nil), h.entries[over:]...)
	}
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry.
func (h *History) Replace(e Entry) {
	h.entries[h.index] = e
}

// Current returns the entry under the cursor.
func (h *History) Current() Entry {
	return h.entries[h.index]
}

// Back moves the cursor one entry back.
func (h *History) Back() (Entry, bool) {
	if !h.CanGoBack() {
		return Entry{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward.
func (h *History) Forward() (Entry, bool) {
	if !h.CanGoForward() {
		return Entry{}, false
	}
	h.index++
	return h.entries[h.index], true
}

func (h *History) CanGoBack() bool    { return h.index > 0 }
func (h *History) CanGoForward() bool { return h.index < len(h.entries)-1 }

// Len is the number of entries, including forward ones.
func (h *History) Len() int { return len(h.entries) }

// Index is the cursor position.
func (h *History) Index() int { return h.index }

// Entries returns a copy of all entries.
func (h *History) Entries() []Entry {
	return append([]Entry(nil), h.entries...)
}
