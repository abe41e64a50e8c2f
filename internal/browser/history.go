package browser

// HomeURL is the internal address of the landing view. It is never fetched.
const HomeURL = "internal://home"

// HistoryItem is a single entry in a navigation stack.
type HistoryItem struct {
	URL   string
	Title string
}

// HistoryStack is a back-only navigation stack. The position always points
// at a valid entry.
type HistoryStack struct {
	entries []HistoryItem
	pos     int // current position in the stack
}

// NewHistoryStack creates a stack seeded with the home entry.
func NewHistoryStack() *HistoryStack {
	return &HistoryStack{
		entries: []HistoryItem{{URL: HomeURL, Title: "Home"}},
		pos:     0,
	}
}

// Push adds a new entry, truncating anything after the current position.
func (h *HistoryStack) Push(item HistoryItem) {
	// If we're not at the end, truncate forward history.
	if h.pos < len(h.entries)-1 {
		h.entries = h.entries[:h.pos+1]
	}
	h.entries = append(h.entries, item)
	h.pos = len(h.entries) - 1
}

// Back moves one step back. Returns the new current entry and true if possible.
func (h *HistoryStack) Back() (HistoryItem, bool) {
	if h.pos <= 0 {
		return HistoryItem{}, false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Current returns the entry at the current position.
func (h *HistoryStack) Current() HistoryItem {
	return h.entries[h.pos]
}

// Index returns the current position.
func (h *HistoryStack) Index() int {
	return h.pos
}

// CanGoBack reports whether there is a previous entry.
func (h *HistoryStack) CanGoBack() bool {
	return h.pos > 0
}

// Len returns the total number of entries.
func (h *HistoryStack) Len() int {
	return len(h.entries)
}

// Items returns a copy of the entries, oldest first.
func (h *HistoryStack) Items() []HistoryItem {
	out := make([]HistoryItem, len(h.entries))
	copy(out, h.entries)
	return out
}
