package playlist

// History keeps snapshots of a playlist collection for undo/redo.
type History struct {
	states  [][]*Playlist
	current int // index of current state (-1 = before any state)
	maxSize int
}

// NewHistory creates a history holding at most maxSize snapshots.
func NewHistory(maxSize int) *History {
	return &History{
		states:  make([][]*Playlist, 0, maxSize),
		current: -1,
		maxSize: max(maxSize, 1),
	}
}

// Push records a snapshot of lists. Redo states are discarded and the
// oldest snapshots dropped when over the limit.
func (h *History) Push(lists []*Playlist) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, cloneAll(lists))
	h.current = len(h.states) - 1

	if len(h.states) > h.maxSize {
		excess := len(h.states) - h.maxSize
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// Undo steps back one snapshot and returns a copy of it.
func (h *History) Undo() ([]*Playlist, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return cloneAll(h.states[h.current]), true
}

// Redo steps forward one snapshot and returns a copy of it.
func (h *History) Redo() ([]*Playlist, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return cloneAll(h.states[h.current]), true
}

// CanUndo returns true if there is a previous snapshot.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo returns true if there is a next snapshot.
func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}

func cloneAll(lists []*Playlist) []*Playlist {
	out := make([]*Playlist, 0, len(lists))
	for _, p := range lists {
		if p != nil {
			out = append(out, p.Clone())
		}
	}
	return out
}
