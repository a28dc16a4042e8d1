package scoring

// History is the undo stack of a match. Entries are value copies of
// MatchState, so neither pushing nor popping aliases the live state.
type History struct {
	entries []MatchState
}

func NewHistory() *History {
	return &History{}
}

// Push records a snapshot of s.
func (h *History) Push(s MatchState) {
	h.entries = append(h.entries, s.Clone())
}

// Pop removes and returns the most recent snapshot. ok is false when the
// history is empty.
func (h *History) Pop() (MatchState, bool) {
	if len(h.entries) == 0 {
		return MatchState{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = MatchState{}
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Undo restores the most recent snapshot in place of current. When the
// history is empty current is returned unchanged with false.
func Undo(h *History, current MatchState) (MatchState, bool) {
	prev, ok := h.Pop()
	if !ok {
		return current, false
	}
	return prev, true
}
