package tree

import "github.com/emirpasic/gods/lists/arraylist"

// NavigationHistory is the forward/back root-change history stack
// referenced as an external collaborator by spec.md §6 ("the navigation
// history stack (forward/back over root changes)"). Back-ordered like the
// gesture stack, it is backed by a gods arraylist used stack-style.
type NavigationHistory struct {
	back    *arraylist.List
	forward *arraylist.List
}

// NewNavigationHistory returns an empty history.
func NewNavigationHistory() *NavigationHistory {
	return &NavigationHistory{back: arraylist.New(), forward: arraylist.New()}
}

// Push records current as the root to return to on a future Retreat, and
// clears the forward history (a fresh navigation invalidates any
// previously-retreated-from path).
func (h *NavigationHistory) Push(current Node) {
	h.back.Add(current)
	h.forward.Clear()
}

// Advance pops the most recent forward entry, pushing current onto back
// in its place. Returns false if there is nothing to advance to.
func (h *NavigationHistory) Advance(current Node) (Node, bool) {
	n, ok := popLast(h.forward)
	if !ok {
		return nil, false
	}
	h.back.Add(current)
	return n.(Node), true
}

// Retreat pops the most recent back entry, pushing current onto forward
// in its place. Returns false if there is nothing to retreat to.
func (h *NavigationHistory) Retreat(current Node) (Node, bool) {
	n, ok := popLast(h.back)
	if !ok {
		return nil, false
	}
	h.forward.Add(current)
	return n.(Node), true
}

// Next reports whether Advance would succeed.
func (h *NavigationHistory) Next() bool { return !h.forward.Empty() }

// Prev reports whether Retreat would succeed.
func (h *NavigationHistory) Prev() bool { return !h.back.Empty() }

func popLast(l *arraylist.List) (interface{}, bool) {
	if l.Empty() {
		return nil, false
	}
	idx := l.Size() - 1
	v, _ := l.Get(idx)
	l.Remove(idx)
	return v, true
}
