package tree

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/samber/lo"
)

// gestureStack is a typed view over a gods arraylist used stack-style:
// index 0 is the bottom (oldest) of the stack, the highest index is the
// top (most recent). arraystack's own push/pop/peek-only surface can't
// express the transition rules in spec.md §4.2, which need to remove or
// replace arbitrary interior elements (a range split replaces one element
// with several; toggle-merge and range-subsumption remove arbitrary
// elements from a scanned prefix) — gods' own arraystack is implemented
// as a thin wrapper over exactly this arraylist, so this uses the same
// container at the layer that actually supports those operations.
type gestureStack struct {
	list *arraylist.List
}

func newGestureStack() *gestureStack {
	return &gestureStack{list: arraylist.New()}
}

func (s *gestureStack) size() int { return s.list.Size() }

func (s *gestureStack) empty() bool { return s.list.Empty() }

func (s *gestureStack) at(i int) Gesture {
	v, ok := s.list.Get(i)
	if !ok {
		return Gesture{}
	}
	return v.(Gesture)
}

// topIndex is the index of the most-recently-pushed gesture, or -1 if empty.
func (s *gestureStack) topIndex() int { return s.size() - 1 }

func (s *gestureStack) push(g Gesture) { s.list.Add(g) }

func (s *gestureStack) removeAt(i int) { s.list.Remove(i) }

// replaceAt removes the element at i and inserts gs in its place.
func (s *gestureStack) replaceAt(i int, gs ...Gesture) {
	s.list.Remove(i)
	if len(gs) == 0 {
		return
	}
	vals := make([]interface{}, len(gs))
	for j, g := range gs {
		vals[j] = g
	}
	s.list.Insert(i, vals...)
}

func (s *gestureStack) clone() *gestureStack {
	c := newGestureStack()
	for i := 0; i < s.size(); i++ {
		c.push(s.at(i))
	}
	return c
}

// SelectionState is an immutable value: a stack of gestures, plus the
// tree it's bound to. It is never mutated in place — Next always returns
// a new SelectionState — spec.md §3/§4.2.
type SelectionState struct {
	tree  Tree
	stack *gestureStack
}

// New returns the empty selection state bound to t.
func New(t Tree) SelectionState {
	return SelectionState{tree: t, stack: newGestureStack()}
}

// Projection returns the ordered list of distinct selected nodes,
// most-recent-first — spec.md §4.2 "Projection".
func (s SelectionState) Projection() Nodes {
	return s.foldProjection()
}

// foldProjection walks the stack bottom-to-top (oldest first), building
// the most-recent-first list by prepending each gesture's contribution to
// the front, so that later gestures end up earlier in the result without
// a separate whole-list reversal (which would also flip the internal
// order of a range's own contribution). A node contributed more than once
// (e.g. a TOGGLE pushed above a RANGE for a node toggled below it) keeps
// only its most recent position.
func (s SelectionState) foldProjection() Nodes {
	var l Nodes
	for i := 0; i < s.stack.size(); i++ {
		g := s.stack.at(i)
		switch g.Kind {
		case Toggle:
			l = append(Nodes{g.Node}, l...)
		case Range:
			if i == 0 {
				// No anchor: documented empty contribution (spec.md §9).
				continue
			}
			prev := s.stack.at(i - 1)
			if prev.Kind != Toggle {
				// Malformed per construction invariants; treat as no
				// contribution rather than panic during a read-only fold.
				continue
			}
			a := prev.Node
			if len(l) > 0 && l[0] == a {
				l = l[1:]
			}
			segment := rangeTowardAnchor(a, g.Node)
			l = append(segment, l...)
		}
	}
	var out Nodes
	seen := make(map[Node]struct{}, len(l))
	for _, n := range l {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Next computes the state resulting from applying gesture to s. It never
// mutates s. On Reset, it returns the empty state. DEFAULT gestures are
// rewritten to a one-gesture stack containing TOGGLE(node).
func (s SelectionState) Next(gesture GestureInput) (SelectionState, error) {
	switch g := gesture.(type) {
	case resetGesture:
		return New(s.tree), nil
	case Gesture:
		if g.Kind != Default {
			for i := 0; i < s.stack.size(); i++ {
				if s.stack.at(i).Kind == Default {
					return SelectionState{}, ErrInvalidGesture
				}
			}
		}
		switch g.Kind {
		case Default:
			ns := New(s.tree)
			ns.stack.push(ToggleGesture(g.Node))
			return ns, nil
		case Toggle:
			return s.nextToggle(g.Node)
		case Range:
			return s.nextRange(g.Node)
		default:
			return SelectionState{}, ErrInvalidGesture
		}
	default:
		return SelectionState{}, ErrInvalidGesture
	}
}

// nextToggle implements spec.md §4.2 "TOGGLE(n)".
func (s SelectionState) nextToggle(n Node) (SelectionState, error) {
	ns := SelectionState{tree: s.tree, stack: s.stack.clone()}

	// Step 1: range split against the topmost RANGE gesture, if any.
	topRangeIdx := -1
	for i := ns.stack.topIndex(); i >= 0; i-- {
		if ns.stack.at(i).Kind == Range {
			topRangeIdx = i
			break
		}
	}
	if topRangeIdx > 0 {
		r := ns.stack.at(topRangeIdx)
		anchorGesture := ns.stack.at(topRangeIdx - 1)
		if anchorGesture.Kind != Toggle {
			return SelectionState{}, ErrMalformedAnchor
		}
		a := anchorGesture.Node
		rangeNodes := ascendingRange(a, r.Node)
		if containsNode(rangeNodes, n) {
			remainder := make([]Gesture, 0, len(rangeNodes))
			for _, x := range rangeNodes {
				if x == a || x == n {
					continue
				}
				remainder = append(remainder, ToggleGesture(x))
			}
			ns.stack.replaceAt(topRangeIdx, remainder...)
			return ns, nil
		}
	}

	// Step 2: toggle merge within the prefix above the first RANGE
	// (or the whole stack, if there is none).
	removedAny := false
	for i := ns.stack.topIndex(); i >= 0; i-- {
		g := ns.stack.at(i)
		if g.Kind == Range {
			break
		}
		if g.Kind == Toggle && g.Node == n {
			ns.stack.removeAt(i)
			removedAny = true
		}
	}
	if removedAny {
		return ns, nil
	}

	ns.stack.push(ToggleGesture(n))
	return ns, nil
}

// nextRange implements spec.md §4.2 "RANGE(n)".
func (s SelectionState) nextRange(n Node) (SelectionState, error) {
	ns := SelectionState{tree: s.tree, stack: s.stack.clone()}

	// Step 1: modifying the most recent range.
	if ns.stack.size() > 0 && ns.stack.at(ns.stack.topIndex()).Kind == Range {
		ns.stack.removeAt(ns.stack.topIndex())
	}

	// Step 2: no anchor -> degrade to an empty contribution.
	if ns.stack.empty() {
		ns.stack.push(RangeGesture(n))
		return ns, nil
	}

	anchorGesture := ns.stack.at(ns.stack.topIndex())
	if anchorGesture.Kind != Toggle {
		return SelectionState{}, ErrMalformedAnchor
	}
	a := anchorGesture.Node

	// Step 3: remove toggles subsumed by the new range, stopping at the
	// next RANGE encountered below.
	rangeNodes := ascendingRange(a, n)
	for i := ns.stack.topIndex(); i >= 0; i-- {
		g := ns.stack.at(i)
		if g.Kind == Range {
			break
		}
		if g.Kind == Toggle && g.Node != a && containsNode(rangeNodes, g.Node) {
			ns.stack.removeAt(i)
		}
	}

	// Step 4.
	ns.stack.push(RangeGesture(n))
	return ns, nil
}

func containsNode(ns Nodes, n Node) bool {
	for _, x := range ns {
		if x == n {
			return true
		}
	}
	return false
}

// ascendingRange returns the inclusive collapse-pruned PreOrder nodes
// between a and n, sorted by ascending tree-order index, regardless of
// which argument appears first in that order — the range() function
// referenced by spec.md §4.2 and defined in §4.4.
func ascendingRange(a, n Node) Nodes {
	if a == nil || n == nil || a == n {
		return nil
	}
	order := PreOrder(rootOf(a), PruneCollapsed())
	ai, ni := -1, -1
	for i, x := range order {
		if x == a {
			ai = i
		}
		if x == n {
			ni = i
		}
	}
	if ai == -1 || ni == -1 {
		return nil
	}
	lo, hi := ai, ni
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make(Nodes, hi-lo+1)
	copy(out, order[lo:hi+1])
	return out
}

// rangeTowardAnchor returns the inclusive range between a and n, ordered
// so that n (the node just acted on) comes first and a (the anchor) comes
// last — the direction a range gesture's own contribution takes in the
// most-recent-first projection, regardless of which of a/n precedes the
// other in tree order.
func rangeTowardAnchor(a, n Node) Nodes {
	asc := ascendingRange(a, n)
	if len(asc) == 0 {
		return asc
	}
	if asc[0] == n {
		return asc
	}
	return lo.Reverse(asc)
}
