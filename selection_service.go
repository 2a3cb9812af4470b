package tree

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// SelectionChangedEvent carries the new projection after a committed
// selection change — spec.md §4.3.
type SelectionChangedEvent struct {
	Selected Nodes
}

// SelectionService wraps a SelectionState, diffs successive projections
// against the tree's nodes, mutates their selected flags, and emits
// change events — spec.md §4.3 (C3). It never mutates a node's selected
// flag except through this diff protocol, which is what guarantees
// flag-consistency with the projection (spec.md §8 property 3).
type SelectionService struct {
	tree  Tree
	state SelectionState

	changed *Emitter[SelectionChangedEvent]

	// Logger is nil-safe; AddSelection logs ignored gestures and committed
	// changes at Debug level only, never required for correctness.
	// SetSelection (the path collapse reconciliation uses) does not log. Mirrors
	// the ambient logrus use of the largest repo in the reference corpus.
	Logger *logrus.Logger
}

// NewSelectionService returns a service with an empty selection, bound to t.
func NewSelectionService(t Tree) *SelectionService {
	return &SelectionService{
		tree:    t,
		state:   New(t),
		changed: NewEmitter[SelectionChangedEvent](),
		Logger:  logrus.StandardLogger(),
	}
}

func (s *SelectionService) logger() *logrus.Logger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// SelectedNodes returns the current projection.
func (s *SelectionService) SelectedNodes() Nodes {
	return s.state.Projection()
}

// OnSelectionChanged subscribes to committed selection changes.
func (s *SelectionService) OnSelectionChanged(fn func(SelectionChangedEvent)) Disposable {
	return s.changed.On(fn)
}

// AddSelection validates gesture's node against the tree (Reset is always
// valid), computes the resulting state, diffs old and new projections,
// flips the affected nodes' selected flags, commits, and emits a change
// event — spec.md §4.3. Invalid nodes are silently ignored (spec.md §7):
// no error, no event, no state change.
func (s *SelectionService) AddSelection(gesture GestureInput) error {
	if g, ok := gesture.(Gesture); ok {
		if g.Node == nil {
			return nil
		}
		if s.tree.ValidateNode(g.Node) == nil {
			s.logger().WithField("node", g.Node.ID()).Debug("tree: ignoring gesture against invalid node")
			return nil
		}
	}

	oldProjection := s.state.Projection()
	newState, err := s.state.Next(gesture)
	if err != nil {
		return err
	}
	newProjection := newState.Projection()

	toUnselect, toSelect := lo.Difference(oldProjection, newProjection)
	if len(toUnselect) == 0 && len(toSelect) == 0 {
		return nil
	}

	for _, n := range toUnselect {
		n.SetState(n.State() &^ NodeSelected)
	}
	for _, n := range toSelect {
		n.SetState(n.State() | NodeSelected)
	}

	s.state = newState
	s.logger().WithFields(logrus.Fields{
		"unselected": len(toUnselect),
		"selected":   len(toSelect),
	}).Debug("tree: committed selection change")
	s.changed.Emit(SelectionChangedEvent{Selected: newProjection})
	return nil
}

// SetSelection replaces the selection with nodes, most-recent-first,
// installing a state whose projection equals nodes directly (the
// "equivalently" clause of spec.md §4.4's setSelection) rather than
// replaying a DEFAULT-gesture-per-node stream.
func (s *SelectionService) SetSelection(nodes Nodes) {
	oldProjection := s.state.Projection()
	newState := New(s.tree)
	for i := len(nodes) - 1; i >= 0; i-- {
		newState.stack.push(ToggleGesture(nodes[i]))
	}
	newProjection := newState.Projection()

	toUnselect, toSelect := lo.Difference(oldProjection, newProjection)
	if len(toUnselect) == 0 && len(toSelect) == 0 {
		return
	}

	for _, n := range toUnselect {
		n.SetState(n.State() &^ NodeSelected)
	}
	for _, n := range toSelect {
		n.SetState(n.State() | NodeSelected)
	}

	s.state = newState
	s.changed.Emit(SelectionChangedEvent{Selected: newProjection})
}
