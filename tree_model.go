package tree

import "github.com/sirupsen/logrus"

// OpenNodeEvent is emitted by TreeModel.OpenNode.
type OpenNodeEvent struct {
	Node Node
}

// TreeModel binds Tree + ExpansionService + NavigationHistory +
// SelectionService and exposes the high-level selection and navigation
// operations of spec.md §4.4 (C4). It translates each operation into the
// equivalent gesture, or into a direct SetSelection call, as spec.md §2
// describes.
type TreeModel struct {
	tree       Tree
	expansion  ExpansionService
	navigation *NavigationHistory
	selection  *SelectionService

	openEmitter *Emitter[OpenNodeEvent]
	teardown    []Disposable

	Logger *logrus.Logger
}

// NewTreeModel wires the four collaborators into a TreeModel, per DESIGN
// NOTES §9 ("the model is constructed with four collaborator values
// conforming to the interfaces"), and wires C5's collapse reconciliation.
func NewTreeModel(t Tree, expansion ExpansionService, navigation *NavigationHistory, selection *SelectionService) *TreeModel {
	m := &TreeModel{
		tree:        t,
		expansion:   expansion,
		navigation:  navigation,
		selection:   selection,
		openEmitter: NewEmitter[OpenNodeEvent](),
		Logger:      logrus.StandardLogger(),
	}
	m.teardown = append(m.teardown, wireExpansionReconciliation(expansion, selection))
	return m
}

// Dispose tears down every subscription wired at construction time.
// After Dispose, selection operations on this model are no-ops.
func (m *TreeModel) Dispose() {
	for _, d := range m.teardown {
		d.Dispose()
	}
	m.teardown = nil
	m.tree = nil
}

func (m *TreeModel) disposed() bool { return m.tree == nil }

// SelectedNodes returns the current selection projection.
func (m *TreeModel) SelectedNodes() Nodes {
	if m.disposed() {
		return nil
	}
	return m.selection.SelectedNodes()
}

// OnSelectionChanged subscribes to selection-changed events.
func (m *TreeModel) OnSelectionChanged(fn func(SelectionChangedEvent)) Disposable {
	return m.selection.OnSelectionChanged(fn)
}

// OnOpenNode subscribes to node-open events.
func (m *TreeModel) OnOpenNode(fn func(OpenNodeEvent)) Disposable {
	return m.openEmitter.On(fn)
}

func (m *TreeModel) validate(n Node) Node {
	if m.disposed() || n == nil {
		return nil
	}
	return m.tree.ValidateNode(n)
}

// SetSelection replaces the selection with nodes, most-recent-first.
func (m *TreeModel) SetSelection(nodes Nodes) {
	if m.disposed() {
		return
	}
	valid := make(Nodes, 0, len(nodes))
	for _, n := range nodes {
		if v := m.validate(n); v != nil {
			valid = append(valid, v)
		}
	}
	m.selection.SetSelection(valid)
}

// SelectNode implements spec.md §4.4 selectNode.
func (m *TreeModel) SelectNode(n Node, preserveSelection bool) {
	n = m.validate(n)
	if n == nil {
		return
	}
	if !preserveSelection {
		m.SetSelection(Nodes{n})
		return
	}

	current := m.selection.SelectedNodes()
	if len(current) > 0 && current[0] == n {
		return
	}
	reordered := make(Nodes, 0, len(current)+1)
	reordered = append(reordered, n)
	for _, x := range current {
		if x != n {
			reordered = append(reordered, x)
		}
	}
	m.SetSelection(reordered)
}

// UnselectNode implements spec.md §4.4 unselectNode.
func (m *TreeModel) UnselectNode(n Node) {
	n = m.validate(n)
	if n == nil {
		return
	}
	current := m.selection.SelectedNodes()
	remainder := make(Nodes, 0, len(current))
	for _, x := range current {
		if x != n {
			remainder = append(remainder, x)
		}
	}
	if len(remainder) == len(current) {
		return
	}
	m.SetSelection(remainder)
}

// ToggleSelection implements spec.md §4.4 toggleSelection.
func (m *TreeModel) ToggleSelection(n Node) {
	v := m.validate(n)
	if v == nil {
		return
	}
	if isSelectedFlag(v) {
		m.UnselectNode(v)
	} else {
		m.SelectNode(v, true)
	}
}

// SelectionRange implements spec.md §4.4 selectionRange: the inclusive
// node list between from and to in collapse-pruned PreOrder, ordered so
// the result always starts at from and ends at to (spec.md §8 property 6
// follows directly from this symmetric definition).
func (m *TreeModel) SelectionRange(to, from Node) Nodes {
	to = m.validate(to)
	from = m.validate(from)
	if to == nil || from == nil || to == from {
		return nil
	}
	return rangeTowardAnchor(to, from)
}

// SelectRange implements spec.md §4.4 selectRange.
func (m *TreeModel) SelectRange(to Node, from Node, preserveSelection bool) {
	if from == nil {
		current := m.selection.SelectedNodes()
		if len(current) == 0 {
			return
		}
		from = current[0]
	}
	rng := m.SelectionRange(to, from)
	if len(rng) == 0 {
		return
	}
	if !preserveSelection {
		m.SetSelection(rng)
		return
	}
	inRange := make(map[Node]struct{}, len(rng))
	for _, n := range rng {
		inRange[n] = struct{}{}
	}
	merged := make(Nodes, 0, len(rng)+len(m.selection.SelectedNodes()))
	merged = append(merged, rng...)
	for _, n := range m.selection.SelectedNodes() {
		if _, dup := inRange[n]; !dup {
			merged = append(merged, n)
		}
	}
	m.SetSelection(merged)
}

// SelectPrevNode implements spec.md §4.4 selectPrevNode.
func (m *TreeModel) SelectPrevNode(preserveSelection bool) {
	m.selectAdjacent(preserveSelection, BottomToTop)
}

// SelectNextNode implements spec.md §4.4 selectNextNode.
func (m *TreeModel) SelectNextNode(preserveSelection bool) {
	m.selectAdjacent(preserveSelection, TopToBottom)
}

func (m *TreeModel) selectAdjacent(preserveSelection bool, walk func(Node, ...IterOption) Nodes) {
	current := m.selection.SelectedNodes()
	if len(current) == 0 {
		return
	}
	start := current[0]
	for _, n := range walk(start, PruneCollapsed())[1:] {
		if isNodeVisible(n) {
			m.SelectNode(n, preserveSelection)
			return
		}
	}
}

// SelectParent implements spec.md §4.4 selectParent.
func (m *TreeModel) SelectParent() {
	current := m.selection.SelectedNodes()
	if len(current) != 1 {
		return
	}
	for p := current[0].Parent(); p != nil; p = p.Parent() {
		if isNodeVisible(p) {
			m.SelectNode(p, false)
			return
		}
	}
}

// OpenNode implements spec.md §4.4 openNode.
func (m *TreeModel) OpenNode(n Node) {
	if n == nil {
		current := m.selection.SelectedNodes()
		if len(current) == 0 {
			return
		}
		n = current[0]
	}
	n = m.validate(n)
	if n == nil {
		return
	}
	m.openEmitter.Emit(OpenNodeEvent{Node: n})
	if isCollapsible(n) {
		m.expansion.ToggleNodeExpansion(n)
	}
}

// NavigateTo implements spec.md §4.4 navigateTo.
func (m *TreeModel) NavigateTo(n Node) {
	if m.disposed() || n == nil {
		return
	}
	m.navigation.Push(m.tree.Root())
	m.applyRoot(n)
}

// NavigateForward implements spec.md §4.4 navigateForward.
func (m *TreeModel) NavigateForward() {
	if m.disposed() {
		return
	}
	n, ok := m.navigation.Advance(m.tree.Root())
	if !ok {
		return
	}
	m.applyRoot(n)
}

// NavigateBackward implements spec.md §4.4 navigateBackward.
func (m *TreeModel) NavigateBackward() {
	if m.disposed() {
		return
	}
	n, ok := m.navigation.Retreat(m.tree.Root())
	if !ok {
		return
	}
	m.applyRoot(n)
}

func (m *TreeModel) applyRoot(n Node) {
	m.tree.SetRoot(n)
	if isCollapsible(n) && !isExpanded(n) {
		m.expansion.ExpandNode(n)
	}
	m.SetSelection(Nodes{n})
}
