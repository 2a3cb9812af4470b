package tree

// ExpansionChangedEvent reports that a node's expand/collapse state was
// just changed.
type ExpansionChangedEvent struct {
	Node     Node
	Expanded bool
}

// ExpansionService is the external collaborator referenced by spec.md
// §1/§6: expand/collapse operations and the change event C5 reconciles
// against.
type ExpansionService interface {
	ExpandNode(n Node)
	CollapseNode(n Node)
	ToggleNodeExpansion(n Node)
	OnExpansionChanged(func(ExpansionChangedEvent)) Disposable
}

// SimpleExpansionService is a minimal in-memory ExpansionService flipping
// the NodeCollapsed bit the same way the teacher's Model.ToggleExpand
// does, generalized into a standalone service with change notification.
type SimpleExpansionService struct {
	changed *Emitter[ExpansionChangedEvent]
}

// NewSimpleExpansionService returns a ready-to-use ExpansionService.
func NewSimpleExpansionService() *SimpleExpansionService {
	return &SimpleExpansionService{changed: NewEmitter[ExpansionChangedEvent]()}
}

func (s *SimpleExpansionService) ExpandNode(n Node) {
	if n == nil || !isCollapsible(n) || isExpanded(n) {
		return
	}
	n.SetState(n.State() &^ NodeCollapsed)
	s.changed.Emit(ExpansionChangedEvent{Node: n, Expanded: true})
}

func (s *SimpleExpansionService) CollapseNode(n Node) {
	if n == nil || !isCollapsible(n) || !isExpanded(n) {
		return
	}
	n.SetState(n.State() | NodeCollapsed)
	s.changed.Emit(ExpansionChangedEvent{Node: n, Expanded: false})
}

func (s *SimpleExpansionService) ToggleNodeExpansion(n Node) {
	if n == nil {
		return
	}
	if isExpanded(n) {
		s.CollapseNode(n)
	} else {
		s.ExpandNode(n)
	}
}

func (s *SimpleExpansionService) OnExpansionChanged(fn func(ExpansionChangedEvent)) Disposable {
	return s.changed.On(fn)
}

// wireExpansionReconciliation implements C5 (spec.md §4.5): when a node e
// is collapsed and the current selection contains a descendant of e, and
// e is itself visible, the selection is replaced with [e]. Expansions,
// and collapses whose selection has no hidden descendant, require no
// action.
func wireExpansionReconciliation(expansion ExpansionService, selection *SelectionService) Disposable {
	return expansion.OnExpansionChanged(func(ev ExpansionChangedEvent) {
		if ev.Expanded {
			return
		}
		for _, s := range selection.SelectedNodes() {
			if isAncestor(ev.Node, s) {
				if isNodeVisible(ev.Node) {
					selection.SetSelection(Nodes{ev.Node})
				}
				return
			}
		}
	})
}
