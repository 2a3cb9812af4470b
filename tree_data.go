package tree

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// ChangedEvent carries the new root after a Tree-level change.
type ChangedEvent struct {
	Root Node
}

// NodeRefreshedEvent carries the node whose subtree was just refreshed.
type NodeRefreshedEvent struct {
	Node Node
}

// Tree is the external data-source collaborator referenced only by
// interface in spec.md §1/§6: node lookup, identity validation, refresh,
// and change notifications. The selection subsystem never constructs or
// mutates a Tree's nodes directly.
type Tree interface {
	// Root returns the tree's current root node.
	Root() Node
	// GetNode looks a node up by its stable identifier.
	GetNode(id string) (Node, bool)
	// ValidateNode returns n if n belongs to this tree (by identity), or
	// nil otherwise.
	ValidateNode(n Node) Node
	// Refresh re-derives whatever cached layout the tree keeps.
	Refresh()
	// SetRoot replaces the tree's root, e.g. on navigation.
	SetRoot(n Node)
	// OnChanged subscribes to root-replacement events.
	OnChanged(func(ChangedEvent)) Disposable
	// OnNodeRefreshed subscribes to per-node refresh events.
	OnNodeRefreshed(func(NodeRefreshedEvent)) Disposable
}

// SimpleTree is a minimal in-memory Tree, used by tests that need a
// concrete collaborator instead of a hand-rolled stub. Its id -> Node
// index is a gods treemap (ordered by id) rather than a bare map.
type SimpleTree struct {
	root  Node
	index *treemap.Map

	changed       *Emitter[ChangedEvent]
	nodeRefreshed *Emitter[NodeRefreshedEvent]
}

// NewSimpleTree builds a SimpleTree rooted at root, indexing root and
// every descendant by ID.
func NewSimpleTree(root Node) *SimpleTree {
	t := &SimpleTree{
		root:          root,
		index:         treemap.NewWith(utils.StringComparator),
		changed:       NewEmitter[ChangedEvent](),
		nodeRefreshed: NewEmitter[NodeRefreshedEvent](),
	}
	t.reindex(root)
	return t
}

func (t *SimpleTree) reindex(n Node) {
	if n == nil {
		return
	}
	t.index.Put(n.ID(), n)
	for _, c := range n.Children() {
		t.reindex(c)
	}
}

func (t *SimpleTree) Root() Node { return t.root }

func (t *SimpleTree) GetNode(id string) (Node, bool) {
	v, found := t.index.Get(id)
	if !found {
		return nil, false
	}
	return v.(Node), true
}

// ValidateNode returns n if it is the exact node instance registered
// under its ID in this tree (identity check, spec.md §6), or nil
// otherwise — e.g. a node from a stale/different tree is rejected even if
// it shares an ID.
func (t *SimpleTree) ValidateNode(n Node) Node {
	if n == nil {
		return nil
	}
	found, ok := t.GetNode(n.ID())
	if !ok || found != n {
		return nil
	}
	return n
}

func (t *SimpleTree) Refresh() {
	t.index.Clear()
	t.reindex(t.root)
}

func (t *SimpleTree) SetRoot(n Node) {
	t.root = n
	t.Refresh()
	t.changed.Emit(ChangedEvent{Root: n})
}

func (t *SimpleTree) OnChanged(fn func(ChangedEvent)) Disposable {
	return t.changed.On(fn)
}

func (t *SimpleTree) OnNodeRefreshed(fn func(NodeRefreshedEvent)) Disposable {
	return t.nodeRefreshed.On(fn)
}

// NotifyNodeRefreshed lets a concrete Node implementation announce that
// its own subtree changed shape (children added/removed) without
// replacing the root.
func (t *SimpleTree) NotifyNodeRefreshed(n Node) {
	t.reindex(n)
	t.nodeRefreshed.Emit(NodeRefreshedEvent{Node: n})
}
