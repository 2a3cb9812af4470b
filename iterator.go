package tree

// IterOptions configures a tree-order iterator.
type IterOptions struct {
	// PruneCollapsed, when true, skips the children of a non-expanded
	// collapsible node.
	PruneCollapsed bool
}

// IterOption mutates an IterOptions value.
type IterOption func(*IterOptions)

// PruneCollapsed enables collapse-aware pruning on an iterator.
func PruneCollapsed() IterOption {
	return func(o *IterOptions) { o.PruneCollapsed = true }
}

func resolveOptions(opts []IterOption) IterOptions {
	var o IterOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func childrenOf(n Node, opts IterOptions) Nodes {
	if opts.PruneCollapsed && isCollapsible(n) && !isExpanded(n) {
		return nil
	}
	return n.Children()
}

// PreOrder yields root, then recursively each child left-to-right —
// spec.md §4.1.
func PreOrder(root Node, opts ...IterOption) Nodes {
	o := resolveOptions(opts)
	if root == nil {
		return nil
	}
	out := Nodes{root}
	for _, c := range childrenOf(root, o) {
		out = append(out, PreOrder(c, opts...)...)
	}
	return out
}

// BreadthFirst yields nodes in BFS order from root — spec.md §4.1.
func BreadthFirst(root Node, opts ...IterOption) Nodes {
	o := resolveOptions(opts)
	if root == nil {
		return nil
	}
	out := Nodes{}
	queue := Nodes{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		queue = append(queue, childrenOf(n, o)...)
	}
	return out
}

// nextSibling returns n's next sibling in its parent's child list, or nil
// if n is the last child or has no parent.
func nextSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	siblings := p.Children()
	for i, s := range siblings {
		if s == n && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// prevSibling returns n's previous sibling in its parent's child list, or
// nil if n is the first child or has no parent.
func prevSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	siblings := p.Children()
	for i, s := range siblings {
		if s == n && i > 0 {
			return siblings[i-1]
		}
	}
	return nil
}

// rootOf walks up to the tree's root.
func rootOf(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// TopToBottom is PreOrder over the whole tree, skipped forward to start —
// spec.md §4.1. When start is not part of the walk from its own root
// (it lies under a collapsed ancestor and PruneCollapsed is set), it
// yields only start. A detached node is its own root, so it yields start
// followed by its own subtree.
func TopToBottom(start Node, opts ...IterOption) Nodes {
	if start == nil {
		return nil
	}
	full := PreOrder(rootOf(start), opts...)
	for i, n := range full {
		if n == start {
			return full[i:]
		}
	}
	return Nodes{start}
}

// BottomToTop is the reverse of TopToBottom: it yields start, then its
// in-order predecessor, and so on toward the root (inclusive) — spec.md
// §4.1.
func BottomToTop(start Node, opts ...IterOption) Nodes {
	if start == nil {
		return nil
	}
	full := PreOrder(rootOf(start), opts...)
	idx := -1
	for i, n := range full {
		if n == start {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Nodes{start}
	}
	out := make(Nodes, idx+1)
	for i := 0; i <= idx; i++ {
		out[i] = full[idx-i]
	}
	return out
}

// indexInPreOrder returns the index of n within a PreOrder walk of n's
// tree (collapse-pruned only when PruneCollapsed is passed), or -1 if n
// is not part of that walk.
func indexInPreOrder(n Node, opts ...IterOption) int {
	full := PreOrder(rootOf(n), opts...)
	for i, x := range full {
		if x == n {
			return i
		}
	}
	return -1
}
