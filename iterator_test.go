package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreOrder(t *testing.T) {
	nodes := buildSpecTree()
	got := nodeIDs(PreOrder(nodes["1"]))
	want := []string{"1", "1.1", "1.1.1", "1.1.2", "1.2", "1.2.1", "1.2.1.1", "1.2.1.2", "1.2.2", "1.2.3", "1.3"}
	assert.Equal(t, want, got)
}

func TestPreOrder_PruneCollapsed(t *testing.T) {
	nodes := buildSpecTree()
	nodes["1.2.1"].collapse()

	got := nodeIDs(PreOrder(nodes["1"], PruneCollapsed()))
	want := []string{"1", "1.1", "1.1.1", "1.1.2", "1.2", "1.2.1", "1.2.2", "1.2.3", "1.3"}
	assert.Equal(t, want, got)
}

func TestBreadthFirst(t *testing.T) {
	nodes := buildSpecTree()
	got := nodeIDs(BreadthFirst(nodes["1"]))
	want := []string{"1", "1.1", "1.2", "1.3", "1.1.1", "1.1.2", "1.2.1", "1.2.2", "1.2.3", "1.2.1.1", "1.2.1.2"}
	assert.Equal(t, want, got)
}

func TestTopToBottom(t *testing.T) {
	nodes := buildSpecTree()
	got := nodeIDs(TopToBottom(nodes["1.2.1"]))
	want := []string{"1.2.1", "1.2.1.1", "1.2.1.2", "1.2.2", "1.2.3", "1.3"}
	assert.Equal(t, want, got)
}

func TestBottomToTop(t *testing.T) {
	nodes := buildSpecTree()
	got := nodeIDs(BottomToTop(nodes["1.2.1"]))
	want := []string{"1.2.1", "1.2", "1.1.2", "1.1.1", "1.1", "1"}
	assert.Equal(t, want, got)
}

func TestBottomToTop_StartNotInTree(t *testing.T) {
	detached := newTestNode("detached", nil)
	got := BottomToTop(detached)
	assert.Equal(t, Nodes{detached}, got)
}
