package tree

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(nodes map[string]*testNode) *TreeModel {
	dataTree := NewSimpleTree(nodes["1"])
	expansion := NewSimpleExpansionService()
	navigation := NewNavigationHistory()
	selection := NewSelectionService(dataTree)
	return NewTreeModel(dataTree, expansion, navigation, selection)
}

func TestTreeModel_SelectNode(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.1"], false)
	assert.Equal(t, []string{"1.1"}, nodeIDs(m.SelectedNodes()))

	m.SelectNode(nodes["1.2"], true)
	assert.Equal(t, []string{"1.2", "1.1"}, nodeIDs(m.SelectedNodes()))

	// already most-recent: no-op
	m.SelectNode(nodes["1.2"], true)
	assert.Equal(t, []string{"1.2", "1.1"}, nodeIDs(m.SelectedNodes()))

	// present elsewhere: moved to front
	m.SelectNode(nodes["1.1"], true)
	assert.Equal(t, []string{"1.1", "1.2"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_UnselectNode(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SetSelection(Nodes{nodes["1.1"], nodes["1.2"], nodes["1.3"]})
	m.UnselectNode(nodes["1.2"])
	assert.Equal(t, []string{"1.1", "1.3"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_ToggleSelection(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.ToggleSelection(nodes["1.1"])
	assert.Equal(t, []string{"1.1"}, nodeIDs(m.SelectedNodes()))

	m.ToggleSelection(nodes["1.1"])
	assert.Empty(t, m.SelectedNodes())
}

func TestTreeModel_SelectionRange(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	got := m.SelectionRange(nodes["1.1.2"], nodes["1.3"])
	assert.Equal(t, []string{"1.3", "1.2.3", "1.2.2", "1.2.1.2", "1.2.1.1", "1.2.1", "1.2", "1.1.2"}, nodeIDs(got))

	reversed := m.SelectionRange(nodes["1.3"], nodes["1.1.2"])
	assert.Equal(t, Nodes(lo.Reverse(got)), reversed)
}

func TestTreeModel_SelectRange_Replaces(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.3"], false)
	m.SelectRange(nodes["1.1.2"], nil, false)
	assert.Equal(t, []string{"1.3", "1.2.3", "1.2.2", "1.2.1.2", "1.2.1.1", "1.2.1", "1.2", "1.1.2"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_SelectRange_PreserveSelection(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SetSelection(Nodes{nodes["1.1.1"]})
	m.SelectNode(nodes["1.3"], true)
	m.SelectRange(nodes["1.2"], nil, true)

	got := nodeIDs(m.SelectedNodes())
	require.Contains(t, got, "1.1.1")
	assert.Equal(t, "1.3", got[0])
}

func TestTreeModel_SelectNextPrevNode(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.2.1"], false)
	m.SelectNextNode(false)
	assert.Equal(t, []string{"1.2.1.1"}, nodeIDs(m.SelectedNodes()))

	m.SelectPrevNode(false)
	assert.Equal(t, []string{"1.2.1"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_SelectNextNode_SkipsCollapsedDescendants(t *testing.T) {
	nodes := buildSpecTree()
	nodes["1.2.1"].collapse()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.2.1"], false)
	m.SelectNextNode(false)
	assert.Equal(t, []string{"1.2.2"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_SelectParent(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.2.1.1"], false)
	m.SelectParent()
	assert.Equal(t, []string{"1.2.1"}, nodeIDs(m.SelectedNodes()))

	// more than one node selected: no-op
	m.SetSelection(Nodes{nodes["1.1"], nodes["1.2"]})
	m.SelectParent()
	assert.Equal(t, []string{"1.1", "1.2"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_OpenNode_TogglesExpansion(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	var opened []Node
	m.OnOpenNode(func(e OpenNodeEvent) { opened = append(opened, e.Node) })

	require.False(t, nodes["1.2"].state.Is(NodeCollapsed))
	m.OpenNode(nodes["1.2"])
	assert.True(t, nodes["1.2"].state.Is(NodeCollapsed))
	require.Len(t, opened, 1)
	assert.Equal(t, "1.2", opened[0].ID())
}

func TestTreeModel_Navigation(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.NavigateTo(nodes["1.2"])
	assert.Equal(t, []string{"1.2"}, nodeIDs(m.SelectedNodes()))

	m.NavigateBackward()
	assert.Equal(t, []string{"1"}, nodeIDs(m.SelectedNodes()))

	m.NavigateForward()
	assert.Equal(t, []string{"1.2"}, nodeIDs(m.SelectedNodes()))
}

func TestTreeModel_Dispose_MakesOperationsNoOps(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.1"], false)
	m.Dispose()

	m.SelectNode(nodes["1.2"], false)
	assert.Nil(t, m.SelectedNodes())
}
