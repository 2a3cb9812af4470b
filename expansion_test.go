package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpansion_CollapseReconciliation(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.2.1.1"], false)
	require.Equal(t, []string{"1.2.1.1"}, nodeIDs(m.SelectedNodes()))

	m.expansion.CollapseNode(nodes["1.2.1"])

	assert.Equal(t, []string{"1.2.1"}, nodeIDs(m.SelectedNodes()))
}

func TestExpansion_NoReconciliationWithoutHiddenSelection(t *testing.T) {
	nodes := buildSpecTree()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.3"], false)
	m.expansion.CollapseNode(nodes["1.2.1"])

	assert.Equal(t, []string{"1.3"}, nodeIDs(m.SelectedNodes()))
}

func TestExpansion_NoReconciliationOnExpand(t *testing.T) {
	nodes := buildSpecTree()
	nodes["1.2.1"].collapse()
	m := newTestModel(nodes)

	m.SelectNode(nodes["1.2.1"], false)
	m.expansion.ExpandNode(nodes["1.2.1"])

	assert.Equal(t, []string{"1.2.1"}, nodeIDs(m.SelectedNodes()))
}

func TestSimpleExpansionService_ToggleAndEvents(t *testing.T) {
	nodes := buildSpecTree()
	svc := NewSimpleExpansionService()

	var events []ExpansionChangedEvent
	svc.OnExpansionChanged(func(e ExpansionChangedEvent) { events = append(events, e) })

	svc.ToggleNodeExpansion(nodes["1.2"])
	require.Len(t, events, 1)
	assert.False(t, events[0].Expanded)
	assert.True(t, isExpanded(nodes["1.2"]) == false)

	svc.ToggleNodeExpansion(nodes["1.2"])
	require.Len(t, events, 2)
	assert.True(t, events[1].Expanded)

	// non-collapsible nodes are not affected.
	svc.ExpandNode(nodes["1.1.1"])
	assert.Len(t, events, 2)
}
