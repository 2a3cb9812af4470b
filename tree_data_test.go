package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTree_GetNodeAndValidate(t *testing.T) {
	nodes := buildSpecTree()
	dt := NewSimpleTree(nodes["1"])

	got, ok := dt.GetNode("1.2.1.1")
	require.True(t, ok)
	assert.Equal(t, Node(nodes["1.2.1.1"]), got)

	assert.Equal(t, Node(nodes["1.1"]), dt.ValidateNode(nodes["1.1"]))

	foreign := newTestNode("1.1", nil) // same ID, different instance
	assert.Nil(t, dt.ValidateNode(foreign))
}

func TestSimpleTree_SetRootEmitsChanged(t *testing.T) {
	nodes := buildSpecTree()
	dt := NewSimpleTree(nodes["1"])

	var got []ChangedEvent
	dt.OnChanged(func(e ChangedEvent) { got = append(got, e) })

	dt.SetRoot(nodes["1.2"])
	require.Len(t, got, 1)
	assert.Equal(t, "1.2", got[0].Root.ID())
	assert.Equal(t, Node(nodes["1.2"]), dt.Root())

	_, ok := dt.GetNode("1.1")
	assert.False(t, ok, "reindex after SetRoot drops nodes outside the new root's subtree")
}
