package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationHistory_PushRetreatAdvance(t *testing.T) {
	nodes := buildSpecTree()
	h := NewNavigationHistory()

	h.Push(nodes["1"])

	back, ok := h.Retreat(nodes["1.2"])
	require.True(t, ok)
	assert.Equal(t, "1", back.ID())
	assert.True(t, h.Next())

	fwd, ok := h.Advance(nodes["1"])
	require.True(t, ok)
	assert.Equal(t, "1.2", fwd.ID())
	assert.False(t, h.Next())
}

func TestNavigationHistory_PushClearsForward(t *testing.T) {
	nodes := buildSpecTree()
	h := NewNavigationHistory()

	h.Push(nodes["1"])
	h.Retreat(nodes["1.2"])
	require.True(t, h.Next())

	h.Push(nodes["1.3"])
	assert.False(t, h.Next())
}

func TestNavigationHistory_EmptyIsNoOp(t *testing.T) {
	h := NewNavigationHistory()
	_, ok := h.Advance(nil)
	assert.False(t, ok)
	_, ok = h.Retreat(nil)
	assert.False(t, ok)
}
