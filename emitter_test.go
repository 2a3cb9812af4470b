package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_DispatchesInSubscriptionOrder(t *testing.T) {
	e := NewEmitter[int]()
	var got []int
	e.On(func(v int) { got = append(got, v*10) })
	e.On(func(v int) { got = append(got, v*100) })

	e.Emit(1)
	assert.Equal(t, []int{10, 100}, got)
}

func TestEmitter_DisposeStopsDelivery(t *testing.T) {
	e := NewEmitter[string]()
	var got []string
	d := e.On(func(v string) { got = append(got, v) })

	e.Emit("a")
	d.Dispose()
	e.Emit("b")

	assert.Equal(t, []string{"a"}, got)
}

func TestEmitter_DisposeAll(t *testing.T) {
	e := NewEmitter[int]()
	var got []int
	e.On(func(v int) { got = append(got, v) })
	e.Dispose()

	e.Emit(1)
	assert.Empty(t, got)
}
