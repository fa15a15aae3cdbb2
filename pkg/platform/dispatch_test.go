package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchWithoutRegistration(t *testing.T) {
	called := false
	assert.False(t, Dispatch(func() { called = true }))
	assert.False(t, called)
}

func TestDispatchQueuesThroughRegisteredFunc(t *testing.T) {
	var queue []func()
	previous := RegisterDispatch(func(cb func()) { queue = append(queue, cb) })
	t.Cleanup(func() { RegisterDispatch(previous) })
	assert.Nil(t, previous)

	called := 0
	require.True(t, Dispatch(func() { called++ }))
	assert.Equal(t, 0, called, "callback must not run inline")
	require.Len(t, queue, 1)
	queue[0]()
	assert.Equal(t, 1, called)

	assert.False(t, Dispatch(nil))
	assert.Len(t, queue, 1)
}

func TestRegisterDispatchReturnsPrevious(t *testing.T) {
	var outer, inner int
	first := func(cb func()) { outer++; cb() }
	second := func(cb func()) { inner++; cb() }

	RegisterDispatch(first)
	t.Cleanup(func() { RegisterDispatch(nil) })

	restore := RegisterDispatch(second)
	Dispatch(func() {})
	RegisterDispatch(restore)
	Dispatch(func() {})

	assert.Equal(t, 1, inner)
	assert.Equal(t, 1, outer)
}
