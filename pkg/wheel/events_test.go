package wheel_test

import (
	"testing"

	"github.com/renzk/shadingwheel/pkg/wheel"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherOrderAndRepaint(t *testing.T) {
	d := wheel.NewDispatcher()
	var calls []string

	d.Subscribe(func(wheel.Event) bool {
		calls = append(calls, "first")
		return false
	})
	d.Subscribe(func(wheel.Event) bool {
		calls = append(calls, "second")
		return true
	})

	assert.True(t, d.Dispatch(wheel.Event{}))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcherUnsubscribeIsIdempotent(t *testing.T) {
	d := wheel.NewDispatcher()
	count := 0

	unsubscribe := d.Subscribe(func(wheel.Event) bool {
		count++
		return true
	})
	keep := d.Subscribe(func(wheel.Event) bool { return false })

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Dispatch(wheel.Event{}))
	assert.Equal(t, 0, count)

	keep()
	assert.Equal(t, 0, d.Len())
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := wheel.NewDispatcher()
	secondCalled := false

	var unsubscribeSecond func()
	d.Subscribe(func(wheel.Event) bool {
		unsubscribeSecond()
		return false
	})
	unsubscribeSecond = d.Subscribe(func(wheel.Event) bool {
		secondCalled = true
		return true
	})

	assert.False(t, d.Dispatch(wheel.Event{}))
	assert.False(t, secondCalled)
}
