package eventbus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_OrderAndUnsubscribe(t *testing.T) {
	bus := New()
	var calls []string

	offFirst := bus.On("x", func(payload interface{}) {
		calls = append(calls, "first:"+payload.(string))
	})
	bus.On("x", func(payload interface{}) {
		calls = append(calls, "second:"+payload.(string))
	})
	bus.On("y", func(payload interface{}) {
		calls = append(calls, "other")
	})

	bus.Emit("x", "P")
	assert.Equal(t, []string{"first:P", "second:P"}, calls)

	offFirst()
	calls = nil
	bus.Emit("x", "Q")
	assert.Equal(t, []string{"second:Q"}, calls)
	assert.Equal(t, 1, bus.Subscribers("x"))

	// повторная отписка ничего не меняет
	offFirst()
	assert.Equal(t, 1, bus.Subscribers("x"))
}

func TestBus_SameHandlerTwice(t *testing.T) {
	bus := New()
	count := 0
	handler := func(interface{}) { count++ }

	off := bus.On("x", handler)
	bus.On("x", handler)
	off()

	bus.Emit("x", nil)
	assert.Equal(t, 1, count, "only the unsubscribed registration is removed")
}

func TestBus_EmitWithoutSubscribers(t *testing.T) {
	bus := New()
	assert.NotPanics(t, func() { bus.Emit("nobody", 1) })
}

func TestBus_SnapshotDuringEmit(t *testing.T) {
	bus := New()
	var calls []string

	var offSecond func()
	bus.On("x", func(interface{}) {
		calls = append(calls, "first")
		offSecond()
		bus.On("x", func(interface{}) { calls = append(calls, "late") })
	})
	offSecond = bus.On("x", func(interface{}) { calls = append(calls, "second") })

	bus.Emit("x", nil)
	assert.Equal(t, []string{"first", "second"}, calls)

	calls = nil
	bus.Emit("x", nil)
	assert.Equal(t, []string{"first", "late"}, calls)
}

func TestBus_PanicPropagates(t *testing.T) {
	bus := New()
	secondCalled := false
	bus.On("x", func(interface{}) { panic("listener failed") })
	bus.On("x", func(interface{}) { secondCalled = true })

	require.PanicsWithValue(t, "listener failed", func() { bus.Emit("x", nil) })
	assert.False(t, secondCalled)
}

func TestBus_Concurrent(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	received := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			off := bus.On("x", func(interface{}) {
				mu.Lock()
				received++
				mu.Unlock()
			})
			bus.Emit("x", nil)
			off()
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, bus.Subscribers("x"))
	assert.GreaterOrEqual(t, received, 50)
}
