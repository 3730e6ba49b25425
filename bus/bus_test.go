package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var order []int
	b.Subscribe("ev", func(any) { order = append(order, 1) })
	b.Subscribe("ev", func(any) { order = append(order, 2) })
	b.Subscribe("ev", func(any) { order = append(order, 3) })

	b.Publish("ev", nil)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPublishPayload(t *testing.T) {
	b := New()
	var got any
	b.Subscribe("profile:toggle-favorite", func(payload any) { got = payload })

	b.Publish("profile:toggle-favorite", "id-42")
	assert.Equal(t, "id-42", got)
}

func TestSubscribeOnce(t *testing.T) {
	b := New()
	calls := 0
	b.SubscribeOnce("ev", func(any) { calls++ })

	b.Publish("ev", nil)
	b.Publish("ev", nil)
	assert.Equal(t, 1, calls)
}

func TestOnceHandlerCanResubscribe(t *testing.T) {
	b := New()
	calls := 0
	var handler func(any)
	handler = func(any) {
		calls++
		if calls < 3 {
			b.SubscribeOnce("ev", handler)
		}
	}
	b.SubscribeOnce("ev", handler)

	b.Publish("ev", nil)
	b.Publish("ev", nil)
	b.Publish("ev", nil)
	b.Publish("ev", nil)
	assert.Equal(t, 3, calls)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	sub := b.Subscribe("ev", func(any) { calls++ })
	kept := 0
	b.Subscribe("ev", func(any) { kept++ })

	b.Unsubscribe(sub)
	b.Publish("ev", nil)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, kept)

	// Double unsubscribe is a no-op.
	b.Unsubscribe(sub)
	b.Publish("ev", nil)
	assert.Equal(t, 2, kept)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	require.NotPanics(t, func() { b.Publish("nobody", 7) })
}

func TestEventsAreIndependent(t *testing.T) {
	b := New()
	var a, c int
	b.Subscribe("a", func(any) { a++ })
	b.Subscribe("c", func(any) { c++ })

	b.Publish("a", nil)
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, c)
}
