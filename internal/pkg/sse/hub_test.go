package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("u-1")
	defer cleanup()

	hub.Publish("u-1", Event{UserID: "u-1", Event: "notification", Data: "hello"})

	select {
	case ev := <-ch:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "hello", ev.Data)
	case <-time.After(time.Second):
		t.Fatal("expected event")
	}
}

func TestHub_PublishIgnoresOtherUsers(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("u-1")
	defer cleanup()

	hub.Publish("u-2", Event{UserID: "u-2", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("event leaked to another user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("u-1")
	require.Equal(t, 1, hub.SubscriberCount("u-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("u-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("u-1")
	defer cleanup()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			hub.Publish("u-1", Event{UserID: "u-1", Event: "notification"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full channel")
	}
}
