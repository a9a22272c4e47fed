package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHub_SubscriberReceivesAllTablesByDefault(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(nil)
	defer h.Unsubscribe(sub)

	h.Publish("news", EventInsert)
	h.Publish("gallery", EventDelete)

	ev := <-sub.C
	require.Equal(t, Event{Table: "news", Event: EventInsert}, ev)
	ev = <-sub.C
	require.Equal(t, Event{Table: "gallery", Event: EventDelete}, ev)
}

func TestHub_TableFilter(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe([]string{"news"})
	defer h.Unsubscribe(sub)

	h.Publish("gallery", EventInsert)
	h.Publish("news", EventUpdate)

	ev := <-sub.C
	require.Equal(t, "news", ev.Table)
	require.Equal(t, EventUpdate, ev.Event)
	require.Empty(t, sub.C)
}

func TestHub_SlowSubscriberDropsEventsNotConnection(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(nil)
	defer h.Unsubscribe(sub)

	// Isi buffer sampai penuh, lalu lebihkan: publish tidak boleh memblokir
	for i := 0; i < cap(sub.C)+10; i++ {
		h.Publish("news", EventInsert)
	}
	require.Len(t, sub.C, cap(sub.C))
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(nil)
	h.Unsubscribe(sub)

	_, open := <-sub.C
	require.False(t, open)

	// Publish setelah unsubscribe tidak panik
	h.Publish("news", EventInsert)
}
