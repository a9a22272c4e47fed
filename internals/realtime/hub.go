// Package realtime menggantikan kanal postgres_changes Supabase:
// setiap mutasi konten mem-publish {table, event} ke semua klien
// WebSocket yang subscribe tabel tersebut. Tidak ada payload delta -
// konsumen cukup refetch, jadi urutan event tidak penting.
package realtime

import (
	"sync"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
)

type Event struct {
	Table string `json:"table"`
	Event string `json:"event"`
}

type Subscriber struct {
	C      chan Event
	tables map[string]struct{} // kosong = semua tabel
}

func (s *Subscriber) wants(table string) bool {
	if len(s.tables) == 0 {
		return true
	}
	_, ok := s.tables[table]
	return ok
}

type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

// DefaultHub dipakai controller lewat Publish.
var DefaultHub = NewHub()

func (h *Hub) Subscribe(tables []string) *Subscriber {
	sub := &Subscriber{
		C:      make(chan Event, 16),
		tables: make(map[string]struct{}, len(tables)),
	}
	for _, t := range tables {
		if t != "" {
			sub.tables[t] = struct{}{}
		}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if _, ok := h.subs[sub]; ok {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.mu.Unlock()
}

// Publish mengirim event ke subscriber yang cocok. Pengiriman
// non-blocking: subscriber yang buffernya penuh kehilangan event,
// bukan menahan request mutasi.
func (h *Hub) Publish(table, event string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !sub.wants(table) {
			continue
		}
		select {
		case sub.C <- Event{Table: table, Event: event}:
		default:
		}
	}
}

// Publish lewat hub default.
func Publish(table, event string) {
	DefaultHub.Publish(table, event)
}
