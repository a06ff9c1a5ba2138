// Package cache holds the startup warm snapshot of the cliente, inventario and
// direccion tables. The snapshot is populated once at boot and expires after a
// fixed window; no request handler consults it. It exists for parity with the
// system this API replaces and must not be wired into any read path, as that
// would change observable behavior.
package cache

import (
	"context"
	"sync"
	"time"
)

const (
	ClienteKey    = "Clientes"
	InventarioKey = "Inventarios"
	DireccionKey  = "Direcciones"

	DefaultTTL = 60 * time.Minute
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Snapshot is a process-wide, expiring key/value snapshot.
type Snapshot struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *Snapshot {
	return &Snapshot{ttl: ttl, entries: make(map[string]entry)}
}

func (s *Snapshot) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: time.Now().Add(s.ttl)}
}

func (s *Snapshot) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Lister matches the List method shared by the entity stores.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Load fills one snapshot key from a store unless it is already present.
func Load[T any](ctx context.Context, s *Snapshot, key string, store Lister[T]) error {
	if _, ok := s.Get(key); ok {
		return nil
	}
	rows, err := store.List(ctx)
	if err != nil {
		return err
	}
	s.Set(key, rows)
	return nil
}
