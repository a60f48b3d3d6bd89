package persistent

import (
	"context"
	"sync"
	"time"

	"github.com/andreyxaxa/Image-Transformer/internal/entity"
)

type resultEntry struct {
	events    []*entity.Event
	expiresAt time.Time
}

// ResultMemoryRepo keeps results in process memory. Expired entries are swept on
// write at most once per ttl and are never returned by Results.
type ResultMemoryRepo struct {
	mu        sync.Mutex
	ttl       time.Duration
	items     map[string]*resultEntry
	lastSweep time.Time
}

func NewResultMemoryRepo(ttl time.Duration) *ResultMemoryRepo {
	if ttl <= 0 {
		ttl = _defaultResultTTL
	}

	return &ResultMemoryRepo{
		ttl:       ttl,
		items:     make(map[string]*resultEntry),
		lastSweep: time.Now(),
	}
}

func (r *ResultMemoryRepo) Append(_ context.Context, events ...*entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastSweep) >= r.ttl {
		for id, entry := range r.items {
			if now.After(entry.expiresAt) {
				delete(r.items, id)
			}
		}
		r.lastSweep = now
	}

	for _, e := range events {
		if e.RequestID == "" {
			continue
		}

		entry, ok := r.items[e.RequestID]
		if !ok || now.After(entry.expiresAt) {
			entry = &resultEntry{}
			r.items[e.RequestID] = entry
		}
		entry.events = append(entry.events, e)
		entry.expiresAt = now.Add(r.ttl)
	}

	return nil
}

func (r *ResultMemoryRepo) Results(_ context.Context, requestID string) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[requestID]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return append([]*entity.Event(nil), entry.events...), nil
}
