package catalog

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []Garment
}

// NewMemoryRepository constructs an in-memory catalog for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) List(_ context.Context, filter Filter) ([]Garment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Garment, 0, len(r.items))
	for _, g := range r.items {
		if filter.Color != "" && g.Color != filter.Color {
			continue
		}
		if filter.Size != "" && g.Size != filter.Size {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (r *memoryRepository) Create(_ context.Context, g Garment) (Garment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	now := time.Now().UTC()
	g.ID = r.nextID
	g.CreatedAt = now
	g.ModifiedAt = now
	r.items = append(r.items, g)
	return g, nil
}
