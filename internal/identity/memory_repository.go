package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]Identity
	byEmail map[string]int64
}

// NewMemoryRepository builds an in-memory user store for tests and local runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byID:    make(map[int64]Identity),
		byEmail: make(map[string]int64),
	}
}

func (r *memoryRepository) Create(_ context.Context, identity Identity) (Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[identity.Email]; exists {
		return Identity{}, ErrDuplicateEmail
	}
	r.nextID++
	now := time.Now().UTC()
	identity.ID = r.nextID
	identity.CreatedAt = now
	identity.ModifiedAt = now
	r.byID[identity.ID] = identity
	r.byEmail[identity.Email] = identity.ID
	return identity, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.byID[id]
	if !ok {
		return Identity{}, ErrNotFound
	}
	return identity, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return Identity{}, ErrNotFound
	}
	return r.byID[id], nil
}

// Delete removes a user. Only the memory store exposes it; tests use it to
// simulate accounts removed outside this service.
func (r *memoryRepository) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if identity, ok := r.byID[id]; ok {
		delete(r.byEmail, identity.Email)
		delete(r.byID, id)
	}
}
