package sessions

import (
	"context"
	"sync"
)

// Repository provides session persistence operations
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// MemoryRepository implements Repository with a mutex-guarded in-process map.
// This is the default backend; session state lives and dies with the process.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.store[s.Token] = &cp
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, token string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.store[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete is idempotent; removing an absent token is not an error.
func (r *MemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.store, token)
	return nil
}
