package sessionRepo

import (
	"context"
	"sync"

	"voxaris/models"
)

// MemorySessionRepo implements SessionRepository with a process-scoped map.
// State lives only as long as the process; there is no capacity bound or TTL,
// so growth is unbounded for the life of the process. The Redis-backed repo is
// the alternative when expiry matters.
type MemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*models.BookingSession
}

// NewMemorySessionRepo creates a fresh in-memory session repository.
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string]*models.BookingSession)}
}

func (r *MemorySessionRepo) Create(ctx context.Context, session *models.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *session
	r.sessions[session.ID] = &stored
	return nil
}

func (r *MemorySessionRepo) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *session
	return &copied, nil
}

// Update holds the write lock across the mutation so concurrent read-modify-write
// cycles for the same key cannot interleave.
func (r *MemorySessionRepo) Update(ctx context.Context, id string, mutate func(*models.BookingSession)) (*models.BookingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	mutate(session)
	copied := *session
	return &copied, nil
}

func (r *MemorySessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
