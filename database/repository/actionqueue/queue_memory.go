package queueRepo

import (
	"context"
	"sync"
	"time"

	"voxaris/models"
)

// MemoryActionQueue implements ActionQueue with a process-scoped map of
// per-conversation slices. Buckets are created lazily on first push and
// removed entirely on drain, never left empty in the map.
type MemoryActionQueue struct {
	mu      sync.Mutex
	buckets map[string][]models.Action
}

// NewMemoryActionQueue creates a fresh in-memory action queue.
func NewMemoryActionQueue() *MemoryActionQueue {
	return &MemoryActionQueue{buckets: make(map[string][]models.Action)}
}

func (q *MemoryActionQueue) Push(ctx context.Context, conversationID, actionType string, data any) error {
	if conversationID == "" {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buckets[conversationID] = append(q.buckets[conversationID], models.Action{
		Type:      actionType,
		Data:      data,
		Timestamp: time.Now(),
	})
	return nil
}

func (q *MemoryActionQueue) DrainAll(ctx context.Context, conversationID string) ([]models.Action, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	actions := q.buckets[conversationID]
	delete(q.buckets, conversationID)
	return actions, nil
}
