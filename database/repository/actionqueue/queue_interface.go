package queueRepo

import (
	"context"

	"voxaris/models"
)

// ActionQueue buffers UI-facing events per conversation until the browser
// polls for them. This is the only hand-off between the tool-invocation path
// (producer) and the UI-polling path (consumer): there is no push channel, so
// the browser polls at its own interval.
//
// Ordering: actions for one conversation drain in the exact order they were
// pushed. Actions across conversations have no relative ordering.
type ActionQueue interface {
	// Push appends an action to the conversation's bucket, creating the bucket
	// if absent. Pushing with an empty conversation id is a no-op.
	Push(ctx context.Context, conversationID, actionType string, data any) error
	// DrainAll returns the bucket's actions in FIFO order and deletes the
	// bucket, so an immediate second drain returns empty (at-most-once).
	DrainAll(ctx context.Context, conversationID string) ([]models.Action, error)
}
