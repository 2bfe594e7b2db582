package sessionRepo

import (
	"context"
	"errors"

	"voxaris/models"
)

// ErrNotFound is returned when no session exists under the given id.
var ErrNotFound = errors.New("session not found")

// SessionRepository defines methods for booking session state access.
// Implementations must apply Update mutations atomically per key: either the
// full mutation commits or none of it does.
type SessionRepository interface {
	// Create stores a new session record under its ID.
	Create(ctx context.Context, session *models.BookingSession) error
	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.BookingSession, error)
	// Update loads the session, applies mutate to it, and commits the result.
	Update(ctx context.Context, id string, mutate func(*models.BookingSession)) (*models.BookingSession, error)
	// Delete removes a session record by ID. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error
}
