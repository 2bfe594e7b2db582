package agent

import (
	"context"

	"voxaris/models"
	"voxaris/services/booking"
)

// ToolDispatcher is the single entry point collaborators use to drive the
// booking state machine: it routes a named tool invocation and its loosely
// typed input to one of the five booking operations.
type ToolDispatcher interface {
	Invoke(ctx context.Context, req models.ToolRequest) (any, error)
}

// DefaultToolDispatcher implements ToolDispatcher over the booking tool
// service.
type DefaultToolDispatcher struct {
	Booking booking.BookingToolService
}

func NewDefaultToolDispatcher(bookingSvc booking.BookingToolService) *DefaultToolDispatcher {
	return &DefaultToolDispatcher{Booking: bookingSvc}
}
