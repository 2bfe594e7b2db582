package booking

import (
	"context"
	"time"

	queueRepo "voxaris/database/repository/actionqueue"
	sessionRepo "voxaris/database/repository/session"
	"voxaris/models"
	"voxaris/services/notification"
)

// BookingToolService defines the five state-transition operations the agent
// runtime drives a booking session through. Callers are expected to invoke
// them in the order initiate → search → select → generate, but every
// operation checks its own preconditions rather than assuming order.
type BookingToolService interface {
	InitiateBooking(ctx context.Context, conversationID string, in models.InitiateBookingInput) (*models.InitiateBookingResult, error)
	SearchInventory(ctx context.Context, conversationID string, in models.SearchInventoryInput) (*models.SearchInventoryResult, error)
	SelectPackage(ctx context.Context, conversationID string, in models.SelectPackageInput) (*models.SelectPackageResult, error)
	GeneratePURL(ctx context.Context, conversationID string, in models.GeneratePURLInput) (*models.GeneratePURLResult, error)
	BookingStatus(ctx context.Context, in models.BookingStatusInput) (*models.BookingStatusResult, error)
}

// ExpiryScheduler schedules a one-shot expiry for a session. Wired from the
// cron reaper when enabled; a nil scheduler disables expiry entirely.
type ExpiryScheduler interface {
	ScheduleExpiry(sessionID string, at time.Time) error
}

// DefaultBookingToolService implements BookingToolService against an injected
// session repository, action queue, and catalog, so each test can run on a
// fresh state container.
type DefaultBookingToolService struct {
	Sessions   sessionRepo.SessionRepository
	Queue      queueRepo.ActionQueue
	Catalog    Catalog
	Notifier   notification.DeliveryNotifier
	Reaper     ExpiryScheduler
	PURLBase   string
	SessionTTL time.Duration
}
