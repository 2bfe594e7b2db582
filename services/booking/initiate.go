package booking

import (
	"context"
	"fmt"
	"time"

	"voxaris/models"
	"voxaris/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateBooking creates a new booking session in state "initiated".
// Identity is session-scoped, not member-scoped, so duplicate member names are
// never a conflict.
func (svc *DefaultBookingToolService) InitiateBooking(ctx context.Context, conversationID string, in models.InitiateBookingInput) (*models.InitiateBookingResult, error) {
	if in.MemberName == "" || in.TravelType == "" {
		return nil, NewValidationError("memberName and travelType are required")
	}

	travelers := in.Travelers
	if travelers <= 0 {
		travelers = 2
	}

	session := &models.BookingSession{
		ID:              uuid.New().String(),
		ConversationID:  conversationID,
		MemberName:      in.MemberName,
		MemberID:        in.MemberID,
		TravelType:      in.TravelType,
		Destination:     in.Destination,
		DepartureWindow: in.DepartureWindow,
		Travelers:       travelers,
		BudgetRange:     in.BudgetRange,
		SpecialRequests: in.SpecialRequests,
		Status:          models.StatusInitiated,
		CreatedAt:       time.Now(),
	}
	if err := svc.Sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create booking session: %w", err)
	}

	if svc.Reaper != nil && svc.SessionTTL > 0 {
		if err := svc.Reaper.ScheduleExpiry(session.ID, session.CreatedAt.Add(svc.SessionTTL)); err != nil {
			utils.GetLogger().Warn("failed to schedule session expiry",
				zap.String("sessionId", session.ID), zap.Error(err))
		}
	}

	if err := svc.Queue.Push(ctx, conversationID, models.ActionBookingStarted, map[string]any{
		"sessionId":   session.ID,
		"memberName":  session.MemberName,
		"travelType":  session.TravelType,
		"destination": session.Destination,
		"travelers":   session.Travelers,
	}); err != nil {
		utils.GetLogger().Warn("failed to queue booking_started action",
			zap.String("conversationId", conversationID), zap.Error(err))
	}

	toClause := ""
	if in.Destination != "" {
		toClause = " to " + in.Destination
	}
	return &models.InitiateBookingResult{
		Success:   true,
		SessionID: session.ID,
		Message: fmt.Sprintf("Booking session created for %s. Searching for %s options%s for %d travelers.",
			session.MemberName, session.TravelType, toClause, session.Travelers),
		Instruction: fmt.Sprintf("Booking session started. Session ID: %s. Now call search_inventory with this sessionId to find available packages.",
			session.ID),
	}, nil
}
