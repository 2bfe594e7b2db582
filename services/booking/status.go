package booking

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "voxaris/database/repository/session"
	"voxaris/models"
)

// statusSummaries is the fixed status → spoken summary table.
var statusSummaries = map[string]string{
	models.StatusInitiated:        "Booking session is active. Ready to search for packages.",
	models.StatusResultsPresented: "Search results are available for review.",
	models.StatusPackageSelected:  "Package is selected. Ready to generate a booking link.",
	models.StatusPURLGenerated:    "Personalized booking link has been created and sent.",
	models.StatusPURLClicked:      "Member opened the booking link.",
	models.StatusBookingCompleted: "Booking confirmed.",
	models.StatusExpired:          "Session expired.",
}

// BookingStatus is a pure read. An unknown or missing session answers with a
// distinct not_found status instead of an error, so the agent can offer to
// start over.
func (svc *DefaultBookingToolService) BookingStatus(ctx context.Context, in models.BookingStatusInput) (*models.BookingStatusResult, error) {
	session, err := svc.Sessions.Get(ctx, in.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) || in.SessionID == "" {
			return &models.BookingStatusResult{
				Success:     true,
				Status:      models.StatusNotFound,
				SessionID:   in.SessionID,
				Summary:     "No active booking session found. Would you like to start a new booking?",
				Instruction: "Offer to start a new booking for the member.",
			}, nil
		}
		return nil, fmt.Errorf("load booking session: %w", err)
	}

	summary, ok := statusSummaries[session.Status]
	if !ok {
		summary = fmt.Sprintf("Current status: %s", session.Status)
	}
	return &models.BookingStatusResult{
		Success:     true,
		Status:      session.Status,
		SessionID:   session.ID,
		Summary:     summary,
		Instruction: "Relay the booking status to the member.",
	}, nil
}
