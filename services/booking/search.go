package booking

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "voxaris/database/repository/session"
	"voxaris/models"
	"voxaris/utils"

	"go.uber.org/zap"
)

// SearchInventory filters the catalog and moves the session to
// "results_presented". An unknown session is a NotFoundError.
func (svc *DefaultBookingToolService) SearchInventory(ctx context.Context, conversationID string, in models.SearchInventoryInput) (*models.SearchInventoryResult, error) {
	if in.SessionID == "" {
		return nil, NewValidationError("sessionId is required")
	}

	if _, err := svc.Sessions.Update(ctx, in.SessionID, func(s *models.BookingSession) {
		s.Status = models.StatusResultsPresented
	}); err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("booking session %s not found", in.SessionID))
		}
		return nil, fmt.Errorf("update booking session: %w", err)
	}

	packages := svc.Catalog.Query(in.Filters)
	results := formatResults(packages)

	if err := svc.Queue.Push(ctx, conversationID, models.ActionSearchResults, map[string]any{
		"resultCount": len(results),
		"results":     results,
	}); err != nil {
		utils.GetLogger().Warn("failed to queue search_results action",
			zap.String("conversationId", conversationID), zap.Error(err))
	}

	return &models.SearchInventoryResult{
		Success:     true,
		ResultCount: len(results),
		Results:     results,
		Instruction: fmt.Sprintf("Found %d options. Present the top results conversationally: describe the destination, price, and a standout highlight for each. Ask which the member prefers.",
			len(results)),
	}, nil
}

func formatResults(packages []models.TravelPackage) []models.PackageResult {
	results := make([]models.PackageResult, 0, len(packages))
	for i, p := range packages {
		results = append(results, models.PackageResult{
			Option:         i + 1,
			PackageID:      p.PackageID,
			Name:           p.Name,
			Description:    p.Description,
			Destination:    p.Destination,
			Dates:          fmt.Sprintf("%s to %s", p.DepartureDate, p.ReturnDate),
			PricePerPerson: formatUSD(p.PricePerPerson),
			TotalPrice:     formatUSD(p.TotalPrice),
			CabinClass:     p.CabinClass,
			Highlights:     p.Highlights,
			AvailableSlots: p.AvailableSlots,
			Provider:       p.Provider,
		})
	}
	return results
}

// formatUSD renders a dollar amount with thousands separators, e.g. $1,299.
func formatUSD(amount int) string {
	s := fmt.Sprintf("%d", amount)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "$" + s
}
