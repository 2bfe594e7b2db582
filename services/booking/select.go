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

// SelectPackage locks a package onto the session once the member has
// explicitly confirmed. Without confirmation it returns a soft non-success
// result and mutates nothing. A stale or unknown package id still succeeds
// carrying only the raw identifier.
func (svc *DefaultBookingToolService) SelectPackage(ctx context.Context, conversationID string, in models.SelectPackageInput) (*models.SelectPackageResult, error) {
	if in.SessionID == "" || in.PackageID == "" {
		return nil, NewValidationError("sessionId and packageId are required")
	}

	if !in.MemberConfirmed {
		return &models.SelectPackageResult{
			Success:     false,
			Message:     "Member must verbally confirm their selection. Repeat the package details and ask for a clear yes before calling this tool.",
			Instruction: "Do NOT proceed until the member explicitly says yes.",
		}, nil
	}

	pkg := svc.Catalog.FindByID(in.PackageID)

	summary := in.PackageSummary
	if summary == "" {
		if pkg != nil {
			summary = pkg.Name
		} else {
			summary = in.PackageID
		}
	}

	if _, err := svc.Sessions.Update(ctx, in.SessionID, func(s *models.BookingSession) {
		s.Status = models.StatusPackageSelected
		s.SelectedPackageID = in.PackageID
		s.SelectedPackageSummary = summary
	}); err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("booking session %s not found", in.SessionID))
		}
		return nil, fmt.Errorf("update booking session: %w", err)
	}

	selected := &models.SelectedPackage{PackageID: in.PackageID}
	if pkg != nil {
		selected = &models.SelectedPackage{
			PackageID:      pkg.PackageID,
			Name:           pkg.Name,
			Destination:    pkg.Destination,
			PricePerPerson: formatUSD(pkg.PricePerPerson),
			CabinClass:     pkg.CabinClass,
			Provider:       pkg.Provider,
		}
	}

	if err := svc.Queue.Push(ctx, conversationID, models.ActionPackageSelected, map[string]any{
		"packageId":      in.PackageID,
		"name":           summary,
		"destination":    selected.Destination,
		"pricePerPerson": selected.PricePerPerson,
		"cabinClass":     selected.CabinClass,
		"provider":       selected.Provider,
	}); err != nil {
		utils.GetLogger().Warn("failed to queue package_selected action",
			zap.String("conversationId", conversationID), zap.Error(err))
	}

	return &models.SelectPackageResult{
		Success:         true,
		Message:         fmt.Sprintf("Package locked in: %s. Ready to generate a personalized booking link.", summary),
		SelectedPackage: selected,
		Instruction:     "Package selected. Ask the member how they would like to receive their booking link: text message, email, or displayed on screen.",
	}, nil
}
