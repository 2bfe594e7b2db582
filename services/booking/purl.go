package booking

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	sessionRepo "voxaris/database/repository/session"
	"voxaris/models"
	"voxaris/utils"

	"go.uber.org/zap"
)

// purlValidity is the data-level validity window encoded into every link.
// Nothing actively expires a stale link; an external reaper owns that.
const purlValidity = 7200 * time.Second

// purlClaims is the payload encoded into a personalized booking link.
type purlClaims struct {
	SessionID   string `json:"sid"`
	MemberName  string `json:"mn"`
	MemberID    string `json:"mid,omitempty"`
	PackageID   string `json:"pkg"`
	TravelType  string `json:"tt"`
	Destination string `json:"dst,omitempty"`
	Travelers   int    `json:"pax"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// GeneratePURL builds the personalized booking link for the selected package,
// composes the delivery confirmation, and moves the session to
// "purl_generated". Requires a prior select_package.
func (svc *DefaultBookingToolService) GeneratePURL(ctx context.Context, conversationID string, in models.GeneratePURLInput) (*models.GeneratePURLResult, error) {
	if in.SessionID == "" {
		return nil, NewValidationError("sessionId is required")
	}

	session, err := svc.Sessions.Get(ctx, in.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNotFound) {
			return nil, NewNotFoundError(fmt.Sprintf("booking session %s not found", in.SessionID))
		}
		return nil, fmt.Errorf("load booking session: %w", err)
	}
	if session.SelectedPackageID == "" {
		return nil, NewPreconditionError("no package selected; call select_package first")
	}

	now := time.Now()
	expiresAt := now.Add(purlValidity)
	purl, err := svc.buildPURL(session, now, expiresAt)
	if err != nil {
		return nil, err
	}

	method := in.DeliveryMethod
	if method == "" {
		method = "display"
	}
	effectiveMethod, deliveryMessage := svc.Notifier.Compose(method, in.MemberPhone, in.MemberEmail)

	if _, err := svc.Sessions.Update(ctx, in.SessionID, func(s *models.BookingSession) {
		s.Status = models.StatusPURLGenerated
	}); err != nil {
		return nil, fmt.Errorf("update booking session: %w", err)
	}

	data := map[string]any{
		"purl":           purl,
		"deliveryMethod": effectiveMethod,
		"message":        deliveryMessage,
		"expiresAt":      expiresAt.Format(time.RFC3339),
		"memberName":     session.MemberName,
	}
	if pkg := svc.Catalog.FindByID(session.SelectedPackageID); pkg != nil {
		data["package"] = map[string]any{
			"name":           pkg.Name,
			"destination":    pkg.Destination,
			"dates":          fmt.Sprintf("%s to %s", pkg.DepartureDate, pkg.ReturnDate),
			"pricePerPerson": formatUSD(pkg.PricePerPerson),
			"totalPrice":     formatUSD(pkg.TotalPrice),
			"cabinClass":     pkg.CabinClass,
			"provider":       pkg.Provider,
			"highlights":     pkg.Highlights,
		}
	}
	if err := svc.Queue.Push(ctx, conversationID, models.ActionPURLReady, data); err != nil {
		utils.GetLogger().Warn("failed to queue purl_ready action",
			zap.String("conversationId", conversationID), zap.Error(err))
	}

	return &models.GeneratePURLResult{
		Success:        true,
		PURL:           purl,
		DeliveryMethod: effectiveMethod,
		Message:        deliveryMessage,
		ExpiresAt:      expiresAt.Format(time.RFC3339),
		Instruction:    "The booking link has been displayed on the member's screen. Let them know they can click it to complete their booking. The link is personalized and pre-fills their trip details. Wish them an amazing trip!",
	}, nil
}

// buildPURL encodes the claims payload plus a placeholder signature. The
// signature is NOT cryptographically meaningful and must never be treated as
// an authentication token; real signing is an extension point, not part of
// this service's contract.
func (svc *DefaultBookingToolService) buildPURL(session *models.BookingSession, issuedAt, expiresAt time.Time) (string, error) {
	claims := purlClaims{
		SessionID:   session.ID,
		MemberName:  session.MemberName,
		MemberID:    session.MemberID,
		PackageID:   session.SelectedPackageID,
		TravelType:  session.TravelType,
		Destination: session.Destination,
		Travelers:   session.Travelers,
		IssuedAt:    issuedAt.Unix(),
		ExpiresAt:   expiresAt.Unix(),
	}
	b, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal purl claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(b)
	// Nanosecond nonce keeps repeated generations for one session distinct.
	sig := base64.RawURLEncoding.EncodeToString([]byte("demo_" + strconv.FormatInt(issuedAt.UnixNano(), 10)))
	return svc.PURLBase + encoded + "." + sig, nil
}
