package models

import "time"

// Session status values. The dispatcher only ever produces the first four;
// purl_clicked and booking_completed are set by outside collaborators but are
// legal values for the field.
const (
	StatusInitiated        = "initiated"
	StatusResultsPresented = "results_presented"
	StatusPackageSelected  = "package_selected"
	StatusPURLGenerated    = "purl_generated"
	StatusPURLClicked      = "purl_clicked"
	StatusBookingCompleted = "booking_completed"
	StatusExpired          = "expired"
	StatusNotFound         = "not_found"
)

// BookingSession holds the negotiated state of one in-progress booking
// conversation. Sessions are owned by the session repository; all mutation
// goes through the booking tool operations.
type BookingSession struct {
	ID                     string    `json:"id"`
	ConversationID         string    `json:"conversationId,omitempty"`
	MemberName             string    `json:"memberName"`
	MemberID               string    `json:"memberId,omitempty"`
	TravelType             string    `json:"travelType"`
	Destination            string    `json:"destination,omitempty"`
	DepartureWindow        string    `json:"departureWindow,omitempty"`
	Travelers              int       `json:"travelers"`
	BudgetRange            string    `json:"budgetRange,omitempty"`
	SpecialRequests        string    `json:"specialRequests,omitempty"`
	Status                 string    `json:"status"`
	SelectedPackageID      string    `json:"selectedPackageId,omitempty"`
	SelectedPackageSummary string    `json:"selectedPackageSummary,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}
