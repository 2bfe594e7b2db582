package models

import "encoding/json"

// Tool names the agent runtime may invoke.
const (
	ToolInitiateBooking = "initiate_booking"
	ToolSearchInventory = "search_inventory"
	ToolSelectPackage   = "select_package"
	ToolGeneratePURL    = "generate_purl"
	ToolBookingStatus   = "booking_status"
)

// ToolRequest is a single tool invocation from the agent runtime. Input stays
// raw until the dispatcher decodes it into the tool's typed input.
type ToolRequest struct {
	ConversationID string          `json:"conversation_id,omitempty"`
	ToolCallID     string          `json:"tool_call_id,omitempty"`
	ToolName       string          `json:"tool_name"`
	ToolInput      json.RawMessage `json:"tool_input"`
}

// ToolResponse wraps a tool result in the shape the agent runtime expects.
type ToolResponse struct {
	ToolCallID string `json:"tool_call_id"`
	Result     any    `json:"result"`
}

// ToolFailure is returned when a tool invocation cannot produce a normal
// result. Fallback carries a line suitable for the agent to speak aloud.
type ToolFailure struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Fallback string `json:"fallback,omitempty"`
}

// InitiateBookingInput starts a new booking session.
type InitiateBookingInput struct {
	MemberName      string `json:"memberName"`
	MemberID        string `json:"memberId,omitempty"`
	TravelType      string `json:"travelType"`
	Destination     string `json:"destination,omitempty"`
	DepartureWindow string `json:"departureWindow,omitempty"`
	Travelers       int    `json:"travelers,omitempty"`
	BudgetRange     string `json:"budgetRange,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type InitiateBookingResult struct {
	Success     bool   `json:"success"`
	SessionID   string `json:"sessionId"`
	Message     string `json:"message"`
	Instruction string `json:"instruction,omitempty"`
}

type SearchInventoryInput struct {
	SessionID string        `json:"sessionId"`
	Filters   SearchFilters `json:"filters,omitempty"`
}

type SearchInventoryResult struct {
	Success     bool            `json:"success"`
	ResultCount int             `json:"resultCount"`
	Results     []PackageResult `json:"results"`
	Instruction string          `json:"instruction,omitempty"`
}

type SelectPackageInput struct {
	SessionID       string `json:"sessionId"`
	PackageID       string `json:"packageId"`
	MemberConfirmed bool   `json:"memberConfirmed"`
	PackageSummary  string `json:"packageSummary,omitempty"`
}

// SelectedPackage echoes the resolved catalog entry back to the agent. When
// the package id cannot be resolved only PackageID is populated.
type SelectedPackage struct {
	PackageID      string `json:"packageId,omitempty"`
	Name           string `json:"name,omitempty"`
	Destination    string `json:"destination,omitempty"`
	PricePerPerson string `json:"pricePerPerson,omitempty"`
	CabinClass     string `json:"cabinClass,omitempty"`
	Provider       string `json:"provider,omitempty"`
}

type SelectPackageResult struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	SelectedPackage *SelectedPackage `json:"selectedPackage,omitempty"`
	Instruction     string           `json:"instruction,omitempty"`
}

type GeneratePURLInput struct {
	SessionID      string `json:"sessionId"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	MemberPhone    string `json:"memberPhone,omitempty"`
	MemberEmail    string `json:"memberEmail,omitempty"`
}

type GeneratePURLResult struct {
	Success        bool   `json:"success"`
	PURL           string `json:"purl"`
	DeliveryMethod string `json:"deliveryMethod"`
	Message        string `json:"message"`
	ExpiresAt      string `json:"expiresAt"`
	Instruction    string `json:"instruction,omitempty"`
}

type BookingStatusInput struct {
	SessionID string `json:"sessionId"`
}

type BookingStatusResult struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	SessionID   string `json:"sessionId"`
	Summary     string `json:"summary"`
	Instruction string `json:"instruction,omitempty"`
}
