package models

import "time"

// Action types pushed to the browser-facing queue.
const (
	ActionBookingStarted  = "booking_started"
	ActionSearchResults   = "search_results"
	ActionPackageSelected = "package_selected"
	ActionPURLReady       = "purl_ready"
)

// Action is a discrete UI-facing event queued for asynchronous delivery to a
// polling browser client. Actions belong to the queue until drained; a drain
// removes them permanently (at-most-once delivery).
type Action struct {
	Type      string    `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}
