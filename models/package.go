package models

// TravelPackage is a static catalog entry. Loaded once, never mutated.
type TravelPackage struct {
	PackageID      string   `json:"packageId"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	TravelType     string   `json:"travelType"`
	Destination    string   `json:"destination"`
	DepartureDate  string   `json:"departureDate"`
	ReturnDate     string   `json:"returnDate"`
	PricePerPerson int      `json:"pricePerPerson"`
	TotalPrice     int      `json:"totalPrice"`
	Currency       string   `json:"currency"`
	CabinClass     string   `json:"cabinClass"`
	Highlights     []string `json:"highlights"`
	AvailableSlots int      `json:"availableSlots"`
	Provider       string   `json:"provider"`
}

// SearchFilters narrows a catalog query. All filters are applied conjunctively.
type SearchFilters struct {
	TravelType  string  `json:"travelType,omitempty"`
	Destination string  `json:"destination,omitempty"`
	MaxPrice    float64 `json:"maxPrice,omitempty"`
	CabinClass  string  `json:"cabinClass,omitempty"`
}

// PackageResult is the presentation form of a catalog entry returned to the agent
// and pushed to the browser.
type PackageResult struct {
	Option         int      `json:"option"`
	PackageID      string   `json:"packageId"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Destination    string   `json:"destination"`
	Dates          string   `json:"dates"`
	PricePerPerson string   `json:"pricePerPerson"`
	TotalPrice     string   `json:"totalPrice"`
	CabinClass     string   `json:"cabinClass"`
	Highlights     []string `json:"highlights"`
	AvailableSlots int      `json:"availableSlots"`
	Provider       string   `json:"provider"`
}
