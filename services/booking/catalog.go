package booking

import (
	"strings"

	"voxaris/models"
)

// Catalog is the read-only inventory of bookable travel packages.
type Catalog interface {
	// Query applies the filters conjunctively. When nothing matches it falls
	// back to the full catalog instead of returning an empty list.
	Query(filters models.SearchFilters) []models.TravelPackage
	// FindByID resolves a package id, or nil when unknown.
	FindByID(packageID string) *models.TravelPackage
}

// travelPackages is the static demo inventory. Loaded once, never mutated.
var travelPackages = []models.TravelPackage{
	{
		PackageID:      "pkg_cruise_carib_001",
		Name:           "7-Night Western Caribbean Cruise",
		Description:    "Depart from Miami with stops in Cozumel, Grand Cayman, and Jamaica. All meals included.",
		TravelType:     "cruise",
		Destination:    "Western Caribbean",
		DepartureDate:  "2026-04-15",
		ReturnDate:     "2026-04-22",
		PricePerPerson: 1299,
		TotalPrice:     2598,
		Currency:       "USD",
		CabinClass:     "ocean_view",
		Highlights:     []string{"Ocean view cabin", "All meals included", "2 shore excursions", "Complimentary spa credit"},
		AvailableSlots: 12,
		Provider:       "Royal Caribbean",
	},
	{
		PackageID:      "pkg_cruise_carib_002",
		Name:           "10-Night Eastern Caribbean Cruise",
		Description:    "Roundtrip from Fort Lauderdale visiting St. Thomas, St. Maarten, and the Bahamas.",
		TravelType:     "cruise",
		Destination:    "Eastern Caribbean",
		DepartureDate:  "2026-04-20",
		ReturnDate:     "2026-04-30",
		PricePerPerson: 1899,
		TotalPrice:     3798,
		Currency:       "USD",
		CabinClass:     "balcony",
		Highlights:     []string{"Private balcony cabin", "Beverage package included", "3 shore excursions", "Priority boarding"},
		AvailableSlots: 5,
		Provider:       "Celebrity Cruises",
	},
	{
		PackageID:      "pkg_cruise_alaska_001",
		Name:           "7-Night Alaska Inside Passage",
		Description:    "Sail from Seattle through Juneau, Skagway, and Ketchikan with glacier viewing.",
		TravelType:     "cruise",
		Destination:    "Alaska",
		DepartureDate:  "2026-06-10",
		ReturnDate:     "2026-06-17",
		PricePerPerson: 1599,
		TotalPrice:     3198,
		Currency:       "USD",
		CabinClass:     "balcony",
		Highlights:     []string{"Glacier viewing", "Balcony cabin", "Wildlife excursion", "All meals included"},
		AvailableSlots: 8,
		Provider:       "Holland America",
	},
}

// StaticCatalog serves the fixed in-memory inventory.
type StaticCatalog struct {
	packages []models.TravelPackage
}

// NewStaticCatalog returns the catalog over the built-in demo inventory.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{packages: travelPackages}
}

func (c *StaticCatalog) Query(filters models.SearchFilters) []models.TravelPackage {
	filtered := c.packages

	if filters.TravelType != "" {
		filtered = keep(filtered, func(p models.TravelPackage) bool {
			return p.TravelType == filters.TravelType
		})
	}
	if filters.Destination != "" {
		dst := strings.ToLower(filters.Destination)
		filtered = keep(filtered, func(p models.TravelPackage) bool {
			return strings.Contains(strings.ToLower(p.Destination), dst) ||
				strings.Contains(strings.ToLower(p.Name), dst)
		})
	}
	if filters.MaxPrice > 0 {
		filtered = keep(filtered, func(p models.TravelPackage) bool {
			return float64(p.PricePerPerson) <= filters.MaxPrice
		})
	}
	if filters.CabinClass != "" && filters.CabinClass != "any" {
		filtered = keep(filtered, func(p models.TravelPackage) bool {
			return p.CabinClass == filters.CabinClass
		})
	}

	if len(filtered) == 0 {
		filtered = c.packages
	}

	out := make([]models.TravelPackage, len(filtered))
	copy(out, filtered)
	return out
}

func (c *StaticCatalog) FindByID(packageID string) *models.TravelPackage {
	for i := range c.packages {
		if c.packages[i].PackageID == packageID {
			copied := c.packages[i]
			return &copied
		}
	}
	return nil
}

func keep(packages []models.TravelPackage, pred func(models.TravelPackage) bool) []models.TravelPackage {
	var out []models.TravelPackage
	for _, p := range packages {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
