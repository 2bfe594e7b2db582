package booking

import (
	"testing"

	"voxaris/models"

	"github.com/stretchr/testify/assert"
)

func TestStaticCatalog_Query(t *testing.T) {
	catalog := NewStaticCatalog()

	// No filters returns everything.
	all := catalog.Query(models.SearchFilters{})
	assert.Len(t, all, 3)

	// Destination matches case-insensitively against destination and name.
	caribbean := catalog.Query(models.SearchFilters{Destination: "Caribbean"})
	assert.Len(t, caribbean, 2)

	byName := catalog.Query(models.SearchFilters{Destination: "inside passage"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "pkg_cruise_alaska_001", byName[0].PackageID)

	// Filters are conjunctive.
	narrow := catalog.Query(models.SearchFilters{
		Destination: "caribbean",
		MaxPrice:    1500,
	})
	assert.Len(t, narrow, 1)
	assert.Equal(t, "pkg_cruise_carib_001", narrow[0].PackageID)

	balcony := catalog.Query(models.SearchFilters{CabinClass: "balcony"})
	assert.Len(t, balcony, 2)

	// "any" cabin class is a no-op filter.
	anyCabin := catalog.Query(models.SearchFilters{CabinClass: "any"})
	assert.Len(t, anyCabin, 3)

	// Nothing matching falls back to the full catalog.
	fallback := catalog.Query(models.SearchFilters{Destination: "antarctica"})
	assert.Len(t, fallback, 3)
}

func TestStaticCatalog_FindByID(t *testing.T) {
	catalog := NewStaticCatalog()

	pkg := catalog.FindByID("pkg_cruise_carib_002")
	assert.NotNil(t, pkg)
	assert.Equal(t, "10-Night Eastern Caribbean Cruise", pkg.Name)

	assert.Nil(t, catalog.FindByID("pkg_missing"))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$999", formatUSD(999))
	assert.Equal(t, "$1,299", formatUSD(1299))
	assert.Equal(t, "$2,598", formatUSD(2598))
	assert.Equal(t, "$1,000,000", formatUSD(1000000))
}
