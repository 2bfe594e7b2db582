package sessionRepo

import (
	"context"
	"testing"

	"voxaris/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepo_CreateAndGet(t *testing.T) {
	repo := NewMemorySessionRepo()
	ctx := context.Background()

	session := &models.BookingSession{
		ID:         "sess1",
		MemberName: "Ana",
		TravelType: "cruise",
		Status:     models.StatusInitiated,
	}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.MemberName)

	// Returned sessions are copies; mutating one must not leak into the store.
	got.MemberName = "mutated"
	again, err := repo.Get(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", again.MemberName)
}

func TestMemorySessionRepo_GetMissing(t *testing.T) {
	repo := NewMemorySessionRepo()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionRepo_Update(t *testing.T) {
	repo := NewMemorySessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.BookingSession{ID: "sess1", Status: models.StatusInitiated}))

	updated, err := repo.Update(ctx, "sess1", func(s *models.BookingSession) {
		s.Status = models.StatusPackageSelected
		s.SelectedPackageID = "pkg_cruise_carib_001"
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPackageSelected, updated.Status)

	got, err := repo.Get(ctx, "sess1")
	require.NoError(t, err)
	assert.Equal(t, "pkg_cruise_carib_001", got.SelectedPackageID)

	_, err = repo.Update(ctx, "missing", func(s *models.BookingSession) {})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionRepo_Delete(t *testing.T) {
	repo := NewMemorySessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.BookingSession{ID: "sess1"}))
	require.NoError(t, repo.Delete(ctx, "sess1"))

	_, err := repo.Get(ctx, "sess1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent session is not an error.
	assert.NoError(t, repo.Delete(ctx, "sess1"))
}
