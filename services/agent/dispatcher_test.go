package agent

import (
	"context"
	"encoding/json"
	"testing"

	queueRepo "voxaris/database/repository/actionqueue"
	sessionRepo "voxaris/database/repository/session"
	"voxaris/models"
	"voxaris/services/booking"
	"voxaris/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher() *DefaultToolDispatcher {
	return NewDefaultToolDispatcher(&booking.DefaultBookingToolService{
		Sessions: sessionRepo.NewMemorySessionRepo(),
		Queue:    queueRepo.NewMemoryActionQueue(),
		Catalog:  booking.NewStaticCatalog(),
		Notifier: notification.NewDefaultDeliveryNotifier(),
		PURLBase: "https://book.voxaris.io/b/",
	})
}

func TestInvoke_RoutesToBookingService(t *testing.T) {
	d := newTestDispatcher()

	result, err := d.Invoke(context.Background(), models.ToolRequest{
		ConversationID: "conv1",
		ToolName:       models.ToolInitiateBooking,
		ToolInput:      json.RawMessage(`{"memberName":"Ana","travelType":"cruise"}`),
	})
	require.NoError(t, err)

	initiated, ok := result.(*models.InitiateBookingResult)
	require.True(t, ok)
	assert.True(t, initiated.Success)
	assert.NotEmpty(t, initiated.SessionID)
}

func TestInvoke_UnknownTool(t *testing.T) {
	d := newTestDispatcher()

	result, err := d.Invoke(context.Background(), models.ToolRequest{ToolName: "teleport"})
	require.NoError(t, err)

	failure, ok := result.(models.ToolFailure)
	require.True(t, ok)
	assert.False(t, failure.Success)
	assert.Contains(t, failure.Error, "teleport")
	assert.Empty(t, failure.Fallback)
}

func TestInvoke_MalformedInput(t *testing.T) {
	d := newTestDispatcher()

	_, err := d.Invoke(context.Background(), models.ToolRequest{
		ToolName:  models.ToolSearchInventory,
		ToolInput: json.RawMessage(`{"sessionId":`),
	})
	var validationErr *booking.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestInvoke_EmptyInputHitsRequiredFieldChecks(t *testing.T) {
	d := newTestDispatcher()

	_, err := d.Invoke(context.Background(), models.ToolRequest{ToolName: models.ToolInitiateBooking})
	var validationErr *booking.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

// panickingBookingService trips the dispatcher's recovery path.
type panickingBookingService struct {
	booking.BookingToolService
}

func (s *panickingBookingService) BookingStatus(ctx context.Context, in models.BookingStatusInput) (*models.BookingStatusResult, error) {
	panic("catalog corrupted")
}

func TestInvoke_RecoversPanics(t *testing.T) {
	d := NewDefaultToolDispatcher(&panickingBookingService{})

	result, err := d.Invoke(context.Background(), models.ToolRequest{
		ToolName:  models.ToolBookingStatus,
		ToolInput: json.RawMessage(`{"sessionId":"sess1"}`),
	})

	var internalErr *InternalError
	require.ErrorAs(t, err, &internalErr)
	assert.Contains(t, internalErr.Message, "catalog corrupted")

	failure, ok := result.(models.ToolFailure)
	require.True(t, ok)
	assert.False(t, failure.Success)
	assert.Equal(t, SpokenFallback, failure.Fallback)
}
