package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"voxaris/models"
	"voxaris/services/booking"
	"voxaris/utils"

	"go.uber.org/zap"
)

// SpokenFallback is the canned line returned alongside unexpected faults,
// phrased so the agent can say it aloud mid-conversation.
const SpokenFallback = "I had a small technical issue. Let me try again."

// InternalError wraps an unexpected fault caught at the dispatch boundary.
// Raw faults never propagate to the caller.
type InternalError struct {
	Code    string
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Invoke routes one tool invocation to its operation. Typed errors from the
// operations pass through for the transport layer to map onto HTTP statuses;
// panics are recovered here and surfaced as an InternalError plus a failure
// result carrying the fallback line.
func (d *DefaultToolDispatcher) Invoke(ctx context.Context, req models.ToolRequest) (result any, err error) {
	logger := utils.GetLogger()
	logger.Info("tool call",
		zap.String("tool", req.ToolName),
		zap.String("toolCallId", req.ToolCallID),
		zap.String("conversationId", req.ConversationID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("tool call panicked",
				zap.String("tool", req.ToolName), zap.Any("panic", r))
			result = models.ToolFailure{
				Success:  false,
				Error:    fmt.Sprintf("%v", r),
				Fallback: SpokenFallback,
			}
			err = &InternalError{Code: "internalError", Message: fmt.Sprintf("%v", r)}
		}
	}()

	switch req.ToolName {
	case models.ToolInitiateBooking:
		var in models.InitiateBookingInput
		if err := decodeInput(req.ToolInput, &in); err != nil {
			return nil, err
		}
		return d.Booking.InitiateBooking(ctx, req.ConversationID, in)

	case models.ToolSearchInventory:
		var in models.SearchInventoryInput
		if err := decodeInput(req.ToolInput, &in); err != nil {
			return nil, err
		}
		return d.Booking.SearchInventory(ctx, req.ConversationID, in)

	case models.ToolSelectPackage:
		var in models.SelectPackageInput
		if err := decodeInput(req.ToolInput, &in); err != nil {
			return nil, err
		}
		return d.Booking.SelectPackage(ctx, req.ConversationID, in)

	case models.ToolGeneratePURL:
		var in models.GeneratePURLInput
		if err := decodeInput(req.ToolInput, &in); err != nil {
			return nil, err
		}
		return d.Booking.GeneratePURL(ctx, req.ConversationID, in)

	case models.ToolBookingStatus:
		var in models.BookingStatusInput
		if err := decodeInput(req.ToolInput, &in); err != nil {
			return nil, err
		}
		return d.Booking.BookingStatus(ctx, in)

	default:
		return models.ToolFailure{
			Success: false,
			Error:   fmt.Sprintf("Unknown tool: %s", req.ToolName),
		}, nil
	}
}

// decodeInput unmarshals the loose input payload into the tool's typed input.
// Absent payloads decode to the zero input so each operation applies its own
// required-field checks.
func decodeInput(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return booking.NewValidationError(fmt.Sprintf("invalid tool input: %v", err))
	}
	return nil
}
