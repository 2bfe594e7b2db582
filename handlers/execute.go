package handlers

import (
	"errors"
	"net/http"

	queueRepo "voxaris/database/repository/actionqueue"
	"voxaris/models"
	"voxaris/services/agent"
	"voxaris/services/booking"
	"voxaris/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler serves the agent runtime's tool callback and the browser's
// action poll, the producer and consumer ends of the action queue.
type AgentHandler struct {
	Dispatcher agent.ToolDispatcher
	Queue      queueRepo.ActionQueue
}

func NewAgentHandler(dispatcher agent.ToolDispatcher, queue queueRepo.ActionQueue) *AgentHandler {
	return &AgentHandler{Dispatcher: dispatcher, Queue: queue}
}

// ExecuteToolHandler receives a tool call from the agent runtime and returns
// {tool_call_id, result}. Errors from the state machine map onto HTTP
// statuses but always carry a result body the agent can speak from.
func (h *AgentHandler) ExecuteToolHandler(c *gin.Context) {
	var req models.ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.ToolName == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing tool_name", "")
		return
	}

	toolCallID := req.ToolCallID
	if toolCallID == "" {
		toolCallID = "unknown"
	}

	result, err := h.Dispatcher.Invoke(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusForToolError(err), models.ToolResponse{
			ToolCallID: toolCallID,
			Result:     failureFor(err),
		})
		return
	}

	c.JSON(http.StatusOK, models.ToolResponse{ToolCallID: toolCallID, Result: result})
}

// PollActionsHandler drains queued UI actions for a conversation. A second
// immediate poll returns an empty list.
func (h *AgentHandler) PollActionsHandler(c *gin.Context) {
	conversationID := c.Query("conversation_id")
	if conversationID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing conversation_id query parameter", "")
		return
	}

	actions, err := h.Queue.DrainAll(c.Request.Context(), conversationID)
	if err != nil {
		utils.GetLogger().Error("failed to drain action queue",
			zap.String("conversationId", conversationID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to read actions", err.Error())
		return
	}
	if actions == nil {
		actions = []models.Action{}
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// statusForToolError maps the booking error taxonomy onto HTTP statuses.
func statusForToolError(err error) int {
	var validationErr *booking.ValidationError
	var notFoundErr *booking.NotFoundError
	var preconditionErr *booking.PreconditionError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &preconditionErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// failureFor builds the failure result for an error; unexpected faults get a
// fallback line the agent can speak aloud.
func failureFor(err error) models.ToolFailure {
	failure := models.ToolFailure{Success: false, Error: err.Error()}
	if statusForToolError(err) == http.StatusInternalServerError {
		failure.Fallback = agent.SpokenFallback
	}
	return failure
}
