package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"voxaris/models"
	"voxaris/services/agent"
	"voxaris/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the synchronous tool endpoint used by direct
// browser-initiated calls. Same state machine as the agent callback, but no
// conversation context, so no actions are queued.
type BookingHandler struct {
	Dispatcher agent.ToolDispatcher
}

func NewBookingHandler(dispatcher agent.ToolDispatcher) *BookingHandler {
	return &BookingHandler{Dispatcher: dispatcher}
}

type bookingToolRequest struct {
	Tool  string          `json:"tool"`
	Input json.RawMessage `json:"input"`
}

// InvokeToolHandler runs one tool invocation and returns {tool, result,
// duration_ms, timestamp}.
func (h *BookingHandler) InvokeToolHandler(c *gin.Context) {
	var req bookingToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Tool == "" || len(req.Input) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Missing tool or input", "")
		return
	}

	start := time.Now()
	result, err := h.Dispatcher.Invoke(c.Request.Context(), models.ToolRequest{
		ToolName:  req.Tool,
		ToolInput: req.Input,
	})
	if err != nil {
		c.JSON(statusForToolError(err), gin.H{"error": err.Error(), "tool": req.Tool})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tool":        req.Tool,
		"result":      result,
		"duration_ms": time.Since(start).Milliseconds(),
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
