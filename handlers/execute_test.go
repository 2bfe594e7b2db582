package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	queueRepo "voxaris/database/repository/actionqueue"
	sessionRepo "voxaris/database/repository/session"
	"voxaris/services/agent"
	"voxaris/services/booking"
	"voxaris/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() (*gin.Engine, *queueRepo.MemoryActionQueue) {
	gin.SetMode(gin.TestMode)

	queue := queueRepo.NewMemoryActionQueue()
	bookingSvc := &booking.DefaultBookingToolService{
		Sessions: sessionRepo.NewMemorySessionRepo(),
		Queue:    queue,
		Catalog:  booking.NewStaticCatalog(),
		Notifier: notification.NewDefaultDeliveryNotifier(),
		PURLBase: "https://book.voxaris.io/b/",
	}
	h := NewAgentHandler(agent.NewDefaultToolDispatcher(bookingSvc), queue)

	router := gin.New()
	router.POST("/api/execute", h.ExecuteToolHandler)
	router.GET("/api/execute", h.PollActionsHandler)
	return router, queue
}

func postExecute(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExecuteToolHandler_Success(t *testing.T) {
	router, _ := newTestRouter()

	w := postExecute(t, router, `{
		"conversation_id": "conv1",
		"tool_call_id": "call_1",
		"tool_name": "initiate_booking",
		"tool_input": {"memberName": "Ana", "travelType": "cruise"}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ToolCallID string         `json:"tool_call_id"`
		Result     map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "call_1", resp.ToolCallID)
	assert.Equal(t, true, resp.Result["success"])
	assert.NotEmpty(t, resp.Result["sessionId"])
}

func TestExecuteToolHandler_MissingToolName(t *testing.T) {
	router, _ := newTestRouter()

	w := postExecute(t, router, `{"tool_input": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteToolHandler_ValidationErrorMapsTo400(t *testing.T) {
	router, _ := newTestRouter()

	w := postExecute(t, router, `{
		"tool_call_id": "call_2",
		"tool_name": "initiate_booking",
		"tool_input": {"memberName": "Ana"}
	}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		ToolCallID string `json:"tool_call_id"`
		Result     struct {
			Success  bool   `json:"success"`
			Error    string `json:"error"`
			Fallback string `json:"fallback"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "call_2", resp.ToolCallID)
	assert.False(t, resp.Result.Success)
	assert.NotEmpty(t, resp.Result.Error)
	assert.Empty(t, resp.Result.Fallback)
}

func TestExecuteToolHandler_UnknownSessionMapsTo404(t *testing.T) {
	router, _ := newTestRouter()

	w := postExecute(t, router, `{
		"tool_name": "search_inventory",
		"tool_input": {"sessionId": "nope"}
	}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExecuteToolHandler_DefaultsToolCallID(t *testing.T) {
	router, _ := newTestRouter()

	w := postExecute(t, router, `{
		"tool_name": "booking_status",
		"tool_input": {"sessionId": "nope"}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ToolCallID string `json:"tool_call_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp.ToolCallID)
}

func TestPollActionsHandler(t *testing.T) {
	router, _ := newTestRouter()

	// Missing conversation_id is a client error.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/execute", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A tool call queues an action for the conversation.
	postExecute(t, router, `{
		"conversation_id": "conv1",
		"tool_name": "initiate_booking",
		"tool_input": {"memberName": "Ana", "travelType": "cruise"}
	}`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/execute?conversation_id=conv1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Actions []struct {
			Type string `json:"type"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "booking_started", resp.Actions[0].Type)

	// Draining empties the queue for the next poll.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/execute?conversation_id=conv1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Actions)
}
