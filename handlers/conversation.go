package handlers

import (
	"net/http"

	"voxaris/config"
	"voxaris/services/agent"
	"voxaris/utils"

	"github.com/gin-gonic/gin"
)

// ConversationHandler creates agent conversations with the third-party
// providers. These are collaborator calls only; the booking state machine
// never depends on them.
type ConversationHandler struct {
	Tavus  *agent.TavusClient
	Retell *agent.RetellClient
}

func NewConversationHandler(tavus *agent.TavusClient, retell *agent.RetellClient) *ConversationHandler {
	return &ConversationHandler{Tavus: tavus, Retell: retell}
}

type tavusSessionRequest struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// CreateTavusSessionHandler starts a Tavus video conversation seeded with the
// visitor's name and reason.
func (h *ConversationHandler) CreateTavusSessionHandler(c *gin.Context) {
	var req tavusSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	data, err := h.Tavus.CreateConversation(c.Request.Context(), req.Name, req.Reason)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}

// CreateRetellInboundCallHandler registers an inbound voice web call with the
// demo member profile.
func (h *ConversationHandler) CreateRetellInboundCallHandler(c *gin.Context) {
	data, err := h.Retell.CreateWebCall(c.Request.Context(), config.AppConfig.RetellInboundAgentID, map[string]string{
		"member_name":       "Demo User",
		"member_id":         "MEM-DEMO-001",
		"member_tier":       "Gold",
		"certificates_held": "1 Free 7-Night Caribbean Cruise Certificate",
		"last_booking":      "None",
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create web call", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}

type retellOutboundRequest struct {
	Name string `json:"name"`
}

// CreateRetellOutboundCallHandler registers an outbound voice web call,
// personalizing the certificate pitch with the member's name.
func (h *ConversationHandler) CreateRetellOutboundCallHandler(c *gin.Context) {
	var req retellOutboundRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	memberName := req.Name
	if memberName == "" {
		memberName = "Demo User"
	}

	data, err := h.Retell.CreateWebCall(c.Request.Context(), config.AppConfig.RetellOutboundAgentID, map[string]string{
		"member_name":             memberName,
		"member_id":               "MEM-DEMO-001",
		"member_tier":             "Gold",
		"certificate_type":        "Free 7-Night Caribbean Cruise",
		"certificate_expiry":      "April 30th, 2026",
		"certificate_value":       "$2,400",
		"certificate_description": "7-night Caribbean cruise for two",
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create web call", err.Error())
		return
	}
	c.JSON(http.StatusOK, data)
}
