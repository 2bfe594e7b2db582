package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every handler the router needs, so route
// registration depends on one assembled value instead of individual services.
type HandlerBundle struct {
	// Agent tool callback + browser poll.
	ExecuteToolHandler gin.HandlerFunc
	PollActionsHandler gin.HandlerFunc

	// Synchronous tool endpoint.
	InvokeToolHandler gin.HandlerFunc

	// Conversation creation.
	CreateTavusSessionHandler       gin.HandlerFunc
	CreateRetellInboundCallHandler  gin.HandlerFunc
	CreateRetellOutboundCallHandler gin.HandlerFunc
}
