package routes

import (
	"net/http"
	"time"

	"voxaris/handlers"
	"voxaris/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAgentRoutes registers the agent tool callback and the browser poll.
// POST drives the state machine; GET drains the action queue for the same
// conversation.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/execute", hb.ExecuteToolHandler)
		api.GET("/execute", hb.PollActionsHandler)
	}
}

// RegisterBookingRoutes registers the synchronous tool endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/booking", hb.InvokeToolHandler)
	}
}

// RegisterConversationRoutes registers conversation-creation endpoints.
func RegisterConversationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conversation")
	{
		api.POST("/tavus", hb.CreateTavusSessionHandler)
		api.POST("/retell/inbound", hb.CreateRetellInboundCallHandler)
		api.POST("/retell/outbound", hb.CreateRetellOutboundCallHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Voxaris",
			"backends": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAgentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterConversationRoutes(r, hb)
	RegisterHealthRoute(r)
}
