package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voxaris/config"
	"voxaris/cron"
	queueRepo "voxaris/database/repository/actionqueue"
	sessionRepo "voxaris/database/repository/session"
	"voxaris/handlers"
	"voxaris/middleware"
	"voxaris/routes"
	"voxaris/services/agent"
	"voxaris/services/booking"
	"voxaris/services/notification"
	"voxaris/services/tasks"
	"voxaris/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// State container: session repository and action queue, backend per config.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var sessions sessionRepo.SessionRepository
	var queue queueRepo.ActionQueue
	switch config.AppConfig.SessionBackend {
	case "redis":
		sessions = sessionRepo.NewRedisSessionRepo(utils.GetSessionCacheClient(), sessionTTL)
		queue = queueRepo.NewRedisActionQueue(utils.GetQueueCacheClient(), sessionTTL)
		utils.StartHealthMonitor([]*redis.Client{
			utils.GetSessionCacheClient(),
			utils.GetQueueCacheClient(),
		})
	default:
		sessions = sessionRepo.NewMemorySessionRepo()
		queue = queueRepo.NewMemoryActionQueue()
	}

	bookingService := &booking.DefaultBookingToolService{
		Sessions:   sessions,
		Queue:      queue,
		Catalog:    booking.NewStaticCatalog(),
		Notifier:   notification.NewDefaultDeliveryNotifier(),
		PURLBase:   config.AppConfig.PURLBaseURL,
		SessionTTL: sessionTTL,
	}

	if config.AppConfig.ReaperEnabled {
		expiryClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReaperDB,
		})
		bookingService.Reaper = tasks.NewAsynqExpiryScheduler(expiryClient)
		cron.InitSessionReaper(sessions)
	}

	dispatcher := agent.NewDefaultToolDispatcher(bookingService)

	agentHandler := handlers.NewAgentHandler(dispatcher, queue)
	bookingHandler := handlers.NewBookingHandler(dispatcher)
	conversationHandler := handlers.NewConversationHandler(
		agent.NewTavusClient(
			config.AppConfig.TavusAPIKey,
			config.AppConfig.TavusPersonaID,
			config.AppConfig.TavusCallbackURL,
		),
		agent.NewRetellClient(config.AppConfig.RetellAPIKey),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ExecuteToolHandler: agentHandler.ExecuteToolHandler,
		PollActionsHandler: agentHandler.PollActionsHandler,

		InvokeToolHandler: bookingHandler.InvokeToolHandler,

		CreateTavusSessionHandler:       conversationHandler.CreateTavusSessionHandler,
		CreateRetellInboundCallHandler:  conversationHandler.CreateRetellInboundCallHandler,
		CreateRetellOutboundCallHandler: conversationHandler.CreateRetellOutboundCallHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
