package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"voxaris/config"
	sessionRepo "voxaris/database/repository/session"
	"voxaris/services/tasks"

	"github.com/hibiken/asynq"
)

// InitSessionReaper runs the async expiry worker in background. Sessions
// have no in-band eviction: the PURL's validity window is data-level only, so
// this worker is what actually retires stale sessions when enabled.
func InitSessionReaper(sessions sessionRepo.SessionRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReaperDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionExpire, handleSessionExpiry(sessions))

	// Start async worker with retry logic
	go func() {
		log.Println("[SessionReaper] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionReaper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SessionReaper] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSessionExpiry(sessions sessionRepo.SessionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.SessionExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SessionReaper] invalid payload: %v", err)
			return err
		}

		// Deleting frees the slot; a later booking_status answers not_found,
		// which the agent relays as an expired session.
		if err := sessions.Delete(ctx, p.SessionID); err != nil && !errors.Is(err, sessionRepo.ErrNotFound) {
			log.Printf("[SessionReaper] failed to expire session %s: %v", p.SessionID, err)
			return err
		}

		log.Printf("[SessionReaper] expired session %s", p.SessionID)
		return nil
	}
}
