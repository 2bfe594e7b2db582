package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSessionExpire = "session:expire"

// SessionExpiryPayload carries the session to expire.
type SessionExpiryPayload struct {
	SessionID string `json:"sessionId"`
}

// NewSessionExpiryTask builds the one-shot expiry task for a session.
func NewSessionExpiryTask(sessionID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(SessionExpiryPayload{SessionID: sessionID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqExpiryScheduler enqueues expiry tasks on the reaper queue. It
// satisfies the booking service's ExpiryScheduler.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

func NewAsynqExpiryScheduler(client *asynq.Client) *AsynqExpiryScheduler {
	return &AsynqExpiryScheduler{client: client}
}

func (s *AsynqExpiryScheduler) ScheduleExpiry(sessionID string, at time.Time) error {
	task, opts, err := NewSessionExpiryTask(sessionID, at)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}
