package queueRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voxaris/models"

	"github.com/go-redis/redis/v8"
)

const actionKeyPrefix = "booking:actions:"

// RedisActionQueue implements ActionQueue on a Redis list per conversation.
// DrainAll reads and deletes the list inside one MULTI/EXEC so concurrent
// pushes land either before the drain or in the next bucket, never lost
// mid-drain.
type RedisActionQueue struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisActionQueue creates an action queue backed by the given Redis
// client. Undrained buckets expire ttl after their last push so abandoned
// conversations do not accumulate.
func NewRedisActionQueue(client *redis.Client, ttl time.Duration) *RedisActionQueue {
	return &RedisActionQueue{client: client, ttl: ttl}
}

func (q *RedisActionQueue) Push(ctx context.Context, conversationID, actionType string, data any) error {
	if conversationID == "" {
		return nil
	}
	b, err := json.Marshal(models.Action{Type: actionType, Data: data, Timestamp: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal action %s: %w", actionType, err)
	}
	key := actionKeyPrefix + conversationID
	pipe := q.client.TxPipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, q.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (q *RedisActionQueue) DrainAll(ctx context.Context, conversationID string) ([]models.Action, error) {
	key := actionKeyPrefix + conversationID
	pipe := q.client.TxPipeline()
	entries := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	raw := entries.Val()
	if len(raw) == 0 {
		return nil, nil
	}
	actions := make([]models.Action, 0, len(raw))
	for _, item := range raw {
		var action models.Action
		if err := json.Unmarshal([]byte(item), &action); err != nil {
			return nil, fmt.Errorf("parse queued action: %w", err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
