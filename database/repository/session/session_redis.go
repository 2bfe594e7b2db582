package sessionRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voxaris/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "booking:session:"

// RedisSessionRepo implements SessionRepository on Redis with a TTL per
// session. Update is read-modify-write without a transaction: access for one
// session id is expected to be serialized by the caller (one agent drives one
// conversation at a time).
type RedisSessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepo creates a session repository backed by the given Redis
// client. Sessions expire ttl after their last write.
func NewRedisSessionRepo(client *redis.Client, ttl time.Duration) *RedisSessionRepo {
	return &RedisSessionRepo{client: client, ttl: ttl}
}

func (r *RedisSessionRepo) Create(ctx context.Context, session *models.BookingSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, b, r.ttl).Err()
}

func (r *RedisSessionRepo) Get(ctx context.Context, id string) (*models.BookingSession, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", id, err)
	}
	return &session, nil
}

func (r *RedisSessionRepo) Update(ctx context.Context, id string, mutate func(*models.BookingSession)) (*models.BookingSession, error) {
	session, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	mutate(session)
	b, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("marshal session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+id, b, r.ttl).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *RedisSessionRepo) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKeyPrefix+id).Err()
}
