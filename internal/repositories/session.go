package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionRedisRepository keeps sessions in Redis under session:<id> with a fixed TTL.
type SessionRedisRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionRedisRepository creates a session store whose entries expire after exp.
func NewSessionRedisRepository(client *redis.Client, exp time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{
		client: client,
		exp:    exp,
	}
}

// Create stores s under a new random id and returns the id.
func (r *SessionRedisRepository) Create(ctx context.Context, s models.Session) (string, error) {
	id := uuid.NewString()

	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}

	err = r.client.Set(ctx, sessionKeyPrefix+id, data, r.exp).Err()

	logger.Log.Infow(
		"key", sessionKeyPrefix+id,
		"user_id", s.UserID,
		"error", err,
	)

	if err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the session stored under id, or nil when it does not exist or has expired.
func (r *SessionRedisRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	val, err := r.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read session", "key", sessionKeyPrefix+id, "error", err)
		return nil, err
	}

	var s models.Session
	if err := json.Unmarshal(val, &s); err != nil {
		logger.Log.Errorw("corrupt session payload", "key", sessionKeyPrefix+id, "error", err)
		return nil, nil
	}
	return &s, nil
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	err := r.client.Del(ctx, sessionKeyPrefix+id).Err()

	logger.Log.Infow(
		"key", sessionKeyPrefix+id,
		"result", "deleted",
		"error", err,
	)

	return err
}
