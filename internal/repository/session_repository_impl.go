package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "catalog:session:"

type sessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewSessionRepository(redisClient *redis.Client, ttl time.Duration) domainRepo.SessionRepository {
	return &sessionRepository{redisClient: redisClient, ttl: ttl}
}

func (r *sessionRepository) Load(ctx context.Context, sessionID string) (*entity.CatalogScreen, error) {
	raw, err := r.redisClient.Get(ctx, RedisSessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var state entity.CatalogScreen
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &state, nil
}

// Save stores the state and refreshes the session TTL.
func (r *sessionRepository) Save(ctx context.Context, sessionID string, state *entity.CatalogScreen) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	if err := r.redisClient.Set(ctx, RedisSessionKeyPrefix+sessionID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.redisClient.Del(ctx, RedisSessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
