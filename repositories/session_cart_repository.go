package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"loja-backend/config"
	"loja-backend/models"
)

const sessionCartKeyPrefix = "session_cart:"

// SessionCartRepository stores whole session carts as JSON in Redis, keyed
// by session id. When Redis is unavailable it degrades to an in-process
// map, which keeps a single instance working through a cache outage.
type SessionCartRepository struct {
	ttl time.Duration

	mu       sync.RWMutex
	fallback map[string]models.SessionCart
}

func NewSessionCartRepository() *SessionCartRepository {
	ttl, err := time.ParseDuration(config.AppConfig.SessionTTL)
	if err != nil {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionCartRepository{
		ttl:      ttl,
		fallback: make(map[string]models.SessionCart),
	}
}

// Get returns the stored cart for the session, or an empty cart when none
// exists yet.
func (r *SessionCartRepository) Get(ctx context.Context, sessionID string) (models.SessionCart, error) {
	if config.RedisClient == nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
		cart := make(models.SessionCart, len(r.fallback[sessionID]))
		copy(cart, r.fallback[sessionID])
		return cart, nil
	}

	raw, err := config.RedisClient.Get(ctx, sessionCartKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return models.SessionCart{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.SessionCart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Save rewrites the full cart for the session. There is no partial update;
// every mutation goes through read-modify-write of the whole sequence.
func (r *SessionCartRepository) Save(ctx context.Context, sessionID string, cart models.SessionCart) error {
	if config.RedisClient == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.fallback[sessionID] = cart
		return nil
	}

	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(ctx, sessionCartKeyPrefix+sessionID, raw, r.ttl).Err()
}

func (r *SessionCartRepository) Delete(ctx context.Context, sessionID string) error {
	if config.RedisClient == nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.fallback, sessionID)
		return nil
	}
	return config.RedisClient.Del(ctx, sessionCartKeyPrefix+sessionID).Err()
}
