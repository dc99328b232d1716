package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Roy125512/SacrePadel/internal/domain"
	"github.com/Roy125512/SacrePadel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/redis"
)

const (
	courtKeyPrefix  = "sacrepadel:court:"
	activeCourtsKey = "sacrepadel:courts:active"
)

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value any, expiration time.Duration) error
}

// CourtCache - read-through кэш кортов, при ошибках redis читаем из базы.
type CourtCache struct {
	repo   ports.CourtRepo
	store  Store
	ttl    time.Duration
	logger logger.Logger
}

func NewCourtCache(repo ports.CourtRepo, store Store, ttl time.Duration, logger logger.Logger) *CourtCache {
	return &CourtCache{repo: repo, store: store, ttl: ttl, logger: logger}
}

func (c *CourtCache) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	key := courtKeyPrefix + id

	var court domain.Court
	if c.load(ctx, key, &court) {
		return &court, nil
	}

	found, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, found)
	return found, nil
}

func (c *CourtCache) ListActive(ctx context.Context) ([]*domain.Court, error) {
	var courts []*domain.Court
	if c.load(ctx, activeCourtsKey, &courts) {
		return courts, nil
	}

	courts, err := c.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	c.save(ctx, activeCourtsKey, courts)
	return courts, nil
}

func (c *CourtCache) load(ctx context.Context, key string, dst any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.NoMatches) {
			c.logger.Warn("court cache read failed", logger.String("key", key), logger.String("error", err.Error()))
		}
		return false
	}
	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		c.logger.Warn("court cache entry is corrupted", logger.String("key", key), logger.String("error", err.Error()))
		return false
	}
	return true
}

func (c *CourtCache) save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err = c.store.SetWithExpiration(ctx, key, string(b), c.ttl); err != nil {
		c.logger.Warn("court cache write failed", logger.String("key", key), logger.String("error", err.Error()))
	}
}
