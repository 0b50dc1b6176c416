package ratecardstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "ratecard:"

// CachedStore is a cache-aside decorator. Redis failures degrade to the
// underlying store; misses are never cached.
type CachedStore struct {
	next shared.RateCardStore
	rdb  redis.Cmdable
	ttl  time.Duration
}

func NewCachedStore(next shared.RateCardStore, rdb redis.Cmdable, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, rdb: rdb, ttl: ttl}
}

func (s *CachedStore) FindBySpaceType(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	key := cacheKeyPrefix + spaceType.String()

	if card, ok := s.lookup(ctx, key); ok {
		return card, nil
	}

	card, err := s.next.FindBySpaceType(ctx, spaceType)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(converter.RateCardToDocument(card))
	if err == nil {
		err = s.rdb.Set(ctx, key, payload, s.ttl).Err()
	}
	if err != nil {
		slog.Warn("rate card cache write failed", "key", key, "error", err.Error())
	}
	return card, nil
}

// Invalidate drops the cached card so the next lookup reads through.
func (s *CachedStore) Invalidate(ctx context.Context, spaceType ratecard.SpaceType) error {
	return s.rdb.Del(ctx, cacheKeyPrefix+spaceType.String()).Err()
}

func (s *CachedStore) lookup(ctx context.Context, key string) (*ratecard.RateCard, bool) {
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("rate card cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var doc converter.RateCardDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		slog.Warn("discarding undecodable cached rate card", "key", key, "error", err.Error())
		return nil, false
	}
	card, err := converter.RateCardToDomain(doc)
	if err != nil {
		slog.Warn("discarding invalid cached rate card", "key", key, "error", err.Error())
		return nil, false
	}
	return card, true
}
