package components

import (
	"context"
	"log/slog"

	"coworking-reservations/internal/infra/ratecardstore"
	"coworking-reservations/internal/infra/readstore"
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RateCardModule = fx.Module("ratecard",
	fx.Provide(
		NewRedisClient,
		NewRateCardStore,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := ratecardstore.NewRedisClient(cfg.Redis)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return client
}

// NewRateCardStore picks the configured catalogue source and puts the Redis
// cache in front of it when one is available.
func NewRateCardStore(lc fx.Lifecycle, cfg config.Config, db shared.DBTX, rdb *redis.Client, logger *slog.Logger) (shared.RateCardStore, error) {
	var store shared.RateCardStore
	switch cfg.RateCard.Source {
	case config.RateCardSourceFile:
		fs, err := ratecardstore.NewFileStore(cfg.RateCard.FilePath)
		if err != nil {
			return nil, err
		}
		store = fs
	case config.RateCardSourceFirestore:
		client, err := ratecardstore.NewFirestoreClient(context.Background(), cfg.Firestore)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		store = ratecardstore.NewFirestoreStore(client, cfg.Firestore.Collection)
	default:
		store = readstore.NewRateCardReadStore(db)
	}
	logger.Info("rate card source selected", "source", cfg.RateCard.Source, "cached", rdb != nil)

	if rdb == nil {
		return store, nil
	}
	return ratecardstore.NewCachedStore(store, rdb, cfg.Redis.TTL), nil
}
