package components

import (
	"context"
	"log/slog"
	"time"

	"coworking-reservations/internal/infra/readstore"
	"coworking-reservations/internal/infra/repository"
	"coworking-reservations/internal/infra/uow"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const idempotencySweepInterval = time.Hour

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewIdempotencyRepository,
	),
	fx.Invoke(startIdempotencySweeper),
)

func NewDBTX(pool *pgxpool.Pool) shared.DBTX {
	return pool
}

// startIdempotencySweeper removes expired idempotency keys in the background.
func startIdempotencySweeper(lc fx.Lifecycle, repo *repository.IdempotencyRepository, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencySweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := repo.DeleteExpired(ctx)
						if err != nil {
							logger.Warn("idempotency sweep failed", "error", err)
							continue
						}
						if n > 0 {
							logger.Info("expired idempotency keys removed", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
