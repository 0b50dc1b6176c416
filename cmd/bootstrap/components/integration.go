package components

import (
	"context"
	"log/slog"

	"coworking-reservations/internal/infra/notifier"
	"coworking-reservations/internal/infra/payment"
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/usecase/shared"

	"go.uber.org/fx"
)

// IntegrationModule provides the outbound collaborators: the deposit gateway
// and the lifecycle event notifier.
var IntegrationModule = fx.Module("integration",
	fx.Provide(
		NewDepositService,
		NewNotifier,
	),
)

func NewDepositService(cfg config.Config, logger *slog.Logger) shared.DepositService {
	if cfg.Deposit.GatewayURL == "" {
		logger.Warn("DEPOSIT_GATEWAY_URL not set, using the in-memory sandbox gateway")
		return payment.NewSandboxGateway()
	}
	return payment.NewHTTPGateway(cfg.Deposit)
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, lifecycle events are logged only")
		return notifier.NewLogNotifier(), nil
	}
	n, err := notifier.NewAMQPNotifier(cfg.AMQP)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return n.Close()
		},
	})
	return n, nil
}
