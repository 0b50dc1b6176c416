package bootstrap

import (
	"coworking-reservations/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.RateCardModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
