package bootstrap

import (
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Tokens are issued by the identity provider; this service only verifies them.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
}
