//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/jwt"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider would.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret, cfg.Issuer)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role shared.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, string(role), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role shared.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, string(role), -time.Minute)
	require.NoError(t, err)
	return token
}
