package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/jwt"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, shared.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, shared.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role := shared.Role(claims.Role)
	if !role.IsValid() {
		return uuid.Nil, "", errs.Newf("unknown role %q in token", claims.Role)
	}

	return claims.UserID, role, nil
}
