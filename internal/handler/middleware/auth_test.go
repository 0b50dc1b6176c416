//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"coworking-reservations/internal/handler/middleware"
	"coworking-reservations/internal/pkg/cookie"
	"coworking-reservations/internal/usecase/shared"
	"coworking-reservations/tests/common/httptest"
	usecasemock "coworking-reservations/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	s.router = gin.New()
	whoami := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": actor.UserID.String(), "role": string(actor.Role)})
	}
	s.router.GET("/me", m.RequireAuth(), whoami)
	s.router.GET("/staff", m.RequireAuth(), m.RequireRoleAtLeast(shared.RoleStaff), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	userID := uuid.New()

	s.Run("success: Bearerトークン", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(userID, shared.RoleClient, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "good-token")

		var got map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(userID.String(), got["userId"])
		s.Equal("client", got["role"])
	})

	s.Run("success: Cookieのトークン", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(userID, shared.RoleStaff, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/me", nil, "",
			map[string]string{"Cookie": cookie.AccessTokenCookieName + "=cookie-token"})

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: トークンなし", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, "UNAUTHENTICATED")
	})

	s.Run("error: 無効なトークン", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return(uuid.Nil, shared.Role(""), errors.New("token is expired"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "bad-token")

		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, "UNAUTHENTICATED")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	tests := []struct {
		name string
		role shared.Role
		want int
	}{
		{"success: staff", shared.RoleStaff, http.StatusOK},
		{"success: adminは上位ロール", shared.RoleAdmin, http.StatusOK},
		{"error: clientは権限不足", shared.RoleClient, http.StatusForbidden},
		{"error: 未知のロール", shared.Role("guest"), http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockValidator.EXPECT().ValidateToken("token").Return(uuid.New(), tt.role, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "token")

			s.Equal(tt.want, rec.Code)
		})
	}
}
