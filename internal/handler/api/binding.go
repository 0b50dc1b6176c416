package api

import (
	"net/http"

	reqdto "coworking-reservations/internal/handler/dto/request"
	"coworking-reservations/internal/handler/httperr"
	"coworking-reservations/internal/handler/middleware"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidRequest), reqdto.ValidationMessage(err), nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidRequest), reqdto.ValidationMessage(err), nil)
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidRequest), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor is set by RequireAuth; a miss means the route was wired without it.
func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return a, true
}
