package httperr

import (
	"net/http"

	"coworking-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind      string `json:"kind"`
		Message   string `json:"message"`
		Retryable bool   `json:"retryable"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var kindStatus = map[errs.Kind]int{
	errs.KindRateCardNotFound:     http.StatusNotFound,
	errs.KindReservationNotFound:  http.StatusNotFound,
	errs.KindRateCardInactive:     http.StatusUnprocessableEntity,
	errs.KindRateNotConfigured:    http.StatusUnprocessableEntity,
	errs.KindCapacityOutOfRange:   http.StatusUnprocessableEntity,
	errs.KindInvalidTimeRange:     http.StatusUnprocessableEntity,
	errs.KindInvalidTransition:    http.StatusConflict,
	errs.KindStaleState:           http.StatusConflict,
	errs.KindIdempotencyConflict:  http.StatusConflict,
	errs.KindDepositHoldFailed:    http.StatusBadGateway,
	errs.KindDepositCaptureFailed: http.StatusBadGateway,
	errs.KindDepositReleaseFailed: http.StatusBadGateway,
	errs.KindInvalidRequest:       http.StatusBadRequest,
	errs.KindUnauthenticated:      http.StatusUnauthorized,
	errs.KindForbidden:            http.StatusForbidden,
	errs.KindInternal:             http.StatusInternalServerError,
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind errs.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}
	kind := errs.KindOf(err)

	resp := Response{Status: status}
	resp.Error.Kind = string(kind)
	resp.Error.Message = msg
	resp.Error.Retryable = errs.IsRetryable(err)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err and answers with the status and message of its kind.
// Internal and gateway failures get a generic message.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	AbortWithError(c, StatusOf(kind), err, publicMessage(kind, err), nil)
}

func publicMessage(kind errs.Kind, err error) string {
	switch kind {
	case errs.KindInternal:
		return "Internal server error"
	case errs.KindDepositHoldFailed:
		return "Deposit authorization failed"
	case errs.KindDepositCaptureFailed:
		return "Deposit capture failed"
	case errs.KindDepositReleaseFailed:
		return "Deposit release failed"
	default:
		return err.Error()
	}
}
