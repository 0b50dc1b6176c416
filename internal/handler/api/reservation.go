package api

import (
	"net/http"
	"time"

	reqdto "coworking-reservations/internal/handler/dto/request"
	resdto "coworking-reservations/internal/handler/dto/response"
	"coworking-reservations/internal/handler/httperr"
	"coworking-reservations/internal/handler/middleware"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/commands"
	"coworking-reservations/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const IdempotentReplayedHeader = "Idempotent-Replayed"

type ReservationHandler struct {
	cmd   commands.ReservationCommands
	q     queries.ReservationQueries
	clock clock.Clock
	// loc decides which calendar day is "today" for triage.
	loc *time.Location
}

func NewReservationHandler(cmd commands.ReservationCommands, q queries.ReservationQueries, clk clock.Clock, loc *time.Location) *ReservationHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationHandler{cmd: cmd, q: q, clock: clk, loc: loc}
}

// @Summary Create reservation
// @Description Price the request, hold the deposit and store a pending reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	pr, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	result, err := h.cmd.CreateReservation(c.Request.Context(), commands.CreateReservationInput{
		Actor:          a,
		OnBehalfOf:     req.OnBehalfOf,
		Request:        pr,
		Note:           req.GetNote(),
		IdempotencyKey: key,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(IdempotentReplayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromReservationView(result.Reservation))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), a, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description Reservations of the current user, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor returned as nextCursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if !bindQuery(c, &query) {
		return
	}

	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), a.UserID, cursor, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationPage(items, next))
}

// @Summary Transition reservation
// @Description Apply confirm, cancel, markPresent or markNoShow together with its deposit action
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest true "Transition"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /reservations/{id}/transitions [post]
func (h *ReservationHandler) Transition(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.cmd.Transition(c.Request.Context(), commands.TransitionInput{
		Actor:           a,
		ReservationID:   id,
		Action:          req.GetAction(),
		Reason:          req.Reason,
		SkipCapture:     req.GetSkipCapture(),
		ExpectedVersion: req.ExpectedVersion,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Staff triage
// @Description Reservations grouped into today, future and past in presentation order
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param today query string false "Reference day (YYYY-MM-DD), defaults to the current business day"
// @Success 200 {object} resdto.TriageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /staff/reservations/triage [get]
func (h *ReservationHandler) Triage(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var query reqdto.TriageQuery
	if !bindQuery(c, &query) {
		return
	}

	today := civil.DateOf(h.clock.Now().In(h.loc))
	if query.Today != "" {
		// format checked by the civildate rule
		today, _ = civil.ParseDate(query.Today)
	}

	view, err := h.q.Triage(c.Request.Context(), a, today)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTriageView(view))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(middleware.IdempotencyKeyHeader)
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Reasonf(errs.ErrInvalidRequest, "idempotency key required"), "Idempotency-Key header is required", nil)
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidRequest), "Idempotency-Key must be a UUID", nil)
		return uuid.Nil, false
	}
	return key, true
}
