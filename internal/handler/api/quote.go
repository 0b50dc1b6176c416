package api

import (
	"net/http"

	"coworking-reservations/internal/domain/ratecard"
	reqdto "coworking-reservations/internal/handler/dto/request"
	resdto "coworking-reservations/internal/handler/dto/response"
	"coworking-reservations/internal/handler/httperr"
	"coworking-reservations/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Price a booking request
// @Description Classify the booking, apply rate card tiers and return the priced quote
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Booking request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	pr, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	quote, err := h.q.Quote(c.Request.Context(), pr)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Get rate card
// @Description Active rate card of a space type
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param spaceType path string true "Space type"
// @Success 200 {object} resdto.RateCardResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /rate-cards/{spaceType} [get]
func (h *PricingHandler) GetRateCard(c *gin.Context) {
	spaceType, err := ratecard.NewSpaceType(c.Param("spaceType"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.RateCard(c.Request.Context(), spaceType)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateCardView(view))
}
