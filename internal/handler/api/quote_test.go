//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/handler/api"
	reqdto "coworking-reservations/internal/handler/dto/request"
	resdto "coworking-reservations/internal/handler/dto/response"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/tests/common/builder"
	"coworking-reservations/tests/common/httptest"
	"coworking-reservations/tests/common/testutil"
	queriesmock "coworking-reservations/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	s.Require().True(ok)
	s.Require().NoError(reqdto.RegisterValidators(v))

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	h := api.NewPricingHandler(s.mockQueries)

	s.router.POST("/quotes", h.Quote)
	s.router.GET("/rate-cards/:spaceType", h.GetRateCard)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestQuote() {
	url := "/quotes"
	reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO().QuoteRequest

	s.Run("success: 見積もりを返す", func() {
		card := builder.NewRateCardBuilder().MustBuild()
		want, err := pricing.NewComposer().Quote(card, builder.NewReservationBuilder().BuildRequest())
		s.Require().NoError(err)
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req pricing.Request) (*pricing.Quote, error) {
				s.Equal(ratecard.SpaceType("meeting-room"), req.SpaceType)
				s.Equal(civil.Date{Year: 2025, Month: 3, Day: 10}, req.Period.StartDate)
				return want, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("hourly", got.ReservationType)
		s.True(decimal.NewFromInt(40).Equal(got.TotalPrice))
		s.NotEmpty(got.Breakdown)
	})

	s.Run("error: spaceTypeが空白のみ", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("spaceType", "   "))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: 日付の逆転", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Reasonf(errs.ErrInvalidTimeRange, "end date before start date"))
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("endDate", "2025-03-09"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusUnprocessableEntity, "INVALID_TIME_RANGE")
	})

	s.Run("error: 料金未設定", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Reasonf(errs.ErrRateNotConfigured, "no hourly rate"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusUnprocessableEntity, "RATE_NOT_CONFIGURED")
	})
}

func (s *PricingHandlerTestSuite) TestGetRateCard() {
	s.Run("success: 料金表を返す", func() {
		view := queries.RateCardToView(builder.NewRateCardBuilder().MustBuild())
		s.mockQueries.EXPECT().RateCard(gomock.Any(), ratecard.SpaceType("meeting-room")).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rate-cards/meeting-room", nil, "")

		var got resdto.RateCardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("meeting-room", got.SpaceType)
		s.NotNil(got.Tiers)
	})

	s.Run("error: 存在しない", func() {
		s.mockQueries.EXPECT().RateCard(gomock.Any(), ratecard.SpaceType("sauna")).
			Return(nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card for sauna"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rate-cards/sauna", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "RATE_CARD_NOT_FOUND")
	})
}
