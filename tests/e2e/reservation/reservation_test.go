//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"

	"coworking-reservations/internal/handler/api"
	reqdto "coworking-reservations/internal/handler/dto/request"
	resdto "coworking-reservations/internal/handler/dto/response"
	"coworking-reservations/internal/handler/middleware"
	"coworking-reservations/internal/usecase/shared"
	"coworking-reservations/tests/common/builder"
	"coworking-reservations/tests/common/dbtest"
	"coworking-reservations/tests/common/httptest"
	"coworking-reservations/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	transitionURL   = "/api/reservations/%s/transitions"
	triageURL       = "/api/staff/reservations/triage"
	quotesURL       = "/api/quotes"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) create(token string, key uuid.UUID, body reqdto.CreateReservationRequest) (int, resdto.ReservationResponse, string) {
	t := s.T()
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
		map[string]string{middleware.IdempotencyKeyHeader: key.String()})

	var got resdto.ReservationResponse
	if w.Code == http.StatusCreated || w.Code == http.StatusOK {
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
	}
	return w.Code, got, w.Header().Get(api.IdempotentReplayedHeader)
}

func (s *ReservationSuite) TestQuote() {
	s.Run("success: 2時間の会議室の見積もり", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO().QuoteRequest, token)

		var got resdto.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "hourly", got.ReservationType)
		require.True(t, decimal.NewFromInt(40).Equal(got.TotalPrice), got.TotalPrice.String())
	})

	s.Run("error: 無効な料金表", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)
		body := builder.NewReservationBuilder().BuildCreateRequestDTO().QuoteRequest
		body.SpaceType = "studio"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL, body, token)

		httptest.AssertErrorKind(t, w, http.StatusUnprocessableEntity, "RATE_CARD_INACTIVE")
	})

	s.Run("error: 未認証", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotesURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO().QuoteRequest, "")

		httptest.AssertErrorKind(t, w, http.StatusUnauthorized, "UNAUTHENTICATED")
	})
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("success: pendingで作成しデポジットをholdする", func() {
		t := s.T()
		userID := uuid.New()
		token := s.JWT.GenerateToken(t, userID, shared.RoleClient)

		code, got, replayed := s.create(token, uuid.New(), builder.NewReservationBuilder().BuildCreateRequestDTO())

		require.Equal(t, http.StatusCreated, code)
		require.Empty(t, replayed)
		want := resdto.ReservationResponse{
			UserID:          userID,
			SpaceType:       "meeting-room",
			NumberOfPeople:  4,
			Status:          "pending",
			ReservationType: "hourly",
			DepositStatus:   "held",
			Version:         1,
		}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(resdto.ReservationResponse{}, "ID", "StartDate", "EndDate", "StartTime", "EndTime",
				"TotalPrice", "DepositAuthorizationID", "DepositAmount", "Note", "CreatedAt", "UpdatedAt"),
		); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, got.DepositAuthorizationID)
		require.True(t, decimal.NewFromInt(40).Equal(got.TotalPrice))
	})

	s.Run("success: 同じキーと内容の再送は結果を再生する", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)
		key := uuid.New()
		body := builder.NewReservationBuilder().BuildCreateRequestDTO()

		code, first, _ := s.create(token, key, body)
		require.Equal(t, http.StatusCreated, code)

		code, second, replayed := s.create(token, key, body)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "true", replayed)
		require.Equal(t, first.ID, second.ID)
	})

	s.Run("error: 同じキーで内容が違えばIDEMPOTENCY_CONFLICT", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)
		key := uuid.New()
		body := builder.NewReservationBuilder().BuildCreateRequestDTO()

		code, _, _ := s.create(token, key, body)
		require.Equal(t, http.StatusCreated, code)

		body.NumberOfPeople = 3
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
			map[string]string{middleware.IdempotencyKeyHeader: key.String()})
		httptest.AssertErrorKind(t, w, http.StatusConflict, "IDEMPOTENCY_CONFLICT")
	})

	s.Run("error: 冪等キーなし", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			builder.NewReservationBuilder().BuildCreateRequestDTO(), token)

		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "INVALID_REQUEST")
	})

	s.Run("error: 定員超過", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)
		body := builder.NewReservationBuilder().BuildCreateRequestDTO()
		body.NumberOfPeople = 13

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, token,
			map[string]string{middleware.IdempotencyKeyHeader: uuid.NewString()})

		httptest.AssertErrorKind(t, w, http.StatusUnprocessableEntity, "CAPACITY_OUT_OF_RANGE")
	})
}

func (s *ReservationSuite) TestLifecycle() {
	s.Run("success: 確定から不在でデポジットをcaptureする", func() {
		t := s.T()
		client := uuid.New()
		clientToken := s.JWT.GenerateToken(t, client, shared.RoleClient)
		staffToken := s.JWT.GenerateToken(t, uuid.New(), shared.RoleStaff)

		code, created, _ := s.create(clientToken, uuid.New(), builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, code)
		url := fmt.Sprintf(transitionURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqdto.TransitionRequest{Action: "confirm"}, staffToken)
		var confirmed resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &confirmed)
		require.Equal(t, "confirmed", confirmed.Status)
		require.Equal(t, 2, confirmed.Version)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqdto.TransitionRequest{Action: "markNoShow"}, staffToken)
		var done resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &done)
		require.Equal(t, "completed", done.Status)
		require.Equal(t, "captured", done.DepositStatus)
		require.NotNil(t, done.PresenceOutcome)
		require.Equal(t, "no-show", *done.PresenceOutcome)

		var applied int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM deposit_operations WHERE reservation_id = $1 AND state = 'applied'", created.ID).Scan(&applied)
		require.NoError(t, err)
		require.Equal(t, 2, applied)
	})

	s.Run("error: 古いバージョン指定はSTALE_STATE", func() {
		t := s.T()
		clientToken := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)
		staffToken := s.JWT.GenerateToken(t, uuid.New(), shared.RoleStaff)

		code, created, _ := s.create(clientToken, uuid.New(), builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, code)
		url := fmt.Sprintf(transitionURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, reqdto.TransitionRequest{Action: "confirm"}, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		stale := 1
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, url,
			reqdto.TransitionRequest{Action: "cancel", Reason: "double booked", ExpectedVersion: &stale}, staffToken)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "STALE_STATE")
	})

	s.Run("error: clientは確定できない", func() {
		t := s.T()
		clientToken := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)

		code, created, _ := s.create(clientToken, uuid.New(), builder.NewReservationBuilder().BuildCreateRequestDTO())
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(transitionURL, created.ID),
			reqdto.TransitionRequest{Action: "confirm"}, clientToken)
		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *ReservationSuite) TestTriage() {
	s.Run("success: 今日・未来・過去に振り分ける", func() {
		t := s.T()
		owner := uuid.New()
		ten, eleven := "10:00", "11:00"
		todayID := dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{UserID: owner, StartDate: "2025-03-10", EndDate: "2025-03-10", StartTime: &ten, EndTime: &eleven})
		futureID := dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{UserID: owner, StartDate: "2025-03-12", EndDate: "2025-03-12"})
		pastID := dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{UserID: owner, StartDate: "2025-03-01", EndDate: "2025-03-01"})
		dbtest.InsertReservation(t, s.DB, dbtest.ReservationRow{UserID: owner, StartDate: "2024-12-01", EndDate: "2024-12-01"})

		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleStaff)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, triageURL+"?today=2025-03-10", nil, token)

		var got resdto.TriageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Len(t, got.Today, 1)
		require.Equal(t, todayID, got.Today[0].ID)
		require.Len(t, got.Future, 1)
		require.Equal(t, futureID, got.Future[0].ID)
		require.Len(t, got.Past, 1)
		require.Equal(t, pastID, got.Past[0].ID)
	})

	s.Run("error: clientは参照できない", func() {
		t := s.T()
		token := s.JWT.GenerateToken(t, uuid.New(), shared.RoleClient)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, triageURL, nil, token)

		httptest.AssertErrorKind(t, w, http.StatusForbidden, "FORBIDDEN")
	})
}
