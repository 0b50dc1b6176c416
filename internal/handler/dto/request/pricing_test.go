//go:build unit

package request_test

import (
	"testing"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/handler/dto/request"
	"coworking-reservations/internal/pkg/ptr"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, request.RegisterValidators(v))
	return v
}

func validQuote() request.QuoteRequest {
	return request.QuoteRequest{
		SpaceType:      " Meeting-Room ",
		StartDate:      "2025-03-10",
		EndDate:        "2025-03-10",
		StartTime:      ptr.Of("09:00"),
		EndTime:        ptr.Of("11:00"),
		NumberOfPeople: 4,
	}
}

func TestQuoteRequestValidation(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name    string
		mutate  func(r *request.QuoteRequest)
		wantErr string
	}{
		{"success: 時間指定あり", func(r *request.QuoteRequest) {}, ""},
		{"success: 終日", func(r *request.QuoteRequest) { r.StartTime, r.EndTime = nil, nil }, ""},
		{"success: 秒付きの時刻", func(r *request.QuoteRequest) { r.EndTime = ptr.Of("17:30:00") }, ""},
		{"error: 開始時刻のみ", func(r *request.QuoteRequest) { r.EndTime = nil }, "EndTime"},
		{"error: 終了時刻のみ", func(r *request.QuoteRequest) { r.StartTime = nil }, "StartTime"},
		{"error: 日付の形式", func(r *request.QuoteRequest) { r.StartDate = "10/03/2025" }, "StartDate"},
		{"error: 時刻の形式", func(r *request.QuoteRequest) { r.StartTime = ptr.Of("9am") }, "StartTime"},
		{"error: 人数0", func(r *request.QuoteRequest) { r.NumberOfPeople = 0 }, "NumberOfPeople"},
		{"error: spaceType未指定", func(r *request.QuoteRequest) { r.SpaceType = "" }, "SpaceType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuote()
			tt.mutate(&req)

			err := v.Struct(req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, request.ValidationMessage(err), tt.wantErr)
		})
	}
}

func TestQuoteRequestToDomain(t *testing.T) {
	t.Run("success: 正規化して変換する", func(t *testing.T) {
		got, err := validQuote().ToDomain()

		require.NoError(t, err)
		assert.Equal(t, ratecard.SpaceType("meeting-room"), got.SpaceType)
		assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 10}, got.Period.StartDate)
		require.NotNil(t, got.Period.Times)
		assert.Equal(t, civil.Time{Hour: 9}, got.Period.Times.Start())
		assert.Equal(t, 7200, got.Period.Times.Seconds())
		assert.Equal(t, 4, got.NumberOfPeople)
	})

	t.Run("success: 終日は時間帯なし", func(t *testing.T) {
		req := validQuote()
		req.StartTime, req.EndTime = nil, nil

		got, err := req.ToDomain()

		require.NoError(t, err)
		assert.Nil(t, got.Period.Times)
	})

	t.Run("error: 空白のみのspaceType", func(t *testing.T) {
		req := validQuote()
		req.SpaceType = "   "

		_, err := req.ToDomain()

		assert.Error(t, err)
	})
}

func TestTransitionRequest(t *testing.T) {
	v := newValidator(t)

	t.Run("success: skipCapture未指定はfalse", func(t *testing.T) {
		req := request.TransitionRequest{Action: "cancel", Reason: "plans changed"}

		require.NoError(t, v.Struct(req))
		assert.False(t, req.GetSkipCapture())
		assert.Equal(t, "cancel", string(req.GetAction()))
	})

	t.Run("error: 未知のアクション", func(t *testing.T) {
		err := v.Struct(request.TransitionRequest{Action: "archive"})

		require.Error(t, err)
		assert.Contains(t, request.ValidationMessage(err), "Must be one of")
	})

	t.Run("error: expectedVersionは1以上", func(t *testing.T) {
		err := v.Struct(request.TransitionRequest{Action: "confirm", ExpectedVersion: ptr.Of(0)})

		assert.Error(t, err)
	})
}
