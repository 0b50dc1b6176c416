//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"coworking-reservations/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestReasonf(t *testing.T) {
	err := errs.Reasonf(errs.ErrInvalidTimeRange, "end date %s is before start date", "2025-03-09")

	t.Run("success: メッセージは理由のみ", func(t *testing.T) {
		assert.Equal(t, "end date 2025-03-09 is before start date", err.Error())
	})

	t.Run("success: 標準のerrors.Isで判定できる", func(t *testing.T) {
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
		assert.True(t, errs.Is(err, errs.ErrInvalidTimeRange))
		assert.False(t, errors.Is(err, errs.ErrStaleState))
	})

	t.Run("success: ラップ後も判定できる", func(t *testing.T) {
		wrapped := fmt.Errorf("quote: %w", errs.Wrap(err, "classify"))

		assert.ErrorIs(t, wrapped, errs.ErrInvalidTimeRange)
		assert.Equal(t, errs.KindInvalidTimeRange, errs.KindOf(wrapped))
	})

	t.Run("success: %+vはスタックを含む", func(t *testing.T) {
		assert.Contains(t, fmt.Sprintf("%+v", err), "errs_test.go")
	})
}

func TestMark(t *testing.T) {
	cause := errors.New("gateway timeout")
	err := errs.Mark(cause, errs.ErrDepositHoldFailed)

	assert.Equal(t, "gateway timeout", err.Error())
	assert.ErrorIs(t, err, errs.ErrDepositHoldFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, errs.KindDepositHoldFailed, errs.KindOf(err))
	assert.Equal(t, errs.ErrForbidden, errs.Mark(nil, errs.ErrForbidden))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"success: 不正な料金表はINTERNAL", errs.Reasonf(errs.ErrInvalidRateCard, "tier range is invalid"), errs.KindInternal},
		{"success: 不正なリクエスト由来でも料金表の不備はINTERNAL", errs.Mark(errs.Reasonf(errs.ErrInvalidRequest, "space type is required"), errs.ErrInvalidRateCard), errs.KindInternal},
		{"success: 状態の競合", errs.Reasonf(errs.ErrStaleState, "version moved"), errs.KindStaleState},
		{"success: 実行中の冪等キーは衝突扱い", errs.ErrIdempotencyInProgress, errs.KindIdempotencyConflict},
		{"success: 未分類はINTERNAL", errors.New("boom"), errs.KindInternal},
		{"success: nilは空", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, errs.IsRetryable(errs.Reasonf(errs.ErrStaleState, "version moved")))
	assert.True(t, errs.IsRetryable(errs.ErrIdempotencyInProgress))
	assert.False(t, errs.IsRetryable(errs.ErrIdempotencyConflict))
	assert.False(t, errs.IsRetryable(errs.Reasonf(errs.ErrInvalidTransition, "cannot confirm")))
}
