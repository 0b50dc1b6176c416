//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coworking-reservations/internal/infra/payment"
	"coworking-reservations/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, h http.HandlerFunc) *payment.HTTPGateway {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return payment.NewHTTPGateway(config.DepositConfig{GatewayURL: srv.URL + "/", APIKey: "sk_test", Timeout: time.Second})
}

func TestHTTPGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("success: holdは参照と金額を送り承認IDを返す", func(t *testing.T) {
		id := uuid.New()
		g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/authorizations", r.URL.Path)
			assert.Equal(t, id.String()+":hold", r.Header.Get("Idempotency-Key"))
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, id.String(), body["reference"])
			assert.Equal(t, "50", body["amount"])

			_ = json.NewEncoder(w).Encode(map[string]string{"authorization_id": "auth_123"})
		})

		authID, err := g.Hold(ctx, id, decimal.NewFromInt(50), id.String()+":hold")

		require.NoError(t, err)
		assert.Equal(t, "auth_123", authID)
	})

	t.Run("success: captureとreleaseのパス", func(t *testing.T) {
		var paths []string
		g := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, g.Capture(ctx, "auth_1", "r1:capture"))
		require.NoError(t, g.Release(ctx, "auth_2", "r2:release"))

		assert.Equal(t, []string{"/authorizations/auth_1/capture", "/authorizations/auth_2/release"}, paths)
	})

	t.Run("error: 2xx以外はエラー", func(t *testing.T) {
		g := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "card declined", http.StatusPaymentRequired)
		})

		err := g.Capture(ctx, "auth_1", "k")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "402")
		assert.Contains(t, err.Error(), "card declined")
	})

	t.Run("error: 承認IDなし", func(t *testing.T) {
		g := newGateway(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := g.Hold(ctx, uuid.New(), decimal.NewFromInt(50), "k")

		assert.Error(t, err)
	})
}
