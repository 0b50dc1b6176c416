package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxErrorBody = 4 << 10

// HTTPGateway talks to the card processor's authorization API. Every call
// carries an Idempotency-Key header so retries are applied at most once.
type HTTPGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPGateway(cfg config.DepositConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(cfg.GatewayURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type holdRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
}

type holdResponse struct {
	AuthorizationID string `json:"authorization_id"`
}

func (g *HTTPGateway) Hold(ctx context.Context, reservationID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (string, error) {
	var resp holdResponse
	err := g.post(ctx, "/authorizations", idempotencyKey, holdRequest{Reference: reservationID.String(), Amount: amount}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AuthorizationID == "" {
		return "", errs.New("deposit gateway returned no authorization id")
	}
	return resp.AuthorizationID, nil
}

func (g *HTTPGateway) Capture(ctx context.Context, authorizationID, idempotencyKey string) error {
	return g.post(ctx, "/authorizations/"+authorizationID+"/capture", idempotencyKey, nil, nil)
}

func (g *HTTPGateway) Release(ctx context.Context, authorizationID, idempotencyKey string) error {
	return g.post(ctx, "/authorizations/"+authorizationID+"/release", idempotencyKey, nil, nil)
}

func (g *HTTPGateway) post(ctx context.Context, path, idempotencyKey string, body, out any) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode deposit request")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, payload)
	if err != nil {
		return errs.Wrap(err, "build deposit request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errs.Wrapf(err, "POST %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.Newf("POST %s: gateway answered %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(err, "decode %s response", path)
	}
	return nil
}
