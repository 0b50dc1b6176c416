package payment

import (
	"context"
	"sync"

	"coworking-reservations/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type authState string

const (
	authHeld     authState = "held"
	authCaptured authState = "captured"
	authReleased authState = "released"
)

type Operation string

const (
	OpHold    Operation = "hold"
	OpCapture Operation = "capture"
	OpRelease Operation = "release"
)

var errSandboxDeclined = errs.New("sandbox: operation declined")

type authorization struct {
	reservationID uuid.UUID
	amount        decimal.Decimal
	state         authState
}

// SandboxGateway is an in-memory deposit service for development and tests.
// It honours idempotency keys the same way the real gateway does.
type SandboxGateway struct {
	mu       sync.Mutex
	auths    map[string]*authorization
	replies  map[string]string
	failures map[Operation]int
}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{
		auths:    make(map[string]*authorization),
		replies:  make(map[string]string),
		failures: make(map[Operation]int),
	}
}

// FailNext makes the next n calls of op fail.
func (g *SandboxGateway) FailNext(op Operation, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[op] += n
}

func (g *SandboxGateway) Hold(_ context.Context, reservationID uuid.UUID, amount decimal.Decimal, idempotencyKey string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if authID, ok := g.replies[idempotencyKey]; ok {
		return authID, nil
	}
	if err := g.injectedFailure(OpHold); err != nil {
		return "", err
	}
	if !amount.IsPositive() {
		return "", errs.Newf("sandbox: hold amount must be positive, got %s", amount)
	}

	authID := "sbx_auth_" + uuid.NewString()
	g.auths[authID] = &authorization{reservationID: reservationID, amount: amount, state: authHeld}
	g.replies[idempotencyKey] = authID
	return authID, nil
}

func (g *SandboxGateway) Capture(_ context.Context, authorizationID, idempotencyKey string) error {
	return g.settle(OpCapture, authorizationID, idempotencyKey, authCaptured)
}

func (g *SandboxGateway) Release(_ context.Context, authorizationID, idempotencyKey string) error {
	return g.settle(OpRelease, authorizationID, idempotencyKey, authReleased)
}

// State reports the authorization state, or "" when unknown.
func (g *SandboxGateway) State(authorizationID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if a, ok := g.auths[authorizationID]; ok {
		return string(a.state)
	}
	return ""
}

func (g *SandboxGateway) settle(op Operation, authorizationID, idempotencyKey string, to authState) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.replies[idempotencyKey]; ok {
		return nil
	}
	if err := g.injectedFailure(op); err != nil {
		return err
	}

	a, ok := g.auths[authorizationID]
	if !ok {
		return errs.Newf("sandbox: unknown authorization %q", authorizationID)
	}
	if a.state != authHeld {
		return errs.Newf("sandbox: cannot %s authorization %s in state %s", op, authorizationID, a.state)
	}
	a.state = to
	g.replies[idempotencyKey] = authorizationID
	return nil
}

func (g *SandboxGateway) injectedFailure(op Operation) error {
	if g.failures[op] == 0 {
		return nil
	}
	g.failures[op]--
	return errs.Wrapf(errSandboxDeclined, "%s", op)
}
