package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createReservationEndpoint = "POST /api/reservations"
	idempotencyTTL            = 24 * time.Hour
	compensationTimeout       = 10 * time.Second
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	Transition(ctx context.Context, in TransitionInput) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	resolver           *queries.RateCardResolver
	reservationFactory *reservation.Factory
	deposits           shared.DepositService
	notifier           shared.Notifier
	reservationQueries queries.ReservationQueries
	policy             DepositPolicy
	clock              clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	resolver *queries.RateCardResolver,
	reservationFactory *reservation.Factory,
	deposits shared.DepositService,
	notifier shared.Notifier,
	reservationQueries queries.ReservationQueries,
	policy DepositPolicy,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		resolver:           resolver,
		reservationFactory: reservationFactory,
		deposits:           deposits,
		notifier:           notifier,
		reservationQueries: reservationQueries,
		policy:             policy,
		clock:              clock,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	if in.IdempotencyKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}
	owner, isAdminBooking, err := bookingOwner(in.Actor, in.OnBehalfOf)
	if err != nil {
		return nil, err
	}

	requestHash := calculateRequestHash(in)
	existing, err := c.handleIdempotency(ctx, in.IdempotencyKey, in.Actor.UserID, requestHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &CreateReservationResult{Reservation: existing, IsReplayed: true}, nil
	}

	view, err := c.createNewReservation(ctx, in, owner, isAdminBooking, requestHash)
	if err != nil {
		c.forgetIdempotencyKey(ctx, in.IdempotencyKey, in.Actor.UserID)
		return nil, err
	}
	return &CreateReservationResult{Reservation: view}, nil
}

func bookingOwner(actor shared.Actor, onBehalfOf *uuid.UUID) (uuid.UUID, bool, error) {
	if actor.Role == shared.RoleAdmin {
		if onBehalfOf != nil && *onBehalfOf != uuid.Nil {
			return *onBehalfOf, true, nil
		}
		return actor.UserID, true, nil
	}
	if onBehalfOf != nil && *onBehalfOf != actor.UserID {
		return uuid.Nil, false, errs.Reasonf(errs.ErrForbidden, "only admins can book for another user")
	}
	return actor.UserID, false, nil
}

// handleIdempotency returns the reservation of an earlier identical request,
// or nil when this call owns the key and should proceed.
func (c *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	key, userID uuid.UUID,
	requestHash string,
) (*queries.ReservationView, error) {
	var inserted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.Idempotency().TryInsert(ctx, key, userID, createReservationEndpoint, requestHash, c.clock.Now().Add(idempotencyTTL))
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyConflict
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return c.reservationQueries.GetByIDSystem(ctx, *existing.ResultReservationID)
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (c *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	in CreateReservationInput,
	owner uuid.UUID,
	isAdminBooking bool,
	requestHash string,
) (*queries.ReservationView, error) {
	card, err := c.resolver.Resolve(ctx, in.Request.SpaceType)
	if err != nil {
		return nil, err
	}
	note, err := reservation.NewNote(in.Note)
	if err != nil {
		return nil, err
	}

	res, _, err := c.reservationFactory.CreateReservation(card, reservation.Draft{
		UserID:         owner,
		Request:        in.Request,
		Note:           note,
		IsAdminBooking: isAdminBooking,
	})
	if err != nil {
		return nil, err
	}

	if !isAdminBooking {
		if err := c.placeHold(ctx, res); err != nil {
			return nil, err
		}
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		if !isAdminBooking {
			hold := shared.DepositOperation{
				ID:              uuid.New(),
				ReservationID:   res.ID(),
				Intent:          reservation.IntentHold,
				IdempotencyKey:  shared.DepositKey(res.ID(), reservation.IntentHold),
				ExpectedVersion: res.Version(),
				State:           shared.DepositOpApplied,
			}
			if err := tx.DepositOperations().Record(ctx, hold); err != nil {
				return err
			}
		}
		return tx.Idempotency().UpdateStatusCompleted(ctx, in.IdempotencyKey, in.Actor.UserID, requestHash, res.ID())
	})
	if err != nil {
		if !isAdminBooking {
			c.compensateHold(ctx, res)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.notify(ctx, reservation.EventRequested, res)

	// Read-after-write: Get the complete reservation view from read store
	return c.reservationQueries.GetByIDSystem(ctx, res.ID())
}

func (c *reservationCommandsImpl) placeHold(ctx context.Context, res *reservation.Reservation) error {
	key := shared.DepositKey(res.ID(), reservation.IntentHold)
	authID, err := c.deposits.Hold(ctx, res.ID(), c.policy.Amount, key)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "place deposit hold"), errs.ErrDepositHoldFailed)
	}
	if err := res.AttachDeposit(authID, c.policy.Amount); err != nil {
		c.releaseHold(ctx, res.ID(), authID)
		return err
	}
	return nil
}

func (c *reservationCommandsImpl) compensateHold(ctx context.Context, res *reservation.Reservation) {
	if authID := res.Deposit().AuthorizationID(); authID != "" {
		c.releaseHold(ctx, res.ID(), authID)
	}
}

// releaseHold undoes a hold whose reservation was never recorded.
func (c *reservationCommandsImpl) releaseHold(ctx context.Context, reservationID uuid.UUID, authID string) {
	ctx, cancel := detached(ctx)
	defer cancel()
	if err := c.deposits.Release(ctx, authID, shared.DepositKey(reservationID, reservation.IntentRelease)); err != nil {
		slog.Error("failed to release orphaned deposit hold",
			"reservation_id", reservationID.String(),
			"authorization_id", authID,
			"error", err.Error())
		return
	}
	slog.Warn("released deposit hold of unrecorded reservation",
		"reservation_id", reservationID.String(),
		"authorization_id", authID)
}

func (c *reservationCommandsImpl) forgetIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	ctx, cancel := detached(ctx)
	defer cancel()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Delete(ctx, key, userID)
	})
	if err != nil {
		slog.Warn("failed to delete idempotency key", "key", key.String(), "error", err.Error())
	}
}

// detached keeps ctx's values but not its cancellation, so cleanup still runs
// after the client has gone away.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
}

// notify never fails the caller: delivery problems are logged only.
func (c *reservationCommandsImpl) notify(ctx context.Context, event reservation.Event, res *reservation.Reservation) {
	n := shared.NewNotification(event, res, c.clock.Now())
	if err := c.notifier.Notify(ctx, n); err != nil {
		slog.Warn("notification delivery failed",
			"event", string(event),
			"reservation_id", res.ID().String(),
			"error", err.Error())
	}
}

type requestFingerprint struct {
	SpaceType  string     `json:"space_type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	StartTime  string     `json:"start_time,omitempty"`
	EndTime    string     `json:"end_time,omitempty"`
	People     int        `json:"people"`
	Note       string     `json:"note,omitempty"`
	OnBehalfOf *uuid.UUID `json:"on_behalf_of,omitempty"`
}

func calculateRequestHash(in CreateReservationInput) string {
	p := in.Request.Period
	fp := requestFingerprint{
		SpaceType:  in.Request.SpaceType.String(),
		StartDate:  p.StartDate.String(),
		EndDate:    p.EndDate.String(),
		People:     in.Request.NumberOfPeople,
		Note:       in.Note,
		OnBehalfOf: in.OnBehalfOf,
	}
	if p.Times != nil {
		fp.StartTime = p.Times.Start().String()
		fp.EndTime = p.Times.End().String()
	}
	data, _ := json.Marshal(fp)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
