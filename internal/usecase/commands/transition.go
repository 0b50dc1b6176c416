package commands

import (
	"context"
	"log/slog"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/queries"
	"coworking-reservations/internal/usecase/shared"

	"github.com/google/uuid"
)

// Transition drives a reservation through the lifecycle. Transitions with a
// deposit side effect run as a saga:
//  1. claim a pending deposit operation under the reservation row lock
//  2. capture or release through the deposit service with a stable key
//  3. save the new status and mark the operation applied
//
// A failed step 2 marks the claim failed and leaves the status untouched.
// A failed step 3 keeps the claim, so repeating the same transition resumes
// it and replays step 2 with the same key.
func (c *reservationCommandsImpl) Transition(ctx context.Context, in TransitionInput) (*queries.ReservationView, error) {
	if !in.Action.IsValid() {
		return nil, errs.Reasonf(errs.ErrInvalidRequest, "unknown action %q", in.Action)
	}
	if in.Action.StaffOnly() && !in.Actor.Role.IsStaff() {
		return nil, errs.Reasonf(errs.ErrForbidden, "%s is restricted to staff", in.Action)
	}

	res, err := c.loadReservation(ctx, in.ReservationID)
	if err != nil {
		return nil, err
	}
	if !in.Actor.Role.IsStaff() {
		if res.UserID() != in.Actor.UserID {
			return nil, errs.Reasonf(errs.ErrReservationNotFound, "reservation %s not found", in.ReservationID)
		}
		in.SkipCapture = false
	}
	if in.ExpectedVersion != nil && *in.ExpectedVersion != res.Version() {
		return nil, errs.Reasonf(errs.ErrStaleState,
			"reservation %s is at version %d, not %d", res.ID(), res.Version(), *in.ExpectedVersion)
	}

	t, err := res.Plan(in.Action, reservation.CancelCommand{Reason: in.Reason, SkipCapture: in.SkipCapture})
	if err != nil {
		return nil, err
	}

	var committed *reservation.Reservation
	if t.Deposit == reservation.IntentNone {
		committed, err = c.commitTransition(ctx, res.ID(), t, nil)
	} else {
		committed, err = c.runDepositSaga(ctx, res, t)
	}
	if err != nil {
		return nil, err
	}

	c.notify(ctx, t.Event, committed)

	return c.reservationQueries.GetByIDSystem(ctx, committed.ID())
}

func (c *reservationCommandsImpl) loadReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := c.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, id)
	}
	return res, nil
}

func (c *reservationCommandsImpl) runDepositSaga(ctx context.Context, res *reservation.Reservation, t reservation.Transition) (*reservation.Reservation, error) {
	op, err := c.claimDeposit(ctx, res, t)
	if err != nil {
		return nil, err
	}

	if err := c.settleDeposit(ctx, res, op); err != nil {
		c.abandonClaim(ctx, op, err)
		return nil, err
	}

	committed, err := c.commitTransition(ctx, res.ID(), t, &op)
	if err != nil {
		slog.Error("deposit settled but transition not recorded",
			"reservation_id", res.ID().String(),
			"action", string(t.Action),
			"intent", t.Deposit.String(),
			"error", err.Error())
		return nil, err
	}
	return committed, nil
}

func (c *reservationCommandsImpl) claimDeposit(ctx context.Context, res *reservation.Reservation, t reservation.Transition) (shared.DepositOperation, error) {
	op := shared.DepositOperation{
		ID:              uuid.New(),
		ReservationID:   res.ID(),
		Intent:          t.Deposit,
		IdempotencyKey:  shared.DepositKey(res.ID(), t.Deposit),
		ExpectedVersion: t.ExpectedVersion,
		State:           shared.DepositOpPending,
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reservations().LockByID(ctx, res.ID())
		if err != nil {
			return mapRepoErr(err, res.ID())
		}
		if locked.Version() != t.ExpectedVersion || locked.Status() != t.From {
			return errs.Reasonf(errs.ErrStaleState, "reservation %s changed concurrently", res.ID())
		}

		claimed, err := tx.DepositOperations().Claim(ctx, op)
		if err != nil {
			return err
		}
		if claimed {
			return nil
		}

		pending, err := tx.Reads().PendingDepositOperation(ctx, res.ID())
		if err != nil {
			return err
		}
		if pending != nil && pending.Intent == op.Intent && pending.ExpectedVersion == op.ExpectedVersion {
			slog.Info("resuming interrupted deposit operation",
				"reservation_id", res.ID().String(),
				"intent", op.Intent.String())
			op = *pending
			return nil
		}
		return errs.Reasonf(errs.ErrStaleState, "another deposit operation is in progress for reservation %s", res.ID())
	})
	if err != nil {
		return shared.DepositOperation{}, err
	}
	return op, nil
}

func (c *reservationCommandsImpl) settleDeposit(ctx context.Context, res *reservation.Reservation, op shared.DepositOperation) error {
	authID := res.Deposit().AuthorizationID()
	switch op.Intent {
	case reservation.IntentCapture:
		if err := c.deposits.Capture(ctx, authID, op.IdempotencyKey); err != nil {
			return errs.Mark(errs.Wrapf(err, "capture deposit %s", authID), errs.ErrDepositCaptureFailed)
		}
	case reservation.IntentRelease:
		if err := c.deposits.Release(ctx, authID, op.IdempotencyKey); err != nil {
			return errs.Mark(errs.Wrapf(err, "release deposit %s", authID), errs.ErrDepositReleaseFailed)
		}
	default:
		return errs.Newf("unexpected deposit intent %q", op.Intent)
	}
	return nil
}

// abandonClaim is the compensating action of a failed deposit call.
func (c *reservationCommandsImpl) abandonClaim(ctx context.Context, op shared.DepositOperation, cause error) {
	ctx, cancel := detached(ctx)
	defer cancel()
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.DepositOperations().MarkFailed(ctx, op.ID, cause.Error())
	})
	if err != nil {
		slog.Error("failed to abandon deposit claim",
			"reservation_id", op.ReservationID.String(),
			"operation_id", op.ID.String(),
			"error", err.Error())
	}
}

// commitTransition applies t to the locked row. Without an operation it also
// refuses to run while a deposit saga holds the reservation.
func (c *reservationCommandsImpl) commitTransition(
	ctx context.Context,
	id uuid.UUID,
	t reservation.Transition,
	op *shared.DepositOperation,
) (*reservation.Reservation, error) {
	var committed *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reservations().LockByID(ctx, id)
		if err != nil {
			return mapRepoErr(err, id)
		}
		if op == nil {
			pending, err := tx.Reads().PendingDepositOperation(ctx, id)
			if err != nil {
				return err
			}
			if pending != nil {
				return errs.Reasonf(errs.ErrStaleState, "a deposit operation is in progress for reservation %s", id)
			}
		}

		if err := locked.Apply(t, c.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reservations().ConditionalSave(ctx, locked, t.ExpectedVersion); err != nil {
			return err
		}
		if op != nil {
			if err := tx.DepositOperations().MarkApplied(ctx, op.ID); err != nil {
				return err
			}
		}
		committed = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return committed, nil
}

func mapRepoErr(err error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrapf(err, "reservation %s", id), errs.ErrReservationNotFound)
	}
	return err
}
