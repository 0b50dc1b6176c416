package reservation

import (
	"strings"
	"time"

	"coworking-reservations/internal/pkg/errs"
)

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition is a validated, not yet applied, status change together with
// the deposit side effect and the notification it entails.
type Transition struct {
	Action          Action
	From            Status
	To              Status
	Outcome         *PresenceOutcome
	Deposit         DepositIntent
	Event           Event
	Reason          string
	ExpectedVersion int
}

// Plan validates action against the current state.
func (r *Reservation) Plan(action Action, cancel CancelCommand) (Transition, error) {
	switch action {
	case ActionConfirm:
		return r.Confirm()
	case ActionCancel:
		return r.Cancel(cancel)
	case ActionMarkPresent:
		return r.MarkPresent()
	case ActionMarkNoShow:
		return r.MarkNoShow()
	default:
		return Transition{}, errs.Reasonf(errs.ErrInvalidRequest, "unknown action %q", action)
	}
}

func (r *Reservation) Confirm() (Transition, error) {
	if r.status != StatusPending {
		return Transition{}, r.invalid(ActionConfirm)
	}
	return r.transition(ActionConfirm, StatusConfirmed, nil, IntentNone, EventConfirmed, ""), nil
}

// Cancel releases the deposit for pending reservations or when capture is
// waived, and captures it otherwise.
func (r *Reservation) Cancel(cmd CancelCommand) (Transition, error) {
	if !CanTransition(r.status, StatusCancelled) {
		return Transition{}, r.invalid(ActionCancel)
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return Transition{}, errs.Reasonf(errs.ErrInvalidRequest, "cancellation requires a reason")
	}

	intent := IntentCapture
	event := EventCancelled
	if r.status == StatusPending {
		event = EventRefused
	}
	if r.status == StatusPending || cmd.SkipCapture {
		intent = IntentRelease
	}
	return r.transition(ActionCancel, StatusCancelled, nil, r.depositIntent(intent), event, reason), nil
}

func (r *Reservation) MarkPresent() (Transition, error) {
	if r.status != StatusConfirmed || r.isAdminBooking {
		return Transition{}, r.invalid(ActionMarkPresent)
	}
	o := OutcomePresent
	return r.transition(ActionMarkPresent, StatusCompleted, &o, r.depositIntent(IntentRelease), EventPresenceConfirmed, ""), nil
}

func (r *Reservation) MarkNoShow() (Transition, error) {
	if r.status != StatusConfirmed || r.isAdminBooking {
		return Transition{}, r.invalid(ActionMarkNoShow)
	}
	o := OutcomeNoShow
	return r.transition(ActionMarkNoShow, StatusCompleted, &o, r.depositIntent(IntentCapture), EventNoShow, ""), nil
}

// Apply commits a planned transition once its deposit side effect succeeded.
func (r *Reservation) Apply(t Transition, now time.Time) error {
	if t.From != r.status || t.ExpectedVersion != r.version {
		return errs.Reasonf(errs.ErrStaleState,
			"reservation %s changed since the %s was planned", r.id, t.Action)
	}
	if !CanTransition(t.From, t.To) {
		return r.invalid(t.Action)
	}

	r.status = t.To
	r.outcome = t.Outcome
	if t.Action == ActionCancel {
		r.cancelReason = t.Reason
	}
	if res := t.Deposit.Result(); res != "" {
		r.deposit.status = res
	}
	r.version++
	r.updatedAt = now
	return nil
}

func (r *Reservation) transition(a Action, to Status, o *PresenceOutcome, d DepositIntent, e Event, reason string) Transition {
	return Transition{
		Action:          a,
		From:            r.status,
		To:              to,
		Outcome:         o,
		Deposit:         d,
		Event:           e,
		Reason:          reason,
		ExpectedVersion: r.version,
	}
}

// depositIntent drops the side effect when there is no held authorization,
// which is always the case for admin bookings.
func (r *Reservation) depositIntent(want DepositIntent) DepositIntent {
	if r.isAdminBooking || !r.deposit.IsHeld() {
		return IntentNone
	}
	return want
}

func (r *Reservation) invalid(a Action) error {
	if r.isAdminBooking && (a == ActionMarkPresent || a == ActionMarkNoShow) {
		return errs.Reasonf(errs.ErrInvalidTransition, "cannot %s an admin booking", a)
	}
	return errs.Reasonf(errs.ErrInvalidTransition, "cannot %s a %s reservation", a, r.status)
}
