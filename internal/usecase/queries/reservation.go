package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"time"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	Triage(ctx context.Context, actor shared.Actor, today civil.Date) (*TriageView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	// FindStartingFrom returns every reservation when from is the zero date.
	FindStartingFrom(ctx context.Context, from civil.Date) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo             ReservationViewRepo
	triagePastWindow int
}

// NewReservationQueries builds the read side. triagePastWindow bounds how many
// days of history the staff triage list carries; 0 or less keeps all of it.
func NewReservationQueries(repo ReservationViewRepo, triagePastWindow int) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, triagePastWindow: triagePastWindow}
}

// Clients only see their own reservations; others look missing.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	v, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsStaff() && v.UserID != actor.UserID {
		return nil, errs.Reasonf(errs.ErrReservationNotFound, "reservation %s not found", id)
	}
	return v, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	fetch := int32(limit + 1)

	var (
		rows []*ReservationListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.FindByUserIDFirstPage(ctx, userID, fetch)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		rows, err = q.repo.FindByUserIDKeyset(ctx, userID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if len(rows) <= limit {
		return rows, nil, nil
	}
	rows = rows[:limit]
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}

func (q *reservationQueriesImpl) Triage(ctx context.Context, actor shared.Actor, today civil.Date) (*TriageView, error) {
	if !actor.Role.IsStaff() {
		return nil, errs.Reasonf(errs.ErrForbidden, "triage is restricted to staff")
	}
	var from civil.Date
	if q.triagePastWindow > 0 {
		from = today.AddDays(-q.triagePastWindow)
	}
	views, err := q.repo.FindStartingFrom(ctx, from)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]scheduledView, len(views))
	for i, v := range views {
		items[i] = scheduledView{v: v}
	}
	t := reservation.SortForTriage(items, today)

	return &TriageView{
		Today:  unwrapViews(t.Today),
		Future: unwrapViews(t.Future),
		Past:   unwrapViews(t.Past),
	}, nil
}

type scheduledView struct {
	v *ReservationView
}

func (s scheduledView) StartDate() civil.Date  { return s.v.StartDate }
func (s scheduledView) StartTime() *civil.Time { return s.v.StartTime }

func unwrapViews(items []scheduledView) []*ReservationView {
	out := make([]*ReservationView, len(items))
	for i, it := range items {
		out[i] = it.v
	}
	return out
}
