package readstore

import (
	"context"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/infra"
	"coworking-reservations/internal/infra/converter"
	"coworking-reservations/internal/pkg/errs"
	"coworking-reservations/internal/pkg/pgconv"
	"coworking-reservations/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	rateCardSQL = `
SELECT space_type, active, hourly::text, daily::text, weekly::text, monthly::text,
	min_capacity, max_capacity, per_person
FROM rate_cards
WHERE space_type = $1`

	rateCardTiersSQL = `
SELECT min_people, max_people, hourly_rate::text, daily_rate::text,
	extra_person_hourly::text, extra_person_daily::text
FROM rate_card_tiers
WHERE space_type = $1
ORDER BY min_people`
)

// RateCardReadStore serves rate cards kept in PostgreSQL.
type RateCardReadStore struct {
	db shared.DBTX
}

func NewRateCardReadStore(db shared.DBTX) *RateCardReadStore {
	return &RateCardReadStore{db: db}
}

func (r *RateCardReadStore) FindBySpaceType(ctx context.Context, spaceType ratecard.SpaceType) (*ratecard.RateCard, error) {
	var (
		doc                            converter.RateCardDocument
		hourly, daily, weekly, monthly pgtype.Text
		minCapacity, maxCapacity       int32
	)
	err := r.db.QueryRow(ctx, rateCardSQL, spaceType.String()).Scan(
		&doc.SpaceType, &doc.Active, &hourly, &daily, &weekly, &monthly,
		&minCapacity, &maxCapacity, &doc.PerPerson,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Reasonf(errs.ErrRateCardNotFound, "no rate card for space type %q", spaceType)
		}
		return nil, infra.WrapRepoErr("failed to find rate card", err)
	}
	doc.Hourly = pgconv.StringPtrFromPgtype(hourly)
	doc.Daily = pgconv.StringPtrFromPgtype(daily)
	doc.Weekly = pgconv.StringPtrFromPgtype(weekly)
	doc.Monthly = pgconv.StringPtrFromPgtype(monthly)
	doc.MinCapacity = int(minCapacity)
	doc.MaxCapacity = int(maxCapacity)

	if doc.Tiers, err = r.findTiers(ctx, spaceType); err != nil {
		return nil, err
	}

	return converter.RateCardToDomain(doc)
}

func (r *RateCardReadStore) findTiers(ctx context.Context, spaceType ratecard.SpaceType) ([]converter.TierDocument, error) {
	rows, err := r.db.Query(ctx, rateCardTiersSQL, spaceType.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rate card tiers", err)
	}
	defer rows.Close()

	var tiers []converter.TierDocument
	for rows.Next() {
		var (
			td                      converter.TierDocument
			minPeople, maxPeople    int32
			extraHourly, extraDaily pgtype.Text
		)
		if err := rows.Scan(&minPeople, &maxPeople, &td.HourlyRate, &td.DailyRate, &extraHourly, &extraDaily); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rate card tier", err)
		}
		td.MinPeople = int(minPeople)
		td.MaxPeople = int(maxPeople)
		td.ExtraPersonHourly = pgconv.StringPtrFromPgtype(extraHourly)
		td.ExtraPersonDaily = pgconv.StringPtrFromPgtype(extraDaily)
		tiers = append(tiers, td)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rate card tiers", err)
	}
	return tiers, nil
}
