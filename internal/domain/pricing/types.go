package pricing

import (
	"time"

	"coworking-reservations/internal/domain/ratecard"
	"coworking-reservations/internal/pkg/errs"

	"cloud.google.com/go/civil"
)

type ReservationType string

const (
	TypeHourly  ReservationType = "hourly"
	TypeDaily   ReservationType = "daily"
	TypeWeekly  ReservationType = "weekly"
	TypeMonthly ReservationType = "monthly"
)

func (t ReservationType) String() string {
	return string(t)
}

func (t ReservationType) IsValid() bool {
	switch t {
	case TypeHourly, TypeDaily, TypeWeekly, TypeMonthly:
		return true
	default:
		return false
	}
}

// Tiered reports whether capacity tiers can apply to this type.
func (t ReservationType) Tiered() bool {
	return t == TypeHourly || t == TypeDaily
}

func (t ReservationType) Unit() DurationUnit {
	switch t {
	case TypeHourly:
		return UnitHours
	case TypeWeekly:
		return UnitWeeks
	case TypeMonthly:
		return UnitMonths
	default:
		return UnitDays
	}
}

type DurationUnit string

const (
	UnitHours  DurationUnit = "hours"
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
)

// TimeRange is a same-day opening and closing clock time.
type TimeRange struct {
	start civil.Time
	end   civil.Time
}

func NewTimeRange(start, end civil.Time) TimeRange {
	return TimeRange{start: start, end: end}
}

// ParseClock accepts "HH:MM" and "HH:MM:SS".
func ParseClock(v string) (civil.Time, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return civil.TimeOf(t), nil
		}
	}
	return civil.Time{}, errs.Reasonf(errs.ErrInvalidRequest, "invalid clock time %q", v)
}

func (r TimeRange) Start() civil.Time { return r.start }
func (r TimeRange) End() civil.Time   { return r.end }

func (r TimeRange) Seconds() int {
	return SecondOfDay(r.end) - SecondOfDay(r.start)
}

func SecondOfDay(t civil.Time) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Period is the booked calendar span, with an optional daily time range.
type Period struct {
	StartDate civil.Date
	EndDate   civil.Date
	Times     *TimeRange
}

func (p Period) StartTime() *civil.Time {
	if p.Times == nil {
		return nil
	}
	t := p.Times.start
	return &t
}

func (p Period) EndTime() *civil.Time {
	if p.Times == nil {
		return nil
	}
	t := p.Times.end
	return &t
}

type Request struct {
	SpaceType      ratecard.SpaceType
	Period         Period
	NumberOfPeople int
}
