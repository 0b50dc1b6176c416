package pricing

import (
	"coworking-reservations/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	monthlyThresholdDays = 28
	weeklyThresholdDays  = 7
	monthlyBillableUnits = 30
	weeklyBillableUnits  = 7
	halfDaySeconds       = 5 * 3600
)

var secondsPerHour = decimal.NewFromInt(3600)

type Classification struct {
	Type     ReservationType
	Duration decimal.Decimal
	Days     int
}

// Classify picks the reservation type for a period. Longer horizons win over
// the time range: a multi-week booking with times still bills weekly or monthly.
func Classify(p Period) (Classification, error) {
	daysDiff := p.EndDate.DaysSince(p.StartDate)
	if daysDiff < 0 {
		return Classification{}, errs.Reasonf(errs.ErrInvalidTimeRange,
			"end date %s precedes start date %s", p.EndDate, p.StartDate)
	}
	days := daysDiff + 1

	switch {
	case daysDiff >= monthlyThresholdDays:
		return Classification{Type: TypeMonthly, Duration: decimal.NewFromInt(monthlyBillableUnits), Days: days}, nil
	case daysDiff >= weeklyThresholdDays:
		return Classification{Type: TypeWeekly, Duration: decimal.NewFromInt(weeklyBillableUnits), Days: days}, nil
	case p.Times == nil:
		return Classification{Type: TypeDaily, Duration: decimal.NewFromInt(int64(days)), Days: days}, nil
	}

	secs := p.Times.Seconds()
	if secs <= 0 {
		return Classification{}, errs.Reasonf(errs.ErrInvalidTimeRange,
			"end time %s is not after start time %s", p.Times.end, p.Times.start)
	}
	if secs > halfDaySeconds {
		return Classification{Type: TypeDaily, Duration: decimal.NewFromInt(int64(days)), Days: days}, nil
	}

	hoursPerDay := decimal.NewFromInt(int64(secs)).Div(secondsPerHour)
	return Classification{
		Type:     TypeHourly,
		Duration: hoursPerDay.Mul(decimal.NewFromInt(int64(days))),
		Days:     days,
	}, nil
}
