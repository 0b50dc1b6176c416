package reservation

import (
	"sort"

	"coworking-reservations/internal/domain/pricing"

	"cloud.google.com/go/civil"
)

// Scheduled is anything placed on the calendar by a start date and an
// optional start time.
type Scheduled interface {
	StartDate() civil.Date
	StartTime() *civil.Time
}

type Triage[T Scheduled] struct {
	Today  []T
	Future []T
	Past   []T
}

// Ordered returns today's items, then upcoming ones, then history.
func (t Triage[T]) Ordered() []T {
	out := make([]T, 0, len(t.Today)+len(t.Future)+len(t.Past))
	out = append(out, t.Today...)
	out = append(out, t.Future...)
	return append(out, t.Past...)
}

// SortForTriage buckets items by start date relative to today. Today and
// future run ascending, past runs most recent first. Within a date untimed
// items come after timed ones; remaining ties keep their input order.
func SortForTriage[T Scheduled](items []T, today civil.Date) Triage[T] {
	var t Triage[T]
	for _, it := range items {
		d := it.StartDate()
		switch {
		case d == today:
			t.Today = append(t.Today, it)
		case d.After(today):
			t.Future = append(t.Future, it)
		default:
			t.Past = append(t.Past, it)
		}
	}

	sort.SliceStable(t.Today, func(i, j int) bool {
		return timeBefore(t.Today[i].StartTime(), t.Today[j].StartTime())
	})
	sort.SliceStable(t.Future, func(i, j int) bool {
		return scheduledBefore(t.Future[i], t.Future[j])
	})
	sort.SliceStable(t.Past, func(i, j int) bool {
		a, b := t.Past[i], t.Past[j]
		if a.StartDate() != b.StartDate() {
			return a.StartDate().After(b.StartDate())
		}
		return timeAfter(a.StartTime(), b.StartTime())
	})
	return t
}

func scheduledBefore(a, b Scheduled) bool {
	if a.StartDate() != b.StartDate() {
		return a.StartDate().Before(b.StartDate())
	}
	return timeBefore(a.StartTime(), b.StartTime())
}

// timeBefore orders nil last.
func timeBefore(a, b *civil.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return pricing.SecondOfDay(*a) < pricing.SecondOfDay(*b)
	}
}

// timeAfter is the descending counterpart of timeBefore, still ordering nil last.
func timeAfter(a, b *civil.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return pricing.SecondOfDay(*a) > pricing.SecondOfDay(*b)
	}
}
