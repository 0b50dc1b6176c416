//go:build unit

package reservation_test

import (
	"testing"

	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/tests/common/builder"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSortForTriage(t *testing.T) {
	today := civil.Date{Year: 2025, Month: 3, Day: 10}
	ids := map[uuid.UUID]string{}
	mk := func(label, date string, start *string) *reservation.Reservation {
		r := builder.NewReservationBuilder().WithSchedule(date, start).BuildDomain()
		ids[r.ID()] = label
		return r
	}

	input := []*reservation.Reservation{
		mk("past-early", "2025-03-01", builder.StrPtr("09:00")),
		mk("today-untimed", "2025-03-10", nil),
		mk("future-far", "2025-04-01", builder.StrPtr("08:00")),
		mk("today-late", "2025-03-10", builder.StrPtr("15:00")),
		mk("past-recent-untimed", "2025-03-09", nil),
		mk("future-near-late", "2025-03-11", builder.StrPtr("14:00")),
		mk("today-early", "2025-03-10", builder.StrPtr("08:30")),
		mk("past-recent-late", "2025-03-09", builder.StrPtr("18:00")),
		mk("future-near-untimed", "2025-03-11", nil),
		mk("future-near-early", "2025-03-11", builder.StrPtr("09:00")),
		mk("past-recent-early", "2025-03-09", builder.StrPtr("07:00")),
	}

	got := reservation.SortForTriage(input, today)

	labels := func(rs []*reservation.Reservation) []string {
		out := make([]string, 0, len(rs))
		for _, r := range rs {
			out = append(out, ids[r.ID()])
		}
		return out
	}
	want := []string{
		"today-early", "today-late", "today-untimed",
		"future-near-early", "future-near-late", "future-near-untimed", "future-far",
		"past-recent-late", "past-recent-early", "past-recent-untimed", "past-early",
	}
	if diff := cmp.Diff(want, labels(got.Ordered())); diff != "" {
		t.Errorf("triage order mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Today, 3)
	assert.Len(t, got.Future, 4)
	assert.Len(t, got.Past, 4)
}

func TestSortForTriage_StableTies(t *testing.T) {
	today := civil.Date{Year: 2025, Month: 3, Day: 10}
	first := builder.NewReservationBuilder().WithSchedule("2025-03-10", nil).BuildDomain()
	second := builder.NewReservationBuilder().WithSchedule("2025-03-10", nil).BuildDomain()

	got := reservation.SortForTriage([]*reservation.Reservation{first, second}, today).Ordered()

	assert.Equal(t, first.ID(), got[0].ID())
	assert.Equal(t, second.ID(), got[1].ID())
}

func TestSortForTriage_Empty(t *testing.T) {
	got := reservation.SortForTriage([]*reservation.Reservation(nil), civil.Date{Year: 2025, Month: 3, Day: 10})
	assert.Empty(t, got.Ordered())
}
