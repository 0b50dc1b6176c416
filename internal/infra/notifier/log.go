package notifier

import (
	"context"
	"log/slog"

	"coworking-reservations/internal/usecase/shared"
)

// LogNotifier writes events to the structured log. Used when no broker is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Notify(ctx context.Context, n shared.Notification) error {
	slog.InfoContext(ctx, "reservation event",
		"event", string(n.Event),
		"reservation_id", n.ReservationID.String(),
		"user_id", n.UserID.String(),
		"status", n.Status,
		"start_date", n.StartDate.String(),
		"is_admin_booking", n.IsAdminBooking)
	return nil
}
