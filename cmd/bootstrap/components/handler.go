package components

import (
	"time"

	"coworking-reservations/internal/handler"
	"coworking-reservations/internal/handler/api"
	reqdto "coworking-reservations/internal/handler/dto/request"
	"coworking-reservations/internal/handler/middleware"
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewBookingLocation,
		api.NewPricingHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(p *api.PricingHandler, r *api.ReservationHandler) handler.Handlers {
			return handler.Handlers{Pricing: p, Reservation: r}
		},
	),
	fx.Invoke(
		RegisterValidators,
		handler.NewRouter,
	),
)

func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, errs.Wrapf(err, "invalid BOOKING_TIMEZONE %q", cfg.Booking.TimeZone)
	}
	return loc, nil
}

// RegisterValidators adds the date and clock rules to gin's binding engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return reqdto.RegisterValidators(v)
}
