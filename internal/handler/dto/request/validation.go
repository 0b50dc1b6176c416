package request

import (
	"fmt"
	"strings"

	"coworking-reservations/internal/domain/pricing"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking specific binding tags to v.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("civildate", validateCivilDate); err != nil {
		return err
	}
	return v.RegisterValidation("clocktime", validateClockTime)
}

func validateCivilDate(fl validator.FieldLevel) bool {
	_, err := civil.ParseDate(fl.Field().String())
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := pricing.ParseClock(fl.Field().String())
	return err == nil
}

// ValidationMessage turns binding errors into one readable line.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request format"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fieldMessage(fe)))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_with":
		return fmt.Sprintf("Required together with %s", fe.Param())
	case "min":
		return fmt.Sprintf("Minimum is %s", fe.Param())
	case "max":
		return fmt.Sprintf("Maximum is %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "civildate":
		return "Must be a date in YYYY-MM-DD format"
	case "clocktime":
		return "Must be a time in HH:MM format"
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field())
	}
}
