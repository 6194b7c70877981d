package assistant

import (
	"errors"
	"fmt"

	"contact-assistant/internal/contact/domain"
	telemetrydomain "contact-assistant/internal/telemetry/domain"
)

// ErrUsage matches errors for commands called with too few arguments.
var ErrUsage = errors.New("wrong number of arguments")

type usageError struct {
	command string
	usage   string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("%s: %v, usage: %s", e.command, ErrUsage, e.usage)
}

func (e *usageError) Is(target error) bool { return target == ErrUsage }

// Describe turns err into the message shown to the user.
func Describe(err error) string {
	var (
		usage    *usageError
		invalid  *domain.ValidationError
		notFound *domain.NotFoundError
	)
	switch {
	case errors.As(err, &usage):
		return "Please provide the correct number of arguments. Usage: " + usage.usage
	case errors.As(err, &invalid):
		switch invalid.Field {
		case domain.FieldPhone:
			return fmt.Sprintf("Invalid phone number %q. Phone number must be 10 digits.", invalid.Value)
		case domain.FieldBirthday:
			return fmt.Sprintf("Invalid date %q. Use DD.MM.YYYY", invalid.Value)
		case domain.FieldName:
			return "Contact name must not be empty."
		}
		return "Invalid input: " + invalid.Error()
	case errors.As(err, &notFound):
		switch notFound.Kind {
		case domain.KindContact:
			return fmt.Sprintf("Contact %s not found.", notFound.Key)
		case domain.KindPhone:
			return fmt.Sprintf("Phone number %s not found.", notFound.Key)
		}
		return "Not found: " + notFound.Error()
	case errors.Is(err, domain.ErrValidation):
		return "Invalid input: " + err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "Not found: " + err.Error()
	}
	return "Something went wrong: " + err.Error()
}

// outcomeOf classifies err for telemetry.
func outcomeOf(err error) telemetrydomain.Outcome {
	switch {
	case err == nil:
		return telemetrydomain.OutcomeOK
	case errors.Is(err, ErrUsage):
		return telemetrydomain.OutcomeUsage
	case errors.Is(err, domain.ErrValidation):
		return telemetrydomain.OutcomeValidation
	case errors.Is(err, domain.ErrNotFound):
		return telemetrydomain.OutcomeNotFound
	}
	return telemetrydomain.OutcomeError
}
