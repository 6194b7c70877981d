package assistant

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"contact-assistant/internal/contact/domain"
	telemetrydomain "contact-assistant/internal/telemetry/domain"
)

func TestDescribe(t *testing.T) {
	_, phoneErr := domain.NewPhoneNumber("123")
	_, dateErr := domain.NewBirthday("1990-06-15")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"usage", &usageError{command: "add", usage: "add <name> <phone>"}, "Please provide the correct number of arguments. Usage: add <name> <phone>"},
		{"phone", phoneErr, `Invalid phone number "123". Phone number must be 10 digits.`},
		{"birthday", dateErr, `Invalid date "1990-06-15". Use DD.MM.YYYY`},
		{"contact", &domain.NotFoundError{Kind: domain.KindContact, Key: "John"}, "Contact John not found."},
		{"phone not found", fmt.Errorf("edit: %w", &domain.NotFoundError{Kind: domain.KindPhone, Key: "1234567890"}), "Phone number 1234567890 not found."},
		{"bare sentinel", domain.ErrNotFound, "Not found: not found"},
		{"other", errors.New("disk full"), "Something went wrong: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, telemetrydomain.OutcomeOK, outcomeOf(nil))
	assert.Equal(t, telemetrydomain.OutcomeUsage, outcomeOf(&usageError{}))
	assert.Equal(t, telemetrydomain.OutcomeValidation, outcomeOf(&domain.ValidationError{}))
	assert.Equal(t, telemetrydomain.OutcomeNotFound, outcomeOf(&domain.NotFoundError{}))
	assert.Equal(t, telemetrydomain.OutcomeError, outcomeOf(errors.New("boom")))
}

func TestUsageErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &usageError{command: "phone", usage: "phone <name>"})
	assert.ErrorIs(t, err, ErrUsage)
}
