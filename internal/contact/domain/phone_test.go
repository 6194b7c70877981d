package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber_Valid(t *testing.T) {
	for _, s := range []string{"0123456789", "9999999999", "0000000000", "5551234567"} {
		p, err := NewPhoneNumber(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, p.String())
	}
}

func TestNewPhoneNumber_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "123456789"},
		{"too long", "12345678901"},
		{"letters", "12345abcde"},
		{"plus prefix", "+123456789"},
		{"spaces", "123 456 78"},
		{"dashes", "123-456-78"},
		{"unicode digits", "١٢٣٤٥٦٧٨٩٠"},
		{"trailing newline", "123456789\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPhoneNumber(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation), "error should wrap ErrValidation: %v", err)
			assert.Equal(t, "", p.String())
		})
	}
}
