package domain

// phoneDigits is the exact length of a valid phone number.
const phoneDigits = 10

// PhoneNumber is a 10-digit phone number. The zero value is not valid; use NewPhoneNumber.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber returns a PhoneNumber for s, or a *ValidationError if s is not exactly 10 decimal digits.
func NewPhoneNumber(s string) (PhoneNumber, error) {
	if !isPhoneShape(s) {
		return PhoneNumber{}, &ValidationError{Field: FieldPhone, Value: s, Hint: "must be 10 digits"}
	}
	return PhoneNumber{value: s}, nil
}

// String returns the digits.
func (p PhoneNumber) String() string { return p.value }

func isPhoneShape(s string) bool {
	if len(s) != phoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
