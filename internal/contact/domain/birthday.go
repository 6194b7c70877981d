package domain

import "time"

// DateLayout is the textual form of a Birthday (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// Birthday is a calendar date kept in the exact DD.MM.YYYY text it was created from.
type Birthday struct {
	text string
	date time.Time
}

// NewBirthday parses s as DD.MM.YYYY. It returns a *ValidationError if s is not a valid
// calendar date in exactly that layout.
func NewBirthday(s string) (Birthday, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: FieldBirthday, Value: s, Hint: "use DD.MM.YYYY"}
	}
	return Birthday{text: s, date: d}, nil
}

// String returns the date as DD.MM.YYYY.
func (b Birthday) String() string { return b.text }

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Month returns the month of the birthday.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of month of the birthday.
func (b Birthday) Day() int { return b.date.Day() }
