package domain

import (
	"slices"
	"strings"
)

// Record holds one contact: a name, an ordered list of phone numbers, and an optional birthday.
// The name is fixed at creation and keys the record in an AddressBook.
type Record struct {
	name     string
	phones   []PhoneNumber
	birthday *Birthday
}

// NewRecord returns an empty record for name. name must be non-empty after trimming spaces.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: FieldName, Value: name, Hint: "must not be empty"}
	}
	return &Record{name: name}, nil
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []PhoneNumber { return slices.Clone(r.phones) }

// Birthday returns the birthday, or nil if none is set.
func (r *Record) Birthday() *Birthday { return r.birthday }

// AddPhone validates number and appends it. Duplicates are allowed.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhoneNumber(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to number.
func (r *Record) RemovePhone(number string) error {
	i := r.indexOf(number)
	if i < 0 {
		return &NotFoundError{Kind: KindPhone, Key: number}
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces oldNumber with newNumber. newNumber is appended before oldNumber
// is removed, so an invalid newNumber leaves the record untouched.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	if r.indexOf(oldNumber) < 0 {
		return &NotFoundError{Kind: KindPhone, Key: oldNumber}
	}
	if err := r.AddPhone(newNumber); err != nil {
		return err
	}
	return r.RemovePhone(oldNumber)
}

// FindPhone returns the phone equal to number and true, or false if the record has no such phone.
func (r *Record) FindPhone(number string) (PhoneNumber, bool) {
	i := r.indexOf(number)
	if i < 0 {
		return PhoneNumber{}, false
	}
	return r.phones[i], true
}

// AddBirthday validates date and sets it as the birthday, replacing any previous one.
func (r *Record) AddBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) indexOf(number string) int {
	return slices.IndexFunc(r.phones, func(p PhoneNumber) bool { return p.value == number })
}
