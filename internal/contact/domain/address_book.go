package domain

import "slices"

// AddressBook maps contact names to records and keeps insertion order for listing.
// It is not safe for concurrent use; callers serialize access.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under r.Name(). An existing record with the same name is replaced
// and keeps its listing position.
func (b *AddressBook) AddRecord(r *Record) {
	if _, ok := b.records[r.name]; !ok {
		b.order = append(b.order, r.name)
	}
	b.records[r.name] = r
}

// Find returns the record for name, or false if there is none.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record for name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return &NotFoundError{Kind: KindContact, Key: name}
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	return nil
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }
