package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func names(records []*Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name())
	}
	return out
}

func TestAddressBook_AddAndFind(t *testing.T) {
	book := NewAddressBook()
	john := mustRecord(t, "John", "1234567890")
	book.AddRecord(john)

	got, ok := book.Find("John")
	require.True(t, ok)
	assert.Same(t, john, got)

	_, ok = book.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, 1, book.Len())
}

func TestAddressBook_AddRecordReplacesSilently(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(mustRecord(t, "John", "1111111111"))
	book.AddRecord(mustRecord(t, "Jane"))
	replacement := mustRecord(t, "John", "2222222222")
	book.AddRecord(replacement)

	got, ok := book.Find("John")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, []string{"John", "Jane"}, names(book.Records()))
	assert.Equal(t, 2, book.Len())
}

func TestAddressBook_RecordsInInsertionOrder(t *testing.T) {
	book := NewAddressBook()
	for _, n := range []string{"Zed", "Amy", "Mike", "Bob"} {
		book.AddRecord(mustRecord(t, n))
	}
	assert.Equal(t, []string{"Zed", "Amy", "Mike", "Bob"}, names(book.Records()))
}

func TestAddressBook_Delete(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(mustRecord(t, "John"))
	book.AddRecord(mustRecord(t, "Jane"))
	book.AddRecord(mustRecord(t, "Jim"))

	require.NoError(t, book.Delete("Jane"))
	_, ok := book.Find("Jane")
	assert.False(t, ok)
	assert.Equal(t, []string{"John", "Jim"}, names(book.Records()))

	err := book.Delete("Jane")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"John", "Jim"}, names(book.Records()))
}

func TestAddressBook_DeleteThenReAddGoesLast(t *testing.T) {
	book := NewAddressBook()
	book.AddRecord(mustRecord(t, "John"))
	book.AddRecord(mustRecord(t, "Jane"))
	require.NoError(t, book.Delete("John"))
	book.AddRecord(mustRecord(t, "John"))

	assert.Equal(t, []string{"Jane", "John"}, names(book.Records()))
}

func TestAddressBook_Empty(t *testing.T) {
	book := NewAddressBook()
	assert.Equal(t, 0, book.Len())
	assert.Empty(t, book.Records())
}
