package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contact-assistant/internal/contact/domain"
)

func TestSeed_Idempotent(t *testing.T) {
	book := domain.NewAddressBook()

	added, err := seed(book)
	require.NoError(t, err)
	assert.Equal(t, len(samples), added)

	added, err = seed(book)
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Equal(t, len(samples), book.Len())
}

func TestSeed_KeepsExisting(t *testing.T) {
	book := domain.NewAddressBook()
	john, err := domain.NewRecord("John")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("1112223333"))
	book.AddRecord(john)

	added, err := seed(book)
	require.NoError(t, err)
	assert.Equal(t, len(samples)-1, added)

	got, ok := book.Find("John")
	require.True(t, ok)
	require.Len(t, got.Phones(), 1)
	assert.Equal(t, "1112223333", got.Phones()[0].String())
}
