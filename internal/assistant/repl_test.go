package assistant

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Session(t *testing.T) {
	b, repo := newTestBot(t)
	in := strings.NewReader("hello\nadd John 1234567890\nall\nexit\nhello\n")
	var out bytes.Buffer

	require.NoError(t, b.Run(context.Background(), in, &out))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Welcome to the assistant bot!\n"))
	assert.Contains(t, got, "Enter a command: How can I help you?\n")
	assert.Contains(t, got, "Contact added.\n")
	assert.Contains(t, got, "Contact name: John; Phones: 1234567890; Birthday: No birthday\n")
	assert.True(t, strings.HasSuffix(got, "Saved.\nGood bye!\n"))
	assert.Equal(t, 1, strings.Count(got, "How can I help you?"), "input after exit is ignored")
	assert.Equal(t, 1, repo.saved)
}

func TestRun_EOFSaves(t *testing.T) {
	b, repo := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, b.Run(context.Background(), strings.NewReader("add John 1234567890\n"), &out))
	assert.Equal(t, 1, repo.saved)
	assert.True(t, strings.HasSuffix(out.String(), "Saved.\nGood bye!\n"))
}

func TestRun_CancelSaves(t *testing.T) {
	b, repo := newTestBot(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var out bytes.Buffer
	go func() { done <- b.Run(ctx, pr, &out) }()

	_, err := pw.Write([]byte("add John 1234567890\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, repo.saved)
}

func TestRun_SaveFailureOnEOF(t *testing.T) {
	b, repo := newTestBot(t)
	repo.saveErr = errors.New("disk full")
	var out bytes.Buffer

	err := b.Run(context.Background(), strings.NewReader(""), &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Something went wrong: save address book: disk full")
}

func TestRun_OversizedLineDoesNotEndSession(t *testing.T) {
	b, repo := newTestBot(t)
	huge := strings.Repeat("x", 70_000)
	in := strings.NewReader("add John 1234567890\n" + huge + "\nadd Jane 9876543210\n")
	var out bytes.Buffer

	require.NoError(t, b.Run(context.Background(), in, &out))

	assert.Contains(t, out.String(), "Invalid command.\n")
	assert.NotContains(t, out.String(), huge)
	_, ok := b.Book().Find("Jane")
	assert.True(t, ok, "commands after a long line still run")
	assert.Equal(t, 1, repo.saved)
}

func TestRun_CRLFAndUnterminatedLastLine(t *testing.T) {
	b, _ := newTestBot(t)
	var out bytes.Buffer

	require.NoError(t, b.Run(context.Background(), strings.NewReader("add John 1234567890\r\nadd Jane 9876543210"), &out))

	john, ok := b.Book().Find("John")
	require.True(t, ok)
	assert.Equal(t, "1234567890", john.Phones()[0].String())
	_, ok = b.Book().Find("Jane")
	assert.True(t, ok)
}

func TestRun_ExitReleasesReader(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 20; i++ {
		b, _ := newTestBot(t)
		require.NoError(t, b.Run(context.Background(), strings.NewReader("exit\nhello\n"), io.Discard))
	}
	assert.Eventually(t, func() bool { return runtime.NumGoroutine() <= before+2 },
		2*time.Second, 10*time.Millisecond, "reader goroutines should exit after close")
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRun_ReadErrorSavesAndReturns(t *testing.T) {
	b, repo := newTestBot(t)
	readErr := errors.New("terminal gone")

	err := b.Run(context.Background(), failingReader{err: readErr}, io.Discard)
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, repo.saved)
}
