package loki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureServer(t *testing.T, status int) (*httptest.Server, *PushRequest) {
	t.Helper()
	var got PushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/loki/api/v1/push", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestNewClient_EmptyURL(t *testing.T) {
	_, err := NewClient("  ", nil)
	assert.Error(t, err)
}

func TestPushEventJSON_Labels(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, err := NewClient(srv.URL+"/", nil)
	require.NoError(t, err)

	raw := []byte(`{"command":"add-birthday","outcome":"validation_error","createdAt":"2024-06-10T12:00:00Z"}`)
	require.NoError(t, c.PushEventJSON(context.Background(), raw))

	require.Len(t, got.Streams, 1)
	s := got.Streams[0]
	assert.Equal(t, map[string]string{"job": "contact-assistant", "command": "add-birthday", "outcome": "validation_error"}, s.Stream)
	require.Len(t, s.Values, 1)
	want := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC).UnixNano()
	assert.Equal(t, []string{strconv.FormatInt(want, 10), string(raw)}, s.Values[0])
}

func TestPushEventJSON_Unparseable(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	require.NoError(t, c.PushEventJSON(context.Background(), []byte("not json")))
	require.Len(t, got.Streams, 1)
	assert.Equal(t, map[string]string{"job": "contact-assistant"}, got.Streams[0].Stream)
	assert.Equal(t, "not json", got.Streams[0].Values[0][1])
}

func TestPushEvent_SanitizesLabels(t *testing.T) {
	srv, got := captureServer(t, http.StatusNoContent)
	c, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	err = c.PushEvent(context.Background(), time.Unix(0, 42), "line", map[string]string{"command": "del cont!", "empty": "  "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"job": "contact-assistant", "command": "del_cont_"}, got.Streams[0].Stream)
	assert.Equal(t, []string{"42", "line"}, got.Streams[0].Values[0])
}

func TestPushEvent_Non2xx(t *testing.T) {
	srv, _ := captureServer(t, http.StatusBadRequest)
	c, err := NewClient(srv.URL, nil)
	require.NoError(t, err)

	err = c.PushEvent(context.Background(), time.Now(), "line", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
