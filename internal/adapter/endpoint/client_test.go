package endpoint

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nowplaying-logger/internal/domain/model"
)

func TestDispatchPostsJSONBody(t *testing.T) {
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- r
		bodies <- body
	}))
	defer server.Close()

	client := New(server.URL, 0, nil)
	play := model.NewPlay("Artist - Title", "Indie Pop", time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	client.Dispatch(context.Background(), play)
	require.NoError(t, client.Flush(contextWithTimeout(t, 2*time.Second)))

	req := <-received
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, contentType, req.Header.Get("Content-Type"))
	assert.Empty(t, req.Header.Get("Authorization"))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(<-bodies, &payload))
	assert.Equal(t, map[string]string{
		"song":      "Artist - Title",
		"timestamp": "2024-05-01T12:00:00.000Z",
		"station":   "Indie Pop",
	}, payload)
}

func TestDispatchDoesNotWaitForResponse(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, 0, nil)
	start := time.Now()
	client.Dispatch(context.Background(), model.Play{Song: "x"})
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, client.Flush(ctx), context.DeadlineExceeded)
}

func TestDispatchSurvivesCallerCancellation(t *testing.T) {
	hits := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := New(server.URL, 0, nil)
	client.Dispatch(ctx, model.Play{Song: "x"})
	cancel()

	require.NoError(t, client.Flush(contextWithTimeout(t, 2*time.Second)))
	assert.Len(t, hits, 1)
}

func TestDispatchSwallowsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	url := server.URL
	server.Close()

	client := New(url, time.Second, nil)
	assert.NotPanics(t, func() {
		client.Dispatch(context.Background(), model.Play{Song: "x"})
	})
	assert.NoError(t, client.Flush(contextWithTimeout(t, 2*time.Second)))
}

func TestRepeatedFlushLeavesNoGoroutines(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()

	client := New(server.URL, 0, nil)
	client.Dispatch(context.Background(), model.Play{Song: "x"})

	expired, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, client.Flush(expired), context.Canceled)

	before := runtime.NumGoroutine()
	for i := 0; i < 100; i++ {
		_ = client.Flush(expired)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before+5)

	close(release)
	assert.NoError(t, client.Flush(contextWithTimeout(t, 2*time.Second)))
	assert.NoError(t, client.Flush(contextWithTimeout(t, time.Second)))
}

func TestFlushWithNothingInFlight(t *testing.T) {
	client := New("http://127.0.0.1:1/log", 0, nil)
	expired, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, client.Flush(expired))
}

func contextWithTimeout(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}
