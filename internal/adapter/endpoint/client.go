package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"nowplaying-logger/internal/domain/model"
	"nowplaying-logger/internal/domain/ports"
)

// contentType is what a browser attaches to a fetch with a string body.
const contentType = "text/plain;charset=UTF-8"

// Client posts plays to the log endpoint without waiting for the outcome.
type Client struct {
	endpointURL string
	httpClient  *http.Client
	logger      ports.Logger

	mu      sync.Mutex
	pending int
	idle    chan struct{} // closed when pending drops to zero
}

var _ ports.PlaySink = (*Client)(nil)

// New creates a Client. A zero timeout leaves connection lifetime to the transport.
func New(endpointURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Dispatch starts the POST in the background and returns immediately.
// Failures are only visible in the debug log.
func (c *Client) Dispatch(ctx context.Context, play model.Play) {
	body, err := json.Marshal(play)
	if err != nil {
		c.debug(ctx, "marshal play", "error", err)
		return
	}

	ctx = context.WithoutCancel(ctx)
	c.acquire()
	go func() {
		defer c.release()
		c.send(ctx, body)
	}()
}

// Flush waits for in-flight sends or until ctx is done, whichever comes first.
// It may be called any number of times.
func (c *Client) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.pending == 0 {
		c.mu.Unlock()
		return nil
	}
	idle := c.idle
	c.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) acquire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == 0 {
		c.idle = make(chan struct{})
	}
	c.pending++
}

func (c *Client) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending--
	if c.pending == 0 {
		close(c.idle)
	}
}

func (c *Client) send(ctx context.Context, body []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		c.debug(ctx, "create log request", "error", err)
		return
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.debug(ctx, "post play", "error", err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	c.debug(ctx, "play posted", "status", resp.StatusCode)
}

func (c *Client) debug(ctx context.Context, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(ctx, msg, args...)
}
