package viking

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"
)

// connectAttempts bounds one connect sequence; the final attempt's error is
// surfaced to the caller as-is.
const connectAttempts = 3

// backoffCap is the longest wait between two attempts, in backoff units.
const backoffCap = 8

type connState int

const (
	stateUnconnected connState = iota
	stateConnecting
	stateConnected
	stateFailed
)

// Conn hands out a lazily established Client. The first Acquire drives the
// connect sequence; once a handshake succeeded the same client is returned
// from then on and failures on use surface at the call site. While an
// attempt sequence is in flight, concurrent callers block and share its
// outcome. A sequence that exhausted its attempts leaves the facade failed;
// the next Acquire starts a fresh sequence.
type Conn struct {
	url    string
	apiKey string

	backoffUnit time.Duration
	clientOpts  []ClientOption

	mu     sync.Mutex
	state  connState
	done   chan struct{}
	client *Client
	err    error
}

// ConnOption customizes a Conn.
type ConnOption func(*Conn)

// WithConnectBackoff overrides the base wait unit between connect attempts.
func WithConnectBackoff(unit time.Duration) ConnOption {
	return func(c *Conn) { c.backoffUnit = unit }
}

// WithClientOptions forwards options to every client the facade constructs.
func WithClientOptions(opts ...ClientOption) ConnOption {
	return func(c *Conn) { c.clientOpts = append(c.clientOpts, opts...) }
}

// NewConn builds the facade for the given endpoint. No network activity
// happens until the first Acquire.
func NewConn(url, apiKey string, opts ...ConnOption) *Conn {
	ret := &Conn{url: url, apiKey: apiKey, backoffUnit: time.Second}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// URL returns the endpoint this facade connects to.
func (c *Conn) URL() string {
	return c.url
}

// Acquire returns the established client, connecting on first use.
func (c *Conn) Acquire(ctx context.Context) (*Client, error) {
	for {
		c.mu.Lock()
		switch c.state {
		case stateConnected:
			client := c.client
			c.mu.Unlock()
			return client, nil
		case stateConnecting:
			done := c.done
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			c.mu.Lock()
			client, err := c.client, c.err
			c.mu.Unlock()
			if err != nil {
				return nil, err
			}
			if client != nil {
				return client, nil
			}
			// The observed sequence was superseded; evaluate the state again.
		default:
			done := make(chan struct{})
			c.done = done
			c.state = stateConnecting
			c.err = nil
			c.mu.Unlock()

			client, err := c.connect(ctx)

			c.mu.Lock()
			if err != nil {
				c.state = stateFailed
				c.err = err
			} else {
				c.state = stateConnected
				c.client = client
			}
			c.mu.Unlock()
			close(done)
			return client, err
		}
	}
}

// connect runs one bounded attempt sequence with exponential backoff between
// attempts. When all attempts fail the last error is returned unwrapped.
func (c *Conn) connect(ctx context.Context) (*Client, error) {
	var lastErr error
	for attempt := 0; attempt < connectAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.backoffUnit
			if limit := backoffCap * c.backoffUnit; delay > limit {
				delay = limit
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		slog.Info("connecting to OpenViking", "url", c.url, "attempt", attempt+1)
		client := NewClient(c.url, c.apiKey, c.clientOpts...)
		if err := client.Initialize(ctx); err != nil {
			lastErr = err
			continue
		}
		return client, nil
	}
	return nil, lastErr
}
