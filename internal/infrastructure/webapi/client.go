// Package webapi implements the plain-HTTP source adapters and the
// shared fetch client they ride on.
package webapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxRetries = 3
	maxBackoff        = 10 * time.Second
	transientPause    = time.Second
	maxBodySize       = 4 << 20
)

// statusError marks a terminal non-200 response.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.status)
}

// Client fetches JSON documents with bounded retries, a politeness rate
// limit, and a circuit breaker so a melting upstream is left alone for
// a while instead of being hammered.
type Client struct {
	http       *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	maxRetries int
	logger     *slog.Logger
}

// NewClient builds a fetch client named after the upstream it guards.
func NewClient(name string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     maxBackoff,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		http:       httpClient,
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
		breaker:    breaker,
		maxRetries: defaultMaxRetries,
		logger:     logger,
	}
}

// GetJSON fetches url and decodes the body into v. Transient failures
// and rate-limit responses are retried with capped exponential backoff;
// any other non-200 status is terminal.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.get(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	return nil
}

// GetBody fetches url and returns the raw response body.
func (c *Client) GetBody(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.fetchOnce(ctx, url)
		})
		if err == nil {
			return body, nil
		}
		lastErr = err

		var se *statusError
		switch {
		case errors.As(err, &se) && se.code == http.StatusTooManyRequests:
			// Rate limited: back off exponentially, capped.
			backoff := min(time.Duration(1<<attempt)*time.Second, maxBackoff)
			if err := sleep(ctx, backoff); err != nil {
				return nil, err
			}
		case errors.As(err, &se):
			// Any other bad status is terminal.
			return nil, err
		case errors.Is(err, gobreaker.ErrOpenState):
			return nil, err
		default:
			c.debug("transient fetch failure", "url", url, "attempt", attempt+1, "error", err)
			if err := sleep(ctx, transientPause); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("fetch %s: %w", url, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "HistoryScanner/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
