package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const userAgent = "puckdata/1.0 (+https://github.com/jstittsworth/puckdata)"

// StatusError is returned when an upstream responds with a non-2xx
// status. The numeric code is preserved for the caller.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d for %s", e.Status, e.URL)
}

// Client issues single-attempt GET requests against one upstream base
// URL. There is no retry and no backoff; a failed call fails the
// operation that issued it. A rate limiter and circuit breaker guard
// the upstream, neither re-attempts a request.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

func NewClient(name, baseURL string, timeout time.Duration, rps, breakerThreshold int, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if rps <= 0 {
		rps = 10
	}
	if breakerThreshold <= 0 {
		breakerThreshold = 5
	}
	threshold := uint32(breakerThreshold)
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	return &Client{
		name:    name,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		breaker: breaker,
		logger:  logger,
	}
}

// Get fetches baseURL+path and decodes the JSON body into target.
func (c *Client) Get(ctx context.Context, path string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	url := c.baseURL + path
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.doGet(ctx, url, target)
	})
	return err
}

func (c *Client) doGet(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warnf("%s returned %d for %s", c.name, resp.StatusCode, url)
		return &StatusError{Status: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s response: %w", c.name, err)
	}
	return nil
}
