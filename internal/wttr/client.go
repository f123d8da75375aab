package wttr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"ceefax/internal/log"
)

const DefaultBaseURL = "https://wttr.in"

var (
	ErrCircuitOpen   = errors.New("circuit breaker open")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// BackoffConfig controls exponential backoff between attempts.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// ClientOptions configures a LiveClient. Zero values fall back to defaults.
type ClientOptions struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Backoff           BackoffConfig
	HTTPClient        *http.Client
}

// LiveClient talks to wttr.in with pacing, retries and a circuit breaker.
type LiveClient struct {
	baseURL string
	client  *http.Client
	backoff BackoffConfig
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

func NewLiveClient(opts ClientOptions) *LiveClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 4
	}
	if opts.Backoff.InitialInterval <= 0 {
		opts.Backoff.InitialInterval = 500 * time.Millisecond
	}
	if opts.Backoff.MaxInterval <= 0 {
		opts.Backoff.MaxInterval = 4 * time.Second
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wttr",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &LiveClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client:  client,
		backoff: opts.Backoff,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		circuit: cb,
	}
}

// Fetch implements Provider.
func (c *LiveClient) Fetch(ctx context.Context, city string) (*Report, error) {
	u := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(city))

	started := time.Now()
	body, err := c.doRequest(ctx, u)
	if err != nil {
		return nil, err
	}
	log.Debugw("wttr response", "city", city, "bytes", len(body), "latency", time.Since(started).String())

	return DecodeReport(body)
}

// doRequest runs the GET with pacing, circuit breaking and exponential
// backoff. Only transport errors, 429 and 5xx are retried.
func (c *LiveClient) doRequest(ctx context.Context, u string) ([]byte, error) {
	if c.backoff.MaxRetries < 0 {
		return nil, errInvalidConfig
	}

	var attempt int
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
			if err != nil {
				return nil, err
			}
			req.Header.Set("User-Agent", "curl/8.0")
			resp, err := c.client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return nil, &StatusError{Code: resp.StatusCode}
			}
			return io.ReadAll(resp.Body)
		})
		if err == nil {
			return result.([]byte), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !retryable(err) || attempt >= c.backoff.MaxRetries {
			return nil, err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}
		log.Infow("retrying wttr request", "url", u, "attempt", attempt+1, "delay", delay.String(), "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		attempt++
	}
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code == http.StatusTooManyRequests || se.Code >= 500
	}
	return true
}
