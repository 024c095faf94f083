package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/omarshaarawi/pgapool/internal/config"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const userAgent = "pgapool/1.0"

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	Config     config.ESPNAPI
}

func NewClient(cfg config.ESPNAPI) *Client {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 3
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "espn",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Only upstream trouble should open the breaker, not a schema change.
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrNetwork)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		breaker:    breaker,
		Config:     cfg,
	}
}

func (c *Client) Get(url string, params, headers map[string]string, result interface{}) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.get(url, params, headers, result)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return err
}

func (c *Client) get(url string, params, headers map[string]string, result interface{}) error {
	if err := c.limiter.Wait(context.Background()); err != nil {
		return fmt.Errorf("%w: waiting for rate limiter: %w", ErrNetwork, err)
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %w", ErrNetwork, err)
	}

	q := req.URL.Query()
	for key, value := range params {
		values := strings.Split(value, ",")
		for _, v := range values {
			q.Add(key, strings.TrimSpace(v))
		}
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: making request: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code: %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %w", ErrNetwork, err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrParse, err)
	}

	return nil
}
