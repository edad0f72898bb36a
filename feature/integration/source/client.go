// Package source fetches the employee data set from the remote HR API.
//
// A fetch is a single GET against the configured view. Transport errors,
// non-2xx statuses and undecodable bodies all count as a failed attempt; the
// client waits a fixed delay between attempts and gives up with an
// UnavailableError once MaxAttempts is exhausted.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hr-sync/feature/integration/models"

	"go.uber.org/zap"
)

// Client is the contract for fetching the full employee data set.
type Client interface {
	// FetchColaboradores returns the raw records in source order.
	// It fails with *UnavailableError only after all attempts are exhausted.
	FetchColaboradores(ctx context.Context) ([]models.Colaborador, error)
}

// UnavailableError signals that every fetch attempt failed.
// Err carries the last underlying failure.
type UnavailableError struct {
	Attempts int
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("source unavailable after %d attempts: %v", e.Attempts, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// HTTPClient fetches colaborador records over HTTP.
type HTTPClient struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger

	// sleep is swapped out in tests to avoid real delays.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient creates an HTTP source client from explicit configuration.
func NewClient(cfg Config, logger *zap.Logger) *HTTPClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &HTTPClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
		sleep:  sleepContext,
	}
}

// FetchColaboradores implements Client.
func (c *HTTPClient) FetchColaboradores(ctx context.Context) ([]models.Colaborador, error) {
	attempts := c.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := time.Duration(c.cfg.RetryDelaySeconds) * time.Second

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		c.logger.Info("Fetching colaboradores", zap.Int("attempt", attempt))

		records, err := c.fetchOnce(ctx)
		if err == nil {
			c.logger.Info("Source returned colaboradores", zap.Int("count", len(records)))
			return records, nil
		}

		lastErr = err
		c.logger.Error("Fetch attempt failed", zap.Int("attempt", attempt), zap.Error(err))

		if attempt == attempts {
			break
		}
		if err := c.sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	return nil, &UnavailableError{Attempts: attempts, Err: lastErr}
}

func (c *HTTPClient) fetchOnce(ctx context.Context) ([]models.Colaborador, error) {
	url := fmt.Sprintf("%s/data?view=%s", c.cfg.BaseURL, c.cfg.View)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.cfg.AuthHeader)
	req.Header.Set("Cookie", c.cfg.Cookie)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var records []models.Colaborador
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return records, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
