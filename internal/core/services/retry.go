package services

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/logger"
)

const (
	// maxReadAttempts caps list-read retries.
	maxReadAttempts = 3

	// readRetryDelay is the initial delay between read retries.
	// Each subsequent attempt doubles it.
	readRetryDelay = 500 * time.Millisecond
)

// withReadRetry runs a read with bounded exponential backoff on
// transient failures. Mutations must never go through this path: an
// automatic write retry could double-approve or double-dispatch.
func withReadRetry[T any](ctx context.Context, name string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	delay := readRetryDelay
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isTransient(err) {
			return zero, err
		}
		if attempt == maxReadAttempts {
			break
		}

		logger.Warn("%s: transient failure (attempt %d/%d): %v", name, attempt, maxReadAttempts, err)
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return zero, lastErr
}

// isTransient classifies an error as worth retrying: timeouts, dropped
// connections and server-side 5xx responses. Validation and not-found
// errors are never transient.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "status 5"),
		strings.Contains(msg, "timeout"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "eof"):
		return true
	}

	return false
}
