package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"example/room-image-gen/internal/gemini"
)

// RetryPolicy bounds the attempts made for one entry and the pause taken
// after each kind of failure.
type RetryPolicy struct {
	MaxAttempts      int
	RateLimitDelay   time.Duration
	ServerErrorDelay time.Duration
	NoImageDelay     time.Duration
	ErrorDelay       time.Duration
	// Timeout caps a single request.
	Timeout time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:      3,
	RateLimitDelay:   10 * time.Second,
	ServerErrorDelay: 5 * time.Second,
	NoImageDelay:     2 * time.Second,
	ErrorDelay:       3 * time.Second,
	Timeout:          120 * time.Second,
}

// backoff reports how long to wait before retrying after err, and whether a
// retry makes sense at all. Client errors other than 429 are final.
func (p RetryPolicy) backoff(err error) (time.Duration, bool) {
	var apiErr *gemini.APIError
	var noImage *gemini.NoImageError
	switch {
	case errors.As(err, &apiErr):
		switch {
		case apiErr.RateLimited():
			return p.RateLimitDelay, true
		case apiErr.ServerError():
			return p.ServerErrorDelay, true
		}
		return 0, false
	case errors.As(err, &noImage):
		return p.NoImageDelay, true
	}
	return p.ErrorDelay, true
}

// failureDetail is the text recorded for an entry that gave up on err.
func failureDetail(err error) string {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("HTTP %d", apiErr.StatusCode)
	}
	return err.Error()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
