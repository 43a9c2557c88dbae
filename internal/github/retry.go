package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const (
	maxRetries = 5
	baseDelay  = 1 * time.Second
)

// withRetry runs call until it succeeds, fails with something other than a
// rate limit, or maxRetries is exhausted. Waits honour the reset time GitHub
// reports and fall back to exponential backoff.
func withRetry[T any](ctx context.Context, call func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, resp, err := call()
		if err == nil {
			return result, resp, nil
		}

		waitDuration, ok := rateLimitWait(err)
		if !ok {
			return zero, resp, err
		}

		if attempt == maxRetries {
			return zero, resp, fmt.Errorf("max retries reached: %w", err)
		}

		if waitDuration <= 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}

func rateLimitWait(err error) (time.Duration, bool) {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return time.Until(rateLimitErr.Rate.Reset.Time), true
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		if abuseErr.RetryAfter != nil {
			return *abuseErr.RetryAfter, true
		}
		return 0, true
	}

	return 0, false
}
