package service

import (
	"context"
	"errors"
)

// Failure classes. Callers wrap the underlying error with one of these so
// the orchestrator can report which stage broke.
var (
	ErrCredential    = errors.New("acquiring credentials")
	ErrUpstreamFetch = errors.New("fetching from GitHub")
	ErrStore         = errors.New("event store")
	ErrMessagingSend = errors.New("sending message")
)

// IsRetryable reports whether running the pipeline again may succeed
// without operator action. Credential failures and cancellations are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrCredential) {
		return false
	}
	return errors.Is(err, ErrUpstreamFetch) ||
		errors.Is(err, ErrStore) ||
		errors.Is(err, ErrMessagingSend) ||
		errors.Is(err, context.DeadlineExceeded)
}
