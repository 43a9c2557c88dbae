package models

import "time"

// AuthContext is a short lived GitHub credential scoped to one installation.
type AuthContext struct {
	Token          string
	ExpiresAt      time.Time
	InstallationID int64
}

// Expired reports whether the token is unusable at now, keeping margin
// ahead of the real expiry. A zero ExpiresAt never expires.
func (a AuthContext) Expired(now time.Time, margin time.Duration) bool {
	if a.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(a.ExpiresAt.Add(-margin))
}
