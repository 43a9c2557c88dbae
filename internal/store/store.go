// Package store holds what the event store implementations share.
package store

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrDuplicateEvent is returned by Insert when an event with the same GitHub
// ID already exists.
var ErrDuplicateEvent = errors.New("store: duplicate rule suite event")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

// ParseTimestamp reads a stored timestamp column. NULL, empty and
// unparseable values read as the Unix epoch; integers are Unix seconds.
func ParseTimestamp(raw sql.NullString) time.Time {
	value := strings.TrimSpace(raw.String)
	if !raw.Valid || value == "" {
		return time.Unix(0, 0).UTC()
	}

	if seconds, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC()
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}

	return time.Unix(0, 0).UTC()
}

// FormatTimestamp is the inverse of ParseTimestamp for text columns.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
