package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()

	tests := []struct {
		name string
		raw  sql.NullString
		want time.Time
	}{
		{name: "null", raw: sql.NullString{}, want: epoch},
		{name: "empty", raw: sql.NullString{String: "", Valid: true}, want: epoch},
		{name: "whitespace", raw: sql.NullString{String: "  ", Valid: true}, want: epoch},
		{name: "garbage", raw: sql.NullString{String: "yesterday", Valid: true}, want: epoch},
		{
			name: "unix seconds",
			raw:  sql.NullString{String: "1714557600", Valid: true},
			want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			raw:  sql.NullString{String: "2024-05-01T12:00:00+02:00", Valid: true},
			want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 nano",
			raw:  sql.NullString{String: "2024-05-01T10:00:00.123456789Z", Valid: true},
			want: time.Date(2024, 5, 1, 10, 0, 0, 123456789, time.UTC),
		},
		{
			name: "sqlite datetime",
			raw:  sql.NullString{String: "2024-05-01 10:00:00", Valid: true},
			want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseTimestamp(tt.raw)), "got %s", ParseTimestamp(tt.raw))
		})
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 42, time.FixedZone("CEST", 2*3600))

	formatted := FormatTimestamp(ts)

	assert.Equal(t, "2024-05-01T10:30:00.000000042Z", formatted)
	assert.True(t, ts.Equal(ParseTimestamp(sql.NullString{String: formatted, Valid: true})))
}
