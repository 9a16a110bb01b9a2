package primitive

import (
	"strings"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
)

// TimestampLayout always carries microseconds and a numeric UTC offset.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// EncodeTimestamp renders t in UTC, e.g. 2013-02-01T20:53:32.486000+00:00.
// Digits below the microsecond are dropped.
func EncodeTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// DecodeTimestamp parses an ISO-8601 timestamp. Offsets are honoured and the
// result is normalised to UTC; timestamps without an offset are taken as UTC.
func DecodeTimestamp(v any) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, &protocol.TypeMismatchError{Expected: "string", Actual: protocol.JSONKind(v)}
	}
	raw := strings.TrimSpace(s)
	var lastErr error
	for _, layout := range zonedLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	for _, layout := range naiveLayouts {
		t, err := time.ParseInLocation(layout, raw, time.UTC)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, &protocol.MalformedTimestampError{Received: s, Err: lastErr}
}
