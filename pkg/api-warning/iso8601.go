package apiwarning

import (
	"fmt"
	"time"
)

// timestampLayout is ISO 8601 in UTC with millisecond precision,
// e.g. 2017-12-12T23:28:18.508Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// ParseTimestamp parses an API warning timestamp.
// It returns an error unless formatting the parsed time yields the exact input.
func ParseTimestamp(value string) (time.Time, error) {
	timestamp, err := time.Parse(timestampLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if canonical := timestamp.UTC().Format(timestampLayout); canonical != value {
		return time.Time{}, fmt.Errorf("Timestamp %q is not canonical, expected %q", value, canonical)
	}
	return timestamp, nil
}
