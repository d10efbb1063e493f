package rfc7234

import (
	"fmt"
	"net/http"
	"time"
)

// §  1.2.  Syntax Notation
// §
// §     This specification uses the Augmented Backus-Naur Form (ABNF)
// §     notation of [RFC5234] with a list extension, defined in Section 7 of
// §     [RFC7230], that allows for compact definition of comma-separated
// §     lists using a '#' operator (similar to how the '*' operator indicates
// §     repetition).  Appendix B describes rules imported from other
// §     documents.  Appendix C shows the collected grammar with all list
// §     operators expanded to standard ABNF notation.

// This section is from the HTTP semantics specification (RFC7231), not the cache specification
//
// §  7.1.1.1.  Date/Time Formats
// §
// §     Prior to 1995, there were three different formats commonly used by
// §     servers to communicate timestamps.  For compatibility with old
// §     implementations, all three are defined here.  The preferred format is
// §     a fixed-length and single-zone subset of the date and time
// §     specification used by the Internet Message Format [RFC5322].
// §
// §       HTTP-date    = IMF-fixdate / obs-date
// §
// §     An example of the preferred format is
// §
// §       Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
// §
// §     [...]
// §
// §     A sender MUST NOT generate additional whitespace in an HTTP-date
// §     beyond that specifically included as SP in the grammar.
//
// A warn-date is only accepted in its canonical IMF-fixdate form.
// Obsolete formats as well as dates with a wrong day-name or unpadded fields
// are rejected, since they cannot be reproduced by formatting the parsed time.

// ParseHTTPDate parses an IMF-fixdate.
// It returns an error unless formatting the parsed time yields the exact input.
func ParseHTTPDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(http.TimeFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	if canonical := date.UTC().Format(http.TimeFormat); canonical != dateStr {
		return time.Time{}, fmt.Errorf("Date %q is not an IMF-fixdate, expected %q", dateStr, canonical)
	}
	return date, nil
}
