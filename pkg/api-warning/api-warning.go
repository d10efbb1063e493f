// Package apiwarning parses API warnings: Warning header field values whose
// warn-text carries structured deprecation and maintenance details.
//
// An API warning looks like this:
//
//	Warning: 299 api.example.com "300, Deprecation, https://api.example.com/details/300.json, 2017-12-12T23:28:18.508Z" "Wed, 21 Oct 2015 07:28:00 GMT"
//
// The warn-text consists of the API code, a short text, a URI pointing to
// further details and the time of the event, separated by ", ".
package apiwarning

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/always-cache/warning-header/rfc7234"

	"github.com/rs/zerolog/log"
)

var warnTextRegexp = regexp.MustCompile(`^(\d{3}), (.+?), (.+?), (\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z)$`)

// Warning is a warning-value with API warning details.
type Warning struct {
	rfc7234.Warning
	API Details `json:"api"`
}

// Details are the API warning details parsed from the warn-text.
// Fields are nil if the warn-text is not an API warning.
type Details struct {
	Code *Code   `json:"code"`
	Text *string `json:"text"`
	// Not validated as URI.
	DetailURI *string `json:"detailUri"`
	// Nil if the timestamp is not in canonical form.
	Date *time.Time `json:"date"`

	// the unparsed timestamp
	rawDate string
}

func (d Details) isZero() bool {
	return d.Code == nil && d.Text == nil && d.DetailURI == nil && d.Date == nil
}

// Valid reports whether the value is a valid warning-value and its warn-text
// is a valid API warning.
// Unlike the warn-date, the API warning timestamp is mandatory.
func (w Warning) Valid() bool {
	return w.Warning.Valid() && !w.API.isZero() && w.API.Date != nil
}

// Parse parses a warning-value and the API warning in its warn-text.
// Like rfc7234.Parse it never fails; check Valid.
func Parse(value string) Warning {
	return fromWarning(rfc7234.Parse(value))
}

// Values parses all Warning field lines of the given header as API warnings.
// It returns nil if the header has no Warning field.
func Values(header http.Header) []Warning {
	values := rfc7234.Values(header)
	if values == nil {
		return nil
	}
	warnings := make([]Warning, 0, len(values))
	for _, value := range values {
		warnings = append(warnings, fromWarning(value))
	}
	return warnings
}

func fromWarning(warning rfc7234.Warning) Warning {
	return Warning{
		Warning: warning,
		API:     parseDetails(warning.Text),
	}
}

func parseDetails(warnText *string) Details {
	var details Details
	if warnText == nil {
		return details
	}
	matches := warnTextRegexp.FindStringSubmatch(*warnText)
	if matches == nil {
		log.Trace().Str("text", *warnText).Msg("Warn-text is not an API warning")
		return details
	}

	// the regexp guarantees three digits
	code, _ := strconv.Atoi(matches[1])
	apiCode := Code(code)
	details.Code = &apiCode
	details.Text = &matches[2]
	details.DetailURI = &matches[3]
	details.rawDate = matches[4]

	if date, err := ParseTimestamp(details.rawDate); err == nil {
		details.Date = &date
	} else {
		log.Trace().Err(err).Str("text", *warnText).Msg("Invalid API warning timestamp")
	}

	return details
}
