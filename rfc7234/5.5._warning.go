package rfc7234

import (
	"regexp"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// §  5.5.  Warning
// §
// §     The "Warning" header field is used to carry additional information
// §     about the status or transformation of a message that might not be
// §     reflected in the status code.  This information is typically used to
// §     warn about possible incorrectness introduced by caching operations or
// §     transformations applied to the payload of the message.
// §
// §     Warnings can be used for other purposes, both cache-related and
// §     otherwise.  The use of a warning, rather than an error status code,
// §     distinguishes these responses from true failures.
// §
// §     Warning header fields can in general be applied to any message,
// §     however some warn-codes are specific to caches and can only be
// §     applied to response messages.
// §
// §       Warning       = 1#warning-value
// §
// §       warning-value = warn-code SP warn-agent SP warn-text
// §                                             [ SP warn-date ]
// §
// §       warn-code  = 3DIGIT
// §       warn-agent = ( uri-host [ ":" port ] ) / pseudonym
// §                       ; the name or pseudonym of the server adding
// §                       ; the Warning header field, for use in debugging
// §                       ; a single "-" is recommended when agent unknown
// §       warn-text  = quoted-string
// §       warn-date  = DQUOTE HTTP-date DQUOTE
//
// The warn-text does not support quoted-pairs: it ends at the first DQUOTE.
// The warn-agent is limited to the characters of host names, ports and
// bracketed IP literals.
var warningValueRegexp = regexp.MustCompile(`^(\d{3}) ([A-Za-z0-9.\-/:\[\]]+) "(.+?)"(?: "(.+?)")?$`)

// Warning is a single parsed warning-value.
// Fields are nil if the value could not be parsed.
type Warning struct {
	// The warn-code.
	// Any three digit code is accepted, see Codes for the registered ones.
	Code *Code `json:"code"`
	// The warn-agent, "-" if the agent is unknown.
	Agent *string `json:"agent"`
	// The warn-text, without the surrounding quotes.
	Text *string `json:"text"`
	// The warn-date.
	// Nil if the warning-value has no warn-date, or if the warn-date is not
	// a canonical HTTP-date.
	Date *time.Time `json:"date"`

	// the unparsed header value
	rawValue string
	// the unparsed warn-date, empty if absent
	rawDate string
}

// Valid reports whether the warning-value conforms to the grammar, including
// the HTTP-date format of the warn-date if one is present.
func (w Warning) Valid() bool {
	return !w.isZero() && (w.rawDate == "" || w.Date != nil)
}

func (w Warning) isZero() bool {
	return w.Code == nil && w.Agent == nil && w.Text == nil && w.Date == nil
}

func parseWarningValue(value string) Warning {
	warning := Warning{rawValue: value}
	matches := warningValueRegexp.FindStringSubmatch(value)
	if matches == nil {
		log.Trace().Str("value", value).Msg("Warning value does not match grammar")
		return warning
	}

	// the regexp guarantees three digits
	code, _ := strconv.Atoi(matches[1])
	warnCode := Code(code)
	warning.Code = &warnCode
	warning.Agent = &matches[2]
	warning.Text = &matches[3]

	if rawDate := matches[4]; rawDate != "" {
		warning.rawDate = rawDate
		if date, err := ParseHTTPDate(rawDate); err == nil {
			warning.Date = &date
		} else {
			log.Trace().Err(err).Str("value", value).Msg("Invalid warn-date")
		}
	}

	return warning
}

// §     Multiple warnings can be generated in a response (either by the
// §     origin server or by a cache), including multiple warnings with the
// §     same warn-code number that only differ in warn-text.
// §
// §     A user agent that receives one or more Warning header fields SHOULD
// §     inform the user of as many of them as possible, in the order that
// §     they appear in the message.
// §
// §     [...]
// §
// §     If a recipient receives one or more warning-values containing a
// §     warn-date, and that warn-date is different from the Date value in the
// §     same message, that recipient MUST exclude those warning-values before
// §     storing, forwarding, or using the message.  This allows recipients to
// §     exclude warning-values that were improperly retained after a cache
// §     validation.

// MustExclude reports whether the warning-value has to be excluded from a
// message with the given Date header value.
// Warnings without a valid warn-date are never excluded.
func (w Warning) MustExclude(messageDate time.Time) bool {
	return w.Date != nil && !w.Date.Equal(messageDate)
}
