// Package rfc7234 parses the Warning header field as defined in
// RFC 7234, Section 5.5.
//
// Section text is quoted in the source (lines starting with §) next to the code
// implementing it. RFC 9111 obsoletes the Warning header field, but it is still
// generated by origins and intermediaries in the wild.
package rfc7234

import "net/http"

// Parse parses a single warning-value.
// It never fails: a value that does not conform to the grammar results in a
// Warning with all fields nil, for which Valid returns false.
func Parse(value string) Warning {
	return parseWarningValue(value)
}

// Values parses all Warning field lines of the given header.
// Every field line is treated as one warning-value; field values holding
// several comma-separated warning-values are not split.
// It returns nil if the header has no Warning field.
func Values(header http.Header) []Warning {
	lines := header.Values("Warning")
	if len(lines) == 0 {
		return nil
	}
	warnings := make([]Warning, 0, len(lines))
	for _, line := range lines {
		warnings = append(warnings, parseWarningValue(line))
	}
	return warnings
}
