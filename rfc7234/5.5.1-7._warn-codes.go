package rfc7234

import "strconv"

// Code is a warn-code.
type Code int

// §     Warnings are assigned three digit warn-codes.  The first digit
// §     indicates whether the Warning is required to be deleted from a stored
// §     response after validation:
// §
// §     o  1xx warn-codes describe the freshness or validation status of the
// §        response, and so they MUST be deleted by a cache after validation.
// §        They can only be generated by a cache when validating a cached
// §        entry, and MUST NOT be generated in any other situation.
// §
// §     o  2xx warn-codes describe some aspect of the representation that is
// §        not rectified by a validation (for example, a lossy compression of
// §        the representation) and they MUST NOT be deleted by a cache after
// §        validation, unless a full response is sent, in which case they
// §        MUST be.

// Persistent reports whether the code is a 2xx warn-code, i.e. one that
// survives validation of a stored response.
func (c Code) Persistent() bool {
	return c >= 200 && c <= 299
}

const (
	// §  5.5.1.  Warning: 110 - "Response is Stale"
	// §
	// §     A cache SHOULD generate this whenever the sent response is stale.
	ResponseIsStale Code = 110

	// §  5.5.2.  Warning: 111 - "Revalidation Failed"
	// §
	// §     A cache SHOULD generate this when sending a stale response because an
	// §     attempt to validate the response failed, due to an inability to reach
	// §     the server.
	RevalidationFailed Code = 111

	// §  5.5.3.  Warning: 112 - "Disconnected Operation"
	// §
	// §     A cache SHOULD generate this if it is intentionally disconnected from
	// §     the rest of the network for a period of time.
	DisconnectedOperation Code = 112

	// §  5.5.4.  Warning: 113 - "Heuristic Expiration"
	// §
	// §     A cache SHOULD generate this if it heuristically chose a freshness
	// §     lifetime greater than 24 hours and the response's age is greater than
	// §     24 hours.
	HeuristicExpiration Code = 113

	// §  5.5.5.  Warning: 199 - "Miscellaneous Warning"
	// §
	// §     The warning text can include arbitrary information to be presented to
	// §     a human user or logged.  A system receiving this warning MUST NOT
	// §     take any automated action, besides presenting the warning to the
	// §     user.
	MiscellaneousWarning Code = 199

	// §  5.5.6.  Warning: 214 - "Transformation Applied"
	// §
	// §     This Warning code MUST be added by a proxy if it applies any
	// §     transformation to the representation, such as changing the
	// §     content-coding, media-type, or modifying the representation data,
	// §     unless this Warning code already appears in the response.
	TransformationApplied Code = 214

	// §  5.5.7.  Warning: 299 - "Miscellaneous Persistent Warning"
	// §
	// §     The warning text can include arbitrary information to be presented to
	// §     a human user or logged.  A system receiving this warning MUST NOT
	// §     take any automated action.
	MiscellaneousPersistentWarning Code = 299
)

var codeNames = map[Code]string{
	ResponseIsStale:                "RESPONSE_IS_STALE",
	RevalidationFailed:             "REVALIDATION_FAILED",
	DisconnectedOperation:          "DISCONNECTED_OPERATION",
	HeuristicExpiration:            "HEURISTIC_EXPIRATION",
	MiscellaneousWarning:           "MISCELLANEOUS_WARNING",
	TransformationApplied:          "TRANSFORMATION_APPLIED",
	MiscellaneousPersistentWarning: "MISCELLANEOUS_PERSISTENT_WARNING",
}

var codeTexts = map[Code]string{
	ResponseIsStale:                "Response is Stale",
	RevalidationFailed:             "Revalidation Failed",
	DisconnectedOperation:          "Disconnected Operation",
	HeuristicExpiration:            "Heuristic Expiration",
	MiscellaneousWarning:           "Miscellaneous Warning",
	TransformationApplied:          "Transformation Applied",
	MiscellaneousPersistentWarning: "Miscellaneous Persistent Warning",
}

// Codes returns the registered warn-codes by their symbolic name,
// e.g. "RESPONSE_IS_STALE" for 110.
// The returned map is a copy and may be modified by the caller.
func Codes() map[string]Code {
	codes := make(map[string]Code, len(codeNames))
	for code, name := range codeNames {
		codes[name] = code
	}
	return codes
}

// String returns the symbolic name of a registered code,
// or the decimal code otherwise.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Text returns the warn-text the RFC uses for a registered code,
// or an empty string otherwise.
func (c Code) Text() string {
	return codeTexts[c]
}
