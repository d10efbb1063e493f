package apiwarning

import (
	"encoding/json"
	"strconv"

	"github.com/always-cache/warning-header/rfc7234"
)

// Code is the code of an API warning, carried in the warn-text.
type Code int

const (
	Deprecated             Code = 300
	PendingDeprecation     Code = 310
	ScheduledDeprecation   Code = 320
	NewVersionAvailable    Code = 400
	Maintenance            Code = 500
	ScheduledMaintenance   Code = 510
	UnscheduledMaintenance Code = 520
	ServiceDegradation     Code = 530
	OutagePartial          Code = 540
	OutageZonal            Code = 550
	OutageRegional         Code = 560
	OutageGlobal           Code = 570
)

var codeNames = map[Code]string{
	Deprecated:             "DEPRECATED",
	PendingDeprecation:     "PENDING_DEPRECATION",
	ScheduledDeprecation:   "SCHEDULED_DEPRECATION",
	NewVersionAvailable:    "NEW_VERSION_AVAILABLE",
	Maintenance:            "MAINTENANCE",
	ScheduledMaintenance:   "SCHEDULED_MAINTENANCE",
	UnscheduledMaintenance: "UNSCHEDULED_MAINTENANCE",
	ServiceDegradation:     "SERVICE_DEGRADATION",
	OutagePartial:          "OUTAGE_PARTIAL",
	OutageZonal:            "OUTAGE_ZONAL",
	OutageRegional:         "OUTAGE_REGIONAL",
	OutageGlobal:           "OUTAGE_GLOBAL",
}

// String returns the symbolic name of a registered code,
// or the decimal code otherwise.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// Registry holds the codes an API warning can carry:
// the warn-codes of the Warning header field and the API codes of the warn-text.
type Registry struct {
	Warning map[string]rfc7234.Code
	API     map[string]Code
}

// Codes returns the registered codes by their symbolic name.
// The returned maps are copies and may be modified by the caller.
func Codes() Registry {
	api := make(map[string]Code, len(codeNames))
	for code, name := range codeNames {
		api[name] = code
	}
	return Registry{
		Warning: rfc7234.Codes(),
		API:     api,
	}
}

// MarshalJSON encodes the registry as the warn-codes with the API codes
// nested under "API".
func (r Registry) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Warning)+1)
	for name, code := range r.Warning {
		m[name] = code
	}
	m["API"] = r.API
	return json.Marshal(m)
}
