package apiwarning

import (
	"encoding/json"
	"testing"

	"github.com/always-cache/warning-header/rfc7234"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	t.Parallel()

	codes := Codes()
	assert.Equal(t, rfc7234.Codes(), codes.Warning)
	assert.Equal(t, map[string]Code{
		"DEPRECATED":              300,
		"PENDING_DEPRECATION":     310,
		"SCHEDULED_DEPRECATION":   320,
		"NEW_VERSION_AVAILABLE":   400,
		"MAINTENANCE":             500,
		"SCHEDULED_MAINTENANCE":   510,
		"UNSCHEDULED_MAINTENANCE": 520,
		"SERVICE_DEGRADATION":     530,
		"OUTAGE_PARTIAL":          540,
		"OUTAGE_ZONAL":            550,
		"OUTAGE_REGIONAL":         560,
		"OUTAGE_GLOBAL":           570,
	}, codes.API)
}

func TestCodesJSON(t *testing.T) {
	t.Parallel()

	bts, err := json.Marshal(Codes())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"RESPONSE_IS_STALE": 110,
		"REVALIDATION_FAILED": 111,
		"DISCONNECTED_OPERATION": 112,
		"HEURISTIC_EXPIRATION": 113,
		"MISCELLANEOUS_WARNING": 199,
		"TRANSFORMATION_APPLIED": 214,
		"MISCELLANEOUS_PERSISTENT_WARNING": 299,
		"API": {
			"DEPRECATED": 300,
			"PENDING_DEPRECATION": 310,
			"SCHEDULED_DEPRECATION": 320,
			"NEW_VERSION_AVAILABLE": 400,
			"MAINTENANCE": 500,
			"SCHEDULED_MAINTENANCE": 510,
			"UNSCHEDULED_MAINTENANCE": 520,
			"SERVICE_DEGRADATION": 530,
			"OUTAGE_PARTIAL": 540,
			"OUTAGE_ZONAL": 550,
			"OUTAGE_REGIONAL": 560,
			"OUTAGE_GLOBAL": 570
		}
	}`, string(bts))
}

func TestCodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NEW_VERSION_AVAILABLE", NewVersionAvailable.String())
	assert.Equal(t, "OUTAGE_GLOBAL", OutageGlobal.String())
	assert.Equal(t, "301", Code(301).String())
}
