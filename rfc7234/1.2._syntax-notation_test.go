package rfc7234

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTTPDate(t *testing.T) {
	t.Parallel()

	date, err := ParseHTTPDate("Sun, 06 Nov 1994 08:49:37 GMT")
	require.NoError(t, err)
	assert.True(t, date.Equal(time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)))
}

func TestParseHTTPDateNotCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"zone only", "GMT"},
		{"empty", ""},
		{"javascript date string", "Sun Nov 06 1994 02:49:37 GMT-0600 (CST)"},
		{"rfc850", "Sunday, 06-Nov-94 08:49:37 GMT"},
		{"asctime", "Sun Nov  6 08:49:37 1994"},
		{"wrong day-name", "Mon, 06 Nov 1994 08:49:37 GMT"},
		{"lower case zone", "Sun, 06 Nov 1994 08:49:37 gmt"},
		{"unpadded day", "Sun, 6 Nov 1994 08:49:37 GMT"},
		{"numeric zone", "Sun, 06 Nov 1994 08:49:37 +0000"},
		{"extra whitespace", "Sun,  06 Nov 1994 08:49:37 GMT"},
		{"day out of range", "Wed, 31 Feb 2021 08:49:37 GMT"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseHTTPDate(tt.input)
			assert.Error(t, err)
		})
	}
}
