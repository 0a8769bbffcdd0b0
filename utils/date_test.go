package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomDate(t *testing.T) {
	d, err := ParseCustomDate("2026-09-04")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-04", d.String())
	assert.Equal(t, time.Friday, d.Weekday())
}

func TestParseCustomDateInvalid(t *testing.T) {
	_, err := ParseCustomDate("04/09/2026")
	assert.Error(t, err)

	_, err = ParseCustomDate("2026-13-40")
	assert.Error(t, err)
}

func TestCustomDateJSONRoundTrip(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-09-04"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-04"`, string(out))
}

func TestCustomDateJSONNull(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestCustomDateScanString(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan("2026-09-04"))
	assert.Equal(t, "2026-09-04", d.String())
}

func TestNewCustomDateDropsTime(t *testing.T) {
	d := NewCustomDate(time.Date(2026, 9, 4, 17, 45, 12, 0, time.UTC))
	assert.Equal(t, "2026-09-04", d.String())
	assert.Equal(t, 0, d.Hour())
}
