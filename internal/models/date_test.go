package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "05/03/2024", d.DMY())

	d, err = ParseDate("2024-03-05T00:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestDateScanAndJSON(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 7, 1, 13, 0, 0, 0, time.UTC)))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-01"`, string(out))

	require.NoError(t, d.Scan([]byte("2023-12-31")))
	assert.Equal(t, "2023-12-31", d.String())

	var empty Date
	out, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestStaffDisplayName(t *testing.T) {
	current := "Alice Current"
	assert.Equal(t, current, PDRecord{StaffNameCurrent: &current, StaffNameSnapshot: "Alice Old"}.StaffDisplayName())
	assert.Equal(t, "Alice Old", PDRecord{StaffNameSnapshot: "Alice Old"}.StaffDisplayName())
	assert.Equal(t, UnknownStaffName, PDRecord{}.StaffDisplayName())
}
