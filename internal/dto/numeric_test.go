package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericAcceptsNumbersAndStrings(t *testing.T) {
	var payload struct {
		A Numeric `json:"a"`
		B Numeric `json:"b"`
		C Numeric `json:"c"`
		D Numeric `json:"d"`
		E Numeric `json:"e"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 1.5, "b": " 12 ", "c": null, "d": ""}`), &payload))

	v, ok := payload.A.Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	n, ok, err := payload.B.Int64()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	assert.False(t, payload.C.Present())
	assert.False(t, payload.D.Present())
	assert.False(t, payload.E.Present())
	assert.Equal(t, 3.0, payload.E.FloatOr(3))
}

func TestNumericRejectsGarbage(t *testing.T) {
	var n Numeric
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestNumericInt64RejectsFractions(t *testing.T) {
	_, ok, err := NumericOf(2.5).Int64()
	assert.True(t, ok)
	assert.Error(t, err)

	_, _, err = NumericOf(1e12).Int64()
	assert.Error(t, err)
}

func TestStaffRequestTONumberKeys(t *testing.T) {
	var req StaffRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Name": "Alice", "TONumber": "77"}`), &req))
	assert.Equal(t, "Alice", req.Name)
	n, ok, err := req.TONumberValue().Int64()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(77), n)

	req = StaffRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Bob", "tonumber": 5, "TONumber": 9}`), &req))
	n, _, _ = req.TONumberValue().Int64()
	assert.Equal(t, int64(5), n)
}

func TestPatchRecordRequestHasAny(t *testing.T) {
	var req PatchRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"Unknown": 1}`), &req))
	assert.False(t, req.HasAny())

	require.NoError(t, json.Unmarshal([]byte(`{"VenueID": null}`), &req))
	assert.True(t, req.HasAny())
	assert.True(t, req.VenueID.IsNull())
}
