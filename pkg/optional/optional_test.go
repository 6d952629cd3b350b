package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	VenueID    Value[int64]  `json:"VenueID"`
	VenueOther Value[string] `json:"VenueOther"`
	Title      Value[string] `json:"Title"`
}

func TestValueDistinguishesAbsentNullAndSet(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"VenueID":null,"Title":"New"}`), &p))

	assert.True(t, p.VenueID.Present())
	assert.True(t, p.VenueID.IsNull())
	assert.Nil(t, p.VenueID.Ptr())

	assert.False(t, p.VenueOther.Present())
	assert.False(t, p.VenueOther.IsNull())

	title, ok := p.Title.Get()
	assert.True(t, ok)
	assert.Equal(t, "New", title)
}

func TestValueRejectsWrongType(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"VenueID":"abc"}`), &p)
	require.Error(t, err)
}

func TestValueMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Value[int]
		B Value[int]
		C Value[int]
	}{A: Of(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":3,"B":null,"C":null}`, string(out))
}
