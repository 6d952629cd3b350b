package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/pkg/optional"
)

func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func TestResolveVenueWriteIDClearsOther(t *testing.T) {
	w, err := ResolveVenueWrite(optional.Of[int64](5), optional.Of("Library"))
	require.NoError(t, err)
	assert.True(t, w.SetVenueID)
	assert.Equal(t, int64(5), *w.VenueID)
	assert.True(t, w.SetVenueOther)
	assert.Nil(t, w.VenueOther)
}

func TestResolveVenueWriteIDWithoutOtherKey(t *testing.T) {
	w, err := ResolveVenueWrite(optional.Of[int64](5), optional.Value[string]{})
	require.NoError(t, err)
	assert.True(t, w.SetVenueOther)
	assert.Nil(t, w.VenueOther)
}

func TestResolveVenueWriteOtherOnlyLeavesIDUntouched(t *testing.T) {
	w, err := ResolveVenueWrite(optional.Value[int64]{}, optional.Of("  Town hall "))
	require.NoError(t, err)
	assert.False(t, w.SetVenueID)
	assert.True(t, w.SetVenueOther)
	assert.Equal(t, "Town hall", *w.VenueOther)
}

func TestResolveVenueWriteNullIDSwitchesToOther(t *testing.T) {
	w, err := ResolveVenueWrite(optional.Null[int64](), optional.Of("Zoom"))
	require.NoError(t, err)
	assert.True(t, w.SetVenueID)
	assert.Nil(t, w.VenueID)
	assert.Equal(t, "Zoom", *w.VenueOther)
}

func TestResolveVenueWriteRejectsClearingBoth(t *testing.T) {
	tests := []struct {
		name  string
		other optional.Value[string]
	}{
		{"other absent", optional.Value[string]{}},
		{"other null", optional.Null[string]()},
		{"other blank", optional.Of("   ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveVenueWrite(optional.Null[int64](), tt.other)
			assert.ErrorIs(t, err, ErrVenueRequired)
		})
	}
}

func TestResolveVenueWriteNothingPresent(t *testing.T) {
	w, err := ResolveVenueWrite(optional.Value[int64]{}, optional.Value[string]{})
	require.NoError(t, err)
	assert.Equal(t, VenueWrite{}, w)
}

func TestResolveNewVenue(t *testing.T) {
	id, other, err := ResolveNewVenue(int64Ptr(3), strPtr("ignored"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), *id)
	assert.Nil(t, other)

	id, other, err = ResolveNewVenue(nil, strPtr(" Online "))
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Equal(t, "Online", *other)

	_, _, err = ResolveNewVenue(nil, strPtr(""))
	assert.ErrorIs(t, err, ErrVenueRequired)
}

func TestVenueDisplay(t *testing.T) {
	assert.Equal(t, "Main Hall", VenueDisplay(int64Ptr(1), strPtr("Main Hall"), nil))
	assert.Equal(t, "Zoom", VenueDisplay(nil, nil, strPtr("Zoom")))
	assert.Equal(t, "", VenueDisplay(nil, nil, nil))
}
