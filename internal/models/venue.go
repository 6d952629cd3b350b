package models

import (
	"errors"
	"strings"

	"github.com/09608249-WELS/pdtracker-admin/pkg/optional"
)

// ErrVenueRequired is returned when a write would leave a record with neither
// a venue reference nor free text.
var ErrVenueRequired = errors.New("a venue is required: choose a venue or enter other venue text")

// VenueWrite is the venue part of a partial update after the mutual
// exclusion rule has been applied.
type VenueWrite struct {
	SetVenueID    bool
	VenueID       *int64
	SetVenueOther bool
	VenueOther    *string
}

// NormalizeVenueOther trims free text and maps blank to nil.
func NormalizeVenueOther(other *string) *string {
	if other == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*other)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ResolveVenueWrite applies the venue rule to a partial update.
//
// A present VenueID always rewrites VenueOther in the same statement: cleared
// when the reference is set, or taken from the payload when the reference is
// cleared. VenueOther alone leaves VenueID untouched; the store rejects the
// write if the row still references a venue.
func ResolveVenueWrite(venueID optional.Value[int64], venueOther optional.Value[string]) (VenueWrite, error) {
	var w VenueWrite
	other := NormalizeVenueOther(venueOther.Ptr())

	if venueID.Present() {
		w.SetVenueID = true
		w.VenueID = venueID.Ptr()
		w.SetVenueOther = true
		if w.VenueID == nil {
			if other == nil {
				return VenueWrite{}, ErrVenueRequired
			}
			w.VenueOther = other
		}
		return w, nil
	}

	if venueOther.Present() {
		w.SetVenueOther = true
		w.VenueOther = other
	}
	return w, nil
}

// ResolveNewVenue applies the venue rule to a record being created.
func ResolveNewVenue(venueID *int64, venueOther *string) (*int64, *string, error) {
	if venueID != nil {
		return venueID, nil, nil
	}
	other := NormalizeVenueOther(venueOther)
	if other == nil {
		return nil, nil, ErrVenueRequired
	}
	return nil, other, nil
}

// VenueDisplay is the name of the referenced venue, else the free text.
func VenueDisplay(venueID *int64, venueName, venueOther *string) string {
	if venueID != nil && venueName != nil {
		return *venueName
	}
	if venueOther != nil {
		return *venueOther
	}
	return ""
}
