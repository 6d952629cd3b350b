package dto

import (
	"encoding/json"
	"fmt"

	"github.com/09608249-WELS/pdtracker-admin/pkg/optional"
)

// PatchRecordRequest is the editable field set of a PD record. Every field
// distinguishes an omitted key from an explicit null. Keys must match the
// field names exactly; anything else is ignored.
type PatchRecordRequest struct {
	StartDate    optional.Value[string]  `json:"StartDate"`
	EndDate      optional.Value[string]  `json:"EndDate"`
	AreaID       optional.Value[int64]   `json:"AreaID"`
	Title        optional.Value[string]  `json:"Title"`
	VenueID      optional.Value[int64]   `json:"VenueID"`
	VenueOther   optional.Value[string]  `json:"VenueOther"`
	Hours        optional.Value[float64] `json:"Hours"`
	CRT          optional.Value[float64] `json:"CRT"`
	Enrol        optional.Value[float64] `json:"Enrol"`
	Other        optional.Value[float64] `json:"Other"`
	IsAccrual    optional.Value[bool]    `json:"IsAccrual"`
	AccrualHours optional.Value[float64] `json:"AccrualHours"`
}

// UnmarshalJSON binds exact key names only; "title" does not set Title.
func (r *PatchRecordRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = PatchRecordRequest{}
	fields := map[string]json.Unmarshaler{
		"StartDate":    &r.StartDate,
		"EndDate":      &r.EndDate,
		"AreaID":       &r.AreaID,
		"Title":        &r.Title,
		"VenueID":      &r.VenueID,
		"VenueOther":   &r.VenueOther,
		"Hours":        &r.Hours,
		"CRT":          &r.CRT,
		"Enrol":        &r.Enrol,
		"Other":        &r.Other,
		"IsAccrual":    &r.IsAccrual,
		"AccrualHours": &r.AccrualHours,
	}
	for key, value := range raw {
		field, ok := fields[key]
		if !ok {
			continue
		}
		if err := field.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// HasAny reports whether at least one editable key was supplied.
func (r PatchRecordRequest) HasAny() bool {
	return r.StartDate.Present() || r.EndDate.Present() || r.AreaID.Present() || r.Title.Present() ||
		r.VenueID.Present() || r.VenueOther.Present() || r.Hours.Present() || r.CRT.Present() ||
		r.Enrol.Present() || r.Other.Present() || r.IsAccrual.Present() || r.AccrualHours.Present()
}

// CreateRecordsRequest is a bulk entry: the same activity for several staff.
type CreateRecordsRequest struct {
	MeetingID    *string   `json:"meetingId" validate:"omitempty,max=100"`
	StartDate    string    `json:"startDate" validate:"required"`
	EndDate      *string   `json:"endDate"`
	AreaID       Numeric   `json:"areaId"`
	Title        string    `json:"title" validate:"required,max=300"`
	VenueID      Numeric   `json:"venueId"`
	VenueOther   *string   `json:"venueOther" validate:"omitempty,max=200"`
	Hours        Numeric   `json:"hours"`
	CRT          Numeric   `json:"crt"`
	Enrol        Numeric   `json:"enrol"`
	Other        Numeric   `json:"other"`
	IsAccrual    bool      `json:"isAccrual"`
	AccrualHours Numeric   `json:"accrualHours"`
	StaffIDs     []Numeric `json:"staffIds" validate:"required,min=1"`
}

// CreateRecordsResponse reports how many rows a bulk entry wrote.
type CreateRecordsResponse struct {
	OK           bool  `json:"ok"`
	InsertedRows int64 `json:"insertedRows"`
}
