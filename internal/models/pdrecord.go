package models

import "time"

// PDRecord is one professional-development activity attended by one staff member.
type PDRecord struct {
	ID                int64      `db:"pd_record_id" json:"PDRecordID"`
	MeetingID         *string    `db:"meeting_id" json:"MeetingId"`
	StaffID           *int64     `db:"staff_id" json:"StaffID"`
	StaffNameSnapshot string     `db:"staff_name_snapshot" json:"StaffNameSnapshot"`
	StaffNameCurrent  *string    `db:"staff_name_current" json:"StaffNameCurrent"`
	StartDate         Date       `db:"start_date" json:"StartDate"`
	EndDate           *Date      `db:"end_date" json:"EndDate"`
	AreaID            *int64     `db:"area_id" json:"AreaID"`
	AreaName          *string    `db:"area_name" json:"AreaName"`
	Title             string     `db:"title" json:"Title"`
	VenueID           *int64     `db:"venue_id" json:"VenueID"`
	VenueOther        *string    `db:"venue_other" json:"VenueOther"`
	VenueDisplay      *string    `db:"venue_display" json:"VenueDisplay"`
	Hours             float64    `db:"hours" json:"Hours"`
	CRT               float64    `db:"crt" json:"CRT"`
	Enrol             float64    `db:"enrol" json:"Enrol"`
	Other             float64    `db:"other" json:"Other"`
	Total             float64    `db:"total" json:"Total"`
	IsAccrual         bool       `db:"is_accrual" json:"IsAccrual"`
	AccrualHours      *float64   `db:"accrual_hours" json:"AccrualHours"`
	ModifiedAt        *time.Time `db:"modified_at" json:"ModifiedAt"`
	ModifiedBy        *string    `db:"modified_by" json:"ModifiedBy"`
}

// StaffDisplayName prefers the current roster name, then the snapshot taken
// when the record was entered.
func (r PDRecord) StaffDisplayName() string {
	if r.StaffNameCurrent != nil && *r.StaffNameCurrent != "" {
		return *r.StaffNameCurrent
	}
	if r.StaffNameSnapshot != "" {
		return r.StaffNameSnapshot
	}
	return UnknownStaffName
}

// UnknownStaffName is shown for rows with neither a linked nor a snapshot name.
const UnknownStaffName = "Unknown Staff"

// PDRecordPage is the listing response body.
type PDRecordPage struct {
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Total    int        `json:"total"`
	Rows     []PDRecord `json:"rows"`
}

// PDRecordChanges is the validated column set of a partial update, in write order.
type PDRecordChanges struct {
	Columns []ColumnValue
	Actor   *string
}

// ColumnValue is one assignment of an UPDATE statement.
type ColumnValue struct {
	Column string
	Value  interface{}
}

// NewPDRecords carries a bulk entry: one record per staff id.
type NewPDRecords struct {
	MeetingID    *string
	StartDate    Date
	EndDate      *Date
	AreaID       int64
	Title        string
	VenueID      *int64
	VenueOther   *string
	Hours        float64
	CRT          float64
	Enrol        float64
	Other        float64
	IsAccrual    bool
	AccrualHours *float64
	StaffIDs     []int64
	Actor        *string
}
