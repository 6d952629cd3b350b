package models

import "time"

// Staff is a roster entry. Archived members are hidden but never deleted.
type Staff struct {
	ID         int64      `db:"staff_id" json:"StaffID"`
	Name       string     `db:"name" json:"Name"`
	Campus1    *string    `db:"campus1" json:"Campus1"`
	Campus2    *string    `db:"campus2" json:"Campus2"`
	Position   *string    `db:"position" json:"Position"`
	Sector     *string    `db:"sector" json:"Sector"`
	TONumber   *int64     `db:"tonumber" json:"TONumber"`
	IsArchived bool       `db:"is_archived" json:"IsArchived"`
	CreatedAt  time.Time  `db:"created_at" json:"CreatedAt"`
	ModifiedAt *time.Time `db:"modified_at" json:"ModifiedAt"`
	ModifiedBy *string    `db:"modified_by" json:"ModifiedBy"`
	ArchivedAt *time.Time `db:"archived_at" json:"ArchivedAt"`
}

// StaffFilter captures roster listing options. Each slice is an OR set within
// its field; fields are ANDed together.
type StaffFilter struct {
	Search          string
	Campuses        []string
	Positions       []string
	Sectors         []string
	IncludeArchived bool
}

// StaffFields is the whitelisted, normalised write set for create and update.
type StaffFields struct {
	Name     string
	Campus1  *string
	Campus2  *string
	Position *string
	Sector   *string
	TONumber *int64
	Actor    string
}
