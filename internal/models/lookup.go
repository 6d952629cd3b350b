package models

// Area is a PD category.
type Area struct {
	ID   int64  `db:"area_id" json:"AreaID"`
	Name string `db:"area_name" json:"AreaName"`
}

// Venue is a known location an activity can reference.
type Venue struct {
	ID   int64  `db:"venue_id" json:"VenueID"`
	Name string `db:"venue_name" json:"VenueName"`
}

// Sector groups staff by teaching sector.
type Sector struct {
	ID   int64  `db:"sector_id" json:"SectorID"`
	Name string `db:"sector_name" json:"SectorName"`
}

// Site is a campus.
type Site struct {
	ID   int64  `db:"site_id" json:"SiteID"`
	Name string `db:"site_name" json:"SiteName"`
}

// Lookups bundles the reference lists the entry form needs.
type Lookups struct {
	Areas   []Area   `json:"areas"`
	Sectors []Sector `json:"sectors"`
	Sites   []Site   `json:"sites"`
}
