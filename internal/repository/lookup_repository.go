package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

// LookupRepository reads the reference tables.
type LookupRepository struct {
	db *sqlx.DB
}

// NewLookupRepository constructs a LookupRepository.
func NewLookupRepository(db *sqlx.DB) *LookupRepository {
	return &LookupRepository{db: db}
}

// Areas lists PD areas by name.
func (r *LookupRepository) Areas(ctx context.Context) ([]models.Area, error) {
	areas := make([]models.Area, 0)
	if err := r.db.SelectContext(ctx, &areas, `SELECT area_id, area_name FROM areas ORDER BY area_name`); err != nil {
		return nil, storeError(err, "list areas")
	}
	return areas, nil
}

// Venues lists known venues by name.
func (r *LookupRepository) Venues(ctx context.Context) ([]models.Venue, error) {
	venues := make([]models.Venue, 0)
	if err := r.db.SelectContext(ctx, &venues, `SELECT venue_id, venue_name FROM venues ORDER BY venue_name`); err != nil {
		return nil, storeError(err, "list venues")
	}
	return venues, nil
}

// Sectors lists teaching sectors by name.
func (r *LookupRepository) Sectors(ctx context.Context) ([]models.Sector, error) {
	sectors := make([]models.Sector, 0)
	if err := r.db.SelectContext(ctx, &sectors, `SELECT sector_id, sector_name FROM sectors ORDER BY sector_name`); err != nil {
		return nil, storeError(err, "list sectors")
	}
	return sectors, nil
}

// Sites lists campuses by name.
func (r *LookupRepository) Sites(ctx context.Context) ([]models.Site, error) {
	sites := make([]models.Site, 0)
	if err := r.db.SelectContext(ctx, &sites, `SELECT site_id, site_name FROM sites ORDER BY site_name`); err != nil {
		return nil, storeError(err, "list sites")
	}
	return sites, nil
}

// DatabaseName performs a live round trip and returns the connected database.
func (r *LookupRepository) DatabaseName(ctx context.Context) (string, error) {
	var name string
	if err := r.db.GetContext(ctx, &name, `SELECT current_database()`); err != nil {
		return "", storeError(err, "select database name")
	}
	return name, nil
}
