package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupRepositoryLists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLookupRepository(db)

	mock.ExpectQuery("SELECT area_id, area_name FROM areas ORDER BY area_name").
		WillReturnRows(sqlmock.NewRows([]string{"area_id", "area_name"}).AddRow(1, "Curriculum").AddRow(2, "Wellbeing"))
	mock.ExpectQuery("SELECT venue_id, venue_name FROM venues ORDER BY venue_name").
		WillReturnRows(sqlmock.NewRows([]string{"venue_id", "venue_name"}).AddRow(3, "Head Office"))
	mock.ExpectQuery("SELECT sector_id, sector_name FROM sectors").
		WillReturnRows(sqlmock.NewRows([]string{"sector_id", "sector_name"}))
	mock.ExpectQuery("SELECT site_id, site_name FROM sites").
		WillReturnRows(sqlmock.NewRows([]string{"site_id", "site_name"}).AddRow(1, "Footscray"))

	areas, err := repo.Areas(context.Background())
	require.NoError(t, err)
	assert.Len(t, areas, 2)

	venues, err := repo.Venues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Head Office", venues[0].Name)

	sectors, err := repo.Sectors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, sectors)
	assert.Empty(t, sectors)

	sites, err := repo.Sites(context.Background())
	require.NoError(t, err)
	assert.Len(t, sites, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupRepositoryDatabaseName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLookupRepository(db)

	mock.ExpectQuery("SELECT current_database\\(\\)").
		WillReturnRows(sqlmock.NewRows([]string{"current_database"}).AddRow("pdtracker"))
	mock.ExpectQuery("SELECT current_database\\(\\)").
		WillReturnError(errors.New("connection refused"))

	name, err := repo.DatabaseName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pdtracker", name)

	_, err = repo.DatabaseName(context.Background())
	assert.Error(t, err)
}
