package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

type fakePDRecordRepo struct {
	rows      []models.PDRecord
	total     int
	listPred  query.Predicate
	listPage  query.Page
	changes   *models.PDRecordChanges
	updateErr error
	deleted   []int64
	deleteErr error
	inserted  *models.NewPDRecords
	insertN   int64
	insertErr error
}

func (f *fakePDRecordRepo) List(_ context.Context, pred query.Predicate, page query.Page) ([]models.PDRecord, int, error) {
	f.listPred = pred
	f.listPage = page
	return f.rows, f.total, nil
}

func (f *fakePDRecordRepo) Update(_ context.Context, _ int64, changes models.PDRecordChanges) error {
	f.changes = &changes
	return f.updateErr
}

func (f *fakePDRecordRepo) SoftDelete(_ context.Context, id int64, _ *string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePDRecordRepo) InsertBulk(_ context.Context, rec models.NewPDRecords) (int64, error) {
	f.inserted = &rec
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	if f.insertN == 0 {
		return int64(len(rec.StaffIDs)), nil
	}
	return f.insertN, nil
}

func decodePatch(t *testing.T, body string) dto.PatchRecordRequest {
	t.Helper()
	var req dto.PatchRecordRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func decodeCreate(t *testing.T, body string) dto.CreateRecordsRequest {
	t.Helper()
	var req dto.CreateRecordsRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func columnNames(c models.PDRecordChanges) []string {
	names := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		names = append(names, col.Column)
	}
	return names
}

func columnValue(c models.PDRecordChanges, name string) (interface{}, bool) {
	for _, col := range c.Columns {
		if col.Column == name {
			return col.Value, true
		}
	}
	return nil, false
}

func assertValidation(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func TestPDRecordServiceListBuildsPredicate(t *testing.T) {
	repo := &fakePDRecordRepo{total: 0}
	svc := NewPDRecordService(repo, nil, nil)
	staff := int64(4)

	page, err := svc.List(context.Background(), query.RecordFilter{StaffID: &staff}, query.PageAt(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.NotNil(t, page.Rows)
	assert.Contains(t, repo.listPred.Where, "r.staff_id = $1")
	assert.Equal(t, 10, repo.listPage.Offset)
}

func TestBuildRecordChangesRejectsEmptyPatch(t *testing.T) {
	_, err := BuildRecordChanges(decodePatch(t, `{"Unknown": 1}`))
	assertValidation(t, err, NoEditableFieldsMessage)
}

func TestBuildRecordChangesIgnoresMiscasedKeys(t *testing.T) {
	_, err := BuildRecordChanges(decodePatch(t, `{"title": "Hijack", "venueid": 5}`))
	assertValidation(t, err, NoEditableFieldsMessage)

	changes, err := BuildRecordChanges(decodePatch(t, `{"Title": "A", "title": "B"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, columnNames(changes))
	title, _ := columnValue(changes, "title")
	assert.Equal(t, "A", title)
}

func TestBuildRecordChangesVenueIDClearsOther(t *testing.T) {
	changes, err := BuildRecordChanges(decodePatch(t, `{"VenueID": 3, "VenueOther": "Somewhere"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"venue_id", "venue_other"}, columnNames(changes))
	other, _ := columnValue(changes, "venue_other")
	assert.Nil(t, other)
}

func TestBuildRecordChangesClearingVenueNeedsText(t *testing.T) {
	_, err := BuildRecordChanges(decodePatch(t, `{"VenueID": null}`))
	assertValidation(t, err, venueRequiredMessage)

	changes, err := BuildRecordChanges(decodePatch(t, `{"VenueID": null, "VenueOther": "  Town hall "}`))
	require.NoError(t, err)
	other, _ := columnValue(changes, "venue_other")
	require.NotNil(t, other)
	assert.Equal(t, "Town hall", *(other.(*string)))
}

func TestBuildRecordChangesNullsAndRounding(t *testing.T) {
	changes, err := BuildRecordChanges(decodePatch(t, `{"Hours": 1.236, "CRT": null, "EndDate": null, "AccrualHours": null, "IsAccrual": true}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"end_date", "hours", "crt", "is_accrual", "accrual_hours"}, columnNames(changes))

	hours, _ := columnValue(changes, "hours")
	assert.Equal(t, 1.24, hours)
	crt, _ := columnValue(changes, "crt")
	assert.Equal(t, 0.0, crt)
	end, _ := columnValue(changes, "end_date")
	assert.Nil(t, end)
}

func TestBuildRecordChangesValidation(t *testing.T) {
	cases := map[string]string{
		`{"Title": "   "}`:          "Title is required.",
		`{"StartDate": null}`:       "StartDate is required.",
		`{"StartDate": "14/10/26"}`: "StartDate must be a date in YYYY-MM-DD format.",
		`{"AreaID": 0}`:             "AreaID is required.",
		`{"Hours": -1}`:             "Hours cannot be negative.",
	}
	for body, msg := range cases {
		_, err := BuildRecordChanges(decodePatch(t, body))
		assertValidation(t, err, msg)
	}
}

func TestPDRecordServiceUpdatePassesActor(t *testing.T) {
	repo := &fakePDRecordRepo{}
	svc := NewPDRecordService(repo, nil, nil)
	actor := "jdoe"

	err := svc.Update(context.Background(), 7, decodePatch(t, `{"Title": " Literacy "}`), &actor)
	require.NoError(t, err)
	require.NotNil(t, repo.changes)
	assert.Equal(t, &actor, repo.changes.Actor)
	title, _ := columnValue(*repo.changes, "title")
	assert.Equal(t, "Literacy", title)
}

func TestPDRecordServiceUpdateKeepsNotFound(t *testing.T) {
	repo := &fakePDRecordRepo{updateErr: appErrors.Clone(appErrors.ErrNotFound, "Record not found (or already deleted).")}
	svc := NewPDRecordService(repo, nil, nil)

	err := svc.Update(context.Background(), 99999, decodePatch(t, `{"Hours": 2}`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestPDRecordServiceDeleteWrapsStoreFailure(t *testing.T) {
	repo := &fakePDRecordRepo{deleteErr: errors.New("connection reset")}
	svc := NewPDRecordService(repo, nil, nil)

	err := svc.Delete(context.Background(), 1, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func TestPDRecordServiceCreateBulk(t *testing.T) {
	repo := &fakePDRecordRepo{}
	svc := NewPDRecordService(repo, nil, nil)

	body := `{"startDate":"2026-03-02","areaId":"2","title":"  First aid ","venueOther":"Gym",
		"hours":"1.5","crt":10,"isAccrual":false,"staffIds":[3,"3",4,-1,2.5]}`
	req := decodeCreate(t, body)

	n, err := svc.CreateBulk(context.Background(), req, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, []int64{3, 4}, repo.inserted.StaffIDs)
	assert.Equal(t, "First aid", repo.inserted.Title)
	assert.Equal(t, int64(2), repo.inserted.AreaID)
	assert.Equal(t, 1.5, repo.inserted.Hours)
	assert.Equal(t, 10.0, repo.inserted.CRT)
	assert.Equal(t, 0.0, repo.inserted.Other)
	assert.Nil(t, repo.inserted.VenueID)
	require.NotNil(t, repo.inserted.VenueOther)
	assert.Equal(t, "Gym", *repo.inserted.VenueOther)
}

func TestPDRecordServiceCreateBulkValidation(t *testing.T) {
	svc := NewPDRecordService(&fakePDRecordRepo{}, nil, nil)
	base := `"startDate":"2026-03-02","areaId":2,"title":"T","venueId":1,"hours":1`

	cases := []struct {
		body string
		msg  string
	}{
		{`{` + base + `,"staffIds":[]}`, "staffIds must contain at least 1 item(s)."},
		{`{` + base + `,"staffIds":[0, 1.5]}`, "staffIds must contain valid integers."},
		{`{"startDate":"2026-03-02","areaId":2,"title":"T","hours":1,"staffIds":[1]}`, venueRequiredMessage},
		{`{"startDate":"2026-03-02","areaId":2,"title":"T","venueId":1,"staffIds":[1]}`, "hours is required."},
		{`{"startDate":"2026-03-02","title":"T","venueId":1,"hours":1,"staffIds":[1]}`, "areaId is required."},
		{`{` + base + `,"crt":-5,"staffIds":[1]}`, "crt cannot be negative."},
	}
	for _, tc := range cases {
		_, err := svc.CreateBulk(context.Background(), decodeCreate(t, tc.body), nil)
		assertValidation(t, err, tc.msg)
	}
}
