package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

type fakeStaffSrv struct {
	filter     models.StaffFilter
	req        dto.StaffRequest
	actor      string
	createErr  error
	restoreErr error
}

func (f *fakeStaffSrv) List(_ context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	f.filter = filter
	return []models.Staff{{ID: 1, Name: "Ana Lee"}}, nil
}

func (f *fakeStaffSrv) Create(_ context.Context, req dto.StaffRequest, actor string) (int64, error) {
	f.req = req
	f.actor = actor
	if f.createErr != nil {
		return 0, f.createErr
	}
	return 12, nil
}

func (f *fakeStaffSrv) Update(_ context.Context, _ int64, req dto.StaffRequest, actor string) error {
	f.req = req
	f.actor = actor
	return nil
}

func (f *fakeStaffSrv) Archive(_ context.Context, _ int64, actor string) error {
	f.actor = actor
	return nil
}

func (f *fakeStaffSrv) Restore(_ context.Context, _ int64, actor string) error {
	f.actor = actor
	return f.restoreErr
}

func staffRouter(srv *fakeStaffSrv) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStaffHandler(srv)
	r := gin.New()
	r.GET("/staff", h.List)
	r.POST("/staff", h.Create)
	r.PUT("/staff/:id", h.Update)
	r.DELETE("/staff/:id", h.Archive)
	r.PATCH("/staff/:id/restore", h.Restore)
	return r
}

func TestStaffHandlerListFilters(t *testing.T) {
	srv := &fakeStaffSrv{}
	rec := serve(staffRouter(srv), http.MethodGet, "/staff?includeArchived=1&search=%20an%20&campus=North,%20South,&sector=Primary", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.filter.IncludeArchived)
	assert.Equal(t, "an", srv.filter.Search)
	assert.Equal(t, []string{"North", "South"}, srv.filter.Campuses)
	assert.Nil(t, srv.filter.Positions)
	assert.Equal(t, []string{"Primary"}, srv.filter.Sectors)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `true`, string(body["ok"]))
	assert.JSONEq(t, string(body["staff"]), string(body["rows"]))
}

func TestStaffHandlerCreate(t *testing.T) {
	srv := &fakeStaffSrv{}
	rec := serve(staffRouter(srv), http.MethodPost, "/staff", `{"Name":"Ana","tonumber":"55"}`, map[string]string{"X-Actor": "office"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"staffId":12}`, rec.Body.String())
	assert.Equal(t, "Ana", srv.req.Name)
	assert.Equal(t, "office", srv.actor)
}

func TestStaffHandlerCreateConflict(t *testing.T) {
	srv := &fakeStaffSrv{createErr: appErrors.Clone(appErrors.ErrConflict, "An active staff member already has that name.")}
	rec := serve(staffRouter(srv), http.MethodPost, "/staff", `{"name":"Ana"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "An active staff member already has that name.", errorMessage(t, rec))
}

func TestStaffHandlerInvalidID(t *testing.T) {
	r := staffRouter(&fakeStaffSrv{})
	for _, tc := range []struct{ method, path string }{
		{http.MethodPut, "/staff/0"},
		{http.MethodDelete, "/staff/x"},
		{http.MethodPatch, "/staff/-3/restore"},
	} {
		rec := serve(r, tc.method, tc.path, `{"name":"A"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.path)
		assert.Equal(t, invalidStaffIDMessage, errorMessage(t, rec))
	}
}

func TestStaffHandlerArchiveAndRestore(t *testing.T) {
	srv := &fakeStaffSrv{}
	r := staffRouter(srv)

	rec := serve(r, http.MethodDelete, "/staff/5", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"staffId":5}`, rec.Body.String())

	rec = serve(r, http.MethodPatch, "/staff/5/restore", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	srv.restoreErr = appErrors.Clone(appErrors.ErrNotFound, "Archived staff member not found.")
	rec = serve(r, http.MethodPatch, "/staff/5/restore", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
