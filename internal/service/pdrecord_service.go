package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
	"github.com/09608249-WELS/pdtracker-admin/pkg/optional"
)

const titleMaxLength = 300

// NoEditableFieldsMessage is returned for a PATCH without any whitelisted key.
const NoEditableFieldsMessage = "No editable fields provided."

type pdRecordRepository interface {
	List(ctx context.Context, pred query.Predicate, page query.Page) ([]models.PDRecord, int, error)
	Update(ctx context.Context, id int64, changes models.PDRecordChanges) error
	SoftDelete(ctx context.Context, id int64, actor *string) error
	InsertBulk(ctx context.Context, rec models.NewPDRecords) (int64, error)
}

// PDRecordService lists and mutates PD records.
type PDRecordService struct {
	repo      pdRecordRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPDRecordService constructs a PDRecordService.
func NewPDRecordService(repo pdRecordRepository, validate *validator.Validate, logger *zap.Logger) *PDRecordService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDRecordService{repo: repo, validator: validate, logger: logger}
}

// List returns one page of records matching filter.
func (s *PDRecordService) List(ctx context.Context, filter query.RecordFilter, page query.Page) (*models.PDRecordPage, error) {
	rows, total, err := s.repo.List(ctx, query.Build(filter), page)
	if err != nil {
		s.logger.Error("list pd records failed", zap.Error(err))
		return nil, passThrough(err, "Failed to load PD records.")
	}
	if rows == nil {
		rows = []models.PDRecord{}
	}
	return &models.PDRecordPage{Page: page.Page, PageSize: page.PageSize, Total: total, Rows: rows}, nil
}

// Update applies a partial update. Only whitelisted keys are considered and
// the venue rule is folded into the same statement.
func (s *PDRecordService) Update(ctx context.Context, id int64, req dto.PatchRecordRequest, actor *string) error {
	changes, err := BuildRecordChanges(req)
	if err != nil {
		return err
	}
	changes.Actor = actor

	if err := s.repo.Update(ctx, id, changes); err != nil {
		var appErr *appErrors.Error
		if !errors.As(err, &appErr) {
			s.logger.Error("update pd record failed", zap.Int64("id", id), zap.Error(err))
		}
		return passThrough(err, "Failed to update PD record.")
	}
	return nil
}

// Delete soft-deletes a live record.
func (s *PDRecordService) Delete(ctx context.Context, id int64, actor *string) error {
	if err := s.repo.SoftDelete(ctx, id, actor); err != nil {
		var appErr *appErrors.Error
		if !errors.As(err, &appErr) {
			s.logger.Error("delete pd record failed", zap.Int64("id", id), zap.Error(err))
		}
		return passThrough(err, "Failed to delete PD record.")
	}
	return nil
}

// CreateBulk records one activity for every distinct staff id.
func (s *PDRecordService) CreateBulk(ctx context.Context, req dto.CreateRecordsRequest, actor *string) (int64, error) {
	rec, err := s.newRecords(req)
	if err != nil {
		return 0, err
	}
	rec.Actor = actor

	n, err := s.repo.InsertBulk(ctx, rec)
	if err != nil {
		var appErr *appErrors.Error
		if !errors.As(err, &appErr) {
			s.logger.Error("insert pd records failed", zap.Int("staff", len(rec.StaffIDs)), zap.Error(err))
		}
		return 0, passThrough(err, "Failed to save PD records.")
	}
	return n, nil
}

func (s *PDRecordService) newRecords(req dto.CreateRecordsRequest) (models.NewPDRecords, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.NewPDRecords{}, validationError(err)
	}

	var rec models.NewPDRecords
	var err error

	rec.StartDate, err = models.ParseDate(req.StartDate)
	if err != nil {
		return rec, appErrors.Validation("startDate must be a date in YYYY-MM-DD format.")
	}
	if end := trimmedOrNil(req.EndDate); end != nil {
		d, err := models.ParseDate(*end)
		if err != nil {
			return rec, appErrors.Validation("endDate must be a date in YYYY-MM-DD format.")
		}
		rec.EndDate = &d
	}

	areaID, ok, err := req.AreaID.Int64()
	if err != nil || !ok || areaID <= 0 {
		return rec, appErrors.Validation("areaId is required.")
	}
	rec.AreaID = areaID

	rec.Title = strings.TrimSpace(req.Title)
	if rec.Title == "" {
		return rec, appErrors.Validation("title is required.")
	}
	rec.MeetingID = trimmedOrNil(req.MeetingID)

	var venueID *int64
	if id, ok, err := req.VenueID.Int64(); err != nil {
		return rec, appErrors.Validation("venueId must be a whole number.")
	} else if ok && id > 0 {
		venueID = &id
	}
	rec.VenueID, rec.VenueOther, err = models.ResolveNewVenue(venueID, req.VenueOther)
	if err != nil {
		return rec, appErrors.Validation(venueRequiredMessage)
	}

	hours, ok := req.Hours.Float()
	if !ok {
		return rec, appErrors.Validation("hours is required.")
	}
	if rec.Hours, err = nonNegative("hours", hours); err != nil {
		return rec, err
	}
	if rec.CRT, err = nonNegative("crt", req.CRT.FloatOr(0)); err != nil {
		return rec, err
	}
	if rec.Enrol, err = nonNegative("enrol", req.Enrol.FloatOr(0)); err != nil {
		return rec, err
	}
	if rec.Other, err = nonNegative("other", req.Other.FloatOr(0)); err != nil {
		return rec, err
	}
	rec.IsAccrual = req.IsAccrual
	if v, ok := req.AccrualHours.Float(); ok {
		rounded, err := nonNegative("accrualHours", v)
		if err != nil {
			return rec, err
		}
		rec.AccrualHours = &rounded
	}

	seen := make(map[int64]struct{}, len(req.StaffIDs))
	for _, raw := range req.StaffIDs {
		id, ok, err := raw.Int64()
		if err != nil || !ok || id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rec.StaffIDs = append(rec.StaffIDs, id)
	}
	if len(rec.StaffIDs) == 0 {
		return rec, appErrors.Validation("staffIds must contain valid integers.")
	}
	return rec, nil
}

// venueRequiredMessage is shared by the static check and the store constraint.
const venueRequiredMessage = "Choose a venue or enter other venue text."

// BuildRecordChanges validates a partial update and returns the column
// assignments in whitelist order.
func BuildRecordChanges(req dto.PatchRecordRequest) (models.PDRecordChanges, error) {
	var changes models.PDRecordChanges
	if !req.HasAny() {
		return changes, appErrors.Validation(NoEditableFieldsMessage)
	}
	set := func(column string, value interface{}) {
		changes.Columns = append(changes.Columns, models.ColumnValue{Column: column, Value: value})
	}

	if req.StartDate.Present() {
		raw, ok := req.StartDate.Get()
		if !ok || strings.TrimSpace(raw) == "" {
			return changes, appErrors.Validation("StartDate is required.")
		}
		d, err := models.ParseDate(raw)
		if err != nil {
			return changes, appErrors.Validation("StartDate must be a date in YYYY-MM-DD format.")
		}
		set("start_date", d)
	}

	if req.EndDate.Present() {
		raw, ok := req.EndDate.Get()
		if !ok || strings.TrimSpace(raw) == "" {
			set("end_date", nil)
		} else {
			d, err := models.ParseDate(raw)
			if err != nil {
				return changes, appErrors.Validation("EndDate must be a date in YYYY-MM-DD format.")
			}
			set("end_date", d)
		}
	}

	if req.AreaID.Present() {
		id, ok := req.AreaID.Get()
		if !ok || id <= 0 {
			return changes, appErrors.Validation("AreaID is required.")
		}
		set("area_id", id)
	}

	if req.Title.Present() {
		title, _ := req.Title.Get()
		title = strings.TrimSpace(title)
		if title == "" {
			return changes, appErrors.Validation("Title is required.")
		}
		if len([]rune(title)) > titleMaxLength {
			return changes, appErrors.Validation(fmt.Sprintf("Title must be at most %d characters.", titleMaxLength))
		}
		set("title", title)
	}

	if id, ok := req.VenueID.Get(); ok && id <= 0 {
		return changes, appErrors.Validation("VenueID must be a positive integer.")
	}
	venue, err := models.ResolveVenueWrite(req.VenueID, req.VenueOther)
	if err != nil {
		return changes, appErrors.Validation(venueRequiredMessage)
	}
	if venue.SetVenueID {
		set("venue_id", venue.VenueID)
	}
	if venue.SetVenueOther {
		set("venue_other", venue.VenueOther)
	}

	amounts := []struct {
		field  string
		column string
		value  optional.Value[float64]
	}{
		{"Hours", "hours", req.Hours},
		{"CRT", "crt", req.CRT},
		{"Enrol", "enrol", req.Enrol},
		{"Other", "other", req.Other},
	}
	for _, a := range amounts {
		if !a.value.Present() {
			continue
		}
		v, _ := a.value.Get()
		rounded, err := nonNegative(a.field, v)
		if err != nil {
			return changes, err
		}
		set(a.column, rounded)
	}

	if req.IsAccrual.Present() {
		v, _ := req.IsAccrual.Get()
		set("is_accrual", v)
	}

	if req.AccrualHours.Present() {
		v, ok := req.AccrualHours.Get()
		if !ok {
			set("accrual_hours", nil)
		} else {
			rounded, err := nonNegative("AccrualHours", v)
			if err != nil {
				return changes, err
			}
			set("accrual_hours", rounded)
		}
	}

	return changes, nil
}
