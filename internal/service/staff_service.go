package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

// DefaultActor is stamped when the caller does not identify itself.
const DefaultActor = "webapp"

type staffRepository interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error)
	Create(ctx context.Context, fields models.StaffFields) (int64, error)
	Update(ctx context.Context, id int64, fields models.StaffFields) error
	Archive(ctx context.Context, id int64, actor string) error
	Restore(ctx context.Context, id int64, actor string) error
}

// StaffService manages the staff roster.
type StaffService struct {
	repo      staffRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStaffService constructs a StaffService.
func NewStaffService(repo staffRepository, validate *validator.Validate, logger *zap.Logger) *StaffService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{repo: repo, validator: validate, logger: logger}
}

// List returns roster entries ordered by name.
func (s *StaffService) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, passThrough(err, "Failed to load staff.")
	}
	if rows == nil {
		rows = []models.Staff{}
	}
	return rows, nil
}

// Create adds a roster entry and returns its id.
func (s *StaffService) Create(ctx context.Context, req dto.StaffRequest, actor string) (int64, error) {
	fields, err := s.fields(req, actor)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, fields)
	if err != nil {
		s.logStoreError("create staff failed", 0, err)
		return 0, passThrough(err, "Failed to create staff member.")
	}
	return id, nil
}

// Update replaces the whitelisted fields of a roster entry.
func (s *StaffService) Update(ctx context.Context, id int64, req dto.StaffRequest, actor string) error {
	fields, err := s.fields(req, actor)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		s.logStoreError("update staff failed", id, err)
		return passThrough(err, "Failed to update staff member.")
	}
	return nil
}

// Archive hides an active roster entry. Its PD records are untouched.
func (s *StaffService) Archive(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Archive(ctx, id, actorOrDefault(actor)); err != nil {
		s.logStoreError("archive staff failed", id, err)
		return passThrough(err, "Failed to archive staff member.")
	}
	return nil
}

// Restore reactivates an archived roster entry.
func (s *StaffService) Restore(ctx context.Context, id int64, actor string) error {
	if err := s.repo.Restore(ctx, id, actorOrDefault(actor)); err != nil {
		s.logStoreError("restore staff failed", id, err)
		return passThrough(err, "Failed to restore staff member.")
	}
	return nil
}

func (s *StaffService) fields(req dto.StaffRequest, actor string) (models.StaffFields, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.StaffFields{}, validationError(err)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.StaffFields{}, appErrors.Validation("Name is required.")
	}
	fields := models.StaffFields{
		Name:     name,
		Campus1:  trimmedOrNil(req.Campus1),
		Campus2:  trimmedOrNil(req.Campus2),
		Position: trimmedOrNil(req.Position),
		Sector:   trimmedOrNil(req.Sector),
		Actor:    actorOrDefault(actor),
	}
	to, ok, err := req.TONumberValue().Int64()
	if err != nil {
		return models.StaffFields{}, appErrors.Validation("TONumber must be a whole number.")
	}
	if ok {
		fields.TONumber = &to
	}
	return fields, nil
}

func (s *StaffService) logStoreError(msg string, id int64, err error) {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return
	}
	s.logger.Error(msg, zap.Int64("staff_id", id), zap.Error(err))
}

func actorOrDefault(actor string) string {
	if a := strings.TrimSpace(actor); a != "" {
		return a
	}
	return DefaultActor
}
