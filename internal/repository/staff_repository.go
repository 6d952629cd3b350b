package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

const staffColumns = "staff_id, name, campus1, campus2, position, sector, tonumber, is_archived, created_at, modified_at, modified_by, archived_at"

// Not-found messages for roster writes.
const (
	StaffNotFoundMessage        = "Staff member not found."
	StaffArchiveNotFoundMessage = "Staff member not found (or already archived)."
	StaffRestoreNotFoundMessage = "Archived staff member not found."
)

// StaffRepository manages persistence for the staff roster.
type StaffRepository struct {
	db *sqlx.DB
}

// NewStaffRepository constructs a StaffRepository.
func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// List returns roster entries matching filter ordered by name.
func (r *StaffRepository) List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error) {
	base := "FROM staff WHERE 1=1"
	var conditions []string
	var args []interface{}

	if !filter.IncludeArchived {
		conditions = append(conditions, "is_archived = FALSE")
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf(`name ILIKE $%d ESCAPE '\'`, len(args)))
	}
	if len(filter.Campuses) > 0 {
		args = append(args, pq.Array(filter.Campuses))
		conditions = append(conditions, fmt.Sprintf("(campus1 = ANY($%d) OR campus2 = ANY($%d))", len(args), len(args)))
	}
	if len(filter.Positions) > 0 {
		args = append(args, pq.Array(filter.Positions))
		conditions = append(conditions, fmt.Sprintf("position = ANY($%d)", len(args)))
	}
	if len(filter.Sectors) > 0 {
		args = append(args, pq.Array(filter.Sectors))
		conditions = append(conditions, fmt.Sprintf("sector = ANY($%d)", len(args)))
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	q := fmt.Sprintf("SELECT %s %s ORDER BY name, staff_id", staffColumns, base)
	staff := make([]models.Staff, 0)
	if err := r.db.SelectContext(ctx, &staff, q, args...); err != nil {
		return nil, storeError(err, "list staff")
	}
	return staff, nil
}

// Create inserts an active roster entry and returns its id.
func (r *StaffRepository) Create(ctx context.Context, fields models.StaffFields) (int64, error) {
	const q = `INSERT INTO staff (name, campus1, campus2, position, sector, tonumber, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING staff_id`
	var id int64
	if err := r.db.GetContext(ctx, &id, q,
		fields.Name, fields.Campus1, fields.Campus2, fields.Position, fields.Sector, fields.TONumber, fields.Actor); err != nil {
		return 0, storeError(err, "create staff")
	}
	return id, nil
}

// Update replaces the editable fields of a roster entry.
func (r *StaffRepository) Update(ctx context.Context, id int64, fields models.StaffFields) error {
	const q = `UPDATE staff SET name = $1, campus1 = $2, campus2 = $3, position = $4, sector = $5, tonumber = $6,
		modified_at = now(), modified_by = $7 WHERE staff_id = $8`
	res, err := r.db.ExecContext(ctx, q,
		fields.Name, fields.Campus1, fields.Campus2, fields.Position, fields.Sector, fields.TONumber, fields.Actor, id)
	if err != nil {
		return storeError(err, "update staff")
	}
	return rowsAffectedOrNotFound(res, "update staff", StaffNotFoundMessage)
}

// Archive hides an active member. PD records are left untouched.
func (r *StaffRepository) Archive(ctx context.Context, id int64, actor string) error {
	const q = `UPDATE staff SET is_archived = TRUE, archived_at = now(), archived_by = $2, modified_at = now(), modified_by = $2
		WHERE staff_id = $1 AND is_archived = FALSE`
	res, err := r.db.ExecContext(ctx, q, id, actor)
	if err != nil {
		return storeError(err, "archive staff")
	}
	return rowsAffectedOrNotFound(res, "archive staff", StaffArchiveNotFoundMessage)
}

// Restore reactivates an archived member. It conflicts when an active member
// already uses the same name.
func (r *StaffRepository) Restore(ctx context.Context, id int64, actor string) error {
	const q = `UPDATE staff SET is_archived = FALSE, archived_at = NULL, archived_by = NULL, modified_at = now(), modified_by = $2
		WHERE staff_id = $1 AND is_archived = TRUE`
	res, err := r.db.ExecContext(ctx, q, id, actor)
	if err != nil {
		return storeError(err, "restore staff")
	}
	return rowsAffectedOrNotFound(res, "restore staff", StaffRestoreNotFoundMessage)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
