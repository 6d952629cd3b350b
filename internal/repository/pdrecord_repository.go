package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

const pdRecordColumns = `r.pd_record_id, r.meeting_id, r.staff_id, r.staff_name_snapshot, s.name AS staff_name_current,
	r.start_date, r.end_date, r.area_id, a.area_name, r.title, r.venue_id, r.venue_other,
	COALESCE(v.venue_name, r.venue_other) AS venue_display, r.hours, r.crt, r.enrol, r.other, r.total,
	r.is_accrual, r.accrual_hours, r.modified_at, r.modified_by`

const pdRecordFrom = `FROM pd_records r
	LEFT JOIN staff s ON s.staff_id = r.staff_id
	LEFT JOIN areas a ON a.area_id = r.area_id
	LEFT JOIN venues v ON v.venue_id = r.venue_id`

// RecordNotFoundMessage is returned for writes against missing or deleted records.
const RecordNotFoundMessage = "Record not found (or already deleted)."

var updatableRecordColumns = map[string]struct{}{
	"start_date":    {},
	"end_date":      {},
	"area_id":       {},
	"title":         {},
	"venue_id":      {},
	"venue_other":   {},
	"hours":         {},
	"crt":           {},
	"enrol":         {},
	"other":         {},
	"is_accrual":    {},
	"accrual_hours": {},
}

// PDRecordRepository manages persistence for PD records.
type PDRecordRepository struct {
	db *sqlx.DB
}

// NewPDRecordRepository constructs a PDRecordRepository.
func NewPDRecordRepository(db *sqlx.DB) *PDRecordRepository {
	return &PDRecordRepository{db: db}
}

// List returns one page of live records matching pred, newest first, and
// the total match count.
func (r *PDRecordRepository) List(ctx context.Context, pred query.Predicate, page query.Page) ([]models.PDRecord, int, error) {
	countQuery := "SELECT COUNT(*) FROM pd_records r " + pred.Where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, pred.Args...); err != nil {
		return nil, 0, storeError(err, "count pd records")
	}

	listQuery := fmt.Sprintf("SELECT %s %s %s ORDER BY r.start_date DESC, r.pd_record_id DESC LIMIT %d OFFSET %d",
		pdRecordColumns, pdRecordFrom, pred.Where, page.Limit(), page.Offset)
	records := make([]models.PDRecord, 0, page.Limit())
	if err := r.db.SelectContext(ctx, &records, listQuery, pred.Args...); err != nil {
		return nil, 0, storeError(err, "list pd records")
	}
	return records, total, nil
}

// CertificateRows returns every live record matching pred ordered by staff
// name, start date and id.
func (r *PDRecordRepository) CertificateRows(ctx context.Context, pred query.Predicate) ([]models.PDRecord, error) {
	q := fmt.Sprintf("SELECT %s %s %s ORDER BY COALESCE(s.name, r.staff_name_snapshot), r.start_date, r.pd_record_id",
		pdRecordColumns, pdRecordFrom, pred.Where)
	var records []models.PDRecord
	if err := r.db.SelectContext(ctx, &records, q, pred.Args...); err != nil {
		return nil, storeError(err, "list certificate rows")
	}
	return records, nil
}

// Update applies changes to a live record in one statement and stamps the
// modification audit columns.
func (r *PDRecordRepository) Update(ctx context.Context, id int64, changes models.PDRecordChanges) error {
	if len(changes.Columns) == 0 {
		return appErrors.Validation("No editable fields provided.")
	}

	sets := make([]string, 0, len(changes.Columns)+2)
	args := make([]interface{}, 0, len(changes.Columns)+2)
	for _, cv := range changes.Columns {
		if _, ok := updatableRecordColumns[cv.Column]; !ok {
			return fmt.Errorf("update pd record: column %q is not updatable", cv.Column)
		}
		args = append(args, cv.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", cv.Column, len(args)))
	}
	args = append(args, changes.Actor)
	sets = append(sets, "modified_at = now()", fmt.Sprintf("modified_by = $%d", len(args)))
	args = append(args, id)

	q := fmt.Sprintf("UPDATE pd_records SET %s WHERE pd_record_id = $%d AND is_deleted = FALSE",
		strings.Join(sets, ", "), len(args))
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return storeError(err, "update pd record")
	}
	return rowsAffectedOrNotFound(res, "update pd record", RecordNotFoundMessage)
}

// SoftDelete hides a live record from every view.
func (r *PDRecordRepository) SoftDelete(ctx context.Context, id int64, actor *string) error {
	const q = `UPDATE pd_records SET is_deleted = TRUE, deleted_at = now(), deleted_by = $2 WHERE pd_record_id = $1 AND is_deleted = FALSE`
	res, err := r.db.ExecContext(ctx, q, id, actor)
	if err != nil {
		return storeError(err, "delete pd record")
	}
	return rowsAffectedOrNotFound(res, "delete pd record", RecordNotFoundMessage)
}

// InsertBulk writes one record per active staff id, snapshotting each
// member's current name. It returns the number of rows inserted.
func (r *PDRecordRepository) InsertBulk(ctx context.Context, rec models.NewPDRecords) (int64, error) {
	const q = `INSERT INTO pd_records (meeting_id, staff_id, staff_name_snapshot, start_date, end_date, area_id, title,
		venue_id, venue_other, hours, crt, enrol, other, is_accrual, accrual_hours, created_by)
	SELECT $1::varchar, s.staff_id, s.name, $2::date, $3::date, $4::int, $5::varchar,
		$6::int, $7::varchar, $8::numeric, $9::numeric, $10::numeric, $11::numeric, $12::boolean, $13::numeric, $14::varchar
	FROM staff s
	WHERE s.staff_id = ANY($15::int[]) AND s.is_archived = FALSE`

	res, err := r.db.ExecContext(ctx, q,
		rec.MeetingID, rec.StartDate, rec.EndDate, rec.AreaID, rec.Title,
		rec.VenueID, rec.VenueOther, rec.Hours, rec.CRT, rec.Enrol, rec.Other, rec.IsAccrual, rec.AccrualHours, rec.Actor,
		pq.Array(rec.StaffIDs))
	if err != nil {
		return 0, storeError(err, "insert pd records")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("insert pd records rows affected: %w", err)
	}
	return n, nil
}
