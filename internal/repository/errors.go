package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

// PostgreSQL SQLSTATE codes the store surfaces as caller errors.
const (
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqForeignKeyViolation = "23503"
	pqNotNullViolation    = "23502"
	pqInvalidText         = "22P02"
	pqInvalidDatetime     = "22007"
	pqDatetimeOverflow    = "22008"
	pqNumericOverflow     = "22003"
)

var constraintMessages = map[string]string{
	"staff_active_name_key":          "An active staff member already has that name.",
	"pd_records_venue_exclusive":     "Choose a venue or enter other venue text, not both.",
	"pd_records_venue_required":      "Choose a venue or enter other venue text.",
	"pd_records_date_order":          "EndDate cannot be before StartDate.",
	"pd_records_staff_id_fkey":       "Staff member does not exist.",
	"pd_records_area_id_fkey":        "Area does not exist.",
	"pd_records_venue_id_fkey":       "Venue does not exist.",
	"pd_records_hours_check":         "Hours cannot be negative.",
	"pd_records_crt_check":           "CRT cannot be negative.",
	"pd_records_enrol_check":         "Enrol cannot be negative.",
	"pd_records_other_check":         "Other cannot be negative.",
	"pd_records_accrual_hours_check": "AccrualHours cannot be negative.",
	"staff_name_check":               "Name is required.",
}

// storeError maps driver failures onto the API error kinds. op describes the
// failed operation for logs.
func storeError(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		msg, known := constraintMessages[pqErr.Constraint]
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			if !known {
				msg = "A record with the same values already exists."
			}
			return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, msg)
		case pqCheckViolation, pqForeignKeyViolation:
			if !known {
				msg = fmt.Sprintf("Value rejected by constraint %s.", pqErr.Constraint)
			}
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, msg)
		case pqNotNullViolation:
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
				fmt.Sprintf("%s is required.", pqErr.Column))
		case pqInvalidText, pqInvalidDatetime, pqDatetimeOverflow, pqNumericOverflow:
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, pqErr.Message)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// rowsAffectedOrNotFound turns a zero-row write into a not-found error.
func rowsAffectedOrNotFound(res sql.Result, op, notFound string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return appErrors.NotFound(notFound)
	}
	return nil
}
