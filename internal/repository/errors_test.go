package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

func TestStoreErrorMapsKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want *appErrors.Error
	}{
		{"unique", &pq.Error{Code: "23505", Constraint: "other_key"}, appErrors.ErrConflict},
		{"check", &pq.Error{Code: "23514", Constraint: "pd_records_venue_required"}, appErrors.ErrValidation},
		{"foreign key", &pq.Error{Code: "23503", Constraint: "pd_records_area_id_fkey"}, appErrors.ErrValidation},
		{"bad date", &pq.Error{Code: "22007", Message: "invalid input syntax for type date"}, appErrors.ErrValidation},
		{"bad text", &pq.Error{Code: "22P02", Message: "invalid input syntax for type integer"}, appErrors.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := storeError(tc.err, "op")
			assert.True(t, errors.Is(got, tc.want), got)
		})
	}
}

func TestStoreErrorLeavesUnknownFailuresUntagged(t *testing.T) {
	cause := errors.New("connection reset")
	got := storeError(cause, "list pd records")
	assert.ErrorIs(t, got, cause)
	var appErr *appErrors.Error
	assert.False(t, errors.As(got, &appErr))
	assert.Contains(t, got.Error(), "list pd records")

	assert.Nil(t, storeError(nil, "op"))

	tagged := appErrors.NotFound("gone")
	assert.Same(t, tagged, storeError(tagged, "op"))
}
