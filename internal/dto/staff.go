package dto

import "github.com/09608249-WELS/pdtracker-admin/internal/models"

// StaffRequest is the create and update payload for a roster entry. The
// decoder matches keys case-insensitively so Name and name both bind.
type StaffRequest struct {
	Name     string  `json:"name" validate:"max=200"`
	Campus1  *string `json:"campus1" validate:"omitempty,max=100"`
	Campus2  *string `json:"campus2" validate:"omitempty,max=100"`
	Position *string `json:"position" validate:"omitempty,max=100"`
	Sector   *string `json:"sector" validate:"omitempty,max=50"`
	TONumber Numeric `json:"tonumber"`
	// TONumberAlt binds the legacy upper-case key when tonumber is absent.
	TONumberAlt Numeric `json:"TONumber"`
}

// TONumberValue prefers the lower-case key.
func (r StaffRequest) TONumberValue() Numeric {
	if r.TONumber.Present() {
		return r.TONumber
	}
	return r.TONumberAlt
}

// StaffListResponse carries the roster under every key older clients read.
type StaffListResponse struct {
	OK      bool           `json:"ok"`
	Success bool           `json:"success"`
	Staff   []models.Staff `json:"staff"`
	Rows    []models.Staff `json:"rows"`
}

// StaffWriteResponse confirms a roster write.
type StaffWriteResponse struct {
	Success bool  `json:"success"`
	StaffID int64 `json:"staffId"`
}
