// Package query turns optional listing filters into a parameterized predicate
// and a clamped page window. Listing, certificates and exports all consume the
// same Predicate so every view of the data applies identical filters.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

const (
	DefaultPage     = 1
	MaxPage         = 1000000
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// RecordFilter is the optional filter set for PD records. Nil means absent.
type RecordFilter struct {
	From    *models.Date
	To      *models.Date
	StaffID *int64
	AreaID  *int64
	VenueID *int64
	Accrual *bool
	Title   string
}

// Predicate is a WHERE clause with its positional arguments.
type Predicate struct {
	Where string
	Args  []interface{}
}

// Page is a clamped pagination window.
type Page struct {
	Page     int
	PageSize int
	Offset   int
}

// Limit is the row count for the window.
func (p Page) Limit() int { return p.PageSize }

// ParseRecordFilter reads filters from query parameters. Malformed or
// non-positive ids are treated as absent; malformed dates are rejected.
func ParseRecordFilter(values url.Values) (RecordFilter, error) {
	var f RecordFilter

	from, err := parseDate(firstNonEmpty(values, "from", "dateFrom"))
	if err != nil {
		return RecordFilter{}, fmt.Errorf("from: %w", err)
	}
	f.From = from

	to, err := parseDate(firstNonEmpty(values, "to", "dateTo"))
	if err != nil {
		return RecordFilter{}, fmt.Errorf("to: %w", err)
	}
	f.To = to

	f.StaffID = parseID(values.Get("staffId"))
	f.AreaID = parseID(values.Get("areaId"))
	f.VenueID = parseID(values.Get("venueId"))
	f.Accrual = parseTriState(values.Get("accrual"))
	f.Title = strings.TrimSpace(values.Get("q"))

	return f, nil
}

// Build renders the filter as a predicate over pd_records aliased r. The
// not-deleted clause is always first.
func Build(f RecordFilter) Predicate {
	conditions := []string{"r.is_deleted = FALSE"}
	var args []interface{}

	add := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if f.From != nil {
		add("r.start_date >= $%d", f.From.String())
	}
	if f.To != nil {
		add("r.start_date <= $%d", f.To.String())
	}
	if f.StaffID != nil {
		add("r.staff_id = $%d", *f.StaffID)
	}
	if f.AreaID != nil {
		add("r.area_id = $%d", *f.AreaID)
	}
	if f.VenueID != nil {
		add("r.venue_id = $%d", *f.VenueID)
	}
	if f.Accrual != nil {
		add("r.is_accrual = $%d", *f.Accrual)
	}
	if f.Title != "" {
		add(`r.title ILIKE $%d ESCAPE '\'`, "%"+escapeLike(f.Title)+"%")
	}

	return Predicate{Where: "WHERE " + strings.Join(conditions, " AND "), Args: args}
}

// NewPage clamps raw page parameters. Unparseable values fall back to the
// defaults; out-of-range values are clamped rather than rejected.
func NewPage(rawPage, rawPageSize string) Page {
	page := clamp(parseIntOr(rawPage, DefaultPage), 1, MaxPage)
	size := clamp(parseIntOr(rawPageSize, DefaultPageSize), 1, MaxPageSize)
	return Page{Page: page, PageSize: size, Offset: (page - 1) * size}
}

// PageAt builds a window directly, applying the same clamps.
func PageAt(page, pageSize int) Page {
	page = clamp(page, 1, MaxPage)
	pageSize = clamp(pageSize, 1, MaxPageSize)
	return Page{Page: page, PageSize: pageSize, Offset: (page - 1) * pageSize}
}

func firstNonEmpty(values url.Values, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(values.Get(key)); v != "" {
			return v
		}
	}
	return ""
}

func parseDate(raw string) (*models.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func parseTriState(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		v := true
		return &v
	case "0", "false":
		v := false
		return &v
	default:
		return nil
	}
}

// parseIntOr saturates out-of-range integers so clamp still applies to them.
func parseIntOr(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(raw, "-") {
			return -MaxPage
		}
		return MaxPage
	}
	if err != nil {
		return fallback
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
