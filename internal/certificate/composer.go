// Package certificate groups PD records by staff member, paginates each
// member's activities onto printable pages and renders them to PDF.
package certificate

import (
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

// DefaultRowsPerPage is the activity table capacity of one A4 page.
const DefaultRowsPerPage = 18

// Options controls composition.
type Options struct {
	RowsPerPage int
	Locale      language.Tag
}

// Group is every selected record of one staff member.
type Group struct {
	Key       string
	StaffName string
	Items     []models.PDRecord
}

// Page is one printed certificate page.
type Page struct {
	StaffName          string
	Items              []models.PDRecord
	PageIndex          int
	PageCount          int
	IsLastPageForStaff bool
	ShowSignature      bool
	ShowContinued      bool
}

// Document is the composed, ordered page list.
type Document struct {
	Groups []Group
	Pages  []Page
}

// GroupKey identifies the person a record belongs to. Records without a staff
// link are grouped by their snapshot name.
func GroupKey(r models.PDRecord) string {
	if r.StaffID != nil {
		return strconv.FormatInt(*r.StaffID, 10)
	}
	name := r.StaffNameSnapshot
	if name == "" {
		name = "Unknown"
	}
	return "name:" + name
}

// GroupByStaff groups rows, orders each group's items by start date then id
// and orders groups by display name with a case and accent insensitive
// collator. Ties fall back to the group key.
func GroupByStaff(rows []models.PDRecord, locale language.Tag) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, r := range rows {
		key := GroupKey(r)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, StaffName: r.StaffDisplayName()})
		}
		groups[i].Items = append(groups[i].Items, r)
	}

	for i := range groups {
		items := groups[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			if !items[a].StartDate.Equal(items[b].StartDate.Time) {
				return items[a].StartDate.Before(items[b].StartDate.Time)
			}
			return items[a].ID < items[b].ID
		})
	}

	if locale == language.Und {
		locale = language.MustParse("en-AU")
	}
	col := collate.New(locale, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(groups, func(a, b int) bool {
		if c := col.CompareString(groups[a].StaffName, groups[b].StaffName); c != 0 {
			return c < 0
		}
		return groups[a].Key < groups[b].Key
	})

	return groups
}

// Paginate splits a group into pages of at most size rows. A group with no
// items still produces one page.
func Paginate(g Group, size int) []Page {
	if size <= 0 {
		size = DefaultRowsPerPage
	}

	var chunks [][]models.PDRecord
	for start := 0; start < len(g.Items); start += size {
		end := start + size
		if end > len(g.Items) {
			end = len(g.Items)
		}
		chunks = append(chunks, g.Items[start:end])
	}
	if len(chunks) == 0 {
		chunks = [][]models.PDRecord{nil}
	}

	pages := make([]Page, 0, len(chunks))
	for i, chunk := range chunks {
		last := i == len(chunks)-1
		pages = append(pages, Page{
			StaffName:          g.StaffName,
			Items:              chunk,
			PageIndex:          i,
			PageCount:          len(chunks),
			IsLastPageForStaff: last,
			ShowSignature:      last,
			ShowContinued:      !last,
		})
	}
	return pages
}

// Compose groups and paginates rows into a Document.
func Compose(rows []models.PDRecord, opts Options) Document {
	groups := GroupByStaff(rows, opts.Locale)
	doc := Document{Groups: groups}
	for _, g := range groups {
		doc.Pages = append(doc.Pages, Paginate(g, opts.RowsPerPage)...)
	}
	return doc
}

// FormatHours renders hours without trailing zeros.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
