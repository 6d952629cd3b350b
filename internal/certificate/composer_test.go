package certificate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
)

func record(id int64, staffID *int64, current, snapshot, date string) models.PDRecord {
	r := models.PDRecord{ID: id, StaffID: staffID, StaffNameSnapshot: snapshot, Title: fmt.Sprintf("Activity %d", id)}
	if current != "" {
		r.StaffNameCurrent = &current
	}
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	r.StartDate = d
	return r
}

func id(n int64) *int64 { return &n }

func TestGroupByStaffOrdersGroupsAndItems(t *testing.T) {
	rows := []models.PDRecord{
		record(3, id(2), "Bob", "Bob", "2024-03-01"),
		record(1, id(1), "alice", "Alice", "2024-05-01"),
		record(2, id(1), "alice", "Alice", "2024-02-01"),
		record(4, id(1), "alice", "Alice", "2024-02-01"),
	}

	groups := GroupByStaff(rows, language.Und)
	require.Len(t, groups, 2)
	assert.Equal(t, "alice", groups[0].StaffName)
	assert.Equal(t, "Bob", groups[1].StaffName)

	var ids []int64
	for _, item := range groups[0].Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []int64{2, 4, 1}, ids)
}

func TestGroupByStaffIgnoresAccents(t *testing.T) {
	rows := []models.PDRecord{
		record(1, id(1), "Zoe", "", "2024-01-01"),
		record(2, id(2), "Émile", "", "2024-01-01"),
		record(3, id(3), "Fred", "", "2024-01-01"),
	}
	groups := GroupByStaff(rows, language.MustParse("en-AU"))
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"Émile", "Fred", "Zoe"}, []string{groups[0].StaffName, groups[1].StaffName, groups[2].StaffName})
}

func TestGroupKeyFallsBackToSnapshot(t *testing.T) {
	assert.Equal(t, "7", GroupKey(record(1, id(7), "", "", "2024-01-01")))
	assert.Equal(t, "name:Old Name", GroupKey(record(1, nil, "", "Old Name", "2024-01-01")))
	assert.Equal(t, "name:Unknown", GroupKey(record(1, nil, "", "", "2024-01-01")))

	groups := GroupByStaff([]models.PDRecord{record(1, nil, "", "", "2024-01-01")}, language.Und)
	require.Len(t, groups, 1)
	assert.Equal(t, models.UnknownStaffName, groups[0].StaffName)
}

func TestSameNameDifferentStaffStaySeparate(t *testing.T) {
	rows := []models.PDRecord{
		record(1, id(9), "Sam Lee", "", "2024-01-01"),
		record(2, id(4), "Sam Lee", "", "2024-01-01"),
	}
	groups := GroupByStaff(rows, language.Und)
	require.Len(t, groups, 2)
	assert.Equal(t, "4", groups[0].Key)
	assert.Equal(t, "9", groups[1].Key)
}

func TestPaginateSplitsAndFlagsPages(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var items []models.PDRecord
	for i := 0; i < 20; i++ {
		items = append(items, models.PDRecord{ID: int64(i + 1), StartDate: models.NewDate(start.AddDate(0, 0, i))})
	}

	pages := Paginate(Group{Key: "1", StaffName: "Alice", Items: items}, 0)
	require.Len(t, pages, 2)

	assert.Len(t, pages[0].Items, 18)
	assert.False(t, pages[0].IsLastPageForStaff)
	assert.False(t, pages[0].ShowSignature)
	assert.True(t, pages[0].ShowContinued)

	assert.Len(t, pages[1].Items, 2)
	assert.True(t, pages[1].IsLastPageForStaff)
	assert.True(t, pages[1].ShowSignature)
	assert.False(t, pages[1].ShowContinued)
	assert.Equal(t, 2, pages[1].PageCount)
}

func TestPaginateEmptyGroupYieldsOnePage(t *testing.T) {
	pages := Paginate(Group{Key: "1", StaffName: "Alice"}, 18)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Items)
	assert.True(t, pages[0].ShowSignature)
	assert.False(t, pages[0].ShowContinued)
}

func TestComposeProducesPagesInGroupOrder(t *testing.T) {
	rows := []models.PDRecord{
		record(1, id(2), "Bob", "", "2024-01-01"),
		record(2, id(1), "Alice", "", "2024-01-01"),
		record(3, id(1), "Alice", "", "2024-01-02"),
	}
	doc := Compose(rows, Options{RowsPerPage: 1})
	require.Len(t, doc.Pages, 3)
	assert.Equal(t, "Alice", doc.Pages[0].StaffName)
	assert.True(t, doc.Pages[0].ShowContinued)
	assert.Equal(t, "Alice", doc.Pages[1].StaffName)
	assert.True(t, doc.Pages[1].ShowSignature)
	assert.Equal(t, "Bob", doc.Pages[2].StaffName)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5", FormatHours(1.5))
	assert.Equal(t, "2", FormatHours(2))
}
