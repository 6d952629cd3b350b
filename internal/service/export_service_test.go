package service

import (
	"context"
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

type pagedRecords struct {
	rows  []models.PDRecord
	pages []query.Page
	err   error
}

func (p *pagedRecords) List(_ context.Context, _ query.Predicate, page query.Page) ([]models.PDRecord, int, error) {
	p.pages = append(p.pages, page)
	if p.err != nil {
		return nil, 0, p.err
	}
	if page.Offset >= len(p.rows) {
		return nil, len(p.rows), nil
	}
	end := page.Offset + page.PageSize
	if end > len(p.rows) {
		end = len(p.rows)
	}
	return p.rows[page.Offset:end], len(p.rows), nil
}

func makeRecords(n int) []models.PDRecord {
	area := "Literacy"
	rows := make([]models.PDRecord, n)
	for i := range rows {
		rows[i] = models.PDRecord{
			ID:                int64(i + 1),
			StaffNameSnapshot: "Snap",
			StartDate:         models.Date{Time: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
			AreaName:          &area,
			Title:             "Course",
			Hours:             1.5,
			Total:             12.25,
			IsAccrual:         i%2 == 0,
		}
	}
	return rows
}

func fixedExportService(src recordPager, cfg config.ExportConfig) *ExportService {
	svc := NewExportService(src, cfg, NewMetricsService(), nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 23, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportServiceCSVPagesUntilTotal(t *testing.T) {
	src := &pagedRecords{rows: makeRecords(5)}
	svc := fixedExportService(src, config.ExportConfig{PageSize: 2, MaxPages: 10})

	file, err := svc.Export(context.Background(), "CSV", query.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, "pd-records-2026-10-14.csv", file.Filename)
	assert.Equal(t, 5, file.Rows)
	assert.Len(t, src.pages, 3)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, []string{"02/03/2026", "Snap", "Literacy", "", "Course", "1.5", "12.25", "Yes"}, records[1])
}

func TestExportServiceStopsAtPageCap(t *testing.T) {
	src := &pagedRecords{rows: makeRecords(10)}
	svc := fixedExportService(src, config.ExportConfig{PageSize: 2, MaxPages: 3})

	file, err := svc.Export(context.Background(), ExportCSV, query.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, 6, file.Rows)
	assert.Len(t, src.pages, 3)
}

func TestExportServiceEmptyResultKeepsHeader(t *testing.T) {
	svc := fixedExportService(&pagedRecords{}, config.ExportConfig{PageSize: 50, MaxPages: 5})

	file, err := svc.Export(context.Background(), ExportCSV, query.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, file.Rows)
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportServiceXLSXAndPDF(t *testing.T) {
	svc := fixedExportService(&pagedRecords{rows: makeRecords(3)}, config.ExportConfig{})

	xlsx, err := svc.Export(context.Background(), ExportXLSX, query.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, "pd-records-2026-10-14.xlsx", xlsx.Filename)
	assert.True(t, bytes.HasPrefix(xlsx.Data, []byte("PK")))

	pdf, err := svc.Export(context.Background(), ExportPDF, query.RecordFilter{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := fixedExportService(&pagedRecords{}, config.ExportConfig{})

	_, err := svc.Export(context.Background(), "docx", query.RecordFilter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestExportServiceWrapsStoreFailure(t *testing.T) {
	svc := fixedExportService(&pagedRecords{err: errors.New("timeout")}, config.ExportConfig{})

	_, err := svc.Export(context.Background(), ExportCSV, query.RecordFilter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
