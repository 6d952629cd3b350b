package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
	"github.com/09608249-WELS/pdtracker-admin/pkg/export"
)

// Export formats.
const (
	ExportCSV  = "csv"
	ExportXLSX = "xlsx"
	ExportPDF  = "pdf"
)

var exportHeaders = []string{"StartDate", "Staff", "Area", "Venue", "Title", "Hours", "Total", "Accrual"}

type recordPager interface {
	List(ctx context.Context, pred query.Predicate, page query.Page) ([]models.PDRecord, int, error)
}

// ExportFile is a rendered export body.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
	Rows        int
}

// ExportService streams filtered records through the tabular exporters.
type ExportService struct {
	records   recordPager
	cfg       config.ExportConfig
	renderers map[string]export.Renderer
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(records recordPager, cfg config.ExportConfig, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = query.MaxPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 2000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		records: records,
		cfg:     cfg,
		renderers: map[string]export.Renderer{
			ExportCSV:  export.NewCSVExporter(),
			ExportXLSX: export.NewXLSXExporter(),
			ExportPDF:  export.NewPDFExporter(22, 40, 30, 40, 90, 16, 16, 18),
		},
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// Export renders every record matching filter in format.
func (s *ExportService) Export(ctx context.Context, format string, filter query.RecordFilter) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Validation(fmt.Sprintf("Unsupported export format %q.", format))
	}

	rows, err := s.collect(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Title: "PD Records", Headers: exportHeaders, Rows: make([][]interface{}, 0, len(rows))}
	for _, r := range rows {
		data.Rows = append(data.Rows, exportRow(r))
	}

	start := time.Now()
	body, err := renderer.Render(data)
	s.metrics.ObserveRender("export_"+format, time.Since(start))
	if err != nil {
		s.logger.Error("render export failed", zap.String("format", format), zap.Int("rows", len(rows)), zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to export PD records.")
	}
	s.metrics.AddExportRows(format, len(rows))

	return &ExportFile{
		Filename:    fmt.Sprintf("pd-records-%s.%s", s.now().UTC().Format("2006-01-02"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        body,
		Rows:        len(rows),
	}, nil
}

// collect pages through the listing until the total is reached, a short page
// arrives or the page cap is hit.
func (s *ExportService) collect(ctx context.Context, filter query.RecordFilter) ([]models.PDRecord, error) {
	pred := query.Build(filter)
	var all []models.PDRecord
	for n := 1; n <= s.cfg.MaxPages; n++ {
		if err := ctx.Err(); err != nil {
			return nil, appErrors.Internal(err, "Export cancelled.")
		}
		page := query.PageAt(n, s.cfg.PageSize)
		rows, total, err := s.records.List(ctx, pred, page)
		if err != nil {
			s.logger.Error("export page failed", zap.Int("page", n), zap.Error(err))
			return nil, passThrough(err, "Failed to load PD records.")
		}
		all = append(all, rows...)
		if len(rows) < page.PageSize || len(all) >= total {
			break
		}
		if n == s.cfg.MaxPages {
			s.logger.Warn("export truncated at page cap", zap.Int("max_pages", s.cfg.MaxPages), zap.Int("total", total))
		}
	}
	return all, nil
}

func exportRow(r models.PDRecord) []interface{} {
	accrual := "No"
	if r.IsAccrual {
		accrual = "Yes"
	}
	return []interface{}{
		r.StartDate.DMY(),
		r.StaffDisplayName(),
		stringOrEmpty(r.AreaName),
		stringOrEmpty(r.VenueDisplay),
		r.Title,
		r.Hours,
		r.Total,
		accrual,
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
