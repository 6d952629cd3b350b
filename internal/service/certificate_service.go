package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/09608249-WELS/pdtracker-admin/internal/certificate"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

// NoCertificateRowsMessage is returned when a filter selects nothing.
const NoCertificateRowsMessage = "No records found for the selected filters."

type certificateRowSource interface {
	CertificateRows(ctx context.Context, pred query.Predicate) ([]models.PDRecord, error)
}

// CertificateFile is a rendered certificate document.
type CertificateFile struct {
	Filename string
	Data     []byte
	Pages    int
}

// CertificateService composes and renders PD certificates.
type CertificateService struct {
	rows     certificateRowSource
	renderer certificate.Renderer
	cfg      config.CertificatesConfig
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewCertificateService constructs a CertificateService.
func NewCertificateService(rows certificateRowSource, renderer certificate.Renderer, cfg config.CertificatesConfig, metrics *MetricsService, logger *zap.Logger) *CertificateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CertificateService{rows: rows, renderer: renderer, cfg: cfg, metrics: metrics, logger: logger, now: time.Now}
}

// PDF renders certificates for every record matching filter.
func (s *CertificateService) PDF(ctx context.Context, filter query.RecordFilter) (*CertificateFile, error) {
	doc, layout, err := s.compose(ctx, filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	data, err := s.renderer.Render(ctx, doc, layout)
	s.metrics.ObserveRender(s.rendererKind(), time.Since(start))
	if err != nil {
		s.logger.Error("render certificates failed", zap.Int("pages", len(doc.Pages)), zap.Error(err))
		return nil, appErrors.Internal(err, "Failed to render certificates.")
	}
	s.metrics.AddCertificatePages(len(doc.Pages))

	return &CertificateFile{
		Filename: fmt.Sprintf("pd-certificates-%s.pdf", s.now().UTC().Format("2006-01-02")),
		Data:     data,
		Pages:    len(doc.Pages),
	}, nil
}

// HTML returns the paginated markup the PDF is printed from.
func (s *CertificateService) HTML(ctx context.Context, filter query.RecordFilter) ([]byte, error) {
	doc, layout, err := s.compose(ctx, filter)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := certificate.RenderHTML(doc, layout)
	s.metrics.ObserveRender("html", time.Since(start))
	if err != nil {
		return nil, appErrors.Internal(err, "Failed to render certificates.")
	}
	return out, nil
}

func (s *CertificateService) compose(ctx context.Context, filter query.RecordFilter) (certificate.Document, certificate.Layout, error) {
	rows, err := s.rows.CertificateRows(ctx, query.Build(filter))
	if err != nil {
		s.logger.Error("load certificate rows failed", zap.Error(err))
		return certificate.Document{}, certificate.Layout{}, passThrough(err, "Failed to load PD records.")
	}
	if len(rows) == 0 {
		return certificate.Document{}, certificate.Layout{}, appErrors.NotFound(NoCertificateRowsMessage)
	}
	doc := certificate.Compose(rows, certificate.Options{RowsPerPage: s.cfg.RowsPerPage})
	layout := certificate.NewLayout(s.cfg.Title, s.cfg.SchoolName, s.cfg.LogoPath, s.cfg.Signatories, s.now())
	return doc, layout, nil
}

func (s *CertificateService) rendererKind() string {
	if s.cfg.Renderer == "" {
		return config.RendererChrome
	}
	return s.cfg.Renderer
}
