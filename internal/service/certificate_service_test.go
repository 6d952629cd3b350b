package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/09608249-WELS/pdtracker-admin/internal/certificate"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

type fakeCertificateRows struct {
	rows []models.PDRecord
	pred query.Predicate
}

func (f *fakeCertificateRows) CertificateRows(_ context.Context, pred query.Predicate) ([]models.PDRecord, error) {
	f.pred = pred
	return f.rows, nil
}

type recordingRenderer struct {
	doc    certificate.Document
	layout certificate.Layout
	err    error
}

func (r *recordingRenderer) Render(_ context.Context, doc certificate.Document, layout certificate.Layout) ([]byte, error) {
	r.doc = doc
	r.layout = layout
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-fake"), nil
}

func (r *recordingRenderer) Close() error { return nil }

func certificateConfig() config.CertificatesConfig {
	return config.CertificatesConfig{
		Renderer:    config.RendererGoFPDF,
		RowsPerPage: 2,
		Title:       "Certificate of Professional Development",
		SchoolName:  "Sample College",
		Signatories: []string{"Principal"},
	}
}

func TestCertificateServicePDF(t *testing.T) {
	staff := int64(9)
	rows := &fakeCertificateRows{rows: []models.PDRecord{
		{ID: 1, StaffID: &staff, StaffNameSnapshot: "Kim", Title: "A"},
		{ID: 2, StaffID: &staff, StaffNameSnapshot: "Kim", Title: "B"},
		{ID: 3, StaffID: &staff, StaffNameSnapshot: "Kim", Title: "C"},
	}}
	renderer := &recordingRenderer{}
	metrics := NewMetricsService()
	svc := NewCertificateService(rows, renderer, certificateConfig(), metrics, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC) }

	file, err := svc.PDF(context.Background(), query.RecordFilter{StaffID: &staff})
	require.NoError(t, err)
	assert.Equal(t, "pd-certificates-2026-10-14.pdf", file.Filename)
	assert.Equal(t, 2, file.Pages)
	assert.Equal(t, []byte("%PDF-fake"), file.Data)
	assert.Len(t, renderer.doc.Pages, 2)
	assert.Equal(t, "Sample College", renderer.layout.SchoolName)
	assert.Contains(t, rows.pred.Where, "r.staff_id = $1")
}

func TestCertificateServiceNoRows(t *testing.T) {
	svc := NewCertificateService(&fakeCertificateRows{}, &recordingRenderer{}, certificateConfig(), nil, nil)
	missing := int64(999999)

	_, err := svc.PDF(context.Background(), query.RecordFilter{StaffID: &missing})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, NoCertificateRowsMessage, appErr.Message)
}

func TestCertificateServiceRenderFailure(t *testing.T) {
	rows := &fakeCertificateRows{rows: []models.PDRecord{{ID: 1, StaffNameSnapshot: "Kim"}}}
	svc := NewCertificateService(rows, &recordingRenderer{err: errors.New("chrome crashed")}, certificateConfig(), nil, nil)

	_, err := svc.PDF(context.Background(), query.RecordFilter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func TestCertificateServiceHTML(t *testing.T) {
	rows := &fakeCertificateRows{rows: []models.PDRecord{{ID: 1, StaffNameSnapshot: "Kim <b>", Title: "Safety"}}}
	svc := NewCertificateService(rows, &recordingRenderer{}, certificateConfig(), nil, nil)

	out, err := svc.HTML(context.Background(), query.RecordFilter{})
	require.NoError(t, err)
	html := string(out)
	assert.Contains(t, html, "Kim &lt;b&gt;")
	assert.Equal(t, 1, strings.Count(html, "Safety"))
}
