package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	"github.com/09608249-WELS/pdtracker-admin/internal/service"
	"github.com/09608249-WELS/pdtracker-admin/pkg/response"
)

type pdRecordService interface {
	List(ctx context.Context, filter query.RecordFilter, page query.Page) (*models.PDRecordPage, error)
	Update(ctx context.Context, id int64, req dto.PatchRecordRequest, actor *string) error
	Delete(ctx context.Context, id int64, actor *string) error
	CreateBulk(ctx context.Context, req dto.CreateRecordsRequest, actor *string) (int64, error)
}

type certificateService interface {
	PDF(ctx context.Context, filter query.RecordFilter) (*service.CertificateFile, error)
	HTML(ctx context.Context, filter query.RecordFilter) ([]byte, error)
}

type exportService interface {
	Export(ctx context.Context, format string, filter query.RecordFilter) (*service.ExportFile, error)
}

const invalidRecordIDMessage = "Invalid PDRecordID"

// PDRecordHandler exposes PD record endpoints.
type PDRecordHandler struct {
	records      pdRecordService
	certificates certificateService
	exports      exportService
}

// NewPDRecordHandler constructs PDRecordHandler.
func NewPDRecordHandler(records pdRecordService, certificates certificateService, exports exportService) *PDRecordHandler {
	return &PDRecordHandler{records: records, certificates: certificates, exports: exports}
}

// List godoc
// @Summary List PD records
// @Tags PDRecords
// @Produce json
// @Param from query string false "Start date lower bound (YYYY-MM-DD)"
// @Param to query string false "Start date upper bound (YYYY-MM-DD)"
// @Param staffId query int false "Staff member"
// @Param areaId query int false "PD area"
// @Param venueId query int false "Venue"
// @Param accrual query string false "1/true or 0/false"
// @Param q query string false "Title contains"
// @Param page query int false "Page"
// @Param pageSize query int false "Page size (max 200)"
// @Success 200 {object} models.PDRecordPage
// @Failure 400 {object} response.ErrorBody
// @Router /pdrecords [get]
func (h *PDRecordHandler) List(c *gin.Context) {
	filter, ok := recordFilter(c)
	if !ok {
		return
	}
	page := query.NewPage(c.Query("page"), c.Query("pageSize"))
	result, err := h.records.List(c.Request.Context(), filter, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Create godoc
// @Summary Record one activity for several staff members
// @Tags PDRecords
// @Accept json
// @Produce json
// @Param X-User header string false "Acting user"
// @Param payload body dto.CreateRecordsRequest true "Bulk entry"
// @Success 200 {object} dto.CreateRecordsResponse
// @Failure 400 {object} response.ErrorBody
// @Router /pdrecords [post]
func (h *PDRecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordsRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.records.CreateBulk(c.Request.Context(), req, recordActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.CreateRecordsResponse{OK: true, InsertedRows: n})
}

// Update godoc
// @Summary Partially update a PD record
// @Tags PDRecords
// @Accept json
// @Produce json
// @Param id path int true "PDRecordID"
// @Param X-User header string false "Acting user"
// @Param payload body dto.PatchRecordRequest true "Editable fields"
// @Success 200 {object} response.OK
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /pdrecords/{id} [patch]
func (h *PDRecordHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", invalidRecordIDMessage)
	if !ok {
		return
	}
	var req dto.PatchRecordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.records.Update(c.Request.Context(), id, req, recordActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// Delete godoc
// @Summary Soft-delete a PD record
// @Tags PDRecords
// @Produce json
// @Param id path int true "PDRecordID"
// @Param X-User header string false "Acting user"
// @Success 200 {object} response.OK
// @Failure 404 {object} response.ErrorBody
// @Router /pdrecords/{id} [delete]
func (h *PDRecordHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", invalidRecordIDMessage)
	if !ok {
		return
	}
	if err := h.records.Delete(c.Request.Context(), id, recordActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}

// CertificatesPDF godoc
// @Summary Render PD certificates as PDF
// @Tags Certificates
// @Produce application/pdf
// @Param from query string false "Start date lower bound"
// @Param to query string false "Start date upper bound"
// @Param staffId query int false "Staff member"
// @Param areaId query int false "PD area"
// @Param venueId query int false "Venue"
// @Param accrual query string false "Accrual flag"
// @Param q query string false "Title contains"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorBody
// @Router /pdrecords/certificates.pdf [get]
func (h *PDRecordHandler) CertificatesPDF(c *gin.Context) {
	filter, ok := recordFilter(c)
	if !ok {
		return
	}
	file, err := h.certificates.PDF(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Binary(c, "application/pdf", fmt.Sprintf("inline; filename=%q", file.Filename), file.Data)
}

// CertificatesHTML godoc
// @Summary Preview PD certificates as printable HTML
// @Tags Certificates
// @Produce html
// @Success 200 {string} string
// @Failure 404 {object} response.ErrorBody
// @Router /pdrecords/certificates.html [get]
func (h *PDRecordHandler) CertificatesHTML(c *gin.Context) {
	filter, ok := recordFilter(c)
	if !ok {
		return
	}
	body, err := h.certificates.HTML(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Binary(c, "text/html; charset=utf-8", "", body)
}

// Export godoc
// @Summary Export filtered PD records
// @Tags PDRecords
// @Produce octet-stream
// @Param format path string true "csv, xlsx or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /pdrecords/export.{format} [get]
func (h *PDRecordHandler) Export(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := recordFilter(c)
		if !ok {
			return
		}
		file, err := h.exports.Export(c.Request.Context(), format, filter)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Binary(c, file.ContentType, fmt.Sprintf("attachment; filename=%q", file.Filename), file.Data)
	}
}
