package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/09608249-WELS/pdtracker-admin/internal/dto"
	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	"github.com/09608249-WELS/pdtracker-admin/pkg/response"
)

type staffService interface {
	List(ctx context.Context, filter models.StaffFilter) ([]models.Staff, error)
	Create(ctx context.Context, req dto.StaffRequest, actor string) (int64, error)
	Update(ctx context.Context, id int64, req dto.StaffRequest, actor string) error
	Archive(ctx context.Context, id int64, actor string) error
	Restore(ctx context.Context, id int64, actor string) error
}

const invalidStaffIDMessage = "Invalid StaffID."

// StaffHandler exposes roster endpoints.
type StaffHandler struct {
	staff staffService
}

// NewStaffHandler constructs StaffHandler.
func NewStaffHandler(staff staffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List godoc
// @Summary List staff
// @Tags Staff
// @Produce json
// @Param includeArchived query bool false "Include archived members"
// @Param search query string false "Name contains"
// @Param campus query string false "Comma separated campuses"
// @Param position query string false "Comma separated positions"
// @Param sector query string false "Comma separated sectors"
// @Success 200 {object} dto.StaffListResponse
// @Router /staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	filter := models.StaffFilter{
		Search:          strings.TrimSpace(c.Query("search")),
		Campuses:        csvValues(c.Query("campus")),
		Positions:       csvValues(c.Query("position")),
		Sectors:         csvValues(c.Query("sector")),
		IncludeArchived: truthy(c.Query("includeArchived")),
	}
	rows, err := h.staff.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StaffListResponse{OK: true, Success: true, Staff: rows, Rows: rows})
}

// Create godoc
// @Summary Add a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param X-Actor header string false "Acting user"
// @Param payload body dto.StaffRequest true "Staff fields"
// @Success 201 {object} dto.StaffWriteResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /staff [post]
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.StaffRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.staff.Create(c.Request.Context(), req, staffActor(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.StaffWriteResponse{Success: true, StaffID: id})
}

// Update godoc
// @Summary Edit a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "StaffID"
// @Param X-Actor header string false "Acting user"
// @Param payload body dto.StaffRequest true "Staff fields"
// @Success 200 {object} dto.StaffWriteResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /staff/{id} [put]
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", invalidStaffIDMessage)
	if !ok {
		return
	}
	var req dto.StaffRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.staff.Update(c.Request.Context(), id, req, staffActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StaffWriteResponse{Success: true, StaffID: id})
}

// Archive godoc
// @Summary Archive a staff member
// @Tags Staff
// @Produce json
// @Param id path int true "StaffID"
// @Param X-Actor header string false "Acting user"
// @Success 200 {object} dto.StaffWriteResponse
// @Failure 404 {object} response.ErrorBody
// @Router /staff/{id} [delete]
func (h *StaffHandler) Archive(c *gin.Context) {
	id, ok := pathID(c, "id", invalidStaffIDMessage)
	if !ok {
		return
	}
	if err := h.staff.Archive(c.Request.Context(), id, staffActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.StaffWriteResponse{Success: true, StaffID: id})
}

// Restore godoc
// @Summary Restore an archived staff member
// @Tags Staff
// @Produce json
// @Param id path int true "StaffID"
// @Param X-Actor header string false "Acting user"
// @Success 200 {object} response.OK
// @Failure 404 {object} response.ErrorBody
// @Failure 409 {object} response.ErrorBody
// @Router /staff/{id}/restore [patch]
func (h *StaffHandler) Restore(c *gin.Context) {
	id, ok := pathID(c, "id", invalidStaffIDMessage)
	if !ok {
		return
	}
	if err := h.staff.Restore(c.Request.Context(), id, staffActor(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c)
}
