package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/09608249-WELS/pdtracker-admin/internal/models"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
	"github.com/09608249-WELS/pdtracker-admin/pkg/response"
)

type lookupService interface {
	Lookups(ctx context.Context) (*models.Lookups, error)
	Venues(ctx context.Context) ([]models.Venue, error)
	Health(ctx context.Context) (string, error)
}

// LookupHandler serves reference lists and the database health probe.
type LookupHandler struct {
	lookups lookupService
}

// NewLookupHandler constructs LookupHandler.
func NewLookupHandler(lookups lookupService) *LookupHandler {
	return &LookupHandler{lookups: lookups}
}

type lookupsResponse struct {
	OK      bool            `json:"ok"`
	Areas   []models.Area   `json:"areas"`
	Sectors []models.Sector `json:"sectors"`
	Sites   []models.Site   `json:"sites"`
}

type venuesResponse struct {
	OK     bool           `json:"ok"`
	Venues []models.Venue `json:"venues"`
}

type healthResponse struct {
	OK     bool   `json:"ok"`
	DBName string `json:"dbname,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Lookups godoc
// @Summary Areas, sectors and sites for the entry form
// @Tags Lookups
// @Produce json
// @Success 200 {object} lookupsResponse
// @Router /lookups [get]
func (h *LookupHandler) Lookups(c *gin.Context) {
	l, err := h.lookups.Lookups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lookupsResponse{OK: true, Areas: l.Areas, Sectors: l.Sectors, Sites: l.Sites})
}

// Venues godoc
// @Summary Known venues
// @Tags Lookups
// @Produce json
// @Success 200 {object} venuesResponse
// @Router /venues [get]
func (h *LookupHandler) Venues(c *gin.Context) {
	venues, err := h.lookups.Venues(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venuesResponse{OK: true, Venues: venues})
}

// Health godoc
// @Summary Database round trip
// @Tags Health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 500 {object} healthResponse
// @Router /health [get]
func (h *LookupHandler) Health(c *gin.Context) {
	name, err := h.lookups.Health(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.JSON(c, http.StatusInternalServerError, healthResponse{OK: false, Error: appErrors.FromError(err).Message})
		return
	}
	response.JSON(c, http.StatusOK, healthResponse{OK: true, DBName: name})
}
