package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/09608249-WELS/pdtracker-admin/internal/query"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
	"github.com/09608249-WELS/pdtracker-admin/pkg/response"
)

const (
	headerUser  = "X-User"
	headerActor = "X-Actor"
)

// recordActor is the optional X-User header; absent or blank leaves the
// audit column NULL.
func recordActor(c *gin.Context) *string {
	v := strings.TrimSpace(c.GetHeader(headerUser))
	if v == "" {
		return nil
	}
	return &v
}

// staffActor is the X-Actor header; the service substitutes its default.
func staffActor(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(headerActor))
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, message)
		return 0, false
	}
	return id, true
}

// recordFilter reads PD record filters from the query string.
func recordFilter(c *gin.Context) (query.RecordFilter, bool) {
	filter, err := query.ParseRecordFilter(c.Request.URL.Query())
	if err != nil {
		badRequest(c, "Invalid filter: "+err.Error())
		return query.RecordFilter{}, false
	}
	return filter, true
}

// bindJSON decodes the request body. An empty body decodes to the zero value.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		invalidPayload(c, err)
		return false
	}
	return true
}

func invalidPayload(c *gin.Context, err error) {
	response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
}

func badRequest(c *gin.Context, message string) {
	response.Error(c, appErrors.Validation(message))
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func csvValues(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
