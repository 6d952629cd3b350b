package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAuditLogsSuccessfulMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Audit(zap.New(core), "pdrecords"))
	r.PATCH("/pdrecords/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.DELETE("/pdrecords/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/pdrecords", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPatch, "/pdrecords/7", nil)
	req.Header.Set("X-User", "jdoe")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/pdrecords/8", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pdrecords", nil))

	entries := logs.FilterMessage("audit").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "jdoe", fields["actor"])
	assert.Equal(t, "7", fields["resource_id"])
	assert.Equal(t, "pdrecords", fields["resource"])
}
