// Package router assembles the HTTP engine: middleware chain, API routes,
// observability endpoints and the static front end.
package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/09608249-WELS/pdtracker-admin/api/swagger"
	"github.com/09608249-WELS/pdtracker-admin/internal/handler"
	"github.com/09608249-WELS/pdtracker-admin/internal/middleware"
	"github.com/09608249-WELS/pdtracker-admin/internal/service"
	"github.com/09608249-WELS/pdtracker-admin/pkg/config"
	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
	"github.com/09608249-WELS/pdtracker-admin/pkg/logger"
	corsmiddleware "github.com/09608249-WELS/pdtracker-admin/pkg/middleware/cors"
	reqidmiddleware "github.com/09608249-WELS/pdtracker-admin/pkg/middleware/requestid"
	"github.com/09608249-WELS/pdtracker-admin/pkg/response"
)

// Handlers are the mounted endpoint groups.
type Handlers struct {
	Records *handler.PDRecordHandler
	Staff   *handler.StaffHandler
	Lookups *handler.LookupHandler
	Metrics *handler.MetricsHandler
}

// New builds the engine.
func New(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	if logr == nil {
		logr = zap.NewNop()
	}
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics))
	}

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(apiPrefix(cfg.APIPrefix))
	api.GET("/health", h.Lookups.Health)
	api.GET("/lookups", h.Lookups.Lookups)
	api.GET("/venues", h.Lookups.Venues)

	records := api.Group("/pdrecords", middleware.Audit(logr, "pdrecords"))
	records.GET("", h.Records.List)
	records.POST("", h.Records.Create)
	records.GET("/certificates.pdf", h.Records.CertificatesPDF)
	records.GET("/certificates.html", h.Records.CertificatesHTML)
	records.GET("/export.csv", h.Records.Export(service.ExportCSV))
	records.GET("/export.xlsx", h.Records.Export(service.ExportXLSX))
	records.GET("/export.pdf", h.Records.Export(service.ExportPDF))
	records.PATCH("/:id", h.Records.Update)
	records.DELETE("/:id", h.Records.Delete)

	staff := api.Group("/staff", middleware.Audit(logr, "staff"))
	staff.GET("", h.Staff.List)
	staff.POST("", h.Staff.Create)
	staff.PUT("/:id", h.Staff.Update)
	staff.DELETE("/:id", h.Staff.Archive)
	staff.PATCH("/:id/restore", h.Staff.Restore)

	r.NoRoute(staticFiles(cfg.PublicDir, apiPrefix(cfg.APIPrefix)))
	return r
}

func apiPrefix(prefix string) string {
	prefix = "/" + strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "/" {
		return "/api"
	}
	return prefix
}

// staticFiles serves the front end from dir for unmatched GET requests.
// Directories resolve to their index.html. API paths always get JSON 404s.
func staticFiles(dir, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		reqPath := c.Request.URL.Path
		if dir == "" || (method != http.MethodGet && method != http.MethodHead) ||
			reqPath == prefix || strings.HasPrefix(reqPath, prefix+"/") {
			response.Error(c, appErrors.NotFound("Not found."))
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+reqPath)))
		info, err := os.Stat(name)
		if err == nil && info.IsDir() {
			name = filepath.Join(name, "index.html")
			info, err = os.Stat(name)
		}
		if err != nil || info.IsDir() {
			response.Error(c, appErrors.NotFound("Not found."))
			return
		}
		c.File(name)
	}
}
