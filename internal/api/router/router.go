package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/api/handler"
	"github.com/Emmanu-hec2a/formManagement/internal/api/middleware"
	"github.com/Emmanu-hec2a/formManagement/pkg/redis"
	"github.com/Emmanu-hec2a/formManagement/web"
)

// Drafting routes fan out to a paid backend, so they get a per-IP cap.
const (
	draftRateLimit  = 20
	draftRateWindow = time.Minute
)

// Setup configures all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// Form pages
	r.GET("/", h.Pages.Index)
	r.GET("/leave-out-chit", h.Pages.LeaveChit)
	r.GET("/internal-memo", h.Pages.Memo)
	r.GET("/teacher-duty", h.Pages.DutyForm)

	// Form submissions
	r.POST("/generate-leave-chit", h.Forms.GenerateLeaveChit)
	r.POST("/generate-memo", h.Forms.GenerateMemo)
	r.POST("/generate-duty-form", h.Forms.GenerateDutyForm)

	// Memo drafting
	draft := r.Group("/")
	draft.Use(middleware.RateLimit(rdb, draftRateLimit, draftRateWindow, logger))
	{
		draft.POST("/ai-generate-memo", h.Draft.Draft)
		draft.POST("/ai-generate-memo-local", h.Draft.DraftLocal)
	}
	r.GET("/memo-templates", h.Draft.Templates)
	r.GET("/api-status", h.Draft.Status)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
