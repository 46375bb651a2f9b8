package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/api/handler"
	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubDraftService struct{}

func (stubDraftService) Draft(ctx context.Context, req *dto.DraftRequest) *dto.DraftResponse {
	return &dto.DraftResponse{Success: false, Error: "unconfigured"}
}
func (stubDraftService) DraftLocal(req *dto.LocalDraftRequest) *dto.LocalDraftResponse {
	return &dto.LocalDraftResponse{Success: true}
}
func (stubDraftService) Templates() *dto.TemplatesResponse {
	return &dto.TemplatesResponse{}
}
func (stubDraftService) Status() *dto.APIStatusResponse {
	return &dto.APIStatusResponse{Status: "error"}
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 5000},
		School: config.SchoolConfig{
			Name:  "ST. JUDE MIXED SECONDARY SCHOOL",
			Motto: "Knowledge and Diligence",
		},
	}
	h := &handler.Handler{
		Pages: handler.NewPagesHandler(cfg.School),
		Forms: handler.NewFormsHandler(&service.Service{Draft: stubDraftService{}}, zap.NewNop()),
		Draft: handler.NewDraftHandler(stubDraftService{}),
	}
	return Setup(cfg, h, nil, zap.NewNop())
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPagesServed(t *testing.T) {
	r := newTestEngine(t)

	for _, path := range []string{"/", "/leave-out-chit", "/internal-memo", "/teacher-duty"} {
		w := get(r, path)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), "<html") {
			t.Errorf("GET %s did not return HTML", path)
		}
		if !strings.Contains(w.Body.String(), "ST. JUDE MIXED SECONDARY SCHOOL") {
			t.Errorf("GET %s does not show the configured school name", path)
		}
	}
}

// The landing page takes its identity from configuration, not template text.
func TestIndexShowsConfiguredMotto(t *testing.T) {
	r := newTestEngine(t)

	w := get(r, "/")
	if !strings.Contains(w.Body.String(), "Knowledge and Diligence") {
		t.Error("index page does not show the configured motto")
	}
}

func TestHealthRoute(t *testing.T) {
	r := newTestEngine(t)

	w := get(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("body = %q", w.Body.String())
	}
}

// With no Redis client the drafting routes must still be reachable.
func TestDraftRouteWithoutRedis(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/ai-generate-memo", strings.NewReader(`{"prompt":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /ai-generate-memo = %d", w.Code)
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	r := newTestEngine(t)

	w := get(r, "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
