package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
	"github.com/Emmanu-hec2a/formManagement/pkg/response"
)

// DraftHandler handles the memo drafting routes. These return their own
// payload shapes rather than the standard envelope: the form pages key off
// the success field, and a backend fault is reported inside a 200 body so the
// page can fall back to manual writing.
type DraftHandler struct {
	svc service.DraftService
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc service.DraftService) *DraftHandler {
	return &DraftHandler{svc: svc}
}

// Draft handles POST /ai-generate-memo.
func (h *DraftHandler) Draft(c *gin.Context) {
	var req dto.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, h.svc.Draft(c.Request.Context(), &req))
}

// DraftLocal handles POST /ai-generate-memo-local.
func (h *DraftHandler) DraftLocal(c *gin.Context) {
	var req dto.LocalDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, h.svc.DraftLocal(&req))
}

// Templates handles GET /memo-templates.
func (h *DraftHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Templates())
}

// Status handles GET /api-status.
func (h *DraftHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Status())
}
