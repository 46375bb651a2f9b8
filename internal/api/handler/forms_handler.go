package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
	"github.com/Emmanu-hec2a/formManagement/pkg/response"
)

// FormsHandler handles the three form submission routes. Each one saves the
// submission and streams the generated document back as an attachment.
type FormsHandler struct {
	svc    *service.Service
	logger *zap.Logger
}

// NewFormsHandler creates a FormsHandler.
func NewFormsHandler(svc *service.Service, logger *zap.Logger) *FormsHandler {
	return &FormsHandler{svc: svc, logger: logger}
}

// GenerateLeaveChit handles POST /generate-leave-chit.
func (h *FormsHandler) GenerateLeaveChit(c *gin.Context) {
	var req dto.LeaveChitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	buf, filename, err := h.svc.Chit.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleFormError(c, err)
		return
	}
	h.sendAttachment(c, buf, filename, service.ContentTypePDF)
}

// GenerateMemo handles POST /generate-memo.
func (h *FormsHandler) GenerateMemo(c *gin.Context) {
	var req dto.MemoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	buf, filename, err := h.svc.Memo.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handleFormError(c, err)
		return
	}
	h.sendAttachment(c, buf, filename, service.ContentTypePDF)
}

// GenerateDutyForm handles POST /generate-duty-form. The optional format
// query selects pdf (default) or xlsx output.
func (h *FormsHandler) GenerateDutyForm(c *gin.Context) {
	var req dto.DutyFormRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	format := c.DefaultQuery("format", service.FormatPDF)
	buf, filename, contentType, err := h.svc.Duty.Generate(c.Request.Context(), &req, format)
	if err != nil {
		h.handleFormError(c, err)
		return
	}
	h.sendAttachment(c, buf, filename, contentType)
}

// sendAttachment streams a generated document as a download.
func (h *FormsHandler) sendAttachment(c *gin.Context, buf *bytes.Buffer, filename, contentType string) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *FormsHandler) handleFormError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFormat):
		response.BadRequest(c, 40002, "unsupported format, use pdf or xlsx")
	case errors.Is(err, service.ErrRenderFailed):
		response.Error(c, http.StatusInternalServerError, 50001, "document generation failed")
	default:
		h.logger.Error("form submission failed", zap.Error(err))
		response.InternalError(c)
	}
}
