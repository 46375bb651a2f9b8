package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Emmanu-hec2a/formManagement/config"
)

// PagesHandler serves the static form pages. Every page receives the school
// identity so nothing about the organization is hardcoded in a template.
type PagesHandler struct {
	school config.SchoolConfig
}

// NewPagesHandler creates a PagesHandler.
func NewPagesHandler(school config.SchoolConfig) *PagesHandler {
	return &PagesHandler{school: school}
}

func (h *PagesHandler) render(c *gin.Context, name string) {
	c.HTML(http.StatusOK, name, gin.H{"School": h.school})
}

// Index serves the landing page.
func (h *PagesHandler) Index(c *gin.Context) {
	h.render(c, "index.html")
}

// LeaveChit serves the leave-out chit form.
func (h *PagesHandler) LeaveChit(c *gin.Context) {
	h.render(c, "leave_out_chit.html")
}

// Memo serves the internal memo form.
func (h *PagesHandler) Memo(c *gin.Context) {
	h.render(c, "internal_memo.html")
}

// DutyForm serves the teacher duty form.
func (h *PagesHandler) DutyForm(c *gin.Context) {
	h.render(c, "teacher_duty.html")
}
