package handler

import (
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
)

// Handler aggregates all handlers.
type Handler struct {
	Pages *PagesHandler
	Forms *FormsHandler
	Draft *DraftHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Pages: NewPagesHandler(cfg.School),
		Forms: NewFormsHandler(svc, logger),
		Draft: NewDraftHandler(svc.Draft),
	}
}
