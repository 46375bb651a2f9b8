package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/pdf"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
	"github.com/Emmanu-hec2a/formManagement/pkg/ai"
)

// ErrRenderFailed marks a document generation failure. The submitted row has
// already been saved by then and is intentionally left in place.
var ErrRenderFailed = errors.New("document rendering failed")

// Service aggregates all services.
type Service struct {
	Chit  ChitService
	Memo  MemoService
	Duty  DutyService
	Draft DraftService
}

// NewService creates the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	renderer *pdf.Renderer,
	aiClient *ai.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Chit:  NewChitService(repo, renderer, logger),
		Memo:  NewMemoService(cfg, repo, renderer, logger),
		Duty:  NewDutyService(cfg, repo, renderer, logger),
		Draft: NewDraftService(&cfg.AI, aiClient, logger),
	}
}
