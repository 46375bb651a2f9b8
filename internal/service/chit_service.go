package service

import (
	"bytes"
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/model"
	"github.com/Emmanu-hec2a/formManagement/internal/pdf"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
)

// ChitService handles leave-out chit submissions.
type ChitService interface {
	// Generate saves the submission and renders the chit.
	// Returns the PDF bytes and the suggested download filename.
	Generate(ctx context.Context, req *dto.LeaveChitRequest) (*bytes.Buffer, string, error)
}

type chitService struct {
	repo     *repository.Repository
	renderer *pdf.Renderer
	logger   *zap.Logger
}

// NewChitService creates a ChitService.
func NewChitService(repo *repository.Repository, renderer *pdf.Renderer, logger *zap.Logger) ChitService {
	return &chitService{repo: repo, renderer: renderer, logger: logger}
}

func (s *chitService) Generate(ctx context.Context, req *dto.LeaveChitRequest) (*bytes.Buffer, string, error) {
	chit := &model.LeaveChit{
		StudentName:  req.StudentName,
		StudentClass: req.StudentClass,
		AdmissionNo:  req.AdmissionNo,
		LeaveDate:    req.LeaveDate,
		LeaveTime:    req.LeaveTime,
		ReturnTime:   req.ReturnTime,
		Reason:       req.Reason,
	}
	if err := s.repo.Chit.Create(ctx, chit); err != nil {
		s.logger.Error("save leave chit failed", zap.Error(err))
		return nil, "", err
	}

	buf, err := s.renderer.RenderLeaveChit(req)
	if err != nil {
		s.logger.Error("render leave chit failed", zap.Uint("id", chit.ID), zap.Error(err))
		return nil, "", ErrRenderFailed
	}

	filename := "leave_out_chit_" + underscored(req.StudentName) + ".pdf"
	return buf, filename, nil
}

// underscored makes a field value filename-safe the way the forms expect it.
func underscored(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
