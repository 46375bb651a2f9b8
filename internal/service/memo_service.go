package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/model"
	"github.com/Emmanu-hec2a/formManagement/internal/pdf"
	"github.com/Emmanu-hec2a/formManagement/internal/repository"
)

// MemoService handles internal memo submissions.
type MemoService interface {
	// Generate saves the memo and renders it. When req.MemoNo is empty a
	// number of the form <prefix>/MEMO/<year>/<seq> is assigned first.
	Generate(ctx context.Context, req *dto.MemoRequest) (*bytes.Buffer, string, error)
}

type memoService struct {
	prefix   string
	repo     *repository.Repository
	renderer *pdf.Renderer
	logger   *zap.Logger
}

// NewMemoService creates a MemoService.
func NewMemoService(cfg *config.Config, repo *repository.Repository, renderer *pdf.Renderer, logger *zap.Logger) MemoService {
	return &memoService{
		prefix:   cfg.School.MemoPrefix,
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *memoService) Generate(ctx context.Context, req *dto.MemoRequest) (*bytes.Buffer, string, error) {
	if req.MemoNo == "" {
		memoNo, err := s.nextMemoNumber(ctx)
		if err != nil {
			s.logger.Error("assign memo number failed", zap.Error(err))
			return nil, "", err
		}
		req.MemoNo = memoNo
	}

	memo := &model.Memo{
		MemoNo:     req.MemoNo,
		Recipient:  req.Recipient,
		Sender:     req.Sender,
		Subject:    req.Subject,
		Content:    req.Content,
		DateIssued: req.DateIssued,
	}
	if err := s.repo.Memo.Create(ctx, memo); err != nil {
		s.logger.Error("save memo failed", zap.String("memo_no", req.MemoNo), zap.Error(err))
		return nil, "", err
	}

	buf, err := s.renderer.RenderMemo(req)
	if err != nil {
		s.logger.Error("render memo failed", zap.String("memo_no", req.MemoNo), zap.Error(err))
		return nil, "", ErrRenderFailed
	}

	// Memo numbers contain slashes; swap them out so the number survives in
	// a Content-Disposition filename.
	filename := "internal_memo_" + strings.ReplaceAll(req.MemoNo, "/", "-") + ".pdf"
	return buf, filename, nil
}

// nextMemoNumber assigns <prefix>/MEMO/<year>/<count+1> zero-padded to three
// digits, counting memos issued in the current year.
//
// The count-then-insert sequence is not atomic: two concurrent submissions in
// the same year can read the same count and produce duplicate numbers. An
// accepted limitation for a low-traffic internal tool.
func (s *memoService) nextMemoNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	count, err := s.repo.Memo.CountByYear(ctx, fmt.Sprintf("%d", year))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/MEMO/%d/%03d", s.prefix, year, count+1), nil
}
