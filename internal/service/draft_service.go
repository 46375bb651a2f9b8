package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/pkg/ai"
)

// DraftService produces memo prose from a natural-language prompt.
// Remote faults never escape as errors: Draft always returns a response the
// frontend can show, with Success=false and a readable message on failure.
type DraftService interface {
	Draft(ctx context.Context, req *dto.DraftRequest) *dto.DraftResponse
	DraftLocal(req *dto.LocalDraftRequest) *dto.LocalDraftResponse
	Templates() *dto.TemplatesResponse
	Status() *dto.APIStatusResponse
}

type draftService struct {
	cfg    *config.AIConfig
	client *ai.Client // nil when no backend credential is configured
	logger *zap.Logger
}

// NewDraftService creates a DraftService.
func NewDraftService(cfg *config.AIConfig, client *ai.Client, logger *zap.Logger) DraftService {
	return &draftService{cfg: cfg, client: client, logger: logger}
}

// ── remote drafting ──

func (s *draftService) Draft(ctx context.Context, req *dto.DraftRequest) *dto.DraftResponse {
	if s.client == nil {
		return &dto.DraftResponse{
			Success: false,
			Error:   "AI API key not found. Please check your environment configuration.",
		}
	}

	content, tokens, err := s.client.DraftMemo(ctx, req.Prompt, req.Sender, req.Recipient)
	if err != nil {
		s.logger.Warn("remote draft failed", zap.Error(err))
		return &dto.DraftResponse{
			Success: false,
			Error:   "AI backend error: " + err.Error(),
		}
	}

	return &dto.DraftResponse{
		Success:          true,
		Content:          content,
		SuggestedSubject: s.client.SuggestSubject(ctx, content),
		TokensUsed:       tokens,
	}
}

// ── local template fallback ──

// localTemplate pairs trigger keywords with a body template. The topic slot
// takes the raw prompt; the details slot takes detailsPlaceholder.
type localTemplate struct {
	name     string
	keywords []string
	body     string
}

// localTemplates is evaluated in order; the first keyword hit wins.
// Prompts matching nothing fall through to announcementTemplate.
var localTemplates = []localTemplate{
	{
		name:     "meeting",
		keywords: []string{"meeting", "meet", "conference"},
		body:     "We would like to inform you about an upcoming %s. The meeting is scheduled for %s. Your attendance is highly appreciated.",
	},
	{
		name:     "reminder",
		keywords: []string{"remind", "reminder"},
		body:     "This serves as a reminder regarding %s. Please ensure that %s. Your cooperation is highly appreciated.",
	},
	{
		name:     "request",
		keywords: []string{"request", "need", "require"},
		body:     "We hereby request %s. The details are as follows: %s. We look forward to your positive response.",
	},
}

const announcementTemplate = "This is to inform all concerned parties about %s. Please take note of the following details: %s. Thank you for your attention."

const detailsPlaceholder = "Please refer to the details provided"

const localNote = "Generated using local template (configure an AI API key for full drafting features)"

func (s *draftService) DraftLocal(req *dto.LocalDraftRequest) *dto.LocalDraftResponse {
	body := announcementTemplate
	lower := strings.ToLower(req.Prompt)
	for _, t := range localTemplates {
		if containsAny(lower, t.keywords) {
			body = t.body
			break
		}
	}

	content := "Dear Recipient,\n\n" +
		fmt.Sprintf(body, req.Prompt, detailsPlaceholder) +
		"\n\nShould you have any questions or require clarification, please do not hesitate to contact the administration office." +
		"\n\nThank you for your cooperation."

	return &dto.LocalDraftResponse{
		Success:          true,
		Content:          content,
		SuggestedSubject: "Re: " + truncate(req.Prompt, 50) + "...",
		Note:             localNote,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// ── prompt catalog ──

// promptCatalog is the fixed set of suggestions behind GET /memo-templates.
var promptCatalog = map[string]dto.TemplateSuggestion{
	"meeting_announcement": {
		Title:  "Meeting Announcement",
		Prompt: "Announce a staff meeting on Friday at 2 PM in the conference room to discuss academic performance",
	},
	"policy_reminder": {
		Title:  "Policy Reminder",
		Prompt: "Remind all teachers about the dress code policy and punctuality requirements",
	},
	"event_notification": {
		Title:  "Event Notification",
		Prompt: "Notify about upcoming sports day activities and request teacher participation",
	},
	"maintenance_request": {
		Title:  "Maintenance Request",
		Prompt: "Request urgent repair of classroom projectors and sound system",
	},
	"deadline_reminder": {
		Title:  "Deadline Reminder",
		Prompt: "Remind teachers to submit lesson plans and assessment reports by month end",
	},
}

func (s *draftService) Templates() *dto.TemplatesResponse {
	return &dto.TemplatesResponse{Templates: promptCatalog}
}

// ── status probe ──

// Status reports whether a backend credential is configured. It never makes
// a live call.
func (s *draftService) Status() *dto.APIStatusResponse {
	if !s.cfg.Configured() {
		return &dto.APIStatusResponse{
			Status:  "error",
			Message: "AI API key not found in environment variables",
		}
	}
	return &dto.APIStatusResponse{
		Status:  "connected",
		Message: "AI backend is configured",
		BaseURL: s.cfg.BaseURL,
	}
}
