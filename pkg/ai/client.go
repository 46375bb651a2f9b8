package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/config"
)

// Client wraps an OpenAI-compatible chat-completions backend (NetMind in the
// original deployment). It is stateless; one instance is shared by all
// requests.
type Client struct {
	api        *openai.Client
	model      string
	schoolName string
	logger     *zap.Logger
}

const draftSystemPrompt = `You are a professional memo writer for %s.

IMPORTANT: Respond ONLY with the memo body content. Do not include:
- Any explanations or reasoning
- Headers (TO, FROM, DATE, SUBJECT)
- Signatures or closing remarks
- Any meta-commentary about the memo

Write a clear, professional memo body that is:
- Formal and respectful in tone
- Specific and actionable
- Appropriate for school administration
- 2-4 paragraphs maximum`

const draftUserPrompt = `Write the main content for a memo based on this request: %s

Context:
- This is for a secondary school environment
- Sender: %s
- Recipient: %s

Output ONLY the memo content, nothing else, no headers or signatures.`

const subjectSystemPrompt = "Generate a concise, professional subject line for this memo. Keep it under 10 words and make it specific."

// subjectPrefixRe strips a leading Subject:/RE: the model sometimes adds.
var subjectPrefixRe = regexp.MustCompile(`(?i)^(subject:|re:)\s*`)

// NewClient builds a drafting client. Returns nil when no credential is
// configured; callers treat a nil client as "backend not available".
func NewClient(cfg *config.AIConfig, schoolName string, logger *zap.Logger) *Client {
	if !cfg.Configured() {
		return nil
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		model:      cfg.Model,
		schoolName: schoolName,
		logger:     logger,
	}
}

// DraftMemo asks the backend for a 2-4 paragraph memo body.
// Returns the trimmed content and the total token usage.
func (c *Client) DraftMemo(ctx context.Context, prompt, sender, recipient string) (string, int, error) {
	if sender == "" {
		sender = "School Administration"
	}
	if recipient == "" {
		recipient = "Staff/Students"
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(draftSystemPrompt, c.schoolName)},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(draftUserPrompt, prompt, sender, recipient)},
		},
		MaxTokens:   400,
		Temperature: 0.7,
	})
	if err != nil {
		return "", 0, fmt.Errorf("draft memo: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", 0, fmt.Errorf("draft memo: empty response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), resp.Usage.TotalTokens, nil
}

// SuggestSubject produces a short subject line for drafted content.
// Never fails: any backend fault falls back to a fixed string.
func (c *Client) SuggestSubject(ctx context.Context, content string) string {
	const fallback = "General Communication"

	// Only the opening of the memo is needed for a subject line. Truncate on
	// rune boundaries so a multi-byte character is never split.
	excerpt := content
	if runes := []rune(excerpt); len(runes) > 200 {
		excerpt = string(runes[:200])
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: subjectSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Memo content: " + excerpt + "..."},
		},
		MaxTokens:   50,
		Temperature: 0.5,
	})
	if err != nil {
		c.logger.Warn("subject suggestion failed", zap.Error(err))
		return fallback
	}
	if len(resp.Choices) == 0 {
		return fallback
	}

	if subject := CleanSubject(resp.Choices[0].Message.Content); subject != "" {
		return subject
	}
	return fallback
}

// CleanSubject normalizes a model-produced subject line.
func CleanSubject(s string) string {
	s = strings.TrimSpace(s)
	s = subjectPrefixRe.ReplaceAllString(s, "")
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
