package dto

// DraftRequest is the POST /ai-generate-memo body.
type DraftRequest struct {
	Prompt    string `json:"prompt"    binding:"required"`
	MemoType  string `json:"memo_type"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// LocalDraftRequest is the POST /ai-generate-memo-local body.
type LocalDraftRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// DraftResponse is the remote drafting result. The frontend keys off
// Success; Error is set only on failure.
type DraftResponse struct {
	Success          bool   `json:"success"`
	Content          string `json:"content,omitempty"`
	SuggestedSubject string `json:"suggested_subject,omitempty"`
	TokensUsed       int    `json:"tokens_used,omitempty"`
	Error            string `json:"error,omitempty"`
}

// LocalDraftResponse is the template-fallback drafting result.
type LocalDraftResponse struct {
	Success          bool   `json:"success"`
	Content          string `json:"content"`
	SuggestedSubject string `json:"suggested_subject"`
	Note             string `json:"note"`
}

// TemplateSuggestion is one entry of the fixed prompt catalog.
type TemplateSuggestion struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// TemplatesResponse is the GET /memo-templates payload.
type TemplatesResponse struct {
	Templates map[string]TemplateSuggestion `json:"templates"`
}

// APIStatusResponse is the GET /api-status payload.
type APIStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	BaseURL string `json:"base_url,omitempty"`
}
