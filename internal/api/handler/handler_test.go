package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Emmanu-hec2a/formManagement/internal/dto"
	"github.com/Emmanu-hec2a/formManagement/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Mock services returning canned documents.

type mockChitService struct {
	err error
}

func (m *mockChitService) Generate(ctx context.Context, req *dto.LeaveChitRequest) (*bytes.Buffer, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return bytes.NewBufferString("%PDF-fake"), "leave_out_chit_Jane_Akinyi.pdf", nil
}

type mockMemoService struct {
	gotMemoNo string
}

func (m *mockMemoService) Generate(ctx context.Context, req *dto.MemoRequest) (*bytes.Buffer, string, error) {
	m.gotMemoNo = req.MemoNo
	return bytes.NewBufferString("%PDF-fake"), "internal_memo_BASS-MEMO-2025-001.pdf", nil
}

type mockDutyService struct{}

func (m *mockDutyService) Generate(ctx context.Context, req *dto.DutyFormRequest, format string) (*bytes.Buffer, string, string, error) {
	if format != service.FormatPDF && format != service.FormatXLSX {
		return nil, "", "", service.ErrUnsupportedFormat
	}
	if format == service.FormatXLSX {
		return bytes.NewBufferString("PK-fake"), "teacher_duty_Mr._Otieno.xlsx", service.ContentTypeXLSX, nil
	}
	return bytes.NewBufferString("%PDF-fake"), "teacher_duty_Mr._Otieno.pdf", service.ContentTypePDF, nil
}

type mockDraftService struct {
	configured bool
}

func (m *mockDraftService) Draft(ctx context.Context, req *dto.DraftRequest) *dto.DraftResponse {
	if !m.configured {
		return &dto.DraftResponse{Success: false, Error: "AI API key not found. Please check your environment configuration."}
	}
	return &dto.DraftResponse{Success: true, Content: "Dear Staff, ...", SuggestedSubject: "Staff Meeting", TokensUsed: 123}
}

func (m *mockDraftService) DraftLocal(req *dto.LocalDraftRequest) *dto.LocalDraftResponse {
	return &dto.LocalDraftResponse{Success: true, Content: "Dear Recipient, ...", SuggestedSubject: "Re: x...", Note: "local"}
}

func (m *mockDraftService) Templates() *dto.TemplatesResponse {
	return &dto.TemplatesResponse{Templates: map[string]dto.TemplateSuggestion{
		"meeting_announcement": {Title: "Meeting Announcement", Prompt: "Announce a staff meeting"},
	}}
}

func (m *mockDraftService) Status() *dto.APIStatusResponse {
	if !m.configured {
		return &dto.APIStatusResponse{Status: "error", Message: "AI API key not found in environment variables"}
	}
	return &dto.APIStatusResponse{Status: "connected", Message: "AI backend is configured"}
}

func newTestRouter(svc *service.Service, draft service.DraftService) *gin.Engine {
	r := gin.New()
	forms := NewFormsHandler(svc, zap.NewNop())
	drafts := NewDraftHandler(draft)
	r.POST("/generate-leave-chit", forms.GenerateLeaveChit)
	r.POST("/generate-memo", forms.GenerateMemo)
	r.POST("/generate-duty-form", forms.GenerateDutyForm)
	r.POST("/ai-generate-memo", drafts.Draft)
	r.POST("/ai-generate-memo-local", drafts.DraftLocal)
	r.GET("/memo-templates", drafts.Templates)
	r.GET("/api-status", drafts.Status)
	return r
}

func fullService(chit service.ChitService, memo service.MemoService, duty service.DutyService) *service.Service {
	if chit == nil {
		chit = &mockChitService{}
	}
	if memo == nil {
		memo = &mockMemoService{}
	}
	if duty == nil {
		duty = &mockDutyService{}
	}
	return &service.Service{Chit: chit, Memo: memo, Duty: duty}
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func chitForm() url.Values {
	return url.Values{
		"student_name":  {"Jane Akinyi"},
		"student_class": {"Form 3 East"},
		"admission_no":  {"ADM-2041"},
		"leave_date":    {"2025-06-12"},
		"leave_time":    {"10:30"},
		"return_time":   {"14:00"},
		"reason":        {"Dental appointment"},
	}
}

func TestGenerateLeaveChitDownload(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{})

	w := postForm(r, "/generate-leave-chit", chitForm())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != service.ContentTypePDF {
		t.Errorf("content type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `attachment; filename="leave_out_chit_Jane_Akinyi.pdf"`) {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestGenerateLeaveChitMissingField(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{})

	form := chitForm()
	form.Del("reason")
	w := postForm(r, "/generate-leave-chit", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateMemoPassesMemoNo(t *testing.T) {
	memo := &mockMemoService{}
	r := newTestRouter(fullService(nil, memo, nil), &mockDraftService{})

	form := url.Values{
		"memo_no":     {"BASS/MEMO/2025/010"},
		"recipient":   {"All Staff"},
		"sender":      {"Principal"},
		"subject":     {"Exams"},
		"content":     {"Exams begin Monday."},
		"date_issued": {"2025-06-10"},
	}
	w := postForm(r, "/generate-memo", form)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if memo.gotMemoNo != "BASS/MEMO/2025/010" {
		t.Errorf("memo number passed = %q", memo.gotMemoNo)
	}
}

func TestGenerateDutyFormFormats(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{})

	form := url.Values{
		"teacher_name":         {"Mr. Otieno"},
		"duty_date":            {"2025-06-16"},
		"periods":              {"1-4"},
		"subjects":             {"Mathematics"},
		"classes":              {"Form 2 West"},
		"special_instructions": {"Assembly duty"},
	}

	w := postForm(r, "/generate-duty-form", form)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != service.ContentTypePDF {
		t.Errorf("pdf content type = %q", ct)
	}

	w = postForm(r, "/generate-duty-form?format=xlsx", form)
	if w.Code != http.StatusOK {
		t.Fatalf("xlsx status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != service.ContentTypeXLSX {
		t.Errorf("xlsx content type = %q", ct)
	}

	w = postForm(r, "/generate-duty-form?format=docx", form)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("docx status = %d, want 400", w.Code)
	}
}

func TestFormRenderFailure(t *testing.T) {
	r := newTestRouter(fullService(&mockChitService{err: service.ErrRenderFailed}, nil, nil), &mockDraftService{})

	w := postForm(r, "/generate-leave-chit", chitForm())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestFormStorageFailure(t *testing.T) {
	r := newTestRouter(fullService(&mockChitService{err: errors.New("disk full")}, nil, nil), &mockDraftService{})

	w := postForm(r, "/generate-leave-chit", chitForm())
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

// Drafting failures surface inside a 200 body so the page can fall back to
// manual writing.
func TestDraftUnconfiguredStillOK(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{configured: false})

	w := postJSON(r, "/ai-generate-memo", `{"prompt":"announce a meeting"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp dto.DraftResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Error == "" {
		t.Error("expected error message in body")
	}
}

func TestDraftMissingPrompt(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{configured: true})

	w := postJSON(r, "/ai-generate-memo", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDraftLocalRoute(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{})

	w := postJSON(r, "/ai-generate-memo-local", `{"prompt":"reminder to submit reports"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.LocalDraftResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
}

func TestTemplatesRoute(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{})

	req := httptest.NewRequest(http.MethodGet, "/memo-templates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.TemplatesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) == 0 {
		t.Error("expected at least one template")
	}
}

func TestAPIStatusRoute(t *testing.T) {
	r := newTestRouter(fullService(nil, nil, nil), &mockDraftService{configured: true})

	req := httptest.NewRequest(http.MethodGet, "/api-status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp dto.APIStatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "connected" {
		t.Errorf("status = %q", resp.Status)
	}
}
