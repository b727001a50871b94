package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
)

type chatServiceFake struct {
	lastInput ports.ChatInput
	out       *ports.ChatOutput
	history   []domain.ConversationMessage
	err       error
}

func (f *chatServiceFake) Chat(_ context.Context, in ports.ChatInput) (*ports.ChatOutput, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	return &ports.ChatOutput{Response: "ответ"}, nil
}

func (f *chatServiceFake) History(_ context.Context, sessionID string, limit int) ([]domain.ConversationMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

type retrieverFake struct {
	results []domain.RetrievalResult
	err     error
}

func (f *retrieverFake) Retrieve(_ context.Context, query string, topK int) ([]domain.RetrievalResult, error) {
	return f.results, f.err
}

type ingestorFake struct {
	src *domain.CorpusSource
	err error
}

func (f *ingestorFake) Upload(_ context.Context, filename, mimeType string, _ io.Reader) (*domain.CorpusSource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.CorpusSource{ID: "src-1", Filename: filename, MimeType: mimeType, Status: domain.SourceUploaded}, nil
}

func (f *ingestorFake) GetSource(_ context.Context, id string) (*domain.CorpusSource, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.src == nil || f.src.ID != id {
		return nil, domain.WrapError(domain.ErrNotFound, "get corpus source", io.EOF)
	}
	return f.src, nil
}

func newTestRouter(chat *chatServiceFake, retr *retrieverFake, ing *ingestorFake, options Options) http.Handler {
	if chat == nil {
		chat = &chatServiceFake{}
	}
	if retr == nil {
		retr = &retrieverFake{}
	}
	if ing == nil {
		ing = &ingestorFake{}
	}
	logger := slog.New(slog.DiscardHandler)
	return NewRouter(chat, retr, ing, func() int { return 42 }, nil, logger, options).Handler()
}

func TestHealthzReportsIndexSize(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, Options{})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["indexed_passages"] != float64(42) {
		t.Fatalf("expected indexed_passages=42, got %v", payload["indexed_passages"])
	}
}

func TestChatPassesInputThrough(t *testing.T) {
	chat := &chatServiceFake{out: &ports.ChatOutput{Response: "ответ", UsedRemote: true}}
	handler := newTestRouter(chat, nil, nil, Options{})

	body := `{"session_id":"s1","prompt":"можно ли свинину?","top_k":5,"max_tokens":512,"remote_model":"gpt-4o-mini","api_key":"sk-1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	if chat.lastInput.SessionID != "s1" || chat.lastInput.RAGTopK != 5 || chat.lastInput.APIKey != "sk-1" {
		t.Fatalf("unexpected input: %+v", chat.lastInput)
	}
	if !chat.lastInput.UseRAG {
		t.Fatalf("expected UseRAG default true")
	}

	var out ports.ChatOutput
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Response != "ответ" || !out.UsedRemote {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestChatReadsKeyFromHeader(t *testing.T) {
	chat := &chatServiceFake{}
	handler := newTestRouter(chat, nil, nil, Options{})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"prompt":"вопрос"}`))
	req.Header.Set("X-OpenRouter-Key", "sk-header")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if chat.lastInput.APIKey != "sk-header" {
		t.Fatalf("expected header key, got %q", chat.lastInput.APIKey)
	}
}

func TestChatRequiresPromptOrMessages(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, Options{})

	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"session_id":"s1"}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestErrorKindsMapToStatusCodes(t *testing.T) {
	cases := []struct {
		kind error
		want int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrTemporary, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		chat := &chatServiceFake{err: domain.WrapError(tc.kind, "chat", io.ErrUnexpectedEOF)}
		handler := newTestRouter(chat, nil, nil, Options{})

		req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"prompt":"вопрос"}`))
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		if res.Code != tc.want {
			t.Fatalf("kind %v: expected %d, got %d", tc.kind, tc.want, res.Code)
		}
	}
}

func TestChatHistoryRequiresSession(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, Options{})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/chat/history", nil))
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}

	chat := &chatServiceFake{history: []domain.ConversationMessage{{SessionID: "s1", Role: domain.RoleUser, Content: "вопрос"}}}
	handler = newTestRouter(chat, nil, nil, Options{})
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/chat/history?session_id=s1&limit=4", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "вопрос") {
		t.Fatalf("expected history message in body: %s", res.Body.String())
	}
}

func TestRAGQueryValidatesAndReturnsResults(t *testing.T) {
	retr := &retrieverFake{results: []domain.RetrievalResult{{
		ID:    "surah_2_ayah_172_174",
		Text:  "текст",
		Score:    0.87,
	}}}
	handler := newTestRouter(nil, retr, nil, Options{})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/v1/rag/query", strings.NewReader(`{"query":""}`)))
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank query, got %d", res.Code)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/v1/rag/query", strings.NewReader(`{"query":"свинина","top_k":3}`)))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "surah_2_ayah_172_174") {
		t.Fatalf("expected result id in body: %s", res.Body.String())
	}
}

func TestCorpusUploadAndGet(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "quran.csv")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("sura_index,verse_number,text\n1,1,текст\n")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = writer.Close()

	handler := newTestRouter(nil, nil, &ingestorFake{}, Options{})
	req := httptest.NewRequest(http.MethodPost, "/v1/corpus", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", res.Code, res.Body.String())
	}

	ing := &ingestorFake{src: &domain.CorpusSource{ID: "src-1", Status: domain.SourceReady}}
	handler = newTestRouter(nil, nil, ing, Options{})
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/corpus/src-1", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/corpus/absent", nil))
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, Options{})
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if res.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}
