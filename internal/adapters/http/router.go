package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
	"github.com/halalai/quran-assistant/internal/observability/metrics"
)

const serviceName = "api"

const maxUploadBytes = 64 << 20

type Router struct {
	chat      ports.ChatService
	retriever ports.Retriever
	ingestor  ports.CorpusIngestor
	docCount  func() int
	metrics   *metrics.HTTPServerMetrics
	logger    *slog.Logger
	options   Options
}

type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	MaxInFlight    int
	InFlightWait   time.Duration
}

func NewRouter(
	chat ports.ChatService,
	retriever ports.Retriever,
	ingestor ports.CorpusIngestor,
	docCount func() int,
	httpMetrics *metrics.HTTPServerMetrics,
	logger *slog.Logger,
	options Options,
) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	if options.InFlightWait <= 0 {
		options.InFlightWait = 100 * time.Millisecond
	}
	return &Router{
		chat:      chat,
		retriever: retriever,
		ingestor:  ingestor,
		docCount:  docCount,
		metrics:   httpMetrics,
		logger:    logger,
		options:   options,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/chat", rt.postChat)
	mux.HandleFunc("/v1/chat/history", rt.getChatHistory)
	mux.HandleFunc("/v1/rag/query", rt.postRAGQuery)
	mux.HandleFunc("/v1/corpus", rt.uploadCorpus)
	mux.HandleFunc("/v1/corpus/", rt.getCorpusSource)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.options.MaxInFlight, rt.options.InFlightWait)
	handler = rateLimitMiddleware(handler, rt.options.RateLimitRPS, rt.options.RateLimitBurst)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(serviceName, handler)
	}
	handler = accessLogMiddleware(rt.logger, handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	payload := map[string]any{"status": "ok"}
	if rt.docCount != nil {
		payload["indexed_passages"] = rt.docCount()
	}
	writeJSON(w, http.StatusOK, payload)
}

type chatRequest struct {
	SessionID   string               `json:"session_id"`
	Prompt      string               `json:"prompt"`
	Messages    []domain.ChatMessage `json:"messages"`
	UseRAG      *bool                `json:"use_rag"`
	TopK        int                  `json:"top_k"`
	MaxTokens   int                  `json:"max_tokens"`
	RemoteModel string               `json:"remote_model"`
	APIKey      string               `json:"api_key"`
}

func (rt *Router) postChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if len(req.Messages) == 0 && strings.TrimSpace(req.Prompt) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt or messages are required"})
		return
	}

	useRAG := true
	if req.UseRAG != nil {
		useRAG = *req.UseRAG
	}
	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = strings.TrimSpace(r.Header.Get("X-OpenRouter-Key"))
	}

	start := time.Now()
	out, err := rt.chat.Chat(r.Context(), ports.ChatInput{
		SessionID:   strings.TrimSpace(req.SessionID),
		Prompt:      req.Prompt,
		Messages:    req.Messages,
		UseRAG:      useRAG,
		RAGTopK:     req.TopK,
		MaxTokens:   req.MaxTokens,
		RemoteModel: req.RemoteModel,
		APIKey:      apiKey,
	})
	if err != nil {
		rt.writeError(w, r, err)
		return
	}

	if rt.metrics != nil {
		if useRAG {
			rt.metrics.RecordRAGObservation(serviceName, "/v1/chat", len(out.Sources), time.Since(start))
		}
		if len(out.Sources) > 0 {
			rt.metrics.RecordAnswerQuality(serviceName, string(out.Quality.Grade), out.Quality.RiskScore, len(out.Quality.Citations.InvalidCitations))
		}
		if out.RemoteError != "" {
			rt.metrics.RecordRemoteFallback(serviceName)
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (rt *Router) getChatHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "session_id is required"})
		return
	}
	limit := 16
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	messages, err := rt.chat.History(r.Context(), sessionID, limit)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (rt *Router) postRAGQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Query string `json:"query"`
		TopK  int    `json:"top_k"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "query is required"})
		return
	}

	start := time.Now()
	results, err := rt.retriever.Retrieve(r.Context(), req.Query, req.TopK)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordRAGObservation(serviceName, "/v1/rag/query", len(results), time.Since(start))
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (rt *Router) uploadCorpus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	src, err := rt.ingestor.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, src)
}

func (rt *Router) getCorpusSource(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/corpus/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "source id is required"})
		return
	}

	src, err := rt.ingestor.GetSource(r.Context(), id)
	if err != nil {
		rt.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, src)
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToHTTPStatus(err)
	if status >= 500 {
		rt.logger.Error("request failed",
			"request_id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
