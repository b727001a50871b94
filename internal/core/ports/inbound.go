package ports

import (
	"context"
	"io"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/quality"
)

// ChatInput carries one user chat turn through the inbound contract.
type ChatInput struct {
	SessionID   string
	Prompt      string
	Messages    []domain.ChatMessage
	UseRAG      bool
	RAGTopK     int
	MaxTokens   int
	RemoteModel string
	APIKey      string
}

// ChatOutput is the assembled reply with its provenance.
type ChatOutput struct {
	Response    string             `json:"response"`
	Model       string             `json:"model"`
	Sources     []domain.SourceRef `json:"sources"`
	UsedRemote  bool               `json:"used_remote"`
	RemoteError string             `json:"remote_error,omitempty"`
	Quality     quality.Report     `json:"quality"`
}

// ChatService is the inbound contract for guarded chat generation.
type ChatService interface {
	Chat(ctx context.Context, in ChatInput) (*ChatOutput, error)
	History(ctx context.Context, sessionID string, limit int) ([]domain.ConversationMessage, error)
}

// Retriever is the inbound contract for direct semantic search over the corpus.
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]domain.RetrievalResult, error)
}

// CorpusIngestor is the inbound contract for verse-table upload orchestration.
type CorpusIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.CorpusSource, error)
	GetSource(ctx context.Context, id string) (*domain.CorpusSource, error)
}

// CorpusProcessor is the inbound contract for asynchronous index rebuild.
type CorpusProcessor interface {
	ProcessByID(ctx context.Context, sourceID string) error
}
