package ports

import (
	"context"
	"io"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

// Embedder builds vectors for documents and query text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// VectorStore indexes documents and performs similarity search.
type VectorStore interface {
	AddDocuments(ctx context.Context, docs []domain.Document, vectors [][]float32) error
	Rebuild(ctx context.Context, docs []domain.Document, vectors [][]float32) error
	SimilaritySearch(ctx context.Context, queryVector []float32, limit int, filter domain.Filter) ([]domain.RetrievalResult, error)
	DocumentCount() int
	Reset(ctx context.Context) error
}

// ChatGenerator produces a completion for an assembled conversation.
type ChatGenerator interface {
	GenerateChat(ctx context.Context, messages []domain.ChatMessage, maxTokens int) (string, error)
	ModelName() string
}

// RemoteChatGenerator is a hosted model endpoint used ahead of the local
// generator when the caller supplied credentials. ResolveModel maps a
// requested model to the one that will actually serve the call.
type RemoteChatGenerator interface {
	GenerateChat(ctx context.Context, messages []domain.ChatMessage, maxTokens int, model, apiKey string) (string, error)
	ResolveModel(requested string) string
}

// CorpusRepository persists uploaded verse-table state.
type CorpusRepository interface {
	Create(ctx context.Context, src *domain.CorpusSource) error
	GetByID(ctx context.Context, id string) (*domain.CorpusSource, error)
	UpdateStatus(ctx context.Context, id string, status domain.SourceStatus, errMessage string, verseCount int) error
	ListReady(ctx context.Context) ([]domain.CorpusSource, error)
}

// ConversationStore persists chat turns per client session.
type ConversationStore interface {
	AppendMessage(ctx context.Context, msg domain.ConversationMessage) error
	ListRecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.ConversationMessage, error)
}

// ObjectStorage stores uploaded verse tables.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes corpus ingestion events.
type MessageQueue interface {
	PublishCorpusIngested(ctx context.Context, sourceID string) error
	SubscribeCorpusIngested(ctx context.Context, handler func(context.Context, string) error) error
}

// VerseReader parses an uploaded verse table into rows.
type VerseReader interface {
	Read(ctx context.Context, src *domain.CorpusSource, body io.Reader) ([]domain.VerseRow, error)
}
