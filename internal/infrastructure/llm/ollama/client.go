package ollama

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/infrastructure/resilience"
)

// Client talks to a local Ollama instance. One Client is shared by the
// Embedder and the Generator so they reuse the same HTTP pool.
type Client struct {
	baseURL    string
	chatModel  string
	embedModel string
	httpClient *http.Client
	executor   *resilience.Executor
}

type Option func(*Client)

func WithExecutor(executor *resilience.Executor) Option {
	return func(c *Client) {
		c.executor = executor
	}
}

func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func New(baseURL, chatModel, embedModel string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		chatModel:  chatModel,
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) do(ctx context.Context, operation string, call func(context.Context) error) error {
	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, operation, call, classifyOllamaError)
	} else {
		err = call(ctx)
	}
	return wrapTemporaryIfNeeded(operation, err)
}

type Embedder struct {
	client *Client
}

func NewEmbedder(client *Client) *Embedder {
	return &Embedder{client: client}
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	request := map[string]any{
		"model": e.client.embedModel,
		"input": texts,
	}

	var response struct {
		Embeddings [][]float32 `json:"embeddings"`
	}
	err := e.client.do(ctx, "ollama.embed", func(callCtx context.Context) error {
		return e.client.postJSON(callCtx, "/api/embed", request, &response, "embed")
	})
	if err != nil {
		return nil, err
	}
	if len(response.Embeddings) != len(texts) {
		return nil, fmt.Errorf("ollama embed: got %d vectors for %d inputs", len(response.Embeddings), len(texts))
	}
	return response.Embeddings, nil
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}
	return vectors[0], nil
}

type Generator struct {
	client *Client
}

func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) ModelName() string {
	return g.client.chatModel
}

func (g *Generator) GenerateChat(ctx context.Context, messages []domain.ChatMessage, maxTokens int) (string, error) {
	wire := make([]chatWireMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(wire, chatWireMessage{Role: msg.Role, Content: msg.Content})
	}

	request := map[string]any{
		"model":    g.client.chatModel,
		"messages": wire,
		"stream":   false,
	}
	if maxTokens > 0 {
		request["options"] = map[string]any{"num_predict": maxTokens}
	}

	var response struct {
		Message chatWireMessage `json:"message"`
	}
	err := g.client.do(ctx, "ollama.chat", func(callCtx context.Context) error {
		return g.client.postJSON(callCtx, "/api/chat", request, &response, "chat")
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(response.Message.Content), nil
}

type chatWireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
