package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/infrastructure/resilience"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is used when the caller asks for a model outside the
// allow list or leaves the model empty.
const DefaultModel = "xiaomi/mimo-v2-flash:free"

var allowedModels = map[string]struct{}{
	"xiaomi/mimo-v2-flash:free":          {},
	"tngtech/deepseek-r1t2-chimera:free": {},
	"gpt-4o-mini":                        {},
}

// Client calls the OpenRouter chat completions endpoint with a
// per-request API key supplied by the end user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	executor   *resilience.Executor
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

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

func New(opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ResolveModel returns the requested model when it is on the allow
// list, otherwise the default.
func ResolveModel(requested string) string {
	if _, ok := allowedModels[strings.TrimSpace(requested)]; ok {
		return strings.TrimSpace(requested)
	}
	return DefaultModel
}

func (c *Client) ResolveModel(requested string) string {
	return ResolveModel(requested)
}

func (c *Client) GenerateChat(ctx context.Context, messages []domain.ChatMessage, maxTokens int, model, apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", domain.WrapError(domain.ErrUnauthorized, "openrouter chat", errors.New("missing api key"))
	}

	wire := make([]wireMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(wire, wireMessage{Role: msg.Role, Content: msg.Content})
	}

	request := completionRequest{
		Model:    ResolveModel(model),
		Messages: wire,
	}
	if maxTokens > 0 {
		request.MaxTokens = maxTokens
	}

	var response completionResponse
	call := func(callCtx context.Context) error {
		return c.postJSON(callCtx, "/chat/completions", apiKey, request, &response)
	}

	var err error
	if c.executor != nil {
		err = c.executor.Execute(ctx, "openrouter.chat", call, classifyRemoteError)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return "", wrapTemporaryIfNeeded(err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openrouter chat: empty choices")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string        `json:"model"`
	Messages  []wireMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message wireMessage `json:"message"`
	} `json:"choices"`
}

type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "openrouter status error"
	}
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("openrouter status: %s", e.Status)
	}
	return fmt.Sprintf("openrouter status: %s: %s", e.Status, strings.TrimSpace(e.Body))
}

func (c *Client) postJSON(ctx context.Context, path, apiKey string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal openrouter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create openrouter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openrouter request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(raw),
		}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode openrouter response: %w", err)
	}
	return nil
}

func classifyRemoteError(err error) resilience.Verdict {
	if err == nil {
		return resilience.Verdict{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.Verdict{Retryable: false, RecordFailure: false}
	}
	if resilience.IsCircuitOpen(err) {
		return resilience.Verdict{Retryable: true, RecordFailure: true}
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return resilience.Verdict{Retryable: true, RecordFailure: true}
		default:
			return resilience.Verdict{Retryable: false, RecordFailure: false}
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.Verdict{Retryable: true, RecordFailure: true}
	}

	return resilience.Verdict{Retryable: false, RecordFailure: true}
}

func wrapTemporaryIfNeeded(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		return err
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden {
			return domain.WrapError(domain.ErrUnauthorized, "openrouter chat", err)
		}
	}

	verdict := classifyRemoteError(err)
	if verdict.Retryable || resilience.IsCircuitOpen(err) {
		return domain.WrapError(domain.ErrTemporary, "openrouter chat", err)
	}
	return err
}
