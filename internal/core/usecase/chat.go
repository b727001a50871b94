package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
	"github.com/halalai/quran-assistant/internal/core/prompting"
	"github.com/halalai/quran-assistant/internal/core/quality"
)

// ChatLimits bound the request knobs a client may set.
type ChatLimits struct {
	DefaultTopK        int
	MaxTopK            int
	MinTokens          int
	MaxTokens          int
	HistoryMaxMessages int
	HistoryMaxChars    int
	LogPrompts         bool
}

func DefaultChatLimits() ChatLimits {
	return ChatLimits{
		DefaultTopK:        3,
		MaxTopK:            10,
		MinTokens:          16,
		MaxTokens:          6144,
		HistoryMaxMessages: 16,
		HistoryMaxChars:    8192,
	}
}

type ChatUseCase struct {
	retriever *RetrieveUseCase
	builder   *prompting.Builder
	local     ports.ChatGenerator
	remote    ports.RemoteChatGenerator
	checker   *quality.Checker
	history   ports.ConversationStore
	limits    ChatLimits
	logger    *slog.Logger
}

func NewChatUseCase(
	retriever *RetrieveUseCase,
	builder *prompting.Builder,
	local ports.ChatGenerator,
	remote ports.RemoteChatGenerator,
	checker *quality.Checker,
	history ports.ConversationStore,
	limits ChatLimits,
	logger *slog.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		retriever: retriever,
		builder:   builder,
		local:     local,
		remote:    remote,
		checker:   checker,
		history:   history,
		limits:    limits,
		logger:    logger,
	}
}

// Chat runs the full guarded pipeline: message normalization, retrieval,
// guardrail assembly, generation (remote first when credentials are given,
// local otherwise) and quality scoring of the reply.
func (uc *ChatUseCase) Chat(ctx context.Context, in ports.ChatInput) (*ports.ChatOutput, error) {
	messages, err := uc.prepareMessages(in)
	if err != nil {
		return nil, err
	}
	messages = uc.clampHistory(messages)

	var sources []domain.RetrievalResult
	if in.UseRAG {
		query := lastUserQuery(messages)
		topK := uc.clampTopK(in.RAGTopK)
		sources, err = uc.retriever.RetrieveContext(ctx, query, topK)
		if err != nil {
			return nil, fmt.Errorf("retrieve context: %w", err)
		}
		if len(sources) > 0 {
			var surahs []int
			for _, src := range sources {
				if src.Metadata.Surah > 0 {
					surahs = append(surahs, src.Metadata.Surah)
				}
			}
			messages = uc.builder.InjectSurahGuardrail(messages, surahs)
			messages = uc.builder.InjectRAGContext(messages, sources)
			uc.logger.Info("rag context attached", slog.Int("sources", len(sources)))
		}
	}

	maxTokens := uc.clampMaxTokens(in.MaxTokens)
	out := &ports.ChatOutput{Sources: sourceRefs(sources)}
	uc.logPrompt(messages)

	if uc.remote != nil && strings.TrimSpace(in.APIKey) != "" {
		reply, remoteErr := uc.remote.GenerateChat(ctx, messages, maxTokens, in.RemoteModel, in.APIKey)
		if remoteErr == nil {
			out.Response = reply
			out.UsedRemote = true
			out.Model = "remote:" + uc.remote.ResolveModel(in.RemoteModel)
			uc.finish(ctx, in, out)
			return out, nil
		}
		uc.logger.Warn("remote generation failed, falling back to local", slog.Any("error", remoteErr))
		out.RemoteError = remoteErr.Error()
	}

	reply, err := uc.local.GenerateChat(ctx, messages, maxTokens)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}
	out.Response = reply
	out.Model = "local:" + uc.local.ModelName()
	uc.finish(ctx, in, out)
	return out, nil
}

const promptLogLimit = 500

// logPrompt emits the assembled conversation, truncated per message.
func (uc *ChatUseCase) logPrompt(messages []domain.ChatMessage) {
	if !uc.limits.LogPrompts {
		return
	}
	attrs := make([]any, 0, len(messages)*2)
	for i, msg := range messages {
		content := msg.Content
		if runes := []rune(content); len(runes) > promptLogLimit {
			content = string(runes[:promptLogLimit]) + "…"
		}
		attrs = append(attrs, fmt.Sprintf("%d_%s", i, msg.Role), content)
	}
	uc.logger.Debug("assembled prompt", attrs...)
}

// finish scores the reply and records the exchange. History write failures
// are logged, not surfaced: the reply is already produced.
func (uc *ChatUseCase) finish(ctx context.Context, in ports.ChatInput, out *ports.ChatOutput) {
	if len(out.Sources) > 0 {
		out.Quality = uc.checker.Check(out.Response, out.Sources)
		if out.Quality.Grade == quality.GradePoor || out.Quality.Grade == quality.GradeCritical {
			uc.logger.Warn("low quality reply",
				slog.String("grade", string(out.Quality.Grade)),
				slog.Int("risk_score", out.Quality.RiskScore),
			)
		}
	}

	if uc.history == nil || in.SessionID == "" {
		return
	}
	userTurn := strings.TrimSpace(in.Prompt)
	if userTurn == "" {
		userTurn = lastUserQuery(in.Messages)
	}
	if userTurn != "" {
		if err := uc.history.AppendMessage(ctx, domain.ConversationMessage{
			SessionID: in.SessionID, Role: domain.RoleUser, Content: userTurn,
		}); err != nil {
			uc.logger.Warn("append user turn", slog.Any("error", err))
		}
	}
	if err := uc.history.AppendMessage(ctx, domain.ConversationMessage{
		SessionID: in.SessionID, Role: domain.RoleAssistant, Content: out.Response,
	}); err != nil {
		uc.logger.Warn("append assistant turn", slog.Any("error", err))
	}
}

// History returns the most recent persisted turns for a session.
func (uc *ChatUseCase) History(ctx context.Context, sessionID string, limit int) ([]domain.ConversationMessage, error) {
	if uc.history == nil {
		return nil, domain.WrapError(domain.ErrNotFound, "chat history", fmt.Errorf("history store disabled"))
	}
	if sessionID == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "chat history", fmt.Errorf("session id required"))
	}
	if limit <= 0 {
		limit = uc.limits.HistoryMaxMessages
	}
	return uc.history.ListRecentMessages(ctx, sessionID, limit)
}

// prepareMessages validates the request body and produces the guarded
// message prefix. Either messages or a bare prompt must be present.
func (uc *ChatUseCase) prepareMessages(in ports.ChatInput) ([]domain.ChatMessage, error) {
	var normalized []domain.ChatMessage

	switch {
	case len(in.Messages) > 0:
		for _, msg := range in.Messages {
			role := strings.ToLower(strings.TrimSpace(msg.Role))
			switch role {
			case domain.RoleSystem, domain.RoleUser, domain.RoleAssistant:
			default:
				return nil, domain.WrapError(domain.ErrInvalidInput, "prepare messages",
					fmt.Errorf("unsupported role %q", msg.Role))
			}
			content := strings.TrimSpace(msg.Content)
			if content == "" {
				continue
			}
			normalized = append(normalized, domain.ChatMessage{Role: role, Content: content})
		}
	case strings.TrimSpace(in.Prompt) != "":
		normalized = append(normalized, domain.ChatMessage{
			Role: domain.RoleUser, Content: strings.TrimSpace(in.Prompt),
		})
	default:
		return nil, domain.WrapError(domain.ErrInvalidInput, "prepare messages",
			fmt.Errorf("either prompt or messages must be provided"))
	}

	if len(normalized) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "prepare messages",
			fmt.Errorf("message list is empty after normalization"))
	}

	withSystem := uc.builder.EnsureSystemPrompt(normalized)
	return uc.builder.InjectHalalGuardrail(withSystem), nil
}

// clampHistory bounds the conversation tail by message count and total
// size. The leading system message and the last turn always survive.
func (uc *ChatUseCase) clampHistory(messages []domain.ChatMessage) []domain.ChatMessage {
	var system []domain.ChatMessage
	history := messages
	for len(history) > 0 && history[0].Role == domain.RoleSystem {
		system = append(system, history[0])
		history = history[1:]
	}
	if len(history) == 0 {
		return messages
	}

	if max := uc.limits.HistoryMaxMessages; max > 0 && len(history) > max {
		history = history[len(history)-max:]
	}

	if budget := uc.limits.HistoryMaxChars; budget > 0 {
		used := 0
		kept := 0
		for i := len(history) - 1; i >= 0; i-- {
			size := len([]rune(history[i].Content))
			if kept > 0 && used+size > budget {
				break
			}
			used += size
			kept++
		}
		history = history[len(history)-kept:]
	}

	out := make([]domain.ChatMessage, 0, len(system)+len(history))
	out = append(out, system...)
	return append(out, history...)
}

func (uc *ChatUseCase) clampTopK(v int) int {
	if v <= 0 {
		return uc.limits.DefaultTopK
	}
	if v > uc.limits.MaxTopK {
		return uc.limits.MaxTopK
	}
	return v
}

func (uc *ChatUseCase) clampMaxTokens(v int) int {
	if v <= 0 {
		return uc.limits.MaxTokens
	}
	if v < uc.limits.MinTokens {
		return uc.limits.MinTokens
	}
	if v > uc.limits.MaxTokens {
		return uc.limits.MaxTokens
	}
	return v
}

func lastUserQuery(messages []domain.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == domain.RoleUser {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func sourceRefs(results []domain.RetrievalResult) []domain.SourceRef {
	refs := make([]domain.SourceRef, len(results))
	for i, r := range results {
		refs[i] = domain.SourceRef{ID: r.ID, Score: math.Round(r.Score*10000) / 10000, Metadata: r.Metadata}
	}
	return refs
}
