package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/halalai/quran-assistant/internal/config"
	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/ports"
	"github.com/halalai/quran-assistant/internal/core/prompting"
	"github.com/halalai/quran-assistant/internal/core/quality"
	"github.com/halalai/quran-assistant/internal/core/usecase"
	"github.com/halalai/quran-assistant/internal/infrastructure/llm/ollama"
	"github.com/halalai/quran-assistant/internal/infrastructure/llm/openrouter"
	"github.com/halalai/quran-assistant/internal/infrastructure/queue/nats"
	"github.com/halalai/quran-assistant/internal/infrastructure/repository/postgres"
	"github.com/halalai/quran-assistant/internal/infrastructure/resilience"
	"github.com/halalai/quran-assistant/internal/infrastructure/storage/localfs"
	"github.com/halalai/quran-assistant/internal/infrastructure/tabular"
	"github.com/halalai/quran-assistant/internal/infrastructure/vector/filestore"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Queue      ports.MessageQueue
	Repo       ports.CorpusRepository
	Store      ports.VectorStore
	ChatUC     ports.ChatService
	RetrieveUC ports.Retriever
	IngestUC   ports.CorpusIngestor
	ProcessUC  ports.CorpusProcessor

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewCorpusRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	history := postgres.NewConversationRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultPolicy())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	ollamaClient := ollama.New(cfg.OllamaURL, cfg.OllamaChatModel, cfg.OllamaEmbedModel, ollama.WithExecutor(executor))
	embedder := ollama.NewEmbedder(ollamaClient)
	generator := ollama.NewGenerator(ollamaClient)
	remote := openrouter.New(
		openrouter.WithBaseURL(cfg.OpenRouterBaseURL),
		openrouter.WithExecutor(executor),
	)

	store, err := filestore.Open(cfg.VectorStorePath)
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}

	cat := catalog.New()
	builder := prompting.NewBuilder(cat)
	checker := quality.NewChecker(quality.DefaultWeights(), quality.DefaultThresholds())
	reader := tabular.NewReader()

	retrieveUC := usecase.NewRetrieveUseCase(embedder, store, cat, cfg.RAGSearchTopK, logger)
	limits := usecase.DefaultChatLimits()
	if cfg.RAGTopK > 0 {
		limits.DefaultTopK = cfg.RAGTopK
	}
	if cfg.HistoryMaxMessages > 0 {
		limits.HistoryMaxMessages = cfg.HistoryMaxMessages
	}
	if cfg.MaxTokensCap > 0 {
		limits.MaxTokens = cfg.MaxTokensCap
	}
	limits.LogPrompts = cfg.LogPrompts
	chatUC := usecase.NewChatUseCase(retrieveUC, builder, generator, remote, checker, history, limits, logger)
	ingestUC := usecase.NewIngestCorpusUseCase(repo, storage, queue)
	processUC := usecase.NewRebuildUseCase(repo, storage, reader, embedder, store, cat, cfg.VerseWindow, cfg.EmbedBatch, logger)

	return &App{
		Config: cfg,
		Logger: logger,

		Queue:      queue,
		Repo:       repo,
		Store:      store,
		ChatUC:     chatUC,
		RetrieveUC: retrieveUC,
		IngestUC:   ingestUC,
		ProcessUC:  processUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
