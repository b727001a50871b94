package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
)

type IngestCorpusUseCase struct {
	repo    ports.CorpusRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
}

func NewIngestCorpusUseCase(
	repo ports.CorpusRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
) *IngestCorpusUseCase {
	return &IngestCorpusUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

// Upload stores a verse table, records it and signals the worker to rebuild
// the index from all ready sources.
func (uc *IngestCorpusUseCase) Upload(
	ctx context.Context,
	filename, mimeType string,
	body io.Reader,
) (*domain.CorpusSource, error) {
	id := uuid.NewString()
	storageKey := fmt.Sprintf("%s_%s", id, sanitizeFilename(filename))
	now := time.Now().UTC()

	if err := uc.storage.Save(ctx, storageKey, body); err != nil {
		return nil, fmt.Errorf("save to object storage: %w", err)
	}

	src := &domain.CorpusSource{
		ID:          id,
		Filename:    filename,
		MimeType:    mimeType,
		StoragePath: storageKey,
		Status:      domain.SourceUploaded,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.Create(ctx, src); err != nil {
		return nil, fmt.Errorf("create corpus source: %w", err)
	}

	if err := uc.queue.PublishCorpusIngested(ctx, src.ID); err != nil {
		return nil, fmt.Errorf("publish ingestion event: %w", err)
	}

	return src, nil
}

// GetSource returns the stored state of one uploaded verse table.
func (uc *IngestCorpusUseCase) GetSource(ctx context.Context, id string) (*domain.CorpusSource, error) {
	return uc.repo.GetByID(ctx, id)
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		return "corpus.bin"
	}
	return base
}
