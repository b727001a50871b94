package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
)

// RebuildUseCase is the worker side of corpus ingestion: it parses every
// ready verse table, windows adjacent ayahs into documents, embeds them and
// swaps the vector index in one rebuild.
type RebuildUseCase struct {
	repo       ports.CorpusRepository
	storage    ports.ObjectStorage
	reader     ports.VerseReader
	embedder   ports.Embedder
	store      ports.VectorStore
	catalog    *catalog.Catalog
	windowSize int
	batchSize  int
	logger     *slog.Logger
}

func NewRebuildUseCase(
	repo ports.CorpusRepository,
	storage ports.ObjectStorage,
	reader ports.VerseReader,
	embedder ports.Embedder,
	store ports.VectorStore,
	cat *catalog.Catalog,
	windowSize int,
	batchSize int,
	logger *slog.Logger,
) *RebuildUseCase {
	if windowSize < 1 {
		windowSize = 1
	}
	if batchSize < 1 {
		batchSize = 32
	}
	return &RebuildUseCase{
		repo:       repo,
		storage:    storage,
		reader:     reader,
		embedder:   embedder,
		store:      store,
		catalog:    cat,
		windowSize: windowSize,
		batchSize:  batchSize,
		logger:     logger,
	}
}

// ProcessByID marks the source as processing, rebuilds the index from all
// ready sources plus this one, and records the outcome on the source row.
func (uc *RebuildUseCase) ProcessByID(ctx context.Context, sourceID string) error {
	src, err := uc.repo.GetByID(ctx, sourceID)
	if err != nil {
		return fmt.Errorf("load corpus source: %w", err)
	}
	if err := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceProcessing, "", 0); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	rows, err := uc.readSource(ctx, src)
	if err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceFailed, err.Error(), 0); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	// Include rows from every previously ready source so a rebuild never
	// drops older uploads.
	ready, err := uc.repo.ListReady(ctx)
	if err != nil {
		return fmt.Errorf("list ready sources: %w", err)
	}
	for _, other := range ready {
		if other.ID == src.ID {
			continue
		}
		otherRows, err := uc.readSource(ctx, &other)
		if err != nil {
			uc.logger.Warn("skipping unreadable ready source",
				slog.String("source_id", other.ID), slog.Any("error", err))
			continue
		}
		rows = append(rows, otherRows...)
	}

	docs := uc.BuildDocuments(rows)
	if len(docs) == 0 {
		err := domain.WrapError(domain.ErrInvalidInput, "rebuild index", fmt.Errorf("no documents built from %d rows", len(rows)))
		if failErr := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceFailed, err.Error(), 0); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	vectors, err := uc.embedAll(ctx, docs)
	if err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceFailed, err.Error(), 0); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.store.Rebuild(ctx, docs, vectors); err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceFailed, err.Error(), 0); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return fmt.Errorf("rebuild vector index: %w", err)
	}

	verseCount := countSourceRows(rows, src.ID)
	if err := uc.repo.UpdateStatus(ctx, src.ID, domain.SourceReady, "", verseCount); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}
	uc.logger.Info("index rebuilt",
		slog.String("source_id", src.ID),
		slog.Int("documents", len(docs)),
		slog.Int("verses", verseCount),
	)
	return nil
}

func (uc *RebuildUseCase) readSource(ctx context.Context, src *domain.CorpusSource) ([]domain.VerseRow, error) {
	body, err := uc.storage.Open(ctx, src.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open stored table: %w", err)
	}
	defer body.Close()

	rows, err := uc.reader.Read(ctx, src, body)
	if err != nil {
		return nil, fmt.Errorf("parse verse table: %w", err)
	}
	for i := range rows {
		rows[i].SourceID = src.ID
	}
	return rows, nil
}

// BuildDocuments groups verses of each surah into sliding windows. Every
// verse yields one document covering itself and up to windowSize/2
// neighbors on each side, clipped at surah edges. Document IDs are derived
// from the covered range, so identical windows collide on rebuild and the
// corpus stays deterministic.
func (uc *RebuildUseCase) BuildDocuments(rows []domain.VerseRow) []domain.Document {
	halfWindow := uc.windowSize / 2

	bySurah := make(map[int][]domain.VerseRow)
	for _, row := range rows {
		if row.Surah < 1 {
			continue
		}
		bySurah[row.Surah] = append(bySurah[row.Surah], row)
	}

	surahs := make([]int, 0, len(bySurah))
	for n := range bySurah {
		surahs = append(surahs, n)
	}
	sort.Ints(surahs)

	var docs []domain.Document
	for _, surah := range surahs {
		verses := bySurah[surah]
		sort.SliceStable(verses, func(i, j int) bool { return verses[i].VerseNumber < verses[j].VerseNumber })

		for idx, row := range verses {
			start := idx - halfWindow
			if start < 0 {
				start = 0
			}
			end := idx + halfWindow + 1
			if end > len(verses) {
				end = len(verses)
			}
			window := verses[start:end]

			var fragments []string
			ayahFrom, ayahTo := 0, 0
			for _, v := range window {
				if text := strings.TrimSpace(v.Text); text != "" {
					fragments = append(fragments, text)
				}
				if ayahFrom == 0 || v.VerseNumber < ayahFrom {
					ayahFrom = v.VerseNumber
				}
				if v.VerseNumber > ayahTo {
					ayahTo = v.VerseNumber
				}
			}
			combined := strings.Join(fragments, " ")
			if combined == "" || ayahFrom == 0 {
				continue
			}

			nameRU := strings.TrimSpace(row.SurahTitle)
			if nameRU == "" {
				nameRU = uc.catalog.Name(surah, "ru")
			}
			ayahRange := strconv.Itoa(ayahFrom)
			if ayahFrom != ayahTo {
				ayahRange = fmt.Sprintf("%d-%d", ayahFrom, ayahTo)
			}

			docs = append(docs, domain.Document{
				ID:   fmt.Sprintf("surah_%d_ayah_%d_%d", surah, ayahFrom, ayahTo),
				Text: combined,
				Metadata: domain.Metadata{
					Surah:         surah,
					SurahNameRU:   nameRU,
					SurahNameEN:   uc.catalog.Name(surah, "en"),
					SurahSubtitle: strings.TrimSpace(row.SurahSubtitle),
					AyahFrom:      ayahFrom,
					AyahTo:        ayahTo,
					AyahRange:     ayahRange,
					Extra:         map[string]string{"source": "quran_table"},
				},
			})
		}
	}
	return docs
}

func (uc *RebuildUseCase) embedAll(ctx context.Context, docs []domain.Document) ([][]float32, error) {
	vectors := make([][]float32, 0, len(docs))
	for start := 0; start < len(docs); start += uc.batchSize {
		end := start + uc.batchSize
		if end > len(docs) {
			end = len(docs)
		}
		texts := make([]string, 0, end-start)
		for _, doc := range docs[start:end] {
			texts = append(texts, doc.Text)
		}
		batch, err := uc.embedder.Embed(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed batch at %d: %w", start, err)
		}
		if len(batch) != len(texts) {
			return nil, fmt.Errorf("embed batch at %d: got %d vectors for %d texts", start, len(batch), len(texts))
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

func countSourceRows(rows []domain.VerseRow, sourceID string) int {
	n := 0
	for _, row := range rows {
		if row.SourceID == sourceID {
			n++
		}
	}
	return n
}
