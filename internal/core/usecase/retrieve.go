package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/domain"
	"github.com/halalai/quran-assistant/internal/core/ports"
)

type RetrieveUseCase struct {
	embedder   ports.Embedder
	store      ports.VectorStore
	catalog    *catalog.Catalog
	searchTopK int
	logger     *slog.Logger
}

func NewRetrieveUseCase(
	embedder ports.Embedder,
	store ports.VectorStore,
	cat *catalog.Catalog,
	searchTopK int,
	logger *slog.Logger,
) *RetrieveUseCase {
	return &RetrieveUseCase{
		embedder:   embedder,
		store:      store,
		catalog:    cat,
		searchTopK: searchTopK,
		logger:     logger,
	}
}

// Retrieve runs one similarity search for a single query string. A blank
// query returns no results without calling the embedder. When a filter
// yields nothing the search is retried unfiltered.
func (uc *RetrieveUseCase) Retrieve(ctx context.Context, query string, topK int) ([]domain.RetrievalResult, error) {
	return uc.retrieve(ctx, query, topK, uc.buildFilter(query))
}

func (uc *RetrieveUseCase) retrieve(ctx context.Context, query string, topK int, filter domain.Filter) ([]domain.RetrievalResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	if topK <= 0 {
		return nil, nil
	}

	vector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	limit := topK
	if uc.searchTopK > limit {
		limit = uc.searchTopK
	}

	results, err := uc.store.SimilaritySearch(ctx, vector, limit, filter)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	if len(results) == 0 && len(filter) > 0 {
		uc.logger.Info("filtered search empty, retrying without filter", slog.String("query", query))
		results, err = uc.store.SimilaritySearch(ctx, vector, limit, nil)
		if err != nil {
			return nil, fmt.Errorf("similarity search: %w", err)
		}
	}
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// buildFilter restricts the search to surahs the query names explicitly.
func (uc *RetrieveUseCase) buildFilter(query string) domain.Filter {
	numbers := uc.catalog.MatchNumbers(query)
	if len(numbers) == 0 {
		return nil
	}
	return domain.Filter{"surah": domain.OneOfInts(numbers...)}
}

// RetrieveContext searches across all variants of the user query and merges
// the results. The surah filter applies only to the primary variant; later
// variants broaden the candidate pool. Collection stops early once twice
// topK unique documents are found, then on-topic excerpts are ranked ahead
// of the rest.
func (uc *RetrieveUseCase) RetrieveContext(ctx context.Context, query string, topK int) ([]domain.RetrievalResult, error) {
	if strings.TrimSpace(query) == "" || uc.store.DocumentCount() == 0 {
		return nil, nil
	}

	variants := queryVariants(query)
	filter := uc.buildFilter(query)
	uc.logger.Info("retrieving context",
		slog.Int("variants", len(variants)),
		slog.Int("top_k", topK),
		slog.Bool("filtered", len(filter) > 0),
	)

	var merged []domain.RetrievalResult
	seen := make(map[string]struct{})

	for i, variant := range variants {
		variantFilter := domain.Filter(nil)
		if i == 0 {
			variantFilter = filter
		}
		results, err := uc.retrieve(ctx, variant, topK, variantFilter)
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			merged = append(merged, r)
		}
		if len(merged) >= topK*2 {
			break
		}
	}

	merged = rankByRelevance(query, merged)
	if len(merged) > topK {
		merged = merged[:topK]
	}
	return merged, nil
}

// rankByRelevance partitions results into those containing a query keyword
// and those without, sorts each partition by score, and concatenates them
// keyword hits first. Without keywords it is a plain score sort.
func rankByRelevance(query string, results []domain.RetrievalResult) []domain.RetrievalResult {
	keywords := relevanceKeywords(query)
	byScore := func(list []domain.RetrievalResult) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	}
	if len(keywords) == 0 {
		byScore(results)
		return results
	}

	var hits, rest []domain.RetrievalResult
	for _, r := range results {
		text := strings.ToLower(r.Text)
		matched := false
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				matched = true
				break
			}
		}
		if matched {
			hits = append(hits, r)
		} else {
			rest = append(rest, r)
		}
	}
	byScore(hits)
	byScore(rest)
	return append(hits, rest...)
}
