package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/halalai/quran-assistant/internal/core/catalog"
	"github.com/halalai/quran-assistant/internal/core/domain"
)

type embedderFake struct {
	queries []string
	err     error
}

func (f *embedderFake) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (f *embedderFake) EmbedQuery(_ context.Context, text string) ([]float32, error) {
	f.queries = append(f.queries, text)
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0}, nil
}

type storeFake struct {
	count    int
	searches []domain.Filter
	limits   []int

	// results keyed by call index; the last entry repeats
	results [][]domain.RetrievalResult
	err     error
}

func (f *storeFake) AddDocuments(context.Context, []domain.Document, [][]float32) error { return nil }
func (f *storeFake) Rebuild(context.Context, []domain.Document, [][]float32) error      { return nil }
func (f *storeFake) Reset(context.Context) error                                        { return nil }
func (f *storeFake) DocumentCount() int                                                 { return f.count }

func (f *storeFake) SimilaritySearch(_ context.Context, _ []float32, limit int, filter domain.Filter) ([]domain.RetrievalResult, error) {
	call := len(f.searches)
	f.searches = append(f.searches, filter)
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.results) == 0 {
		return nil, nil
	}
	if call >= len(f.results) {
		call = len(f.results) - 1
	}
	return f.results[call], nil
}

func result(id string, surah int, score float64, text string) domain.RetrievalResult {
	return domain.RetrievalResult{
		ID: id, Text: text, Score: score,
		Metadata: domain.Metadata{Surah: surah, AyahFrom: 1, AyahTo: 1},
	}
}

func newRetriever(embedder *embedderFake, store *storeFake) *RetrieveUseCase {
	return NewRetrieveUseCase(embedder, store, catalog.New(), 8, slog.New(slog.DiscardHandler))
}

func TestRetrieveEmptyQuerySkipsEmbedder(t *testing.T) {
	embedder := &embedderFake{}
	store := &storeFake{count: 10}
	uc := newRetriever(embedder, store)

	results, err := uc.Retrieve(context.Background(), "   ", 3)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if results != nil {
		t.Fatalf("results = %v", results)
	}
	if len(embedder.queries) != 0 {
		t.Fatalf("embedder called %d times for blank query", len(embedder.queries))
	}
}

func TestRetrieveUsesSearchTopK(t *testing.T) {
	embedder := &embedderFake{}
	store := &storeFake{count: 10, results: [][]domain.RetrievalResult{{
		result("a", 2, 0.9, "текст"), result("b", 2, 0.8, "текст"),
		result("c", 2, 0.7, "текст"), result("d", 2, 0.6, "текст"),
	}}}
	uc := newRetriever(embedder, store)

	results, err := uc.Retrieve(context.Background(), "вопрос о вере", 2)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want truncation to 2", len(results))
	}
	if store.limits[0] != 8 {
		t.Fatalf("search limit = %d, want searchTopK=8", store.limits[0])
	}
}

func TestRetrieveFilterFallback(t *testing.T) {
	embedder := &embedderFake{}
	store := &storeFake{count: 10, results: [][]domain.RetrievalResult{
		nil, // filtered call is empty
		{result("a", 3, 0.9, "текст")},
	}}
	uc := newRetriever(embedder, store)

	results, err := uc.Retrieve(context.Background(), "что говорит сура 2", 3)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(store.searches) != 2 {
		t.Fatalf("expected filtered then unfiltered search, got %d calls", len(store.searches))
	}
	if len(store.searches[0]) == 0 {
		t.Fatal("first search should carry the surah filter")
	}
	if store.searches[1] != nil {
		t.Fatal("second search should be unfiltered")
	}
	if len(results) != 1 || results[0].ID != "a" {
		t.Fatalf("results = %+v", results)
	}
}

func TestRetrieveContextEmptyStore(t *testing.T) {
	embedder := &embedderFake{}
	uc := newRetriever(embedder, &storeFake{count: 0})

	results, err := uc.RetrieveContext(context.Background(), "вопрос", 3)
	if err != nil || results != nil {
		t.Fatalf("results = %v, err = %v", results, err)
	}
	if len(embedder.queries) != 0 {
		t.Fatal("embedder should not run against an empty index")
	}
}

func TestRetrieveContextDeduplicatesAcrossVariants(t *testing.T) {
	embedder := &embedderFake{}
	store := &storeFake{count: 10, results: [][]domain.RetrievalResult{
		{result("dup", 2, 0.9, "мясо свиньи запрещено")},
		{result("dup", 2, 0.9, "мясо свиньи запрещено"), result("other", 2, 0.5, "другой текст")},
	}}
	uc := newRetriever(embedder, store)

	results, err := uc.RetrieveContext(context.Background(), "можно ли свинину", 3)
	if err != nil {
		t.Fatalf("RetrieveContext: %v", err)
	}
	seen := map[string]int{}
	for _, r := range results {
		seen[r.ID]++
	}
	if seen["dup"] != 1 {
		t.Fatalf("duplicate not collapsed: %v", seen)
	}
}

func TestRetrieveContextKeywordRerank(t *testing.T) {
	embedder := &embedderFake{}
	// Off-topic excerpt scores higher but lacks the query keywords.
	store := &storeFake{count: 10, results: [][]domain.RetrievalResult{{
		result("offtopic", 1, 0.95, "повествование о пророках"),
		result("ontopic", 2, 0.60, "запретил вам мясо свиньи"),
	}}}
	uc := newRetriever(embedder, store)

	results, err := uc.RetrieveContext(context.Background(), "запрещена ли свинина", 2)
	if err != nil {
		t.Fatalf("RetrieveContext: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].ID != "ontopic" {
		t.Fatalf("keyword hit should rank first, got %s", results[0].ID)
	}
}

func TestRetrieveEmbedError(t *testing.T) {
	uc := newRetriever(&embedderFake{err: errors.New("embed down")}, &storeFake{count: 5})
	_, err := uc.Retrieve(context.Background(), "вопрос", 3)
	if err == nil {
		t.Fatal("expected error")
	}
}
