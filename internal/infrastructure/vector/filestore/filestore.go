// Package filestore is a file-persisted vector index. Documents and their
// embeddings are held in memory as parallel slices; every mutation is
// flushed to disk atomically so the worker and a restarted API process see
// the same corpus.
package filestore

import (
	"container/heap"
	"context"
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

// Store implements ports.VectorStore on top of a single snapshot file.
// Vectors are L2-normalized at insert time, so similarity search is a plain
// dot product.
type Store struct {
	path string

	mu      sync.RWMutex
	docs    []domain.Document
	vectors [][]float32
	dim     int
}

type snapshot struct {
	Documents []domain.Document
	Vectors   [][]float32
	Dim       int
}

// Open loads the snapshot at path, or starts empty when the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, domain.WrapError(domain.ErrTemporary, "vector store open", err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, domain.WrapError(domain.ErrTemporary, "vector store decode", err)
	}
	if len(snap.Documents) != len(snap.Vectors) {
		return nil, domain.WrapError(domain.ErrTemporary, "vector store decode",
			fmt.Errorf("snapshot has %d documents but %d vectors", len(snap.Documents), len(snap.Vectors)))
	}
	s.docs = snap.Documents
	s.vectors = snap.Vectors
	s.dim = snap.Dim
	return s, nil
}

// AddDocuments appends documents and their vectors and persists the result.
// All vectors must share one dimension, matching any already stored.
func (s *Store) AddDocuments(ctx context.Context, docs []domain.Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return domain.WrapError(domain.ErrInvalidInput, "vector store add",
			fmt.Errorf("%d documents but %d vectors", len(docs), len(vectors)))
	}
	if len(docs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dim := s.dim
	for _, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return domain.WrapError(domain.ErrDimensionMismatch, "vector store add",
				fmt.Errorf("got vector of dim %d, store dim %d", len(v), dim))
		}
	}

	for i := range docs {
		s.docs = append(s.docs, docs[i])
		s.vectors = append(s.vectors, normalize(vectors[i]))
	}
	s.dim = dim
	return s.persistLocked(ctx)
}

// Rebuild replaces the whole index in one atomic swap.
func (s *Store) Rebuild(ctx context.Context, docs []domain.Document, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return domain.WrapError(domain.ErrInvalidInput, "vector store rebuild",
			fmt.Errorf("%d documents but %d vectors", len(docs), len(vectors)))
	}

	dim := 0
	normalized := make([][]float32, len(vectors))
	for i, v := range vectors {
		if dim == 0 {
			dim = len(v)
		}
		if len(v) != dim {
			return domain.WrapError(domain.ErrDimensionMismatch, "vector store rebuild",
				fmt.Errorf("got vector of dim %d, batch dim %d", len(v), dim))
		}
		normalized[i] = normalize(v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]domain.Document(nil), docs...)
	s.vectors = normalized
	s.dim = dim
	return s.persistLocked(ctx)
}

// Reset drops all documents and removes the snapshot file.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = nil
	s.vectors = nil
	s.dim = 0
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return domain.WrapError(domain.ErrTemporary, "vector store reset", err)
	}
	return nil
}

// DocumentCount returns the number of indexed documents.
func (s *Store) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

type scored struct {
	idx   int
	score float64
}

// scoredHeap is a min-heap over similarity so the worst candidate sits on
// top and gets evicted first.
type scoredHeap []scored

func (h scoredHeap) Len() int            { return len(h) }
func (h scoredHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h scoredHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap) Push(x interface{}) { *h = append(*h, x.(scored)) }
func (h *scoredHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SimilaritySearch returns up to limit documents matching filter, most
// similar first. An empty store or non-positive limit yields no results.
func (s *Store) SimilaritySearch(ctx context.Context, queryVector []float32, limit int, filter domain.Filter) ([]domain.RetrievalResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.docs) == 0 {
		return nil, nil
	}
	if len(queryVector) != s.dim {
		return nil, domain.WrapError(domain.ErrDimensionMismatch, "vector store search",
			fmt.Errorf("query dim %d, store dim %d", len(queryVector), s.dim))
	}

	query := normalize(queryVector)
	h := make(scoredHeap, 0, limit)
	for i := range s.docs {
		if !filter.Matches(s.docs[i].Metadata) {
			continue
		}
		score := dot(query, s.vectors[i])
		if len(h) < limit {
			heap.Push(&h, scored{idx: i, score: score})
		} else if score > h[0].score {
			h[0] = scored{idx: i, score: score}
			heap.Fix(&h, 0)
		}
	}

	results := make([]domain.RetrievalResult, len(h))
	for i := len(h) - 1; i >= 0; i-- {
		top := heap.Pop(&h).(scored)
		doc := s.docs[top.idx]
		results[i] = domain.RetrievalResult{
			ID:       doc.ID,
			Text:     doc.Text,
			Metadata: doc.Metadata,
			Score:    top.score,
		}
	}
	return results, nil
}

// persistLocked writes the snapshot through a temp file and rename so a
// crash mid-write never corrupts the index. Caller holds s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.WrapError(domain.ErrTemporary, "vector store persist", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*")
	if err != nil {
		return domain.WrapError(domain.ErrTemporary, "vector store persist", err)
	}
	defer os.Remove(tmp.Name())

	snap := snapshot{Documents: s.docs, Vectors: s.vectors, Dim: s.dim}
	if err := gob.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		return domain.WrapError(domain.ErrTemporary, "vector store persist", err)
	}
	if err := tmp.Close(); err != nil {
		return domain.WrapError(domain.ErrTemporary, "vector store persist", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return domain.WrapError(domain.ErrTemporary, "vector store persist", err)
	}
	return nil
}

func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(v))
	if norm == 0 {
		copy(out, v)
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
