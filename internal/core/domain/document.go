package domain

import "time"

// Metadata describes where an indexed excerpt comes from. The fields the
// retrieval and guardrail logic branches on are typed; source-specific extras
// (tafsir attribution, translations) go into Extra.
type Metadata struct {
	Surah         int      `json:"surah"`
	SurahNameRU   string   `json:"surah_name_ru,omitempty"`
	SurahNameEN   string   `json:"surah_name_en,omitempty"`
	SurahSubtitle string   `json:"surah_subtitle,omitempty"`
	AyahFrom      int      `json:"ayah_from"`
	AyahTo        int      `json:"ayah_to"`
	AyahRange     string   `json:"ayah_range,omitempty"`
	TafsirSources []string `json:"tafsir_sources,omitempty"`

	Extra map[string]string `json:"extra,omitempty"`
}

// Document is an indexed excerpt. Immutable once stored; IDs must be
// generated deterministically by the caller (e.g. surah_2_ayah_172_174) so
// that re-ingestion never produces colliding IDs with different content.
type Document struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// RetrievalResult is a read-only projection of a matched document. It lives
// only for the duration of one retrieval call chain and is never persisted.
type RetrievalResult struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
	Score    float64  `json:"score"`
}

// SourceRef is the wire form of a retrieval result attached to a chat reply.
type SourceRef struct {
	ID       string   `json:"id"`
	Score    float64  `json:"score"`
	Metadata Metadata `json:"metadata"`
}

// VerseRow is one row of an ingested verse table.
type VerseRow struct {
	SourceID      string
	Surah         int
	SurahTitle    string
	SurahSubtitle string
	VerseNumber   int
	Text          string
}

type SourceStatus string

const (
	SourceUploaded   SourceStatus = "uploaded"
	SourceProcessing SourceStatus = "processing"
	SourceReady      SourceStatus = "ready"
	SourceFailed     SourceStatus = "failed"
)

// CorpusSource tracks one uploaded verse table through the rebuild pipeline.
type CorpusSource struct {
	ID          string       `json:"id"`
	Filename    string       `json:"filename"`
	MimeType    string       `json:"mime_type"`
	StoragePath string       `json:"storage_path"`
	Status      SourceStatus `json:"status"`
	Error       string       `json:"error,omitempty"`
	VerseCount  int          `json:"verse_count"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
