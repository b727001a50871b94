package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

type CorpusRepository struct {
	db *sql.DB
}

func NewCorpusRepository(db *sql.DB) *CorpusRepository {
	return &CorpusRepository{db: db}
}

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func (r *CorpusRepository) EnsureSchema(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026053101)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS corpus_sources (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	mime_type TEXT NOT NULL,
	storage_path TEXT NOT NULL,
	status TEXT NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	verse_count INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_corpus_sources_status ON corpus_sources(status);
CREATE INDEX IF NOT EXISTS idx_corpus_sources_created_at ON corpus_sources(created_at DESC);

CREATE TABLE IF NOT EXISTS conversation_messages (
	id BIGSERIAL PRIMARY KEY,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversation_messages_session ON conversation_messages(session_id, created_at DESC);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *CorpusRepository) Create(ctx context.Context, src *domain.CorpusSource) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO corpus_sources (
	id, filename, mime_type, storage_path, status, error_message, verse_count, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`,
		src.ID, src.Filename, src.MimeType, src.StoragePath, string(src.Status),
		src.Error, src.VerseCount, src.CreatedAt, src.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert corpus source: %w", err)
	}
	return nil
}

func (r *CorpusRepository) GetByID(ctx context.Context, id string) (*domain.CorpusSource, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, filename, mime_type, storage_path, status, error_message, verse_count, created_at, updated_at
FROM corpus_sources
WHERE id = $1
`, id)

	src, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrNotFound, "get corpus source", fmt.Errorf("source %s", id))
		}
		return nil, fmt.Errorf("scan corpus source: %w", err)
	}
	return src, nil
}

func (r *CorpusRepository) UpdateStatus(ctx context.Context, id string, status domain.SourceStatus, errMessage string, verseCount int) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE corpus_sources
SET status = $2, error_message = $3, verse_count = $4, updated_at = $5
WHERE id = $1
`, id, string(status), errMessage, verseCount, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update corpus source status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return domain.WrapError(domain.ErrNotFound, "update corpus source status", fmt.Errorf("source %s", id))
	}
	return nil
}

func (r *CorpusRepository) ListReady(ctx context.Context) ([]domain.CorpusSource, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, filename, mime_type, storage_path, status, error_message, verse_count, created_at, updated_at
FROM corpus_sources
WHERE status = $1
ORDER BY created_at ASC
`, string(domain.SourceReady))
	if err != nil {
		return nil, fmt.Errorf("list ready sources: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CorpusSource, 0)
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ready source: %w", err)
		}
		out = append(out, *src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ready sources: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (*domain.CorpusSource, error) {
	var src domain.CorpusSource
	var status string
	err := row.Scan(
		&src.ID, &src.Filename, &src.MimeType, &src.StoragePath,
		&status, &src.Error, &src.VerseCount, &src.CreatedAt, &src.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	src.Status = domain.SourceStatus(status)
	return &src, nil
}
