package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

func newRepoWithMock(t *testing.T) (*CorpusRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &CorpusRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestGetByIDReturnsNotFound(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDScansSource(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "filename", "mime_type", "storage_path", "status", "error_message", "verse_count", "created_at", "updated_at",
	}).AddRow("src-1", "quran.xlsx", "application/vnd.ms-excel", "src-1_quran.xlsx", "ready", "", 6236, now, now)

	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs("src-1").
		WillReturnRows(rows)

	src, err := repo.GetByID(context.Background(), "src-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if src.Status != domain.SourceReady || src.VerseCount != 6236 {
		t.Fatalf("unexpected source: %+v", src)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusReturnsNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE corpus_sources").
		WithArgs("missing", string(domain.SourceProcessing), "", 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.SourceProcessing, "", 0)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListReadyFiltersByStatus(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "filename", "mime_type", "storage_path", "status", "error_message", "verse_count", "created_at", "updated_at",
	}).
		AddRow("src-1", "a.csv", "text/csv", "src-1_a.csv", "ready", "", 10, now, now).
		AddRow("src-2", "b.csv", "text/csv", "src-2_b.csv", "ready", "", 20, now, now)

	mock.ExpectQuery("SELECT id, filename, mime_type, storage_path").
		WithArgs(string(domain.SourceReady)).
		WillReturnRows(rows)

	out, err := repo.ListReady(context.Background())
	if err != nil {
		t.Fatalf("ListReady() error = %v", err)
	}
	if len(out) != 2 || out[0].ID != "src-1" || out[1].VerseCount != 20 {
		t.Fatalf("unexpected list: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
