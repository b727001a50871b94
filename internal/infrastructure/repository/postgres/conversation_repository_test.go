package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/halalai/quran-assistant/internal/core/domain"
)

func TestListRecentMessagesReversesToChronological(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &ConversationRepository{db: db}

	base := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "session_id", "role", "content", "created_at"}).
		AddRow(int64(2), "s1", domain.RoleAssistant, "ответ", base).
		AddRow(int64(1), "s1", domain.RoleUser, "вопрос", base.Add(-time.Minute))

	mock.ExpectQuery("SELECT id, session_id, role, content, created_at").
		WithArgs("s1", 16).
		WillReturnRows(rows)

	out, err := repo.ListRecentMessages(context.Background(), "s1", 16)
	if err != nil {
		t.Fatalf("ListRecentMessages() error = %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(out))
	}
	if out[0].Role != domain.RoleUser || out[1].Role != domain.RoleAssistant {
		t.Fatalf("expected chronological order, got %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListRecentMessagesZeroLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &ConversationRepository{db: db}

	out, err := repo.ListRecentMessages(context.Background(), "s1", 0)
	if err != nil || out != nil {
		t.Fatalf("expected nil result for zero limit, got %v, %v", out, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAppendMessageStampsCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()
	repo := &ConversationRepository{db: db}

	mock.ExpectExec("INSERT INTO conversation_messages").
		WithArgs("s1", domain.RoleUser, "вопрос", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AppendMessage(context.Background(), domain.ConversationMessage{
		SessionID: "s1",
		Role:      domain.RoleUser,
		Content:   "вопрос",
	})
	if err != nil {
		t.Fatalf("AppendMessage() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
