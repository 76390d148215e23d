package sql

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewFromDB(sqlx.NewDb(db, "postgres")), mock
}

func TestSQLStore_SaveUpserts(t *testing.T) {
	store, mock := newMockStore(t)

	tracker := training.NewTracker("sender-1")
	payload, err := json.Marshal(tracker)
	if err != nil {
		t.Fatalf("marshal tracker: %v", err)
	}

	query := regexp.QuoteMeta(`INSERT INTO trackers (sender_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (sender_id) DO UPDATE SET payload = $2, updated_at = now()`)
	mock.ExpectExec(query).
		WithArgs("sender-1", payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Save(context.Background(), tracker); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestSQLStore_RetrieveDecodesPayload(t *testing.T) {
	store, mock := newMockStore(t)

	tracker := training.NewTracker("sender-2")
	tracker.Update(training.UserUttered{Text: "hi", IntentName: "greet"})
	payload, err := json.Marshal(tracker)
	if err != nil {
		t.Fatalf("marshal tracker: %v", err)
	}

	query := regexp.QuoteMeta(`SELECT payload FROM trackers WHERE sender_id = $1`)
	mock.ExpectQuery(query).
		WithArgs("sender-2").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	loaded, err := store.Retrieve(context.Background(), "sender-2")
	if err != nil {
		t.Fatalf("Retrieve returned error: %v", err)
	}
	if loaded.SenderID != "sender-2" {
		t.Errorf("unexpected sender id: %s", loaded.SenderID)
	}
	if loaded.LatestMessage == nil || loaded.LatestMessage.Intent != "greet" {
		t.Errorf("latest message not restored: %+v", loaded.LatestMessage)
	}
	if len(loaded.Events) != len(tracker.Events) {
		t.Errorf("expected %d events, got %d", len(tracker.Events), len(loaded.Events))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}

func TestSQLStore_RetrieveMissing(t *testing.T) {
	store, mock := newMockStore(t)

	query := regexp.QuoteMeta(`SELECT payload FROM trackers WHERE sender_id = $1`)
	mock.ExpectQuery(query).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := store.Retrieve(context.Background(), "ghost")
	if err != training.ErrTrackerNotFound {
		t.Fatalf("expected ErrTrackerNotFound, got %v", err)
	}
}

func TestSQLStore_Keys(t *testing.T) {
	store, mock := newMockStore(t)

	query := regexp.QuoteMeta(`SELECT sender_id FROM trackers ORDER BY updated_at ASC`)
	mock.ExpectQuery(query).WillReturnRows(
		sqlmock.NewRows([]string{"sender_id"}).AddRow("a").AddRow("b"),
	)

	keys, err := store.Keys(context.Background())
	if err != nil {
		t.Fatalf("Keys returned error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("unexpected keys: %v", keys)
	}
}

func TestSQLStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	query := regexp.QuoteMeta(`DELETE FROM trackers WHERE sender_id = $1`)
	mock.ExpectExec(query).
		WithArgs("sender-3").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Delete(context.Background(), "sender-3"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet sqlmock expectations: %v", err)
	}
}
