package sql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Store implements ports.TrackerStore on Postgres. Trackers are kept as one
// JSON payload per sender, upserted on save.
type Store struct {
	db    *sqlx.DB
	table string
}

type Option func(*Store)

// WithTable overrides the default "trackers" table name.
func WithTable(table string) Option {
	return func(s *Store) {
		s.table = table
	}
}

// New opens a Postgres connection and prepares the tracker table.
func New(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	store := NewFromDB(db, opts...)
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewFromDB wraps an existing connection. The caller owns migrations.
func NewFromDB(db *sqlx.DB, opts ...Option) *Store {
	store := &Store{
		db:    db,
		table: "trackers",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) migrate(ctx context.Context) error {
	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		sender_id TEXT PRIMARY KEY,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, s.table)
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tracker table: %w", err)
	}
	return nil
}

// Save upserts the tracker's JSON payload.
func (s *Store) Save(ctx context.Context, tracker *training.DialogueTracker) error {
	payload, err := json.Marshal(tracker)
	if err != nil {
		return fmt.Errorf("failed to marshal tracker: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (sender_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (sender_id) DO UPDATE SET payload = $2, updated_at = now()`, s.table)
	if _, err := s.db.ExecContext(ctx, query, tracker.SenderID, payload); err != nil {
		return fmt.Errorf("failed to save tracker: %w", err)
	}
	return nil
}

// Retrieve loads the tracker for a sender ID.
func (s *Store) Retrieve(ctx context.Context, senderID string) (*training.DialogueTracker, error) {
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE sender_id = $1`, s.table)

	var payload []byte
	err := s.db.GetContext(ctx, &payload, query, senderID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, training.ErrTrackerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker: %w", err)
	}

	var tracker training.DialogueTracker
	if err := json.Unmarshal(payload, &tracker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker: %w", err)
	}
	return &tracker, nil
}

// Keys lists stored sender IDs in insertion-time order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT sender_id FROM %s ORDER BY updated_at ASC`, s.table)

	senders := []string{}
	if err := s.db.SelectContext(ctx, &senders, query); err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}
	return senders, nil
}

// Delete removes the tracker for a sender ID.
func (s *Store) Delete(ctx context.Context, senderID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE sender_id = $1`, s.table)
	if _, err := s.db.ExecContext(ctx, query, senderID); err != nil {
		return fmt.Errorf("failed to delete tracker: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
