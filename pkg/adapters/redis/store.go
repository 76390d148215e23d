package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/malhotra1432/rasa-1/pkg/training"
)

// Store implements ports.TrackerStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored trackers.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for trackers.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis tracker store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis tracker store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "rasa:tracker:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(senderID string) string {
	return s.prefix + senderID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the tracker to Redis.
func (s *Store) Save(ctx context.Context, tracker *training.DialogueTracker) error {
	data, err := json.Marshal(tracker)
	if err != nil {
		return fmt.Errorf("failed to marshal tracker: %w", err)
	}

	pipe := s.client.Pipeline()

	// JSON payload with TTL (0 means no expiration), plus a ZSET index
	// scored by the expiry instant so Keys can prune lazily.
	pipe.Set(ctx, s.key(tracker.SenderID), data, s.ttl)

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01, effectively never
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: tracker.SenderID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Retrieve loads the tracker from Redis.
func (s *Store) Retrieve(ctx context.Context, senderID string) (*training.DialogueTracker, error) {
	val, err := s.client.Get(ctx, s.key(senderID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, training.ErrTrackerNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var tracker training.DialogueTracker
	if err := json.Unmarshal([]byte(val), &tracker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker: %w", err)
	}
	return &tracker, nil
}

// Delete removes the tracker.
func (s *Store) Delete(ctx context.Context, senderID string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(senderID))
	pipe.ZRem(ctx, s.indexKey(), senderID)

	_, err := pipe.Exec(ctx)
	return err
}

// Keys lists stored sender IDs, pruning expired index entries first.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired trackers: %w", err)
	}

	senders, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}
	return senders, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
