// Package redisstore provides the Redis-backed receipt store. Receipts are
// stored as canonical JSON under receipt:<id> keys; SetNX gives the same
// write-once guarantee the in-memory store enforces with its mutex.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tally/internal/receipt/models"
	"tally/pkg/platform/sentinel"
)

// Store persists receipts in Redis.
type Store struct {
	client *redis.Client
}

// New creates a store backed by the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(id uuid.UUID) string {
	return "receipt:" + id.String()
}

// Save stores a receipt under a fresh identifier. Returns ErrConflict if the
// key already exists.
func (s *Store) Save(ctx context.Context, id uuid.UUID, rcpt *models.Receipt) error {
	data, err := json.Marshal(rcpt)
	if err != nil {
		return fmt.Errorf("marshal receipt %s: %w", id, err)
	}

	ok, err := s.client.SetNX(ctx, key(id), data, 0).Result()
	if err != nil {
		return fmt.Errorf("save receipt %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("receipt %s: %w", id, sentinel.ErrConflict)
	}
	return nil
}

// Find resolves an identifier back to its receipt. The stored JSON is in
// canonical form, so the tolerant field parsers round-trip it exactly.
func (s *Store) Find(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("receipt %s: %w", id, sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find receipt %s: %w", id, err)
	}

	var rcpt models.Receipt
	if err := json.Unmarshal(data, &rcpt); err != nil {
		return nil, fmt.Errorf("unmarshal receipt %s: %w", id, err)
	}
	return &rcpt, nil
}
