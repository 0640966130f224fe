// Package memory provides the in-memory receipt store. Each identifier is
// written exactly once and read arbitrarily many times; entries are never
// updated or deleted.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tally/internal/receipt/models"
	"tally/pkg/platform/sentinel"
)

// Store is a concurrency-safe map from receipt ID to receipt.
type Store struct {
	mu       sync.RWMutex
	receipts map[uuid.UUID]*models.Receipt
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		receipts: make(map[uuid.UUID]*models.Receipt),
	}
}

// Save stores a receipt under a fresh identifier. Returns ErrConflict if the
// identifier is already taken; accepted receipts are immutable.
func (s *Store) Save(ctx context.Context, id uuid.UUID, rcpt *models.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.receipts[id]; ok {
		return fmt.Errorf("receipt %s: %w", id, sentinel.ErrConflict)
	}
	s.receipts[id] = rcpt
	return nil
}

// Find resolves an identifier back to its receipt.
func (s *Store) Find(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rcpt, ok := s.receipts[id]
	if !ok {
		return nil, fmt.Errorf("receipt %s: %w", id, sentinel.ErrNotFound)
	}
	return rcpt, nil
}

// Len reports the number of stored receipts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts)
}
