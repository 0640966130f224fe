// Package service orchestrates receipt submission and points lookup. It owns
// identifier assignment and is the only place scoring faults are caught and
// re-wrapped; everything else propagates typed errors untouched.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"tally/internal/receipt/metrics"
	"tally/internal/receipt/models"
	"tally/internal/receipt/points"
	"tally/internal/receipt/validate"
	dErrors "tally/pkg/domain-errors"
	"tally/pkg/platform/sentinel"
	"tally/pkg/requestcontext"
)

// maxIDAttempts bounds retries on identifier collision. Collisions are
// astronomically unlikely; the bound exists so a broken store cannot spin.
const maxIDAttempts = 3

// ReceiptStore is the service's storage contract. Implementations must
// support safe concurrent insert and lookup: each identifier is written
// exactly once and never updated or deleted.
type ReceiptStore interface {
	Save(ctx context.Context, id uuid.UUID, rcpt *models.Receipt) error
	Find(ctx context.Context, id uuid.UUID) (*models.Receipt, error)
}

// Service exposes the two receipt operations.
type Service struct {
	store   ReceiptStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the receipt service. Metrics may be nil.
func New(store ReceiptStore, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if store == nil {
		return nil, errors.New("receipt store is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, metrics: m}, nil
}

// Process validates a parsed receipt and stores it under a fresh opaque
// identifier. Validation is all-or-nothing: a rejected receipt is never
// stored, and the returned error carries every violation found.
func (s *Service) Process(ctx context.Context, rcpt *models.Receipt) (uuid.UUID, error) {
	requestID := requestcontext.RequestID(ctx)

	if err := validate.Receipt(rcpt); err != nil {
		s.metrics.IncValidationFailures()
		s.logger.WarnContext(ctx, "receipt rejected",
			"request_id", requestID,
			"retailer", rcpt.Retailer,
			"error", err,
		)
		return uuid.Nil, err
	}

	var saveErr error
	for range maxIDAttempts {
		id := uuid.New()
		saveErr = s.store.Save(ctx, id, rcpt)
		if saveErr == nil {
			s.metrics.IncReceiptsProcessed()
			s.logger.InfoContext(ctx, "receipt accepted",
				"request_id", requestID,
				"receipt_id", id,
				"retailer", rcpt.Retailer,
				"items", len(rcpt.Items),
			)
			return id, nil
		}
		if !errors.Is(saveErr, sentinel.ErrConflict) {
			break
		}
	}
	return uuid.Nil, dErrors.Wrap(saveErr, dErrors.CodeInternal, "failed to store receipt")
}

// Points resolves an identifier and computes the receipt's score. Unknown
// identifiers surface as CodeNotFound, never as a generic failure.
func (s *Service) Points(ctx context.Context, id uuid.UUID) (int, error) {
	requestID := requestcontext.RequestID(ctx)

	rcpt, err := s.store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.IncLookupMisses()
			s.logger.WarnContext(ctx, "receipt not found",
				"request_id", requestID,
				"receipt_id", id,
			)
			return 0, dErrors.Newf(dErrors.CodeNotFound, "no receipt found for ID %s", id)
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load receipt")
	}

	total, err := s.calculate(ctx, id, rcpt)
	if err != nil {
		return 0, err
	}

	s.metrics.IncPointsComputed()
	s.logger.InfoContext(ctx, "points calculated",
		"request_id", requestID,
		"receipt_id", id,
		"points", total,
	)
	return total, nil
}

// calculate runs the scoring rules with panic recovery. Scoring is pure and
// deterministic, so a retry would reproduce the same fault; the cause is
// wrapped once for diagnostics and surfaced as an opaque failure.
func (s *Service) calculate(ctx context.Context, id uuid.UUID, rcpt *models.Receipt) (total int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.ErrorContext(ctx, "points calculation failed",
				"receipt_id", id,
				"cause", rec,
			)
			err = dErrors.Newf(dErrors.CodeInternal, "points calculation failed for receipt %s: %v", id, rec)
		}
	}()

	total, breakdown := points.Calculate(rcpt)
	s.logger.DebugContext(ctx, "points breakdown",
		"receipt_id", id,
		"breakdown", breakdown,
		"total", total,
	)
	return total, nil
}
