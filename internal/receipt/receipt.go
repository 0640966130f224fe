package receipt

import (
	"log/slog"

	"tally/internal/receipt/handler"
	"tally/internal/receipt/metrics"
	"tally/internal/receipt/service"
)

// Service exposes receipt submission and points lookup.
type Service = service.Service

// Handler wires HTTP endpoints to the receipt service.
type Handler = handler.Handler

// NewService constructs the receipt service with required dependencies.
func NewService(store service.ReceiptStore, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	return service.New(store, logger, m)
}

// NewHandler constructs an HTTP handler for the receipt routes.
func NewHandler(s *Service, logger *slog.Logger) *Handler {
	return handler.New(s, logger)
}
