package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"tally/internal/receipt/models"
	dErrors "tally/pkg/domain-errors"
	"tally/pkg/platform/httputil"
	"tally/pkg/requestcontext"
)

// Service defines the interface for receipt operations.
type Service interface {
	Process(ctx context.Context, rcpt *models.Receipt) (uuid.UUID, error)
	Points(ctx context.Context, id uuid.UUID) (int, error)
}

// Handler wires receipt endpoints to the receipt service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a receipt handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts receipt endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/receipts/process", h.HandleProcess)
	r.Get("/receipts/{id}/points", h.HandlePoints)
}

// HandleProcess handles POST /receipts/process requests.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var rcpt models.Receipt
	if err := json.NewDecoder(r.Body).Decode(&rcpt); err != nil {
		h.logger.WarnContext(ctx, "unparseable receipt payload",
			"request_id", requestID,
			"error", err,
		)
		var fe *models.FormatError
		if errors.As(err, &fe) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, fe.Error()))
			return
		}
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	id, err := h.service.Process(ctx, &rcpt)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "receipt processed",
		"request_id", requestID,
		"receipt_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, ProcessResponse{ID: id.String()})
}

// HandlePoints handles GET /receipts/{id}/points requests.
func (h *Handler) HandlePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	rawID := chi.URLParam(r, "id")
	id, err := uuid.Parse(rawID)
	if err != nil {
		// A malformed identifier can never resolve to a receipt.
		httputil.WriteError(w, dErrors.Newf(dErrors.CodeNotFound, "no receipt found for ID %s", rawID))
		return
	}

	pts, err := h.service.Points(ctx, id)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "points lookup failed",
				"request_id", requestID,
				"receipt_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, PointsResponse{Points: pts})
}
