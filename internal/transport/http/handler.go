// Package httptransport is the thin HTTP layer over the intake service. It
// delegates to the service without embedding business logic so transport
// concerns remain isolated.
package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"surveygate/internal/intake"
	"surveygate/internal/intake/service"
	"surveygate/internal/ocr"
	"surveygate/internal/reconcile"
)

// Service defines the intake operations the transport exposes.
type Service interface {
	Evaluate(ctx context.Context, record intake.Record) service.Evaluation
	Reconcile(ctx context.Context, record intake.Record, blocks []ocr.TextBlock) reconcile.Outcome
}

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks Service

// Handler handles intake endpoints.
type Handler struct {
	logger *slog.Logger
	intake Service
}

// New creates a new intake Handler.
func New(intake Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, intake: intake}
}

// Register registers the intake routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/intake/validate", h.handleValidate)
	r.Post("/intake/reconcile", h.handleReconcile)
	r.Get("/healthz", h.handleHealthz)
}

type validateRequest struct {
	Record intake.Record `json:"record"`
}

type reconcileRequest struct {
	Record intake.Record   `json:"record"`
	Blocks []ocr.TextBlock `json:"textBlocks"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid validate request", "error", err.Error())
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Record == nil {
		writeError(w, http.StatusBadRequest, "record is required")
		return
	}

	writeJSON(w, http.StatusOK, h.intake.Evaluate(ctx, req.Record))
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid reconcile request", "error", err.Error())
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Record == nil {
		req.Record = intake.Record{}
	}

	writeJSON(w, http.StatusOK, h.intake.Reconcile(ctx, req.Record, req.Blocks))
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
