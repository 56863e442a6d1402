package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifelink/internal/appointment/models"
	"lifelink/internal/transport/http/shared"
	dErrors "lifelink/pkg/domain-errors"
	"lifelink/pkg/requestcontext"
)

// Service defines the interface for appointment operations.
type Service interface {
	Create(ctx context.Context, req models.CreateRequest) (*models.Appointment, error)
	List(ctx context.Context) ([]models.Appointment, error)
	Cancel(ctx context.Context, id string) error
}

// Handler handles appointment scheduling, listing and cancellation endpoints.
type Handler struct {
	appointments Service
	logger       *slog.Logger
}

func New(appointments Service, logger *slog.Logger) *Handler {
	return &Handler{appointments: appointments, logger: logger}
}

// Register registers the appointment routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/appointments", h.handleCreate)
	r.Get("/appointments", h.handleList)
	r.Delete("/appointments/{id}", h.handleCancel)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req models.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid appointment request",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	appointment, err := h.appointments.Create(ctx, req)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInvalidInput) {
			h.logger.WarnContext(ctx, "appointment rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to schedule appointment",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, "appointment", appointment)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appointments, err := h.appointments.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list appointments",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, "appointments", appointments)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.appointments.Cancel(ctx, id); err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) || dErrors.Is(err, dErrors.CodeInvalidInput) {
			h.logger.WarnContext(ctx, "appointment cancellation rejected",
				"request_id", requestcontext.RequestID(ctx),
				"appointment_id", id,
				"error", err.Error(),
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to cancel appointment",
				"request_id", requestcontext.RequestID(ctx),
				"appointment_id", id,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, "message", "Appointment cancelled")
}
