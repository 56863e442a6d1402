package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifelink/internal/center"
	"lifelink/internal/transport/http/shared"
)

// Handler serves the static donation-center catalog.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Register registers the center routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/centers", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	type centerResponse struct {
		center.Center
		TimeSlots []string `json:"timeSlots"`
	}

	slots := center.TimeSlots()
	centers := center.All()
	out := make([]centerResponse, 0, len(centers))
	for _, c := range centers {
		out = append(out, centerResponse{Center: c, TimeSlots: slots})
	}
	shared.WriteJSON(w, http.StatusOK, "centers", out)
}
