package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/donor/models"
	"lifelink/internal/transport/http/shared"
	dErrors "lifelink/pkg/domain-errors"
	"lifelink/pkg/requestcontext"
)

// Service defines the interface for donor operations.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Donor, error)
	List(ctx context.Context) ([]models.Donor, error)
}

// Handler handles donor registration and listing endpoints.
type Handler struct {
	donors Service
	logger *slog.Logger
}

func New(donors Service, logger *slog.Logger) *Handler {
	return &Handler{donors: donors, logger: logger}
}

// Register registers the donor routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Get("/donors", h.handleList)
}

// donorResponse is the wire shape of a donor. termsAccepted is a persistence
// invariant, not client data, so it is never serialized back out.
type donorResponse struct {
	ID                 primitive.ObjectID `json:"id"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	DateOfBirth        time.Time          `json:"dateOfBirth"`
	Phone              string             `json:"phone"`
	Address            string             `json:"address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	ZipCode            string             `json:"zipCode"`
	BloodType          string             `json:"bloodType"`
	LastDonation       *time.Time         `json:"lastDonation,omitempty"`
	MedicalConditions  string             `json:"medicalConditions,omitempty"`
	EmergencyContact   string             `json:"emergencyContact"`
	EmergencyAvailable bool               `json:"emergencyAvailable"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

func toDonorResponse(d models.Donor) donorResponse {
	return donorResponse{
		ID:                 d.ID,
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		DateOfBirth:        d.DateOfBirth,
		Phone:              d.Phone,
		Address:            d.Address,
		City:               d.City,
		State:              d.State,
		ZipCode:            d.ZipCode,
		BloodType:          d.BloodType,
		LastDonation:       d.LastDonation,
		MedicalConditions:  d.MedicalConditions,
		EmergencyContact:   d.EmergencyContact,
		EmergencyAvailable: d.EmergencyAvailable,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid registration request",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	donor, err := h.donors.Register(ctx, req)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInvalidInput) {
			h.logger.WarnContext(ctx, "registration rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to register donor",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, "donor", toDonorResponse(*donor))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donors, err := h.donors.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list donors",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	out := make([]donorResponse, 0, len(donors))
	for _, d := range donors {
		out = append(out, toDonorResponse(d))
	}
	shared.WriteJSON(w, http.StatusOK, "donors", out)
}
