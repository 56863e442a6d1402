package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/appointment/models"
	"lifelink/internal/platform/metrics"
	dErrors "lifelink/pkg/domain-errors"
	"lifelink/pkg/platform/sentinel"
	"lifelink/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Service schedules, lists and cancels appointments.
type Service struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(store Store, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{store: store, metrics: m, logger: logger}
}

// Create validates the payload and persists a new appointment. A rejection
// names every missing required field in one message and inserts nothing.
func (s *Service) Create(ctx context.Context, req models.CreateRequest) (*models.Appointment, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	appointment, err := req.ToAppointment()
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	if err := s.store.Create(ctx, appointment); err != nil {
		s.logger.ErrorContext(ctx, "failed to create appointment", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Error scheduling appointment", err)
	}

	s.metrics.AppointmentsScheduled.Inc()
	s.logger.InfoContext(ctx, "appointment scheduled",
		"appointment_id", appointment.ID.Hex(),
		"center_id", appointment.CenterID,
		"donation_type", appointment.DonationType.String())
	return appointment, nil
}

// List returns all appointments in date-ascending itinerary order.
func (s *Service) List(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list appointments", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Error fetching appointments", err)
	}
	return appointments, nil
}

// Get fetches one appointment by its hex identifier.
func (s *Service) Get(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "Invalid appointment id")
	}
	appointment, err := s.store.Get(ctx, oid)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "Appointment not found")
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to get appointment", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Error fetching appointment", err)
	}
	return appointment, nil
}

// Cancel deletes the appointment. Cancellation is a hard delete; there is no
// cancelled state to transition through.
func (s *Service) Cancel(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "Invalid appointment id")
	}
	if err := s.store.Delete(ctx, oid); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "Appointment not found")
		}
		s.logger.ErrorContext(ctx, "failed to cancel appointment", "error", err)
		return dErrors.Wrap(dErrors.CodeInternal, "Error cancelling appointment", err)
	}
	s.metrics.AppointmentsCancelled.Inc()
	s.logger.InfoContext(ctx, "appointment cancelled", "appointment_id", id)
	return nil
}
