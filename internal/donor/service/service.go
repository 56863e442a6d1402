package service

import (
	"context"
	"log/slog"
	"strings"

	"lifelink/internal/donor/models"
	"lifelink/internal/platform/metrics"
	dErrors "lifelink/pkg/domain-errors"
	"lifelink/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, donor *models.Donor) error
	List(ctx context.Context) ([]models.Donor, error)
}

// Service registers donors and lists the roster. It keeps orchestration out
// of handlers and domain logic thin.
type Service struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewService(store Store, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{store: store, metrics: m, logger: logger}
}

// Register validates the payload and persists a new donor record. Repeat
// registrations with identical details are admitted as separate records.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.Donor, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	donor, err := req.ToDonor()
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	donor.CreatedAt = now
	donor.UpdatedAt = now

	if err := s.store.Create(ctx, donor); err != nil {
		s.logger.ErrorContext(ctx, "failed to create donor", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Error registering donor", err)
	}

	s.metrics.DonorsRegistered.Inc()
	s.logger.InfoContext(ctx, "donor registered",
		"donor_id", donor.ID.Hex(), "blood_type", donor.BloodType)
	return donor, nil
}

// List returns all donors, newest first.
func (s *Service) List(ctx context.Context) ([]models.Donor, error) {
	donors, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list donors", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "Error fetching donors", err)
	}
	return donors, nil
}
