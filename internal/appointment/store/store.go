// Package store provides appointment persistence.
//
// Error Contract:
//   - Get and Delete return sentinel.ErrNotFound when no appointment has the
//     given id.
//   - All other failures are returned wrapped with context.
//
// Implementations must not return domain errors; translation to client-facing
// codes happens in the service layer.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/appointment/models"
)

// Store persists appointments.
type Store interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
