package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/appointment/models"
	"lifelink/pkg/platform/sentinel"
)

// InMemory is a map-backed appointment store used in tests and local runs.
type InMemory struct {
	mu           sync.RWMutex
	appointments map[primitive.ObjectID]models.Appointment
	order        []primitive.ObjectID
}

func NewInMemory() *InMemory {
	return &InMemory{appointments: make(map[primitive.ObjectID]models.Appointment)}
}

func (s *InMemory) Create(ctx context.Context, appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	s.appointments[appointment.ID] = *appointment
	s.order = append(s.order, appointment.ID)
	return nil
}

// List returns all appointments sorted by appointment date ascending.
// Same-day appointments keep insertion order.
func (s *InMemory) List(ctx context.Context) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0, len(s.order))
	for _, id := range s.order {
		if appt, ok := s.appointments[id]; ok {
			out = append(out, appt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *InMemory) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appt, ok := s.appointments[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	found := appt
	return &found, nil
}

func (s *InMemory) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.appointments, id)
	return nil
}
