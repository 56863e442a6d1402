package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/donor/models"
)

// InMemory stores donors in memory for tests and database-free runs.
type InMemory struct {
	mu     sync.RWMutex
	donors map[primitive.ObjectID]models.Donor
	order  []primitive.ObjectID
}

// NewInMemory constructs an empty in-memory donor store.
func NewInMemory() *InMemory {
	return &InMemory{donors: make(map[primitive.ObjectID]models.Donor)}
}

func (s *InMemory) Create(_ context.Context, donor *models.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if donor.ID.IsZero() {
		donor.ID = primitive.NewObjectID()
	}
	s.donors[donor.ID] = *donor
	s.order = append(s.order, donor.ID)
	return nil
}

// List returns all donors newest first. Equal timestamps keep insertion
// order so listings stay deterministic.
func (s *InMemory) List(_ context.Context) ([]models.Donor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Donor, 0, len(s.order))
	for _, id := range s.order {
		if d, ok := s.donors[id]; ok {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
