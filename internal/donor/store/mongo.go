package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifelink/internal/donor/models"
)

const collectionName = "donors"

// Mongo persists donors in the record store's donors collection.
type Mongo struct {
	col *mongo.Collection
}

// NewMongo constructs a donor store on the given database.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{col: db.Collection(collectionName)}
}

func (s *Mongo) Create(ctx context.Context, donor *models.Donor) error {
	if donor.ID.IsZero() {
		donor.ID = primitive.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, donor); err != nil {
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

func (s *Mongo) List(ctx context.Context) ([]models.Donor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find donors: %w", err)
	}
	defer cursor.Close(ctx)

	donors := []models.Donor{}
	if err := cursor.All(ctx, &donors); err != nil {
		return nil, fmt.Errorf("decode donors: %w", err)
	}
	return donors, nil
}
