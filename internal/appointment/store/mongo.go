package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lifelink/internal/appointment/models"
	"lifelink/pkg/platform/sentinel"
)

const collectionName = "appointments"

// Mongo persists appointments in the record store's appointments collection.
type Mongo struct {
	col *mongo.Collection
}

// NewMongo constructs an appointment store on the given database.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{col: db.Collection(collectionName)}
}

func (s *Mongo) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	if _, err := s.col.InsertOne(ctx, appointment); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (s *Mongo) List(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appointmentDate", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}

func (s *Mongo) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&appointment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appointment, nil
}

func (s *Mongo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if res.DeletedCount == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
