package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const tripsCollection = "trips"

// tripRepository implements TripRepository on MongoDB
type tripRepository struct {
	db *database.Mongo
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *database.Mongo) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) col() *mongo.Collection {
	return r.db.Collection(tripsCollection)
}

// Insert creates a new trip document, always under a fresh id
func (r *tripRepository) Insert(ctx context.Context, trip *domain.Trip) error {
	trip.ID = primitive.NewObjectID().Hex()
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	if _, err := r.col().InsertOne(ctx, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetByID retrieves a trip by ID
func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	trip := &domain.Trip{}

	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(trip)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("trip with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip by id: %w", err)
	}

	return trip, nil
}

// ListSharedWith returns trips the email owns or collaborates on
func (r *tripRepository) ListSharedWith(ctx context.Context, email string) ([]domain.Trip, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"userId": email},
		bson.M{"collaborators.email": email},
	}}

	return r.list(ctx, filter)
}

// ListEndingBefore returns the owner's trips whose end date is before the given date
func (r *tripRepository) ListEndingBefore(ctx context.Context, owner, date string) ([]domain.Trip, error) {
	return r.list(ctx, bson.M{"userId": owner, "endDate": bson.M{"$lt": date}})
}

// ListStartingAfter returns the owner's trips whose start date is after the given date
func (r *tripRepository) ListStartingAfter(ctx context.Context, owner, date string) ([]domain.Trip, error) {
	return r.list(ctx, bson.M{"userId": owner, "startDate": bson.M{"$gt": date}})
}

func (r *tripRepository) list(ctx context.Context, filter bson.M) ([]domain.Trip, error) {
	cursor, err := r.col().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	trips := []domain.Trip{}
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, fmt.Errorf("failed to decode trips: %w", err)
	}

	return trips, nil
}

// Replace overwrites an existing trip document by id
func (r *tripRepository) Replace(ctx context.Context, trip *domain.Trip) error {
	result, err := r.col().ReplaceOne(ctx, bson.M{"_id": trip.ID}, trip)
	if err != nil {
		return fmt.Errorf("failed to replace trip: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("trip with id %s not found: %w", trip.ID, ErrNotFound)
	}

	return nil
}

// Delete removes a trip by ID
func (r *tripRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("trip with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
