package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const itinerariesCollection = "itineraries"

// itineraryRepository implements ItineraryRepository on MongoDB
type itineraryRepository struct {
	db *database.Mongo
}

// NewItineraryRepository creates a new itinerary repository
func NewItineraryRepository(db *database.Mongo) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) col() *mongo.Collection {
	return r.db.Collection(itinerariesCollection)
}

// List returns all itinerary documents
func (r *itineraryRepository) List(ctx context.Context) ([]domain.Itinerary, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}

	itineraries := []domain.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, fmt.Errorf("failed to decode itineraries: %w", err)
	}

	return itineraries, nil
}

// GetByID retrieves an itinerary by ID
func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	itinerary := &domain.Itinerary{}

	err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("itinerary with id %s not found: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get itinerary by id: %w", err)
	}

	return itinerary, nil
}

// GetByTripID retrieves the single itinerary attached to a trip
func (r *itineraryRepository) GetByTripID(ctx context.Context, tripID string) (*domain.Itinerary, error) {
	itinerary := &domain.Itinerary{}

	err := r.col().FindOne(ctx, bson.M{"tripId": tripID}).Decode(itinerary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("itinerary for trip %s not found: %w", tripID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get itinerary by trip id: %w", err)
	}

	return itinerary, nil
}

// Insert creates a new itinerary document
func (r *itineraryRepository) Insert(ctx context.Context, itinerary *domain.Itinerary) error {
	if itinerary.ID == "" {
		itinerary.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col().InsertOne(ctx, itinerary); err != nil {
		return fmt.Errorf("failed to insert itinerary: %w", err)
	}

	return nil
}

// Replace overwrites an existing itinerary document by id
func (r *itineraryRepository) Replace(ctx context.Context, itinerary *domain.Itinerary) error {
	result, err := r.col().ReplaceOne(ctx, bson.M{"_id": itinerary.ID}, itinerary)
	if err != nil {
		return fmt.Errorf("failed to replace itinerary: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found: %w", itinerary.ID, ErrNotFound)
	}

	return nil
}

// Delete removes an itinerary by ID
func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("itinerary with id %s not found: %w", id, ErrNotFound)
	}

	return nil
}
