package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const destinationsCollection = "destinations"

// destinationRepository implements DestinationRepository on MongoDB
type destinationRepository struct {
	db *database.Mongo
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db *database.Mongo) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) col() *mongo.Collection {
	return r.db.Collection(destinationsCollection)
}

// nameFilter matches the destination name case-insensitively, anchored so
// "goa" never matches "goa beach".
func nameFilter(name string) bson.M {
	pattern := "^" + regexp.QuoteMeta(name) + "$"
	return bson.M{"destination": primitive.Regex{Pattern: pattern, Options: "i"}}
}

// FindByName retrieves a destination by case-insensitive exact name
func (r *destinationRepository) FindByName(ctx context.Context, name string) (*domain.Destination, error) {
	destination := &domain.Destination{}

	err := r.col().FindOne(ctx, nameFilter(name)).Decode(destination)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("destination %q not found: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get destination by name: %w", err)
	}

	return destination, nil
}

// Upsert replaces the document stored under the destination's case-insensitive
// name, inserting it when absent. Keeps at most one document per name.
func (r *destinationRepository) Upsert(ctx context.Context, destination *domain.Destination) error {
	if destination.ID == "" {
		destination.ID = primitive.NewObjectID().Hex()
	}

	filter := nameFilter(destination.Destination)

	existing := &domain.Destination{}
	err := r.col().FindOne(ctx, filter).Decode(existing)
	switch {
	case err == nil:
		destination.ID = existing.ID
		if _, err := r.col().ReplaceOne(ctx, bson.M{"_id": existing.ID}, destination); err != nil {
			return fmt.Errorf("failed to replace destination: %w", err)
		}
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		opts := options.Replace().SetUpsert(true)
		if _, err := r.col().ReplaceOne(ctx, bson.M{"_id": destination.ID}, destination, opts); err != nil {
			return fmt.Errorf("failed to insert destination: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to look up destination: %w", err)
	}
}

// Save replaces the whole destination document by id
func (r *destinationRepository) Save(ctx context.Context, destination *domain.Destination) error {
	result, err := r.col().ReplaceOne(ctx, bson.M{"_id": destination.ID}, destination)
	if err != nil {
		return fmt.Errorf("failed to save destination: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("destination with id %s not found: %w", destination.ID, ErrNotFound)
	}

	return nil
}
