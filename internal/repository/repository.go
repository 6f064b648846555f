package repository

import (
	"context"
	"fmt"

	"github.com/tripcraft/tripcraft-api/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User        UserRepository
	Trip        TripRepository
	Destination DestinationRepository
	Itinerary   ItineraryRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Mongo) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Trip:        NewTripRepository(db),
		Destination: NewDestinationRepository(db),
		Itinerary:   NewItineraryRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// index on itineraries.tripId backs the one-itinerary-per-trip invariant at
// the storage level.
func EnsureIndexes(ctx context.Context, db *database.Mongo) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		tripsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}},
			{Keys: bson.D{{Key: "collaborators.email", Value: 1}}},
		},
		destinationsCollection: {
			{
				Keys: bson.D{{Key: "destination", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetCollation(&options.Collation{Locale: "en", Strength: 2}),
			},
		},
		itinerariesCollection: {
			{
				Keys:    bson.D{{Key: "tripId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}

	return nil
}
