package repository

import (
	"context"

	"github.com/tripcraft/tripcraft-api/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// TripRepository defines methods for trip operations
type TripRepository interface {
	Insert(ctx context.Context, trip *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	ListSharedWith(ctx context.Context, email string) ([]domain.Trip, error)
	ListEndingBefore(ctx context.Context, owner, date string) ([]domain.Trip, error)
	ListStartingAfter(ctx context.Context, owner, date string) ([]domain.Trip, error)
	Replace(ctx context.Context, trip *domain.Trip) error
	Delete(ctx context.Context, id string) error
}

// DestinationRepository defines methods for the destination catalog
type DestinationRepository interface {
	// FindByName matches the destination name case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Destination, error)
	// Upsert replaces the document for the destination's case-insensitive
	// name, inserting it when absent.
	Upsert(ctx context.Context, destination *domain.Destination) error
	// Save replaces the whole document by id.
	Save(ctx context.Context, destination *domain.Destination) error
}

// ItineraryRepository defines methods for itinerary operations
type ItineraryRepository interface {
	List(ctx context.Context) ([]domain.Itinerary, error)
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	GetByTripID(ctx context.Context, tripID string) (*domain.Itinerary, error)
	Insert(ctx context.Context, itinerary *domain.Itinerary) error
	Replace(ctx context.Context, itinerary *domain.Itinerary) error
	Delete(ctx context.Context, id string) error
}
