package service

import (
	"context"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/dto"
)

// AuthService defines methods for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	// ResolveSubject verifies a raw token and returns the email it carries.
	ResolveSubject(token string) (string, error)
	// CheckStatus reports whether the token identifies an existing user.
	// It never returns an error: any failure is "not authenticated".
	CheckStatus(ctx context.Context, token string) bool
}

// LoginResult carries the issued token and the user's display name
type LoginResult struct {
	Token string
	Name  string
}

// TripService defines the trip workflow operations
type TripService interface {
	Create(ctx context.Context, ownerEmail string, trip *domain.Trip) (*dto.TripCreatedResponse, error)
	Get(ctx context.Context, id string) (*domain.Trip, error)
	ListForUser(ctx context.Context, email string) ([]domain.Trip, error)
	Recent(ctx context.Context, email string) ([]domain.Trip, error)
	Upcoming(ctx context.Context, email string) ([]domain.Trip, error)
	Update(ctx context.Context, id string, trip *domain.Trip) (*domain.Trip, error)
	Delete(ctx context.Context, id string) error
}

// DestinationService manages the destination catalog
type DestinationService interface {
	// Generate enriches a destination via the external generative service
	// and persists the resulting catalog.
	Generate(ctx context.Context, name string) (*domain.Destination, error)
	// ApplyTimeSlot bulk-sets a time-of-day slot on every spot of the
	// destination and persists the whole document.
	ApplyTimeSlot(ctx context.Context, name, slot string) error
}

// ItineraryService manages the 1:1 trip itineraries
type ItineraryService interface {
	List(ctx context.Context) ([]domain.Itinerary, error)
	Get(ctx context.Context, id string) (*domain.Itinerary, error)
	GetByTrip(ctx context.Context, tripID string) (*domain.Itinerary, error)
	// Upsert creates the itinerary for a trip, or replaces the content of
	// the existing one. Post-condition: exactly one document per trip id.
	Upsert(ctx context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error)
	Update(ctx context.Context, id string, itinerary *domain.Itinerary) (*domain.Itinerary, error)
	Delete(ctx context.Context, id string) error
}

// ProfileService manages user profile mutations
type ProfileService interface {
	Update(ctx context.Context, id string, updated *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// EnrichmentClient produces a destination catalog from an external
// generative text service
type EnrichmentClient interface {
	Generate(ctx context.Context, destination string) (*domain.Catalog, error)
}
