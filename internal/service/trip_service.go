package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/dto"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

// tripService implements TripService interface
type tripService struct {
	trips        repository.TripRepository
	destinations repository.DestinationRepository
	rng          *rand.Rand
}

// NewTripService creates a new trip service. The random source drives
// thumbnail selection and is injected so tests can pin it.
func NewTripService(trips repository.TripRepository, destinations repository.DestinationRepository, rng *rand.Rand) TripService {
	return &tripService{
		trips:        trips,
		destinations: destinations,
		rng:          rng,
	}
}

// Create persists a new trip for the owner and composes the creation read
// model from the destination catalog. A catalog miss is not an error: the
// response simply carries no spots and no venues.
func (s *tripService) Create(ctx context.Context, ownerEmail string, trip *domain.Trip) (*dto.TripCreatedResponse, error) {
	if strings.TrimSpace(trip.Destination) == "" {
		return nil, ErrEmptyDestination
	}

	trip.ID = ""
	trip.UserID = ownerEmail
	trip.AIGenerated = false
	trip.CreatedAt = time.Now()
	trip.Thumbnail = pickThumbnail(tripThumbnails, s.rng)

	if err := s.trips.Insert(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	response := &dto.TripCreatedResponse{
		TripID: trip.ID,
		Spots:  []domain.Spot{},
	}

	destination, err := s.destinations.FindByName(ctx, trip.Destination)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response, nil
		}
		return nil, fmt.Errorf("failed to look up destination: %w", err)
	}

	if destination.Spots != nil {
		response.Spots = destination.Spots
	}

	// First Lunch and first Stay win; later duplicates are ignored.
	for i := range destination.Hotels {
		hotel := destination.Hotels[i]
		switch {
		case response.Lunch == nil && strings.EqualFold(hotel.StayType, domain.StayTypeLunch):
			response.Lunch = &hotel
		case response.Stay == nil && strings.EqualFold(hotel.StayType, domain.StayTypeStay):
			response.Stay = &hotel
		}
	}

	return response, nil
}

// Get retrieves a trip by ID
func (s *tripService) Get(ctx context.Context, id string) (*domain.Trip, error) {
	return s.trips.GetByID(ctx, id)
}

// ListForUser returns the trips the user owns or collaborates on
func (s *tripService) ListForUser(ctx context.Context, email string) ([]domain.Trip, error) {
	return s.trips.ListSharedWith(ctx, email)
}

// Recent returns the user's trips that ended before today
func (s *tripService) Recent(ctx context.Context, email string) ([]domain.Trip, error) {
	return s.trips.ListEndingBefore(ctx, email, time.Now().Format(domain.DateLayout))
}

// Upcoming returns the user's trips that start after today
func (s *tripService) Upcoming(ctx context.Context, email string) ([]domain.Trip, error) {
	return s.trips.ListStartingAfter(ctx, email, time.Now().Format(domain.DateLayout))
}

// Update replaces an existing trip. Owner and creation timestamp are
// immutable and carried over from the stored document.
func (s *tripService) Update(ctx context.Context, id string, trip *domain.Trip) (*domain.Trip, error) {
	existing, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trip.ID = id
	trip.UserID = existing.UserID
	trip.CreatedAt = existing.CreatedAt

	if err := s.trips.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// Delete removes a trip; a missing id is reported without side effects
func (s *tripService) Delete(ctx context.Context, id string) error {
	return s.trips.Delete(ctx, id)
}
