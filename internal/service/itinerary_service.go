package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

// itineraryService implements ItineraryService interface
type itineraryService struct {
	itineraries repository.ItineraryRepository
	trips       repository.TripRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(itineraries repository.ItineraryRepository, trips repository.TripRepository) ItineraryService {
	return &itineraryService{
		itineraries: itineraries,
		trips:       trips,
	}
}

// List returns all itineraries
func (s *itineraryService) List(ctx context.Context) ([]domain.Itinerary, error) {
	return s.itineraries.List(ctx)
}

// Get retrieves an itinerary by ID
func (s *itineraryService) Get(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, id)
}

// GetByTrip retrieves the itinerary attached to a trip
func (s *itineraryService) GetByTrip(ctx context.Context, tripID string) (*domain.Itinerary, error) {
	return s.itineraries.GetByTripID(ctx, tripID)
}

// Upsert creates the itinerary for a trip or replaces the content of the
// existing one, never leaving two documents for the same trip id.
func (s *itineraryService) Upsert(ctx context.Context, itinerary *domain.Itinerary) (*domain.Itinerary, error) {
	if _, err := s.trips.GetByID(ctx, itinerary.TripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to check trip existence: %w", err)
	}

	existing, err := s.itineraries.GetByTripID(ctx, itinerary.TripID)
	switch {
	case err == nil:
		existing.Itinerary = itinerary.Itinerary
		if err := s.itineraries.Replace(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update itinerary: %w", err)
		}
		return existing, nil
	case errors.Is(err, repository.ErrNotFound):
		if err := s.itineraries.Insert(ctx, itinerary); err != nil {
			return nil, fmt.Errorf("failed to create itinerary: %w", err)
		}
		return itinerary, nil
	default:
		return nil, fmt.Errorf("failed to look up itinerary: %w", err)
	}
}

// Update replaces an itinerary by ID
func (s *itineraryService) Update(ctx context.Context, id string, itinerary *domain.Itinerary) (*domain.Itinerary, error) {
	if _, err := s.itineraries.GetByID(ctx, id); err != nil {
		return nil, err
	}

	itinerary.ID = id
	if err := s.itineraries.Replace(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("failed to update itinerary: %w", err)
	}

	return itinerary, nil
}

// Delete removes an itinerary by ID
func (s *itineraryService) Delete(ctx context.Context, id string) error {
	return s.itineraries.Delete(ctx, id)
}
