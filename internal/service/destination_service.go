package service

import (
	"context"
	"fmt"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

// destinationService implements DestinationService interface
type destinationService struct {
	destinations repository.DestinationRepository
	enricher     EnrichmentClient
}

// NewDestinationService creates a new destination service
func NewDestinationService(destinations repository.DestinationRepository, enricher EnrichmentClient) DestinationService {
	return &destinationService{
		destinations: destinations,
		enricher:     enricher,
	}
}

// Generate requests a catalog for the destination from the external
// generative service and persists it, replacing any existing document for
// the same case-insensitive name.
func (s *destinationService) Generate(ctx context.Context, name string) (*domain.Destination, error) {
	catalog, err := s.enricher.Generate(ctx, name)
	if err != nil {
		return nil, err
	}

	destination := &domain.Destination{
		Destination: name,
		Spots:       catalog.Spots,
		Hotels:      catalog.Hotels,
	}

	if err := s.destinations.Upsert(ctx, destination); err != nil {
		return nil, fmt.Errorf("failed to persist destination: %w", err)
	}

	return destination, nil
}

// ApplyTimeSlot sets the slot on every spot of the destination and persists
// the whole document; last writer wins.
func (s *destinationService) ApplyTimeSlot(ctx context.Context, name, slot string) error {
	destination, err := s.destinations.FindByName(ctx, name)
	if err != nil {
		return err
	}

	for i := range destination.Spots {
		destination.Spots[i].TimeSlot = slot
	}

	if err := s.destinations.Save(ctx, destination); err != nil {
		return fmt.Errorf("failed to save destination: %w", err)
	}

	return nil
}
