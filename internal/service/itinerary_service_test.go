package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

func TestUpsertItineraryCreatesThenReplaces(t *testing.T) {
	itineraries := newFakeItineraryRepository()
	trips := newFakeTripRepository()
	svc := NewItineraryService(itineraries, trips)
	ctx := context.Background()

	trip := &domain.Trip{Destination: "Rome", UserID: "alice@example.com"}
	require.NoError(t, trips.Insert(ctx, trip))

	first, err := svc.Upsert(ctx, &domain.Itinerary{
		TripID:    trip.ID,
		Itinerary: []map[string]any{{"day": float64(1), "plan": "Colosseum"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := svc.Upsert(ctx, &domain.Itinerary{
		TripID:    trip.ID,
		Itinerary: []map[string]any{{"day": float64(1), "plan": "Vatican"}},
	})
	require.NoError(t, err)

	// Same document, replaced content. Never a second one per trip.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Vatican", second.Itinerary[0]["plan"])

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertItineraryMissingTrip(t *testing.T) {
	svc := NewItineraryService(newFakeItineraryRepository(), newFakeTripRepository())

	_, err := svc.Upsert(context.Background(), &domain.Itinerary{TripID: "missing"})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestItineraryGetByTrip(t *testing.T) {
	itineraries := newFakeItineraryRepository()
	trips := newFakeTripRepository()
	svc := NewItineraryService(itineraries, trips)
	ctx := context.Background()

	trip := &domain.Trip{Destination: "Rome"}
	require.NoError(t, trips.Insert(ctx, trip))

	saved, err := svc.Upsert(ctx, &domain.Itinerary{TripID: trip.ID})
	require.NoError(t, err)

	found, err := svc.GetByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)

	_, err = svc.GetByTrip(ctx, "other-trip")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItineraryUpdateMissing(t *testing.T) {
	svc := NewItineraryService(newFakeItineraryRepository(), newFakeTripRepository())

	_, err := svc.Update(context.Background(), "missing", &domain.Itinerary{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestItineraryDelete(t *testing.T) {
	itineraries := newFakeItineraryRepository()
	trips := newFakeTripRepository()
	svc := NewItineraryService(itineraries, trips)
	ctx := context.Background()

	trip := &domain.Trip{Destination: "Rome"}
	require.NoError(t, trips.Insert(ctx, trip))

	saved, err := svc.Upsert(ctx, &domain.Itinerary{TripID: trip.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	assert.ErrorIs(t, svc.Delete(ctx, saved.ID), repository.ErrNotFound)
}
