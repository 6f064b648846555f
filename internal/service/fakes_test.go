package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripcraft/tripcraft-api/internal/domain"
	"github.com/tripcraft/tripcraft-api/internal/repository"
)

// In-memory repository fakes. They copy documents on the way in and out so
// tests observe the same value semantics as the real driver.

type fakeUserRepository struct {
	users  map[string]domain.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}}
}

func (r *fakeUserRepository) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := user
	return &u, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeTripRepository struct {
	trips  map[string]domain.Trip
	nextID int
}

func newFakeTripRepository() *fakeTripRepository {
	return &fakeTripRepository{trips: map[string]domain.Trip{}}
}

func (r *fakeTripRepository) Insert(_ context.Context, trip *domain.Trip) error {
	if trip.ID == "" {
		r.nextID++
		trip.ID = fmt.Sprintf("trip-%d", r.nextID)
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *fakeTripRepository) GetByID(_ context.Context, id string) (*domain.Trip, error) {
	trip, ok := r.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t := trip
	return &t, nil
}

func (r *fakeTripRepository) ListSharedWith(_ context.Context, email string) ([]domain.Trip, error) {
	result := []domain.Trip{}
	for _, trip := range r.trips {
		if trip.UserID == email {
			result = append(result, trip)
			continue
		}
		for _, collaborator := range trip.Collaborators {
			if collaborator.Email == email {
				result = append(result, trip)
				break
			}
		}
	}
	return result, nil
}

func (r *fakeTripRepository) ListEndingBefore(_ context.Context, owner, date string) ([]domain.Trip, error) {
	result := []domain.Trip{}
	for _, trip := range r.trips {
		if trip.UserID == owner && trip.EndDate < date {
			result = append(result, trip)
		}
	}
	return result, nil
}

func (r *fakeTripRepository) ListStartingAfter(_ context.Context, owner, date string) ([]domain.Trip, error) {
	result := []domain.Trip{}
	for _, trip := range r.trips {
		if trip.UserID == owner && trip.StartDate > date {
			result = append(result, trip)
		}
	}
	return result, nil
}

func (r *fakeTripRepository) Replace(_ context.Context, trip *domain.Trip) error {
	if _, ok := r.trips[trip.ID]; !ok {
		return repository.ErrNotFound
	}
	r.trips[trip.ID] = *trip
	return nil
}

func (r *fakeTripRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.trips[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.trips, id)
	return nil
}

type fakeDestinationRepository struct {
	destinations map[string]domain.Destination
	nextID       int
}

func newFakeDestinationRepository() *fakeDestinationRepository {
	return &fakeDestinationRepository{destinations: map[string]domain.Destination{}}
}

func (r *fakeDestinationRepository) FindByName(_ context.Context, name string) (*domain.Destination, error) {
	destination, ok := r.destinations[strings.ToLower(name)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := destination
	return &d, nil
}

func (r *fakeDestinationRepository) Upsert(_ context.Context, destination *domain.Destination) error {
	key := strings.ToLower(destination.Destination)
	if existing, ok := r.destinations[key]; ok {
		destination.ID = existing.ID
	} else if destination.ID == "" {
		r.nextID++
		destination.ID = fmt.Sprintf("dest-%d", r.nextID)
	}
	r.destinations[key] = *destination
	return nil
}

func (r *fakeDestinationRepository) Save(_ context.Context, destination *domain.Destination) error {
	for key, existing := range r.destinations {
		if existing.ID == destination.ID {
			r.destinations[key] = *destination
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeItineraryRepository struct {
	itineraries map[string]domain.Itinerary
	nextID      int
}

func newFakeItineraryRepository() *fakeItineraryRepository {
	return &fakeItineraryRepository{itineraries: map[string]domain.Itinerary{}}
}

func (r *fakeItineraryRepository) List(_ context.Context) ([]domain.Itinerary, error) {
	result := []domain.Itinerary{}
	for _, itinerary := range r.itineraries {
		result = append(result, itinerary)
	}
	return result, nil
}

func (r *fakeItineraryRepository) GetByID(_ context.Context, id string) (*domain.Itinerary, error) {
	itinerary, ok := r.itineraries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	i := itinerary
	return &i, nil
}

func (r *fakeItineraryRepository) GetByTripID(_ context.Context, tripID string) (*domain.Itinerary, error) {
	for _, itinerary := range r.itineraries {
		if itinerary.TripID == tripID {
			i := itinerary
			return &i, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeItineraryRepository) Insert(_ context.Context, itinerary *domain.Itinerary) error {
	if itinerary.ID == "" {
		r.nextID++
		itinerary.ID = fmt.Sprintf("itinerary-%d", r.nextID)
	}
	r.itineraries[itinerary.ID] = *itinerary
	return nil
}

func (r *fakeItineraryRepository) Replace(_ context.Context, itinerary *domain.Itinerary) error {
	if _, ok := r.itineraries[itinerary.ID]; !ok {
		return repository.ErrNotFound
	}
	r.itineraries[itinerary.ID] = *itinerary
	return nil
}

func (r *fakeItineraryRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.itineraries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.itineraries, id)
	return nil
}

type fakeEnrichmentClient struct {
	catalog *domain.Catalog
	err     error
	prompts []string
}

func (c *fakeEnrichmentClient) Generate(_ context.Context, destination string) (*domain.Catalog, error) {
	c.prompts = append(c.prompts, destination)
	if c.err != nil {
		return nil, c.err
	}
	return c.catalog, nil
}
